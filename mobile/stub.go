//go:build !mobile

// Package mobile 是 gomobile 绑定入口，移动端代码仅在 -tags mobile 时编译
package mobile

// Dummy 保证桌面端构建时包非空，供 ebitenmobile bind 以外的工具引用
func Dummy() {}
