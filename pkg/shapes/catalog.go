package shapes

import "image/color"

// 形状目录（共 13 种）
// 顺序固定，测试和回放依赖该顺序
var catalog = []Shape{
	MustShape("single", [][]int{{1}}),
	MustShape("horizontal", [][]int{{1, 1}}),
	MustShape("vertical", [][]int{{1}, {1}}),
	MustShape("square", [][]int{{1, 1}, {1, 1}}),
	MustShape("long-horizontal", [][]int{{1, 1, 1}}),
	MustShape("t", [][]int{{1, 1, 1}, {0, 1, 0}}),
	MustShape("z", [][]int{{1, 1, 0}, {0, 1, 1}}),
	MustShape("s", [][]int{{0, 1, 1}, {1, 1, 0}}),
	MustShape("l", [][]int{{1, 0}, {1, 0}, {1, 1}}),
	MustShape("inverted-l", [][]int{{1, 0}, {1, 0}, {1, 0}, {1}}),
	MustShape("j", [][]int{{0, 1, 0}, {0, 1, 0}, {1, 1, 0}}),
	MustShape("reverse-s", [][]int{{1, 0}, {1, 0}, {0, 1}, {0, 1}}),
	MustShape("t-extended", [][]int{{0, 1, 1}, {0, 1, 0}, {1, 0, 0}}),
}

// AllShapes 返回完整形状目录
//
// 返回切片是副本；Shape 本身不可变，可以安全共享
func AllShapes() []Shape {
	out := make([]Shape, len(catalog))
	copy(out, catalog)
	return out
}

// ShapeByName 按名称查找目录中的形状
func ShapeByName(name string) (Shape, bool) {
	for _, s := range catalog {
		if s.name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// ColorTag 颜色标签
// 0 表示空格子，1..NumColors 对应调色板中的颜色，同时作为写入棋盘的值
type ColorTag int

// Empty 空格子标签
const Empty ColorTag = 0

// NumColors 调色板颜色数量
const NumColors = 7

var palette = [NumColors]color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},   // 红
	{R: 0, G: 255, B: 0, A: 255},   // 绿
	{R: 0, G: 0, B: 255, A: 255},   // 蓝
	{R: 255, G: 255, B: 0, A: 255}, // 黄
	{R: 255, G: 165, B: 0, A: 255}, // 橙
	{R: 0, G: 255, B: 255, A: 255}, // 青
	{R: 255, G: 0, B: 255, A: 255}, // 品红
}

// Valid 报告标签是否对应调色板中的颜色
func (t ColorTag) Valid() bool {
	return t >= 1 && t <= NumColors
}

// RGBA 返回标签对应的颜色，空标签或无效标签返回白色
func (t ColorTag) RGBA() color.RGBA {
	if !t.Valid() {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return palette[t-1]
}

// AllColors 返回全部有效颜色标签（1..NumColors）
func AllColors() []ColorTag {
	out := make([]ColorTag, NumColors)
	for i := range out {
		out[i] = ColorTag(i + 1)
	}
	return out
}
