//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 桌面端模拟移动模式的环境变量
const MobileEmulateEnv = "BLOCKPUZZLE_MOBILE_EMULATE"

// IsMobile 是否按移动端运行
// 桌面端默认 false，设置 BLOCKPUZZLE_MOBILE_EMULATE=1 可在本地模拟
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
