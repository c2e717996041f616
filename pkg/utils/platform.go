//go:build !mobile

package utils

import "os"

// mobileEmulateEnv 设为 1 时桌面端按移动端显示（本地调试触屏提示）
const mobileEmulateEnv = "FLAPPY_MOBILE_EMULATE"

// IsMobile 桌面端默认返回 false
func IsMobile() bool {
	return os.Getenv(mobileEmulateEnv) == "1"
}
