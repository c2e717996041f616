// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPress 一次指针按下事件
type PointerPress struct {
	X, Y    int
	IsTouch bool
}

// PointerJustPressed 检查本帧是否刚刚按下指针（触摸或鼠标左键）
// 优先检测触摸；返回按下位置
func PointerJustPressed() (PointerPress, bool) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerPress{X: x, Y: y, IsTouch: true}, true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return PointerPress{X: x, Y: y}, true
	}

	return PointerPress{}, false
}

// AnyKeyJustPressed 检查给定按键中是否有任意一个本帧刚刚按下
func AnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
