package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene driven by the Ebitengine loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene to the given wall-clock time.
	// now comes from the caller so that tests can drive time explicitly.
	Update(now time.Time) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closable 是一个可选接口，场景被替换或游戏退出时调用 Close() 释放资源
//
// 实现此接口的场景会在以下时机被调用：
//   - SceneManager.SwitchTo 切换到其他场景
//   - 游戏窗口关闭
type Closable interface {
	Close()
}
