// Package term 在终端中运行游戏
//
// 与图形版共用 session.Session、配置和最高分记录，只替换输入、调度和渲染：
// tcell 事件代替键盘鼠标，定时器代替 Ebitengine 的帧回调，
// 字符块代替贴图。终端没有贴图数据，碰撞固定使用矩形检测。
package term

import (
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/session"
)

// frameInterval 约 60fps
const frameInterval = 16 * time.Millisecond

// Game 终端版游戏
type Game struct {
	screen  tcell.Screen
	session *session.Session

	// buttons 上一个鼠标事件的按键状态，用于识别按下的瞬间
	buttons tcell.ButtonMask
}

// NewGame 创建终端游戏
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕
//   - cfg: 游戏配置
//   - rng: 障碍物随机源，nil 时使用随机种子
//   - scores: 最高分记录，可为 nil
func NewGame(screen tcell.Screen, cfg *config.GameConfig, rng *rand.Rand, scores session.ScoreBoard) *Game {
	return &Game{
		screen: screen,
		session: session.New(session.Config{
			Config:    cfg,
			Rand:      rng,
			Precision: config.PrecisionCoarse,
			Scores:    scores,
		}),
	}
}

// Run 运行事件循环，直到按下 Esc / Ctrl-C / q
func (g *Game) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	defer g.session.Close()

	// PollEvent 在屏幕关闭后返回 nil
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !g.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			g.Update(now)
			g.Draw()
		}
	}
}

// HandleEvent 处理一个终端事件
// 返回 false 表示退出
func (g *Game) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			g.press(session.ActionJump)
		case ev.Key() == tcell.KeyEnter:
			g.press(session.ActionConfirm)
		}

	case *tcell.EventMouse:
		// tcell 在按住拖动时持续上报 Button1，只有从松开到按下才算一次点击
		pressed := ev.Buttons()&tcell.Button1 != 0
		held := g.buttons&tcell.Button1 != 0
		g.buttons = ev.Buttons()
		if pressed && !held {
			g.press(session.ActionPointer)
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

// press 把一次输入交给会话
func (g *Game) press(action session.Action) {
	g.session.HandleAction(action, time.Now())
}

// Update 推进一帧
func (g *Game) Update(now time.Time) {
	g.session.Update(now)
}

// Session 返回游戏会话
func (g *Game) Session() *session.Session { return g.session }
