// Package session 实现一局游戏的状态机
//
// 本包不依赖渲染、输入或音频库，图形版和终端版共用。
package session

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/systems"
)

// Action 玩家输入动作
type Action int

const (
	ActionNone Action = iota
	// ActionJump 空格键：游戏中跳跃，开始界面开始，结束界面重新开始
	ActionJump
	// ActionConfirm 回车键：开始界面开始，结束界面重新开始
	ActionConfirm
	// ActionPointer 鼠标点击或触摸：与空格键相同
	ActionPointer
)

// String 返回动作名称（用于日志）
func (a Action) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionConfirm:
		return "confirm"
	case ActionPointer:
		return "pointer"
	default:
		return "none"
	}
}

// MusicController 背景音乐控制
// game.AudioManager 实现此接口
type MusicController interface {
	PlayMusic() bool
	StopMusic()
}

// ScoreBoard 最高分记录
// storage.ScoreKeeper 实现此接口
type ScoreBoard interface {
	Submit(score int) bool
	Best() int
}

// Config 创建 Session 需要的依赖
type Config struct {
	Config    *config.GameConfig
	Rand      *rand.Rand        // 障碍物随机源；nil 时使用随机种子
	Sprites   systems.SpriteSet // 可为 nil
	Precision string            // 为空时使用 Config.Collision.Precision
	Music     MusicController   // 可为 nil
	Scores    ScoreBoard        // 可为 nil
}

// Session 游戏状态机
//
// 阶段流转：start -> playing -> gameover -> playing（重新开始）。
// 碰撞后进入 gameover 并显示惊吓画面，计时器到期后显示普通结束界面。
//
// Session 不依赖任何渲染或输入库：调用方每帧传入当前时间调用 Update，
// 并把输入映射为 Action 交给 HandleAction。
type Session struct {
	cfg    *config.GameConfig
	env    systems.TickEnv
	music  MusicController
	scores ScoreBoard

	phase     components.Phase
	world     systems.World
	canvas    components.Canvas
	jumpscare components.TimerComponent

	lastFrame    time.Time
	hasLastFrame bool

	lastCollision systems.CollisionResult
	newRecord     bool
}

// New 创建处于开始界面的游戏会话
func New(sc Config) *Session {
	rng := sc.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	canvas := components.Canvas{
		Width:  float64(sc.Config.Window.MaxWidth),
		Height: float64(sc.Config.Window.MaxHeight),
	}

	s := &Session{
		cfg: sc.Config,
		env: systems.TickEnv{
			Config:    sc.Config,
			Rand:      rng,
			Sprites:   sc.Sprites,
			Precision: sc.Precision,
		},
		music:     sc.Music,
		scores:    sc.Scores,
		phase:     components.PhaseStart,
		canvas:    canvas,
		jumpscare: components.TimerComponent{Name: "jumpscare"},
	}
	s.world = systems.NewWorld(sc.Config, canvas)
	return s
}

// HandleAction 按当前阶段处理一次输入
//
// 返回：
//   - bool: 输入是否产生了效果
func (s *Session) HandleAction(action Action, now time.Time) bool {
	switch s.phase {
	case components.PhaseStart:
		if action == ActionNone {
			return false
		}
		s.Start(now)
		return true
	case components.PhasePlaying:
		if action == ActionJump || action == ActionPointer {
			s.Jump()
			return true
		}
		return false
	case components.PhaseGameOver:
		if action == ActionNone {
			return false
		}
		return s.Restart(now)
	}
	return false
}

// Start 重置状态并开始新的一局
// 背景音乐播放失败不影响开始
func (s *Session) Start(now time.Time) {
	s.reset()
	s.phase = components.PhasePlaying

	if s.music != nil {
		s.music.PlayMusic()
	}
	log.Printf("[Session] Run started at %s (canvas %.0fx%.0f)",
		now.Format(time.TimeOnly), s.canvas.Width, s.canvas.Height)
}

// Jump 游戏中设置跳跃速度
// 同一帧内多次调用与一次效果相同
func (s *Session) Jump() {
	if s.phase != components.PhasePlaying {
		return
	}
	s.world = systems.Jump(s.world, s.cfg.Physics)
}

// Restart 在结束界面重新开始
// 惊吓画面显示期间忽略
//
// 返回：
//   - bool: 是否重新开始
func (s *Session) Restart(now time.Time) bool {
	if s.phase != components.PhaseGameOver || s.jumpscare.IsActive {
		return false
	}
	s.Start(now)
	return true
}

// Update 推进一帧
//
// 游戏中：计算帧间隔并推进模拟，发生碰撞时结束本局。
// 结束界面：推进惊吓画面计时器。
// 开局后的第一帧没有上一帧时间，使用参考帧时长。
func (s *Session) Update(now time.Time) {
	deltaMs := s.cfg.Timing.ReferenceFrameMs
	if s.hasLastFrame {
		deltaMs = float64(now.Sub(s.lastFrame)) / float64(time.Millisecond)
	}
	s.lastFrame = now
	s.hasLastFrame = true

	switch s.phase {
	case components.PhasePlaying:
		s.step(deltaMs)
	case components.PhaseGameOver:
		if s.jumpscare.Advance(deltaMs) {
			log.Printf("[Session] Jumpscare finished")
		}
	}
}

// step 推进一帧模拟
func (s *Session) step(deltaMs float64) {
	next, result := systems.Tick(s.world, deltaMs, s.env)
	s.world = next

	if result.Scored > 0 {
		log.Printf("[Session] Score: %d", s.world.Score)
	}
	if result.Collision.Hit {
		s.endRun(result.Collision)
	}
}

// endRun 碰撞后结束本局
func (s *Session) endRun(collision systems.CollisionResult) {
	if s.music != nil {
		s.music.StopMusic()
	}

	s.phase = components.PhaseGameOver
	s.lastCollision = collision
	s.jumpscare.Start(s.cfg.Timing.JumpscareMs)

	if s.scores != nil {
		s.newRecord = s.scores.Submit(s.world.Score)
	}

	log.Printf("[Session] Game over: score=%d reason=%s obstacle=%d",
		s.world.Score, collision.Reason, collision.ObstacleID)
}

// reset 清空本局状态
func (s *Session) reset() {
	s.world = systems.NewWorld(s.cfg, s.canvas)
	s.jumpscare.Cancel()
	s.hasLastFrame = false
	s.lastCollision = systems.CollisionResult{}
	s.newRecord = false
}

// Close 释放会话：取消计时器并停止音乐
func (s *Session) Close() {
	s.jumpscare.Cancel()
	if s.music != nil {
		s.music.StopMusic()
	}
}

// Resize 更新画布尺寸
// 游戏中改变尺寸时，之后生成的障碍物使用新的尺寸
func (s *Session) Resize(width, height int) {
	canvas := components.Canvas{Width: float64(width), Height: float64(height)}
	if canvas == s.canvas {
		return
	}
	s.canvas = canvas
	s.world.Canvas = canvas
	log.Printf("[Session] Canvas resized to %dx%d", width, height)
}

// SetPrecision 设置碰撞精度，空字符串表示使用配置值
// 下一帧起生效
func (s *Session) SetPrecision(precision string) {
	s.env.Precision = precision
	log.Printf("[Session] Collision precision: %s", s.Precision())
}

// Precision 返回当前生效的碰撞精度
func (s *Session) Precision() string {
	if s.env.Precision != "" {
		return s.env.Precision
	}
	return s.cfg.Collision.Precision
}

// Phase 返回当前阶段
func (s *Session) Phase() components.Phase { return s.phase }

// JumpscareActive 返回惊吓画面是否正在显示
func (s *Session) JumpscareActive() bool {
	return s.phase == components.PhaseGameOver && s.jumpscare.IsActive
}

// World 返回当前模拟状态
// 返回值与会话共享障碍物切片，调用方只能读取
func (s *Session) World() systems.World { return s.world }

// Score 返回当前得分
func (s *Session) Score() int { return s.world.Score }

// Canvas 返回当前画布尺寸
func (s *Session) Canvas() components.Canvas { return s.canvas }

// Config 返回游戏配置
func (s *Session) Config() *config.GameConfig { return s.cfg }

// BestScore 返回历史最高分
func (s *Session) BestScore() int {
	if s.scores == nil {
		return s.world.Score
	}
	return s.scores.Best()
}

// NewRecord 返回本局是否刷新了最高分
func (s *Session) NewRecord() bool { return s.newRecord }
