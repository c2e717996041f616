package systems

import (
	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
)

// World 一局游戏的模拟状态
//
// World 按值传递：Tick 接收当前状态并返回新状态，不修改传入的值。
// 渲染、调度、音频都不属于 World。
type World struct {
	Canvas         components.Canvas
	Player         components.PlayerComponent
	Obstacles      []components.ObstacleComponent // 按生成顺序排列
	NextObstacleID int
	Score          int
	ElapsedMs      float64 // 本局开始以来的真实时间（未截断）
}

// NewWorld 创建一局新游戏的初始状态
func NewWorld(cfg *config.GameConfig, canvas components.Canvas) World {
	return World{
		Canvas: canvas,
		Player: components.PlayerComponent{
			Y:         cfg.Physics.PlayerStartY,
			VelocityY: 0,
		},
		Obstacles: nil,
	}
}

// PlayerX 返回玩家当前的X坐标
func (w *World) PlayerX(cfg *config.GameConfig) float64 {
	return components.PlayerX(w.Canvas.Width, cfg.Physics.PlayerSize)
}

// clone 复制 World，障碍物切片独立分配
func (w World) clone() World {
	if w.Obstacles != nil {
		obstacles := make([]components.ObstacleComponent, len(w.Obstacles))
		copy(obstacles, w.Obstacles)
		w.Obstacles = obstacles
	}
	return w
}
