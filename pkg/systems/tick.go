package systems

import (
	"math/rand/v2"

	"github.com/decker502/flappy/pkg/config"
)

// TickEnv 单帧更新依赖的外部环境
type TickEnv struct {
	Config    *config.GameConfig
	Rand      *rand.Rand
	Sprites   SpriteSet // 可为 nil，视为全部贴图已加载且无像素数据
	Precision string    // 为空时使用 Config.Collision.Precision
}

// TickResult 单帧更新的结果
type TickResult struct {
	Scale     float64 // 本帧的归一化系数
	Scored    int     // 本帧新增分数
	Collision CollisionResult
}

// Tick 推进一帧模拟
//
// 步骤顺序：
//  1. 截断帧间隔并计算归一化系数
//  2. 积分玩家速度和位置
//  3. 按间距生成新障碍物
//  4. 左移障碍物并移除离开画面的障碍物
//  5. 为越过玩家的障碍物计分
//  6. 碰撞检测
//
// 传入的 World 不会被修改。发生碰撞时返回的 World 仍包含本帧的移动结果，
// 由调用方决定是否渲染。
func Tick(w World, deltaMs float64, env TickEnv) (World, TickResult) {
	cfg := env.Config
	next := w.clone()

	if deltaMs > 0 {
		next.ElapsedMs += deltaMs
	}

	scale := TimeScale(deltaMs, cfg.Timing)
	result := TickResult{Scale: scale}

	next.Player = integratePlayer(next.Player, cfg.Physics, scale)

	if shouldSpawn(&next, cfg.Physics) {
		spawnObstacle(&next, cfg.Physics, env.Rand)
	}

	advanceObstacles(&next, cfg.Physics, scale)

	result.Scored = updateScore(&next, cfg)

	precision := env.Precision
	if precision == "" {
		precision = cfg.Collision.Precision
	}
	result.Collision = CheckCollision(&next, cfg, env.Sprites, precision)

	return next, result
}
