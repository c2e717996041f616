package systems

import (
	"math/rand/v2"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
)

// shouldSpawn 判断是否需要生成新障碍物
// 没有障碍物，或最新的障碍物已经离开右边缘超过 ObstacleSpacing
func shouldSpawn(w *World, physics config.PhysicsConfig) bool {
	if len(w.Obstacles) == 0 {
		return true
	}
	last := w.Obstacles[len(w.Obstacles)-1]
	return last.X < w.Canvas.Width-physics.ObstacleSpacing
}

// GapBand 返回缺口起始Y的取值范围 [min, max]
// 画布过矮时范围退化为 min
func GapBand(canvasHeight float64, physics config.PhysicsConfig) (float64, float64) {
	minY := physics.GapMargin
	maxY := canvasHeight - physics.GapSize - physics.GapMargin
	if maxY < minY {
		maxY = minY
	}
	return minY, maxY
}

// spawnObstacle 在右边缘生成一个障碍物
// 缺口位置在安全带内均匀随机，贴图变体在 4 种之间均匀随机
func spawnObstacle(w *World, physics config.PhysicsConfig, rng *rand.Rand) {
	minY, maxY := GapBand(w.Canvas.Height, physics)
	gapStart := minY + rng.Float64()*(maxY-minY)

	bottom := w.Canvas.Height - gapStart - physics.GapSize
	if bottom < 0 {
		bottom = 0
	}

	w.Obstacles = append(w.Obstacles, components.ObstacleComponent{
		ID:           w.NextObstacleID,
		X:            w.Canvas.Width,
		TopHeight:    gapStart,
		BottomHeight: bottom,
		Gap:          physics.GapSize,
		Variant:      rng.IntN(config.ObstacleVariantCount),
		Passed:       false,
	})
	w.NextObstacleID++
}

// advanceObstacles 左移所有障碍物，移除完全离开左边缘的障碍物
func advanceObstacles(w *World, physics config.PhysicsConfig, scale float64) {
	kept := w.Obstacles[:0]
	for _, obs := range w.Obstacles {
		obs.X -= physics.ObstacleSpeed * scale
		if obs.X+physics.ObstacleWidth > 0 {
			kept = append(kept, obs)
		}
	}
	w.Obstacles = kept
}
