package systems

import "github.com/decker502/flappy/pkg/config"

// updateScore 为越过玩家的障碍物计分
// Passed 标志保证每个障碍物只计分一次
//
// 返回本帧新增的分数
func updateScore(w *World, cfg *config.GameConfig) int {
	playerX := w.PlayerX(cfg)
	scored := 0
	for i := range w.Obstacles {
		obs := &w.Obstacles[i]
		if !obs.Passed && obs.Right(cfg.Physics.ObstacleWidth) < playerX {
			obs.Passed = true
			scored++
		}
	}
	w.Score += scored
	return scored
}
