package systems

import (
	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
)

// TimeScale 计算帧间隔的归一化系数
//
// 帧间隔先截断到 [0, MaxFrameMs]，避免卡顿后一步走得太远，
// 再除以参考帧时长（16.67ms），使运动速度与实际帧率无关。
func TimeScale(deltaMs float64, timing config.TimingConfig) float64 {
	if deltaMs < 0 {
		deltaMs = 0
	}
	if deltaMs > timing.MaxFrameMs {
		deltaMs = timing.MaxFrameMs
	}
	return deltaMs / timing.ReferenceFrameMs
}

// integratePlayer 按归一化系数积分重力和速度
func integratePlayer(player components.PlayerComponent, physics config.PhysicsConfig, scale float64) components.PlayerComponent {
	player.VelocityY += physics.Gravity * scale
	player.Y += player.VelocityY * scale
	return player
}

// Jump 设置跳跃速度
// 直接赋值而不是累加，同一帧内多次跳跃与一次效果相同
func Jump(w World, physics config.PhysicsConfig) World {
	w.Player.VelocityY = physics.JumpStrength
	return w
}
