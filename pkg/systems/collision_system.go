package systems

import (
	"math"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
)

// SpriteSet 提供碰撞检测需要的贴图信息
// 由资源加载器实现；终端版本没有贴图，视为全部加载且没有像素数据
type SpriteSet interface {
	// ObstacleLoaded 返回指定变体的障碍物贴图是否已加载完成
	ObstacleLoaded(variant int) bool
	// ObstacleMask 返回障碍物贴图的 Alpha 缓存，不可用时返回 nil
	ObstacleMask(variant int) *components.AlphaMask
	// PlayerMask 返回玩家贴图的 Alpha 缓存，不可用时返回 nil
	PlayerMask() *components.AlphaMask
}

// CollisionReason 碰撞原因
type CollisionReason int

const (
	CollisionNone CollisionReason = iota
	CollisionBounds
	CollisionTop
	CollisionBottom
)

// String 返回碰撞原因名称（用于日志）
func (r CollisionReason) String() string {
	switch r {
	case CollisionBounds:
		return "bounds"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	default:
		return "none"
	}
}

// CollisionResult 碰撞检测结果
type CollisionResult struct {
	Hit        bool
	Reason     CollisionReason
	ObstacleID int // 仅在 CollisionTop/CollisionBottom 时有效
}

// CheckCollision 检查玩家是否发生碰撞
//
// 检测分两级：
//   - 边界检测：玩家超出画布上下边缘（带容差）立即判定碰撞
//   - 障碍物检测：玩家碰撞盒每边缩小 HitboxMargin，与贴图已加载的障碍物比较，
//     上下两段各留 SegmentGrace 像素余量
//
// precision 为 PrecisionPixel 时，障碍物命中还需逐像素确认。
// 开局 GracePeriodMs 内不判定任何碰撞。
func CheckCollision(w *World, cfg *config.GameConfig, sprites SpriteSet, precision string) CollisionResult {
	if w.ElapsedMs < cfg.Timing.GracePeriodMs {
		return CollisionResult{}
	}

	size := cfg.Physics.PlayerSize
	playerX := w.PlayerX(cfg)
	playerY := w.Player.Y

	tolerance := cfg.Collision.BoundsTolerance
	if playerY < -tolerance || playerY+size > w.Canvas.Height+tolerance {
		return CollisionResult{Hit: true, Reason: CollisionBounds}
	}

	margin := size * cfg.Collision.HitboxMargin
	adjustedX := playerX + margin
	adjustedY := playerY + margin
	adjustedSize := size - margin*2
	grace := cfg.Collision.SegmentGrace
	width := cfg.Physics.ObstacleWidth

	for i := range w.Obstacles {
		obs := &w.Obstacles[i]
		if sprites != nil && !sprites.ObstacleLoaded(obs.Variant) {
			continue
		}

		if adjustedX+adjustedSize <= obs.X || adjustedX >= obs.X+width {
			continue
		}

		if adjustedY < obs.TopHeight-grace {
			if precision != config.PrecisionPixel ||
				pixelHit(playerX, playerY, obs, 0, obs.TopHeight, cfg, sprites) {
				return CollisionResult{Hit: true, Reason: CollisionTop, ObstacleID: obs.ID}
			}
		}

		if adjustedY+adjustedSize > obs.BottomY()+grace {
			if precision != config.PrecisionPixel ||
				pixelHit(playerX, playerY, obs, obs.BottomY(), obs.BottomHeight, cfg, sprites) {
				return CollisionResult{Hit: true, Reason: CollisionBottom, ObstacleID: obs.ID}
			}
		}
	}

	return CollisionResult{}
}

// pixelHit 对障碍物的一段做逐像素确认
func pixelHit(playerX, playerY float64, obs *components.ObstacleComponent, segY, segH float64, cfg *config.GameConfig, sprites SpriteSet) bool {
	var playerMask, obstacleMask *components.AlphaMask
	if sprites != nil {
		playerMask = sprites.PlayerMask()
		obstacleMask = sprites.ObstacleMask(obs.Variant)
	}
	return PixelCollision(PixelQuery{
		PlayerX:        playerX,
		PlayerY:        playerY,
		PlayerSize:     cfg.Physics.PlayerSize,
		ObstacleX:      obs.X,
		ObstacleY:      segY,
		ObstacleWidth:  cfg.Physics.ObstacleWidth,
		ObstacleHeight: segH,
		PlayerMask:     playerMask,
		ObstacleMask:   obstacleMask,
		AlphaThreshold: cfg.Collision.AlphaThreshold,
	})
}

// PixelQuery 逐像素碰撞检测参数
type PixelQuery struct {
	PlayerX, PlayerY, PlayerSize float64

	ObstacleX, ObstacleY          float64
	ObstacleWidth, ObstacleHeight float64

	PlayerMask     *components.AlphaMask // nil 时玩家视为完全不透明
	ObstacleMask   *components.AlphaMask // nil 时在包围盒重叠范围内直接判定碰撞
	AlphaThreshold uint8
}

// PixelCollision 逐像素碰撞检测
//
// 先做包围盒检测，再在重叠区域内逐像素采样：
// 将屏幕像素分别映射到两张贴图的坐标，两者都不透明才算碰撞。
func PixelCollision(q PixelQuery) bool {
	if q.PlayerX+q.PlayerSize <= q.ObstacleX ||
		q.PlayerX >= q.ObstacleX+q.ObstacleWidth ||
		q.PlayerY+q.PlayerSize <= q.ObstacleY ||
		q.PlayerY >= q.ObstacleY+q.ObstacleHeight {
		return false
	}

	// 没有障碍物像素数据时退化为包围盒碰撞
	if q.ObstacleMask == nil {
		return true
	}

	size := int(q.PlayerSize)
	for py := 0; py < size; py++ {
		screenY := q.PlayerY + float64(py)
		if screenY < q.ObstacleY || screenY >= q.ObstacleY+q.ObstacleHeight {
			continue
		}

		for px := 0; px < size; px++ {
			screenX := q.PlayerX + float64(px)
			if screenX < q.ObstacleX || screenX >= q.ObstacleX+q.ObstacleWidth {
				continue
			}

			playerSolid := true
			if q.PlayerMask != nil {
				imgX := int(math.Floor(float64(px) / q.PlayerSize * float64(q.PlayerMask.Width)))
				imgY := int(math.Floor(float64(py) / q.PlayerSize * float64(q.PlayerMask.Height)))
				playerSolid = q.PlayerMask.IsSolid(imgX, imgY, q.AlphaThreshold)
			}
			if !playerSolid {
				continue
			}

			relX := (screenX - q.ObstacleX) / q.ObstacleWidth
			relY := (screenY - q.ObstacleY) / q.ObstacleHeight
			obsX := int(math.Floor(relX * float64(q.ObstacleMask.Width)))
			obsY := int(math.Floor(relY * float64(q.ObstacleMask.Height)))
			if q.ObstacleMask.IsSolid(obsX, obsY, q.AlphaThreshold) {
				return true
			}
		}
	}

	return false
}
