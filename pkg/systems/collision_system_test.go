package systems

import (
	"testing"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
)

// fakeSprites 测试用的贴图集合
type fakeSprites struct {
	loaded       [config.ObstacleVariantCount]bool
	obstacleMask *components.AlphaMask
	playerMask   *components.AlphaMask
}

func allLoaded() *fakeSprites {
	return &fakeSprites{loaded: [config.ObstacleVariantCount]bool{true, true, true, true}}
}

func (f *fakeSprites) ObstacleLoaded(variant int) bool {
	return variant >= 0 && variant < len(f.loaded) && f.loaded[variant]
}

func (f *fakeSprites) ObstacleMask(variant int) *components.AlphaMask {
	return f.obstacleMask
}

func (f *fakeSprites) PlayerMask() *components.AlphaMask {
	return f.playerMask
}

// uniformMask 创建所有像素 Alpha 相同的缓存
func uniformMask(w, h int, alpha uint8) *components.AlphaMask {
	mask := &components.AlphaMask{Width: w, Height: h, Alpha: make([]uint8, w*h)}
	for i := range mask.Alpha {
		mask.Alpha[i] = alpha
	}
	return mask
}

// collisionWorld 玩家在 x=375，障碍物在 x=380，缺口 [200, 400]
func collisionWorld(cfg *config.GameConfig, playerY float64) World {
	w := newTestWorld(cfg)
	w.ElapsedMs = 2000
	w.Player.Y = playerY
	w.Obstacles = []components.ObstacleComponent{{
		ID: 7, X: 380, TopHeight: 200, Gap: 200, BottomHeight: 200, Variant: 2,
	}}
	return w
}

func TestCheckCollisionCoarse(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name       string
		playerY    float64
		wantHit    bool
		wantReason CollisionReason
	}{
		{"inside gap", 250, false, CollisionNone},
		{"top segment", 100, true, CollisionTop},
		{"top grace keeps player alive", 185, false, CollisionNone},
		{"bottom segment", 400, true, CollisionBottom},
		{"bottom grace keeps player alive", 365, false, CollisionNone},
		{"below canvas", 561, true, CollisionBounds},
		{"above canvas", -11, true, CollisionBounds},
		{"within top tolerance", -10, true, CollisionTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := collisionWorld(cfg, tt.playerY)
			got := CheckCollision(&w, cfg, allLoaded(), config.PrecisionCoarse)
			if got.Hit != tt.wantHit || got.Reason != tt.wantReason {
				t.Errorf("CheckCollision(y=%.0f) = %+v, want hit=%v reason=%v",
					tt.playerY, got, tt.wantHit, tt.wantReason)
			}
			if got.Hit && got.Reason != CollisionBounds && got.ObstacleID != 7 {
				t.Errorf("expected obstacle id 7, got %d", got.ObstacleID)
			}
		})
	}
}

// TestGracePeriodSuppressesCollision 开局保护期内即使越界也不判定碰撞
func TestGracePeriodSuppressesCollision(t *testing.T) {
	cfg := config.DefaultGameConfig()

	for _, elapsed := range []float64{0, 500, 1499.9} {
		w := collisionWorld(cfg, 10000)
		w.ElapsedMs = elapsed
		if got := CheckCollision(&w, cfg, allLoaded(), config.PrecisionCoarse); got.Hit {
			t.Errorf("collision reported at %.1fms: %+v", elapsed, got)
		}
	}

	w := collisionWorld(cfg, 10000)
	w.ElapsedMs = 1500
	if got := CheckCollision(&w, cfg, allLoaded(), config.PrecisionCoarse); !got.Hit {
		t.Error("expected collision right after the grace period")
	}
}

func TestUnloadedSpriteIsIgnored(t *testing.T) {
	cfg := config.DefaultGameConfig()
	w := collisionWorld(cfg, 100)

	sprites := allLoaded()
	sprites.loaded[2] = false

	if got := CheckCollision(&w, cfg, sprites, config.PrecisionCoarse); got.Hit {
		t.Errorf("obstacle with unloaded sprite should not collide: %+v", got)
	}
}

func TestNoHorizontalOverlap(t *testing.T) {
	cfg := config.DefaultGameConfig()
	w := collisionWorld(cfg, 100)
	// 收缩后的玩家碰撞盒 [385, 415]
	w.Obstacles[0].X = 415

	if got := CheckCollision(&w, cfg, allLoaded(), config.PrecisionCoarse); got.Hit {
		t.Errorf("touching edges should not collide: %+v", got)
	}
}

func TestCheckCollisionPixelPrecision(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name         string
		obstacleMask *components.AlphaMask
		playerMask   *components.AlphaMask
		wantHit      bool
	}{
		{"opaque obstacle", uniformMask(8, 8, 255), nil, true},
		{"transparent obstacle", uniformMask(8, 8, 0), nil, false},
		{"obstacle below threshold", uniformMask(8, 8, 127), nil, false},
		{"missing obstacle mask assumes collision", nil, uniformMask(8, 8, 0), true},
		{"transparent player", uniformMask(8, 8, 255), uniformMask(8, 8, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := collisionWorld(cfg, 100)
			sprites := allLoaded()
			sprites.obstacleMask = tt.obstacleMask
			sprites.playerMask = tt.playerMask

			got := CheckCollision(&w, cfg, sprites, config.PrecisionPixel)
			if got.Hit != tt.wantHit {
				t.Errorf("CheckCollision = %+v, want hit=%v", got, tt.wantHit)
			}
		})
	}
}

func TestPixelCollision(t *testing.T) {
	// 左半透明、右半不透明的障碍物贴图
	halfMask := &components.AlphaMask{Width: 2, Height: 1, Alpha: []uint8{0, 255}}

	base := PixelQuery{
		PlayerSize:     50,
		ObstacleX:      100,
		ObstacleY:      0,
		ObstacleWidth:  60,
		ObstacleHeight: 200,
		AlphaThreshold: 128,
	}

	tests := []struct {
		name    string
		modify  func(*PixelQuery)
		wantHit bool
	}{
		{
			name:    "no bounding box overlap",
			modify:  func(q *PixelQuery) { q.PlayerX = 0; q.PlayerY = 50 },
			wantHit: false,
		},
		{
			name:    "below segment",
			modify:  func(q *PixelQuery) { q.PlayerX = 100; q.PlayerY = 200; q.ObstacleMask = halfMask },
			wantHit: false,
		},
		{
			name:    "overlap only transparent half",
			modify:  func(q *PixelQuery) { q.PlayerX = 70; q.PlayerY = 50; q.ObstacleMask = halfMask },
			wantHit: false,
		},
		{
			name:    "overlap reaches opaque half",
			modify:  func(q *PixelQuery) { q.PlayerX = 90; q.PlayerY = 50; q.ObstacleMask = halfMask },
			wantHit: true,
		},
		{
			name:    "nil obstacle mask within box",
			modify:  func(q *PixelQuery) { q.PlayerX = 70; q.PlayerY = 50 },
			wantHit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			tt.modify(&q)
			if got := PixelCollision(q); got != tt.wantHit {
				t.Errorf("PixelCollision = %v, want %v", got, tt.wantHit)
			}
		})
	}
}
