package game

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/sync/errgroup"
)

// AssetStatus 单个资源的加载状态
type AssetStatus int

const (
	AssetPending AssetStatus = iota
	AssetLoaded
	AssetFailed
)

// String 返回状态名称
func (s AssetStatus) String() string {
	switch s {
	case AssetLoaded:
		return "loaded"
	case AssetFailed:
		return "failed"
	default:
		return "pending"
	}
}

// maxConcurrentDecodes 同时解码的图片数量上限
const maxConcurrentDecodes = 4

// AssetLoader 游戏资源加载器
//
// 一次性加载 7 张图片（玩家、4 种障碍物、海报、背景）和 1 首循环背景音乐。
// 加载失败只记录日志，不会中断游戏；绘制代码需要自行检查每张图片是否可用。
// 所有图片尝试结束后（无论成功与否）Ready() 返回 true。
//
// AssetLoader 实现了 systems.SpriteSet，碰撞系统通过它判断障碍物贴图是否加载
// 以及获取 Alpha 缓存。
type AssetLoader struct {
	rm     *ResourceManager
	assets config.AssetsConfig

	ready atomic.Bool

	mu     sync.RWMutex
	status map[string]AssetStatus
	music  *audio.Player
}

// NewAssetLoader 创建资源加载器
//
// 参数:
//   - rm: 资源管理器
//   - assets: 资源路径配置（必须包含 4 个障碍物路径）
func NewAssetLoader(rm *ResourceManager, assets config.AssetsConfig) *AssetLoader {
	l := &AssetLoader{
		rm:     rm,
		assets: assets,
		status: make(map[string]AssetStatus),
	}
	for _, p := range l.imagePaths() {
		l.status[p] = AssetPending
	}
	if assets.Music != "" {
		l.status[assets.Music] = AssetPending
	}
	return l
}

// imagePaths 返回需要加载的全部图片路径
func (l *AssetLoader) imagePaths() []string {
	paths := make([]string, 0, 3+len(l.assets.Obstacles))
	paths = append(paths, l.assets.Player)
	paths = append(paths, l.assets.Obstacles...)
	paths = append(paths, l.assets.Poster, l.assets.Background)
	return paths
}

// Load 加载全部资源
//
// 图片并发解码，全部尝试完成后标记就绪，然后加载背景音乐。
// 单个资源失败不会返回错误；只有 ctx 被取消时返回 ctx 的错误。
func (l *AssetLoader) Load(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDecodes)

	for _, p := range l.imagePaths() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				l.setStatus(p, AssetFailed)
				return err
			}
			if _, err := l.rm.LoadImage(p); err != nil {
				log.Printf("[AssetLoader] Warning: Failed to load image %s: %v", p, err)
				l.setStatus(p, AssetFailed)
				return nil
			}
			l.setStatus(p, AssetLoaded)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("asset loading cancelled: %w", err)
	}

	l.ready.Store(true)
	log.Printf("[AssetLoader] Images ready (%d failed)", len(l.Failed()))

	if l.assets.Music == "" {
		return nil
	}
	player, err := l.rm.LoadAudio(l.assets.Music)
	if err != nil {
		log.Printf("[AssetLoader] Warning: Failed to load music %s: %v", l.assets.Music, err)
		l.setStatus(l.assets.Music, AssetFailed)
		return nil
	}

	l.mu.Lock()
	l.music = player
	l.mu.Unlock()
	l.setStatus(l.assets.Music, AssetLoaded)
	return nil
}

func (l *AssetLoader) setStatus(p string, s AssetStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.status[p] = s
}

// Ready 返回所有图片是否都已尝试加载
func (l *AssetLoader) Ready() bool {
	return l.ready.Load()
}

// Status 返回指定资源的加载状态，未知路径返回 AssetPending
func (l *AssetLoader) Status(p string) AssetStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.status[p]
}

// Failed 返回加载失败的资源路径
func (l *AssetLoader) Failed() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var failed []string
	for _, p := range l.imagePaths() {
		if l.status[p] == AssetFailed {
			failed = append(failed, p)
		}
	}
	if l.assets.Music != "" && l.status[l.assets.Music] == AssetFailed {
		failed = append(failed, l.assets.Music)
	}
	return failed
}

// image 返回已加载的图片，未加载或失败时返回 nil
func (l *AssetLoader) image(p string) *ebiten.Image {
	if p == "" || l.Status(p) != AssetLoaded {
		return nil
	}
	return l.rm.GetImage(p)
}

// Player 返回玩家贴图
func (l *AssetLoader) Player() *ebiten.Image { return l.image(l.assets.Player) }

// Poster 返回海报贴图
func (l *AssetLoader) Poster() *ebiten.Image { return l.image(l.assets.Poster) }

// Background 返回背景贴图
func (l *AssetLoader) Background() *ebiten.Image { return l.image(l.assets.Background) }

// Obstacle 返回指定变体的障碍物贴图
func (l *AssetLoader) Obstacle(variant int) *ebiten.Image {
	if variant < 0 || variant >= len(l.assets.Obstacles) {
		return nil
	}
	return l.image(l.assets.Obstacles[variant])
}

// Music 返回背景音乐播放器，未加载时返回 nil
func (l *AssetLoader) Music() *audio.Player {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.music
}

// ObstacleLoaded 实现 systems.SpriteSet
func (l *AssetLoader) ObstacleLoaded(variant int) bool {
	if variant < 0 || variant >= len(l.assets.Obstacles) {
		return false
	}
	return l.Status(l.assets.Obstacles[variant]) == AssetLoaded
}

// ObstacleMask 实现 systems.SpriteSet
func (l *AssetLoader) ObstacleMask(variant int) *components.AlphaMask {
	if !l.ObstacleLoaded(variant) {
		return nil
	}
	return l.rm.GetAlphaMask(l.assets.Obstacles[variant])
}

// PlayerMask 实现 systems.SpriteSet
func (l *AssetLoader) PlayerMask() *components.AlphaMask {
	if l.Status(l.assets.Player) != AssetLoaded {
		return nil
	}
	return l.rm.GetAlphaMask(l.assets.Player)
}
