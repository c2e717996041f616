package config

import (
	"fmt"
	"log"

	"github.com/decker502/flappy/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 碰撞精度
const (
	// PrecisionCoarse 仅使用缩小后的矩形碰撞盒
	PrecisionCoarse = "coarse"
	// PrecisionPixel 矩形命中后再做逐像素 Alpha 确认
	PrecisionPixel = "pixel"
)

// ObstacleVariantCount 障碍物贴图变体数量
const ObstacleVariantCount = 4

// GameConfig 游戏配置
//
// 配置文件位置: data/game.yaml
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Timing    TimingConfig    `yaml:"timing"`
	Collision CollisionConfig `yaml:"collision"`
	Assets    AssetsConfig    `yaml:"assets"`
	Text      TextConfig      `yaml:"text"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Title     string `yaml:"title"`
	MaxWidth  int    `yaml:"maxWidth"`  // 画布最大宽度
	MaxHeight int    `yaml:"maxHeight"` // 画布最大高度
}

// PhysicsConfig 物理参数
// 速度和加速度均以"参考帧"（约 16.67ms）为单位
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`         // 每帧重力加速度（像素/帧²）
	JumpStrength    float64 `yaml:"jumpStrength"`    // 跳跃时设置的速度（负值向上）
	ObstacleSpeed   float64 `yaml:"obstacleSpeed"`   // 障碍物每帧左移像素
	ObstacleSpacing float64 `yaml:"obstacleSpacing"` // 最新障碍物离开右边缘多远后生成下一个
	ObstacleWidth   float64 `yaml:"obstacleWidth"`
	PlayerSize      float64 `yaml:"playerSize"`
	GapSize         float64 `yaml:"gapSize"`
	GapMargin       float64 `yaml:"gapMargin"` // 缺口距离上下边缘的最小距离
	PlayerStartY    float64 `yaml:"playerStartY"`
}

// TimingConfig 时间参数（毫秒）
type TimingConfig struct {
	ReferenceFrameMs float64 `yaml:"referenceFrameMs"`
	MaxFrameMs       float64 `yaml:"maxFrameMs"`
	GracePeriodMs    float64 `yaml:"gracePeriodMs"`
	JumpscareMs      float64 `yaml:"jumpscareMs"`
}

// CollisionConfig 碰撞参数
type CollisionConfig struct {
	BoundsTolerance float64 `yaml:"boundsTolerance"` // 上下边界容差（像素）
	HitboxMargin    float64 `yaml:"hitboxMargin"`    // 玩家碰撞盒每边缩小比例
	SegmentGrace    float64 `yaml:"segmentGrace"`    // 上下障碍物的额外容差（像素）
	AlphaThreshold  uint8   `yaml:"alphaThreshold"`  // Alpha 低于此值视为透明
	Precision       string  `yaml:"precision"`
}

// AssetsConfig 资源路径（相对于资源根目录）
type AssetsConfig struct {
	Player     string   `yaml:"player"`
	Obstacles  []string `yaml:"obstacles"`
	Poster     string   `yaml:"poster"`
	Background string   `yaml:"background"`
	Music      string   `yaml:"music"`
}

// TextConfig 界面文本
type TextConfig struct {
	Title   string `yaml:"title"`
	Credits string `yaml:"credits"`
}

// DefaultGameConfig 返回内置默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{
			Title:     "Flappy Modi",
			MaxWidth:  GameWindowWidth,
			MaxHeight: GameWindowHeight,
		},
		Physics: PhysicsConfig{
			Gravity:         0.3,
			JumpStrength:    -6,
			ObstacleSpeed:   2,
			ObstacleSpacing: 450,
			ObstacleWidth:   60,
			PlayerSize:      50,
			GapSize:         200,
			GapMargin:       50,
			PlayerStartY:    250,
		},
		Timing: TimingConfig{
			ReferenceFrameMs: 16.67,
			MaxFrameMs:       50,
			GracePeriodMs:    1500,
			JumpscareMs:      1000,
		},
		Collision: CollisionConfig{
			BoundsTolerance: 10,
			HitboxMargin:    0.2,
			SegmentGrace:    5,
			AlphaThreshold:  128,
			Precision:       PrecisionCoarse,
		},
		Assets: AssetsConfig{
			Player:     "player.png",
			Obstacles:  []string{"obs_1.png", "obs_2.png", "obs_3.png", "obs_4.png"},
			Poster:     "modi_poster.png",
			Background: "background.png",
			Music:      "background_music.mp3",
		},
		Text: TextConfig{
			Title:   "Flappy Modi",
			Credits: "Built by Ansh",
		},
	}
}

// LoadGameConfig 从嵌入资源加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置
// 未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Window.MaxWidth <= 0 || c.Window.MaxHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.MaxWidth, c.Window.MaxHeight)
	}

	p := c.Physics
	if p.ObstacleWidth <= 0 || p.PlayerSize <= 0 || p.GapSize <= 0 {
		return fmt.Errorf("obstacle width, player size and gap size must be positive")
	}
	if p.ObstacleSpeed <= 0 {
		return fmt.Errorf("obstacle speed must be positive, got %.2f", p.ObstacleSpeed)
	}
	if p.GapMargin < 0 {
		return fmt.Errorf("gap margin must not be negative, got %.1f", p.GapMargin)
	}
	if p.GapSize+2*p.GapMargin > float64(c.Window.MaxHeight) {
		return fmt.Errorf("gap band does not fit: gap(%.1f) + 2*margin(%.1f) > height(%d)",
			p.GapSize, p.GapMargin, c.Window.MaxHeight)
	}

	t := c.Timing
	if t.ReferenceFrameMs <= 0 {
		return fmt.Errorf("reference frame must be positive, got %.2f", t.ReferenceFrameMs)
	}
	if t.MaxFrameMs < t.ReferenceFrameMs {
		return fmt.Errorf("max frame (%.2f) must be >= reference frame (%.2f)", t.MaxFrameMs, t.ReferenceFrameMs)
	}
	if t.GracePeriodMs < 0 || t.JumpscareMs < 0 {
		return fmt.Errorf("grace period and jumpscare duration must not be negative")
	}

	if c.Collision.HitboxMargin < 0 || c.Collision.HitboxMargin >= 0.5 {
		return fmt.Errorf("hitbox margin must be in [0, 0.5), got %.2f", c.Collision.HitboxMargin)
	}
	if !IsValidPrecision(c.Collision.Precision) {
		return fmt.Errorf("unknown collision precision %q", c.Collision.Precision)
	}

	if len(c.Assets.Obstacles) != ObstacleVariantCount {
		return fmt.Errorf("expected %d obstacle sprites, got %d", ObstacleVariantCount, len(c.Assets.Obstacles))
	}

	return nil
}

// IsValidPrecision 判断碰撞精度名称是否合法
func IsValidPrecision(precision string) bool {
	return precision == PrecisionCoarse || precision == PrecisionPixel
}

// ResolvePrecision 按顺序返回第一个合法的碰撞精度
//
// 空字符串表示未设置，直接跳过；非法值记录日志后跳过。
// 全部无效时返回 PrecisionCoarse。
func ResolvePrecision(candidates ...string) string {
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if !IsValidPrecision(p) {
			log.Printf("[Config] Warning: Ignoring unknown collision precision %q", p)
			continue
		}
		return p
	}
	return PrecisionCoarse
}

// NextPrecision 返回切换后的碰撞精度（coarse 与 pixel 互换）
func NextPrecision(precision string) string {
	if precision == PrecisionPixel {
		return PrecisionCoarse
	}
	return PrecisionPixel
}
