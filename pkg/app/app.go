// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/embedded"
	"github.com/decker502/flappy/pkg/game"
	"github.com/decker502/flappy/pkg/scenes"
	"github.com/decker502/flappy/pkg/session"
	"github.com/decker502/flappy/pkg/storage"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// audioSampleRate 音频上下文采样率
	audioSampleRate = 48000

	// GameConfigPath 嵌入的游戏配置路径
	GameConfigPath = "data/game.yaml"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// AssetsFS 图片和音乐所在的文件系统（如 os.DirFS("assets")）
	AssetsFS fs.FS
	// Precision 碰撞精度（coarse / pixel），为空则使用设置或配置文件
	Precision string
	// Seed 障碍物随机种子，0 表示随机
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	session                  *session.Session
	settingsManager          *storage.SettingsManager
	window                   config.WindowConfig
	cancelLoad               context.CancelFunc
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 资源在后台加载，加载完成前显示加载画面。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("embedded 未初始化，需要先调用 embedded.Init()")
	}

	gameConfig, err := config.LoadGameConfig(GameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	if cfg.Precision != "" && !config.IsValidPrecision(cfg.Precision) {
		return nil, fmt.Errorf("无效的碰撞精度 %q（可选 %s / %s）", cfg.Precision, config.PrecisionCoarse, config.PrecisionPixel)
	}
	if cfg.AssetsFS == nil {
		return nil, fmt.Errorf("未指定资源目录")
	}
	log.Printf("[Config] 加载游戏配置: %s", GameConfigPath)

	// 初始化音频上下文
	audioContext := audio.NewContext(audioSampleRate)

	// 创建资源管理器和加载器
	resourceManager := game.NewResourceManager(cfg.AssetsFS, audioContext)
	loader := game.NewAssetLoader(resourceManager, gameConfig.Assets)

	// 持久化：设置和最高分
	store := storage.Open()
	settingsManager, err := storage.NewSettingsManager(store)
	if err != nil {
		return nil, fmt.Errorf("设置管理器初始化失败: %w", err)
	}
	scoreKeeper := storage.NewScoreKeeper(store)

	audioManager := game.NewAudioManager(loader, settingsManager)
	log.Printf("[App] AudioManager initialized")

	// 命令行 > 设置 > game.yaml
	precision := config.ResolvePrecision(cfg.Precision, settingsManager.GetSettings().Precision, gameConfig.Collision.Precision)

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		log.Printf("[App] Using obstacle seed %d", cfg.Seed)
	}

	gameSession := session.New(session.Config{
		Config:    gameConfig,
		Rand:      rng,
		Sprites:   loader,
		Precision: precision,
		Music:     audioManager,
		Scores:    scoreKeeper,
	})
	log.Printf("[App] Collision precision: %s", gameSession.Precision())

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewFlappyScene(gameSession, loader, resourceManager, audioManager))

	// 后台加载资源
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		start := time.Now()
		if err := loader.Load(ctx); err != nil {
			log.Printf("[App] Asset loading aborted: %v", err)
			return
		}
		log.Printf("[App] Assets ready in %s (failed: %v)", time.Since(start).Round(time.Millisecond), loader.Failed())
	}()

	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		session:         gameSession,
		settingsManager: settingsManager,
		window:          gameConfig.Window,
		cancelLoad:      cancel,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.window.MaxWidth, a.window.MaxHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.window.MaxWidth, a.window.MaxHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// P 切换碰撞精度
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.togglePrecision()
	}

	return a.sceneManager.Update(time.Now())
}

// toggleFullscreen 切换全屏并保存设置
func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	if !fullscreen {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(fullscreen)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save fullscreen setting: %v", err)
	}
}

// togglePrecision 在 coarse 和 pixel 之间切换并保存设置
func (a *App) togglePrecision() {
	next := config.NextPrecision(a.session.Precision())
	a.session.SetPrecision(next)

	a.settingsManager.SetPrecision(next)
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: Failed to save precision setting: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
//
// 画布跟随窗口大小，但不超过配置的最大尺寸；
// 超出部分由 Ebitengine 缩放。尺寸变化会同步给游戏会话。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := config.FitCanvas(outsideWidth, outsideHeight, a.window.MaxWidth, a.window.MaxHeight)
	a.session.Resize(w, h)
	return w, h
}

// Close 停止资源加载并关闭场景，游戏退出时调用
func (a *App) Close() {
	a.cancelLoad()
	a.sceneManager.Close()
}

// Window 返回窗口配置（标题和最大尺寸）
func (a *App) Window() config.WindowConfig {
	return a.window
}
