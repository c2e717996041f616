package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"

	"github.com/decker502/flappy/pkg/app"
	"github.com/decker502/flappy/pkg/embedded"
)

// 环境变量（可写在 .env 中），命令行参数优先
const (
	envAssets    = "FLAPPY_ASSETS"
	envVerbose   = "FLAPPY_VERBOSE"
	envPrecision = "FLAPPY_PRECISION"
	envSeed      = "FLAPPY_SEED"
)

func main() {
	// .env 不存在时忽略
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[main] Warning: Failed to load .env: %v", err)
	}

	var (
		assetsDir = flag.String("assets", envString(envAssets, "assets"), "图片和音乐所在目录")
		verbose   = flag.Bool("verbose", envBool(envVerbose), "显示详细日志")
		precision = flag.String("precision", os.Getenv(envPrecision), "碰撞精度 (coarse / pixel)，为空则使用设置")
		seed      = flag.Uint64("seed", envUint(envSeed), "障碍物随机种子，0 表示随机")
	)
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		AssetsFS:  os.DirFS(*assetsDir),
		Precision: *precision,
		Seed:      *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	window := gameApp.Window()
	ebiten.SetWindowSize(window.MaxWidth, window.MaxHeight)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envUint(key string) uint64 {
	v, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
