// flappy-term 在终端中运行游戏
//
// 用法：
//
//	go run ./cmd/flappy-term [-config data/game.yaml] [-seed 42] [-log term.log]
//
// 空格 / 鼠标左键跳跃，回车开始或重新开始，Esc / q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/flappy/internal/term"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/storage"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径，为空使用默认配置")
	seed       = flag.Uint64("seed", 0, "障碍物随机种子，0 表示随机")
	logPath    = flag.String("log", "", "日志文件路径，为空不输出日志")
)

func main() {
	flag.Parse()

	closeLog, err := setupLog(*logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	// 与图形版共用最高分记录
	scores := storage.NewScoreKeeper(storage.Open())

	term.NewGame(screen, cfg, rng, scores).Run()
}

// loadConfig 读取配置文件，path 为空时使用默认配置
func loadConfig(path string) (*config.GameConfig, error) {
	if path == "" {
		return config.DefaultGameConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return config.ParseGameConfig(data)
}

// setupLog 终端被界面占用，日志只能写文件
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
