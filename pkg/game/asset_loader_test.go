package game

import (
	"context"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/decker502/flappy/pkg/config"
)

func testAssets() config.AssetsConfig {
	return config.DefaultGameConfig().Assets
}

// completeFS 包含全部 7 张图片（不含音乐）
func completeFS(t *testing.T) fstest.MapFS {
	t.Helper()
	data := encodeTestPNG(t, 8, 8)
	fsys := fstest.MapFS{}
	assets := testAssets()
	for _, p := range append([]string{assets.Player, assets.Poster, assets.Background}, assets.Obstacles...) {
		fsys[p] = &fstest.MapFile{Data: data}
	}
	return fsys
}

func TestAssetLoaderLoadsAllImages(t *testing.T) {
	loader := NewAssetLoader(NewResourceManager(completeFS(t), nil), testAssets())

	if loader.Ready() {
		t.Fatal("loader should not be ready before Load")
	}
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !loader.Ready() {
		t.Fatal("loader should be ready after Load")
	}

	if loader.Player() == nil || loader.Poster() == nil || loader.Background() == nil {
		t.Error("expected player, poster and background to be loaded")
	}
	for i := 0; i < config.ObstacleVariantCount; i++ {
		if !loader.ObstacleLoaded(i) || loader.Obstacle(i) == nil {
			t.Errorf("obstacle %d not loaded", i)
		}
		if loader.ObstacleMask(i) == nil {
			t.Errorf("obstacle %d has no alpha mask", i)
		}
	}
	if loader.PlayerMask() == nil {
		t.Error("player has no alpha mask")
	}

	// 没有音频上下文，音乐加载失败但不影响就绪
	if loader.Music() != nil {
		t.Error("music should not load without an audio context")
	}
	if got := loader.Failed(); !slices.Equal(got, []string{testAssets().Music}) {
		t.Errorf("Failed() = %v, want only the music track", got)
	}
}

// TestAssetLoaderToleratesFailures 缺失的图片不阻塞就绪
func TestAssetLoaderToleratesFailures(t *testing.T) {
	assets := testAssets()
	fsys := completeFS(t)
	delete(fsys, assets.Obstacles[1])
	delete(fsys, assets.Poster)
	fsys[assets.Player] = &fstest.MapFile{Data: []byte("corrupt")}

	loader := NewAssetLoader(NewResourceManager(fsys, nil), assets)
	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !loader.Ready() {
		t.Fatal("loader should be ready even with failures")
	}

	tests := []struct {
		path string
		want AssetStatus
	}{
		{assets.Player, AssetFailed},
		{assets.Poster, AssetFailed},
		{assets.Obstacles[1], AssetFailed},
		{assets.Obstacles[0], AssetLoaded},
		{assets.Background, AssetLoaded},
		{"unknown.png", AssetPending},
	}
	for _, tt := range tests {
		if got := loader.Status(tt.path); got != tt.want {
			t.Errorf("Status(%s) = %s, want %s", tt.path, got, tt.want)
		}
	}

	if loader.Player() != nil || loader.PlayerMask() != nil {
		t.Error("failed player image should not be exposed")
	}
	if loader.ObstacleLoaded(1) || loader.Obstacle(1) != nil || loader.ObstacleMask(1) != nil {
		t.Error("failed obstacle should report unloaded")
	}
	if loader.ObstacleLoaded(-1) || loader.ObstacleLoaded(config.ObstacleVariantCount) {
		t.Error("out of range variants should report unloaded")
	}
}

func TestAssetLoaderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewAssetLoader(NewResourceManager(completeFS(t), nil), testAssets())
	if err := loader.Load(ctx); err == nil {
		t.Error("expected error for cancelled context")
	}
	if loader.Ready() {
		t.Error("cancelled loader should not report ready")
	}
}
