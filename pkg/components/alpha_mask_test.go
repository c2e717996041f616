package components

import (
	"image"
	"image/color"
	"testing"
)

func TestNewAlphaMask(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, A: 128})
	img.SetNRGBA(2, 0, color.NRGBA{R: 255, A: 127})
	img.SetNRGBA(3, 1, color.NRGBA{A: 200})

	mask := NewAlphaMask(img)
	if mask == nil {
		t.Fatal("NewAlphaMask returned nil")
	}
	if mask.Width != 4 || mask.Height != 2 {
		t.Fatalf("mask size = %dx%d, want 4x2", mask.Width, mask.Height)
	}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"opaque", 0, 0, true},
		{"at threshold", 1, 0, true},
		{"below threshold", 2, 0, false},
		{"fully transparent", 3, 0, false},
		{"second row", 3, 1, true},
		{"out of bounds left", -1, 0, false},
		{"out of bounds bottom", 0, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mask.IsSolid(tt.x, tt.y, 128); got != tt.want {
				t.Errorf("IsSolid(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNewAlphaMaskConvertsOffsetImages(t *testing.T) {
	// 子图的 Bounds 不从原点开始
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.Set(5, 5, color.RGBA{G: 255, A: 255})
	sub := src.SubImage(image.Rect(5, 5, 8, 8))

	mask := NewAlphaMask(sub)
	if mask == nil {
		t.Fatal("NewAlphaMask returned nil")
	}
	if !mask.IsSolid(0, 0, 128) {
		t.Error("expected (0,0) of sub image to be solid")
	}
	if mask.IsSolid(1, 1, 128) {
		t.Error("expected (1,1) of sub image to be transparent")
	}
}

func TestNewAlphaMaskNil(t *testing.T) {
	if NewAlphaMask(nil) != nil {
		t.Error("expected nil mask for nil image")
	}
	if NewAlphaMask(image.NewNRGBA(image.Rect(0, 0, 0, 0))) != nil {
		t.Error("expected nil mask for empty image")
	}
}
