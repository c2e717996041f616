package config

import "testing"

func TestFitCanvas(t *testing.T) {
	tests := []struct {
		name         string
		outW, outH   int
		wantW, wantH int
	}{
		{"larger than max", 1920, 1080, 800, 600},
		{"smaller than max", 640, 480, 640, 480},
		{"mixed", 1024, 400, 800, 400},
		{"zero size falls back to max", 0, 0, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitCanvas(tt.outW, tt.outH, GameWindowWidth, GameWindowHeight)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("FitCanvas(%d, %d) = (%d, %d), want (%d, %d)",
					tt.outW, tt.outH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestButtonRects(t *testing.T) {
	play := PlayButtonRect(800, 600)
	if play.X != 300 || play.Y != 440 {
		t.Errorf("play button at (%.0f, %.0f), want (300, 440)", play.X, play.Y)
	}

	restart := RestartButtonRect(800, 600)
	if restart.X != 300 || restart.Y != 320 {
		t.Errorf("restart button at (%.0f, %.0f), want (300, 320)", restart.X, restart.Y)
	}

	if !restart.Contains(400, 350) {
		t.Error("expected restart button to contain its center")
	}
	if restart.Contains(299, 350) {
		t.Error("expected point left of the button to be outside")
	}
}

func TestPosterRect(t *testing.T) {
	r := PosterRect(800, 600)
	if r.X != 290 || r.Y != 150 {
		t.Errorf("poster at (%.0f, %.0f), want (290, 150)", r.X, r.Y)
	}
}
