package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawImageRect draws img stretched to fill the rectangle (x, y, w, h).
//
// alpha scales the image opacity (1 = opaque). Images with an empty
// bounds or a nil image are skipped so callers can pass assets that
// failed to load without checking first.
//
// Usage Example (full-canvas background at 30% opacity):
//
//	utils.DrawImageRect(screen, bg, 0, 0, canvasW, canvasH, 0.3)
func DrawImageRect(dst, img *ebiten.Image, x, y, w, h, alpha float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	sx, sy, ok := StretchScale(img, w, h)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

// StretchScale returns the scale factors that stretch img to w x h.
// ok is false when the image has no pixels.
func StretchScale(img *ebiten.Image, w, h float64) (sx, sy float64, ok bool) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return 0, 0, false
	}
	return w / float64(bounds.Dx()), h / float64(bounds.Dy()), true
}
