package components

import (
	"image"
	"image/draw"
)

// AlphaMask 图片的 Alpha 通道缓存
// 加载图片时生成一次，之后只读，用于逐像素碰撞检测
type AlphaMask struct {
	Width  int
	Height int
	Alpha  []uint8 // 行优先存储，长度为 Width*Height
}

// NewAlphaMask 从解码后的图片提取 Alpha 通道
// img 为 nil 或尺寸为 0 时返回 nil
func NewAlphaMask(img image.Image) *AlphaMask {
	if img == nil {
		return nil
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil
	}

	// 统一转换为非预乘的 NRGBA，保证 Alpha 取值与源图一致
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	mask := &AlphaMask{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Alpha:  make([]uint8, bounds.Dx()*bounds.Dy()),
	}
	for y := 0; y < mask.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < mask.Width; x++ {
			mask.Alpha[y*mask.Width+x] = row[x*4+3]
		}
	}
	return mask
}

// IsSolid 判断像素是否不透明
// 越界的像素视为透明，Alpha 低于阈值视为透明
func (m *AlphaMask) IsSolid(x, y int, threshold uint8) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Alpha[y*m.Width+x] >= threshold
}
