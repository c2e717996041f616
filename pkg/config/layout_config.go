package config

// 布局配置常量
// 本文件定义了画布尺寸和各界面元素的位置参数

const (
	// GameWindowWidth 画布最大宽度
	GameWindowWidth = 800

	// GameWindowHeight 画布最大高度
	GameWindowHeight = 600
)

// 界面元素布局
const (
	// ButtonWidth 按钮宽度（开始按钮和重新开始按钮共用）
	ButtonWidth = 200.0

	// ButtonHeight 按钮高度
	ButtonHeight = 60.0

	// ButtonRadius 按钮圆角半径
	ButtonRadius = 10.0

	// PlayButtonOffsetY 开始按钮相对画布中心的Y偏移
	PlayButtonOffsetY = 140.0

	// RestartButtonOffsetY 重新开始按钮相对画布中心的Y偏移
	RestartButtonOffsetY = 20.0

	// PosterSize 开始界面海报边长
	PosterSize = 220.0

	// PosterOffsetY 海报中心相对画布中心的Y偏移（向上）
	PosterOffsetY = -40.0

	// TitleY 标题基线Y坐标
	TitleY = 80.0

	// ScoreY 游戏中分数的Y坐标
	ScoreY = 50.0

	// CreditsBottomOffset 署名距离底部的距离
	CreditsBottomOffset = 30.0

	// JumpscareBorderWidth 惊吓画面边框宽度
	JumpscareBorderWidth = 10.0
)

// 字号
const (
	TitleFontSize        = 48.0
	ScoreFontSize        = 32.0
	ButtonFontSize       = 28.0
	InstructionsFontSize = 18.0
	CreditsFontSize      = 20.0
)

// Rect 轴对齐矩形
type Rect struct {
	X, Y, Width, Height float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// PlayButtonRect 返回开始界面的开始按钮区域
func PlayButtonRect(canvasWidth, canvasHeight float64) Rect {
	return Rect{
		X:      canvasWidth/2 - ButtonWidth/2,
		Y:      canvasHeight/2 + PlayButtonOffsetY,
		Width:  ButtonWidth,
		Height: ButtonHeight,
	}
}

// RestartButtonRect 返回结束界面的重新开始按钮区域
func RestartButtonRect(canvasWidth, canvasHeight float64) Rect {
	return Rect{
		X:      canvasWidth/2 - ButtonWidth/2,
		Y:      canvasHeight/2 + RestartButtonOffsetY,
		Width:  ButtonWidth,
		Height: ButtonHeight,
	}
}

// PosterRect 返回开始界面海报区域
func PosterRect(canvasWidth, canvasHeight float64) Rect {
	return Rect{
		X:      canvasWidth/2 - PosterSize/2,
		Y:      canvasHeight/2 - PosterSize/2 + PosterOffsetY,
		Width:  PosterSize,
		Height: PosterSize,
	}
}

// FitCanvas 根据窗口尺寸计算画布尺寸，最大不超过 maxW x maxH
func FitCanvas(outsideWidth, outsideHeight, maxW, maxH int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if w > maxW || w <= 0 {
		w = maxW
	}
	if h > maxH || h <= 0 {
		h = maxH
	}
	return w, h
}
