package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/utils"
)

// 界面颜色
var (
	colorBackdrop       = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	colorStartOverlay   = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xb3} // 70%
	colorGameOverShade  = color.NRGBA{A: 0xcc}                            // 80%
	colorGold           = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
	colorWhite          = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorOutline        = color.NRGBA{A: 0xff}
	colorShadow         = color.NRGBA{A: 0xcc}
	colorGlow           = color.NRGBA{R: 0x00, G: 0xf5, B: 0xff, A: 0xff}
	colorJumpscareRed   = color.NRGBA{R: 0xff, A: 0xff}
	colorRestartFill    = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	colorRestartBorder  = color.NRGBA{R: 0xff, G: 0x98, B: 0x00, A: 0xff}
	colorFallbackTop    = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	colorFallbackBottom = color.NRGBA{R: 0x0f, G: 0x0f, B: 0x1e, A: 0xff}
	colorPlayerFallback = color.NRGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}
)

// playButtonStops 开始按钮的对角渐变
var playButtonStops = []utils.GradientStop{
	{Offset: 0, Color: color.NRGBA{R: 0x00, G: 0xf5, B: 0xff, A: 0xff}},
	{Offset: 0.5, Color: color.NRGBA{R: 0x7b, G: 0x2f, B: 0xf7, A: 0xff}},
	{Offset: 1, Color: color.NRGBA{R: 0xff, G: 0x00, B: 0x6e, A: 0xff}},
}

const (
	// instructionsPulsePeriod 提示文字一次明暗往返的时长
	instructionsPulsePeriod = 2 * time.Second

	// instructionsY 提示文字相对开始按钮顶部的偏移
	instructionsY = 90.0

	// cornerSteps 开始按钮每个圆角展开的顶点数
	cornerSteps = 6

	// shadowOffset 海报阴影偏移
	shadowOffset = 10.0

	// shadowBlur 海报阴影模糊半径
	shadowBlur = 20.0

	// shadowLayers 模拟模糊使用的层数
	shadowLayers = 5

	// glowWidth 开始按钮外发光宽度
	glowWidth = 12.0

	// instructionsMargin 提示文字左右留白
	instructionsMargin = 20.0

	// instructionsLineHeight 提示文字换行后的行距
	instructionsLineHeight = 22.0

	loadingText = "Loading..."
)

// instructions 返回开始界面的操作提示
// 移动端没有键盘
func instructions(mobile bool) string {
	if mobile {
		return "Tap to Play"
	}
	return "Press SPACE or Click to Play"
}

// obstacleRects 返回障碍物上下两段的绘制区域
// 两段使用同一张贴图拉伸绘制
func obstacleRects(obs components.ObstacleComponent, width float64) (top, bottom config.Rect) {
	top = config.Rect{X: obs.X, Y: 0, Width: width, Height: obs.TopHeight}
	bottom = config.Rect{X: obs.X, Y: obs.BottomY(), Width: width, Height: obs.BottomHeight}
	return top, bottom
}

// playerRect 返回玩家的绘制区域
func playerRect(canvas components.Canvas, y, size float64) config.Rect {
	return config.Rect{
		X:      components.PlayerX(canvas.Width, size),
		Y:      y,
		Width:  size,
		Height: size,
	}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func finalScoreText(score int) string {
	return fmt.Sprintf("Final Score: %d", score)
}

// bestScoreText 结束界面的最高分文字
func bestScoreText(best int, newRecord bool) string {
	if newRecord {
		return fmt.Sprintf("New Best: %d!", best)
	}
	return fmt.Sprintf("Best: %d", best)
}

// instructionsAlpha 返回提示文字在 elapsed 时刻的不透明度 [0.5, 1]
func instructionsAlpha(elapsed time.Duration) float64 {
	t := utils.PingPong(float64(elapsed), float64(instructionsPulsePeriod))
	return utils.Lerp(1, 0.5, utils.EaseInOutCubic(t))
}

// withAlpha 按比例缩放颜色的不透明度
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * alpha)
	return c
}
