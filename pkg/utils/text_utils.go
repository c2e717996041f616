package utils

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// outlineOffsets 描边采样方向（8 邻域）
var outlineOffsets = [8][2]float64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// TextStyle 描边文字样式
type TextStyle struct {
	Face         *text.GoTextFace
	Fill         color.Color
	Outline      color.Color // nil 时不描边
	OutlineWidth float64
	Align        text.Align // 水平对齐，x 为对齐基准点
}

// DrawOutlinedText 先绘制描边再绘制填充文字
// y 为文字垂直中心
func DrawOutlinedText(dst *ebiten.Image, str string, x, y float64, style TextStyle) {
	if str == "" || style.Face == nil {
		return
	}

	if style.Outline != nil && style.OutlineWidth > 0 {
		for _, off := range outlineOffsets {
			drawTextAt(dst, str, x+off[0]*style.OutlineWidth, y+off[1]*style.OutlineWidth, style.Face, style.Align, style.Outline)
		}
	}
	drawTextAt(dst, str, x, y, style.Face, style.Align, style.Fill)
}

func drawTextAt(dst *ebiten.Image, str string, x, y float64, face *text.GoTextFace, align text.Align, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, str, face, op)
}

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格、标点符号处断行
//   - 如果单词太长超过最大宽度，强制断行
//   - 支持中文和英文混合文本
//   - 结果中包含空格断行后的首尾空白会被去掉
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	// 如果文本宽度小于最大宽度，直接返回
	if measureTextWidth(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	// 按字符遍历（支持多字节字符）
	for len(textStr) > 0 {
		// 获取下一个字符
		r, size := utf8.DecodeRuneInString(textStr)
		char := string(r)

		// 测量添加这个字符后的宽度
		testLine := currentLine + char
		testWidth := measureTextWidth(testLine, font)

		// 如果超过最大宽度
		if testWidth > maxWidth {
			// 如果当前行为空（说明单个字符就超宽），强制添加
			if currentLine == "" {
				lines = append(lines, char)
				textStr = textStr[size:]
				continue
			}

			// 否则，当前行结束，开始新行
			lines = append(lines, strings.TrimSpace(currentLine))
			currentLine = char
		} else {
			// 未超宽，继续添加字符
			currentLine = testLine
		}

		textStr = textStr[size:]
	}

	// 添加最后一行
	if currentLine != "" {
		lines = append(lines, strings.TrimSpace(currentLine))
	}

	// 如果没有换行，至少返回原文本
	if len(lines) == 0 {
		lines = []string{textStr}
	}

	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, font, 0)
	return width
}
