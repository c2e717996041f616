package term

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/flappy/pkg/components"
)

var (
	styleDefault   = tcell.StyleDefault
	styleTitle     = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFFD700)).Bold(true)
	styleText      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleObstacle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xFFD700))
	styleJumpscare = tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite).Bold(true)
	styleButton    = tcell.StyleDefault.Background(tcell.NewHexColor(0x7B2FF7)).Foreground(tcell.ColorWhite).Bold(true)
)

const (
	blockObstacle = '█'
	blockPlayer   = '▓'
)

// cellMapper 把画布坐标映射到终端单元格
type cellMapper struct {
	cols, rows     int
	canvas         components.Canvas
	scaleX, scaleY float64
}

func newCellMapper(cols, rows int, canvas components.Canvas) cellMapper {
	return cellMapper{
		cols:   cols,
		rows:   rows,
		canvas: canvas,
		scaleX: float64(cols) / canvas.Width,
		scaleY: float64(rows) / canvas.Height,
	}
}

// span 返回 [from, to) 覆盖的单元格区间，已裁剪到屏幕内
func span(from, to, scale float64, limit int) (int, int) {
	start := int(math.Floor(from * scale))
	end := int(math.Ceil(to * scale))
	return max(0, start), min(limit, end)
}

// fill 用 r 填充画布矩形覆盖的单元格
func (m cellMapper) fill(screen tcell.Screen, x, y, w, h float64, r rune, style tcell.Style) {
	x0, x1 := span(x, x+w, m.scaleX, m.cols)
	y0, y1 := span(y, y+h, m.scaleY, m.rows)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			screen.SetContent(cx, cy, r, nil, style)
		}
	}
}

// drawCentered 在第 row 行居中绘制文字
func drawCentered(screen tcell.Screen, cols, row int, str string, style tcell.Style) {
	runes := []rune(str)
	x := max(0, (cols-len(runes))/2)
	for i, r := range runes {
		if x+i >= cols {
			break
		}
		screen.SetContent(x+i, row, r, nil, style)
	}
}

// Draw 绘制当前阶段的画面
func (g *Game) Draw() {
	g.screen.Clear()
	cols, rows := g.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	switch g.session.Phase() {
	case components.PhaseStart:
		g.drawStart(cols, rows)
	case components.PhasePlaying:
		g.drawPlaying(cols, rows)
	case components.PhaseGameOver:
		if g.session.JumpscareActive() {
			g.drawJumpscare(cols, rows)
		} else {
			g.drawGameOver(cols, rows)
		}
	}

	g.screen.Show()
}

func (g *Game) drawStart(cols, rows int) {
	mid := rows / 2
	text := g.session.Config().Text
	drawCentered(g.screen, cols, max(0, mid-4), text.Title, styleTitle)
	drawCentered(g.screen, cols, mid, "  PLAY  ", styleButton)
	drawCentered(g.screen, cols, mid+2, "Press SPACE or Click to Play", styleText)
	drawCentered(g.screen, cols, rows-1, text.Credits, styleTitle)
}

func (g *Game) drawPlaying(cols, rows int) {
	world := g.session.World()
	m := newCellMapper(cols, rows, world.Canvas)
	physics := g.session.Config().Physics

	for _, obs := range world.Obstacles {
		m.fill(g.screen, obs.X, 0, physics.ObstacleWidth, obs.TopHeight, blockObstacle, styleObstacle)
		m.fill(g.screen, obs.X, obs.BottomY(), physics.ObstacleWidth, obs.BottomHeight, blockObstacle, styleObstacle)
	}

	px := components.PlayerX(world.Canvas.Width, physics.PlayerSize)
	m.fill(g.screen, px, world.Player.Y, physics.PlayerSize, physics.PlayerSize, blockPlayer, stylePlayer)

	drawCentered(g.screen, cols, 0, fmt.Sprintf("Score: %d", world.Score), styleText)
}

func (g *Game) drawJumpscare(cols, rows int) {
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.screen.SetContent(x, y, ' ', nil, styleJumpscare)
		}
	}
	drawCentered(g.screen, cols, rows/2, "GAME OVER!", styleJumpscare)
}

func (g *Game) drawGameOver(cols, rows int) {
	mid := rows / 2
	drawCentered(g.screen, cols, max(0, mid-3), "Game Over!", styleText)
	drawCentered(g.screen, cols, max(0, mid-1), fmt.Sprintf("Final Score: %d", g.session.Score()), styleText)
	best := fmt.Sprintf("Best: %d", g.session.BestScore())
	if g.session.NewRecord() {
		best += "  New Record!"
	}
	drawCentered(g.screen, cols, mid, best, styleDefault)
	drawCentered(g.screen, cols, mid+2, " Restart ", styleButton)
}
