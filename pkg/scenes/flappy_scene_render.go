package scenes

import (
	"image/color"

	"github.com/decker502/flappy/pkg/components"
	"github.com/decker502/flappy/pkg/config"
	"github.com/decker502/flappy/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawLoading 资源加载完成前的画面
func (s *FlappyScene) drawLoading(screen *ebiten.Image) {
	canvas := s.session.Canvas()
	screen.Fill(colorBackdrop)
	s.drawText(screen, loadingText, canvas.Width/2, canvas.Height/2, s.fonts.instructions, colorWhite, nil, 0)
}

// drawStartScreen 开始界面
//
// 绘制顺序：
//  1. 30% 不透明度的背景（缺失时只有底色）
//  2. 70% 深色遮罩
//  3. 标题
//  4. 带阴影的海报
//  5. 渐变开始按钮和提示文字
//  6. 底部署名
func (s *FlappyScene) drawStartScreen(screen *ebiten.Image) {
	canvas := s.session.Canvas()
	cfg := s.session.Config()
	w, h := canvas.Width, canvas.Height

	screen.Fill(colorBackdrop)
	utils.DrawImageRect(screen, s.assets.Background(), 0, 0, w, h, 0.3)
	utils.FillRect(screen, 0, 0, float32(w), float32(h), colorStartOverlay)

	s.drawText(screen, cfg.Text.Title, w/2, config.TitleY, s.fonts.title, colorGold, colorOutline, 4)

	if poster := s.assets.Poster(); poster != nil {
		r := config.PosterRect(w, h)
		drawShadow(screen, r)
		utils.DrawImageRect(screen, poster, r.X, r.Y, r.Width, r.Height, 1)
	}

	button := config.PlayButtonRect(w, h)
	s.drawPlayButton(screen, button)

	// 窄屏时提示文字换行
	alpha := instructionsAlpha(s.now.Sub(s.startedAt))
	lines := utils.WrapText(instructions(utils.IsMobile()), s.fonts.instructions, w-instructionsMargin*2)
	for i, line := range lines {
		s.drawText(screen, line, w/2, button.Y+instructionsY+float64(i)*instructionsLineHeight,
			s.fonts.instructions, withAlpha(colorWhite, alpha), withAlpha(colorOutline, alpha), 2)
	}

	s.drawText(screen, cfg.Text.Credits, w/2, h-config.CreditsBottomOffset, s.fonts.credits, colorGold, colorOutline, 2)
}

// drawShadow 在矩形右下方绘制柔和阴影
// 由内到外多层半透明圆角矩形叠加模拟模糊
func drawShadow(screen *ebiten.Image, r config.Rect) {
	x := float32(r.X + shadowOffset)
	y := float32(r.Y + shadowOffset)
	w, h := float32(r.Width), float32(r.Height)

	for i := shadowLayers; i >= 1; i-- {
		spread := float32(shadowBlur) * float32(i) / shadowLayers / 2
		layer := withAlpha(colorShadow, 1/float64(shadowLayers+1))
		path := utils.RoundedRectPath(x-spread, y-spread, w+spread*2, h+spread*2, spread)
		utils.FillPath(screen, path, layer)
	}
	utils.FillRect(screen, x, y, w, h, colorShadow)
}

// drawPlayButton 绘制带外发光和白色边框的渐变按钮
func (s *FlappyScene) drawPlayButton(screen *ebiten.Image, r config.Rect) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)

	for i := 3; i >= 1; i-- {
		spread := float32(glowWidth) * float32(i) / 3
		glow := withAlpha(colorGlow, 0.15)
		utils.StrokePath(screen, utils.RoundedRectPath(x-spread/2, y-spread/2, w+spread, h+spread, config.ButtonRadius+spread/2), spread, glow)
	}

	body := utils.RoundedRectPolygon(x, y, w, h, config.ButtonRadius, cornerSteps)
	utils.FillGradient(screen, body, x, y, x+w, y+h, playButtonStops...)

	utils.StrokePath(screen, utils.RoundedRectPath(x, y, w, h, config.ButtonRadius), 3, colorWhite)
	s.drawText(screen, "PLAY", r.X+r.Width/2, r.Y+r.Height/2, s.fonts.button, colorWhite, colorOutline, 2)
}

// drawBackground 游戏背景，缺失时使用竖直渐变
func (s *FlappyScene) drawBackground(screen *ebiten.Image, canvas components.Canvas) {
	if bg := s.assets.Background(); bg != nil {
		utils.DrawImageRect(screen, bg, 0, 0, canvas.Width, canvas.Height, 1)
		return
	}

	w, h := float32(canvas.Width), float32(canvas.Height)
	utils.FillGradient(screen, utils.RectPolygon(0, 0, w, h), 0, 0, 0, h,
		utils.GradientStop{Offset: 0, Color: colorFallbackTop},
		utils.GradientStop{Offset: 1, Color: colorFallbackBottom},
	)
}

// drawPlaying 游戏画面：背景、障碍物、玩家、分数
func (s *FlappyScene) drawPlaying(screen *ebiten.Image) {
	canvas := s.session.Canvas()
	physics := s.session.Config().Physics
	world := s.session.World()

	s.drawBackground(screen, canvas)

	for _, obs := range world.Obstacles {
		img := s.assets.Obstacle(obs.Variant)
		if img == nil {
			continue
		}
		top, bottom := obstacleRects(obs, physics.ObstacleWidth)
		utils.DrawImageRect(screen, img, top.X, top.Y, top.Width, top.Height, 1)
		utils.DrawImageRect(screen, img, bottom.X, bottom.Y, bottom.Width, bottom.Height, 1)
	}

	p := playerRect(canvas, world.Player.Y, physics.PlayerSize)
	if img := s.assets.Player(); img != nil {
		utils.DrawImageRect(screen, img, p.X, p.Y, p.Width, p.Height, 1)
	} else {
		path := utils.RoundedRectPath(float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), float32(p.Width/2))
		utils.FillPath(screen, path, colorPlayerFallback)
	}

	s.drawText(screen, scoreText(world.Score), canvas.Width/2, config.ScoreY, s.fonts.score, colorWhite, colorOutline, 3)
}

// drawJumpscare 碰撞后的惊吓画面
// 没有海报时显示红底的 GAME OVER!
func (s *FlappyScene) drawJumpscare(screen *ebiten.Image) {
	canvas := s.session.Canvas()
	w, h := canvas.Width, canvas.Height

	poster := s.assets.Poster()
	if poster == nil {
		screen.Fill(colorJumpscareRed)
		s.drawText(screen, "GAME OVER!", w/2, h/2, s.fonts.title, colorWhite, colorOutline, 3)
		return
	}

	screen.Fill(colorWhite)
	utils.DrawImageRect(screen, poster, 0, 0, w, h, 1)
	utils.StrokeRect(screen, 0, 0, float32(w), float32(h), config.JumpscareBorderWidth, colorJumpscareRed)
}

// drawGameOver 结束界面
func (s *FlappyScene) drawGameOver(screen *ebiten.Image) {
	canvas := s.session.Canvas()
	w, h := canvas.Width, canvas.Height

	screen.Fill(colorBackdrop)
	utils.DrawImageRect(screen, s.assets.Background(), 0, 0, w, h, 1)
	utils.FillRect(screen, 0, 0, float32(w), float32(h), colorGameOverShade)

	s.drawText(screen, "Game Over!", w/2, h/2-100, s.fonts.title, colorWhite, colorOutline, 3)
	s.drawText(screen, finalScoreText(s.session.Score()), w/2, h/2-30, s.fonts.score, colorWhite, colorOutline, 2)

	bestColor := colorWhite
	if s.session.NewRecord() {
		bestColor = colorGold
	}
	s.drawText(screen, bestScoreText(s.session.BestScore(), s.session.NewRecord()), w/2, h/2+2,
		s.fonts.instructions, bestColor, colorOutline, 1)

	r := config.RestartButtonRect(w, h)
	path := utils.RoundedRectPath(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), config.ButtonRadius)
	utils.FillPath(screen, path, colorRestartFill)
	utils.StrokePath(screen, path, 3, colorRestartBorder)
	s.drawText(screen, "Restart", r.X+r.Width/2, r.Y+r.Height/2, s.fonts.button, colorWhite, colorOutline, 2)
}

// drawText 以 (x, y) 为中心绘制描边文字
func (s *FlappyScene) drawText(screen *ebiten.Image, str string, x, y float64, face *text.GoTextFace, fill, outline color.Color, outlineWidth float64) {
	utils.DrawOutlinedText(screen, str, x, y, utils.TextStyle{
		Face:         face,
		Fill:         fill,
		Outline:      outline,
		OutlineWidth: outlineWidth,
		Align:        text.AlignCenter,
	})
}
