package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage 渐变三角形使用的纯白纹理，取中心像素避免边缘采样
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// SegmentKind 路径段类型
type SegmentKind int

const (
	SegmentMove SegmentKind = iota
	SegmentLine
	SegmentQuad
)

// PathSegment 路径中的一段
// SegmentQuad 使用 (CX, CY) 作为控制点，(X, Y) 作为终点
type PathSegment struct {
	Kind   SegmentKind
	X, Y   float32
	CX, CY float32
}

// RoundedRectSegments 返回圆角矩形的路径段
//
// 路径由直线和二次曲线组成，从上边左侧开始顺时针绘制。
// 半径会被限制在 [0, min(w, h)/2]。
func RoundedRectSegments(x, y, w, h, r float32) []PathSegment {
	r = max(0, min(r, w/2, h/2))

	return []PathSegment{
		{Kind: SegmentMove, X: x + r, Y: y},
		{Kind: SegmentLine, X: x + w - r, Y: y},
		{Kind: SegmentQuad, CX: x + w, CY: y, X: x + w, Y: y + r},
		{Kind: SegmentLine, X: x + w, Y: y + h - r},
		{Kind: SegmentQuad, CX: x + w, CY: y + h, X: x + w - r, Y: y + h},
		{Kind: SegmentLine, X: x + r, Y: y + h},
		{Kind: SegmentQuad, CX: x, CY: y + h, X: x, Y: y + h - r},
		{Kind: SegmentLine, X: x, Y: y + r},
		{Kind: SegmentQuad, CX: x, CY: y, X: x + r, Y: y},
	}
}

// BuildPath 把路径段转换为封闭的 vector.Path
func BuildPath(segments []PathSegment) *vector.Path {
	path := &vector.Path{}
	for _, seg := range segments {
		switch seg.Kind {
		case SegmentMove:
			path.MoveTo(seg.X, seg.Y)
		case SegmentLine:
			path.LineTo(seg.X, seg.Y)
		case SegmentQuad:
			path.QuadTo(seg.CX, seg.CY, seg.X, seg.Y)
		}
	}
	path.Close()
	return path
}

// RoundedRectPath 构建圆角矩形路径
func RoundedRectPath(x, y, w, h, r float32) *vector.Path {
	return BuildPath(RoundedRectSegments(x, y, w, h, r))
}

// pathOptions 返回以 clr 填充路径的绘制选项
// ColorScale 按预乘 Alpha 保存颜色
func pathOptions(clr color.Color) *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	return op
}

// FillPath 以纯色填充路径
func FillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vector.FillPath(dst, path, nil, pathOptions(clr))
}

// StrokePath 描边路径，转角为圆角
func StrokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	vector.StrokePath(dst, path, &vector.StrokeOptions{
		Width:    width,
		LineJoin: vector.LineJoinRound,
	}, pathOptions(clr))
}

// FillRect 填充矩形
func FillRect(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	vector.FillRect(dst, x, y, w, h, clr, false)
}

// StrokeRect 绘制矩形边框，边框向内绘制
func StrokeRect(dst *ebiten.Image, x, y, w, h, width float32, clr color.Color) {
	FillRect(dst, x, y, w, width, clr)
	FillRect(dst, x, y+h-width, w, width, clr)
	FillRect(dst, x, y, width, h, clr)
	FillRect(dst, x+w-width, y, width, h, clr)
}

// Point 多边形顶点
type Point struct {
	X, Y float32
}

// RectPolygon 返回矩形的四个顶点
func RectPolygon(x, y, w, h float32) []Point {
	return []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// RoundedRectPolygon 把圆角矩形展开为凸多边形
// 每个圆角的二次曲线取 steps 个点
func RoundedRectPolygon(x, y, w, h, r float32, steps int) []Point {
	steps = max(steps, 1)

	var points []Point
	var last Point
	for _, seg := range RoundedRectSegments(x, y, w, h, r) {
		switch seg.Kind {
		case SegmentMove, SegmentLine:
			points = append(points, Point{seg.X, seg.Y})
		case SegmentQuad:
			for i := 1; i <= steps; i++ {
				t := float32(i) / float32(steps)
				u := 1 - t
				points = append(points, Point{
					X: u*u*last.X + 2*u*t*seg.CX + t*t*seg.X,
					Y: u*u*last.Y + 2*u*t*seg.CY + t*t*seg.Y,
				})
			}
		}
		last = points[len(points)-1]
	}

	// 路径回到起点，去掉重复的终点
	if len(points) > 1 && points[0] == points[len(points)-1] {
		points = points[:len(points)-1]
	}
	return points
}

// GradientStop 渐变色标
type GradientStop struct {
	Offset float64 // 0 ~ 1
	Color  color.NRGBA
}

// GradientVertices 返回以线性渐变填充凸多边形的三角形
//
// 渐变方向从 (x0, y0) 到 (x1, y1)。多边形按色标切成若干条带，
// 每条带内颜色随位置线性变化，由顶点颜色插值得到；
// 投影超出两端的部分使用端点颜色。
// stops 必须按 Offset 升序排列，为空时不生成三角形。
func GradientVertices(poly []Point, x0, y0, x1, y1 float32, stops ...GradientStop) ([]ebiten.Vertex, []uint16) {
	if len(poly) < 3 || len(stops) == 0 {
		return nil, nil
	}

	dx, dy := float64(x1-x0), float64(y1-y0)
	lenSq := dx*dx + dy*dy
	at := func(p Point) float64 {
		return (float64(p.X-x0)*dx + float64(p.Y-y0)*dy) / lenSq
	}

	var vs []ebiten.Vertex
	var is []uint16
	appendBand := func(band []Point, colorAt func(Point) color.NRGBA) {
		if len(band) < 3 {
			return
		}
		base := uint16(len(vs))
		for _, p := range band {
			c := colorAt(p)
			vs = append(vs, ebiten.Vertex{
				DstX:   p.X,
				DstY:   p.Y,
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(c.R) / 0xff,
				ColorG: float32(c.G) / 0xff,
				ColorB: float32(c.B) / 0xff,
				ColorA: float32(c.A) / 0xff,
			})
		}
		for k := 1; k+1 < len(band); k++ {
			is = append(is, base, base+uint16(k), base+uint16(k+1))
		}
	}

	if lenSq == 0 {
		appendBand(poly, func(Point) color.NRGBA { return stops[0].Color })
		return vs, is
	}

	colorAt := func(p Point) color.NRGBA { return gradientAt(stops, at(p)) }

	bounds := make([]float64, 0, len(stops)+2)
	bounds = append(bounds, math.Inf(-1))
	for _, st := range stops {
		bounds = append(bounds, st.Offset)
	}
	bounds = append(bounds, math.Inf(1))

	for i := 1; i < len(bounds); i++ {
		lo, hi := bounds[i-1], bounds[i]
		if hi <= lo {
			continue
		}
		band := poly
		if !math.IsInf(lo, -1) {
			band = clipPolygon(band, func(p Point) float64 { return at(p) - lo })
		}
		if !math.IsInf(hi, 1) {
			band = clipPolygon(band, func(p Point) float64 { return hi - at(p) })
		}
		appendBand(band, colorAt)
	}
	return vs, is
}

// FillGradient 以线性渐变填充凸多边形，参数同 GradientVertices
func FillGradient(dst *ebiten.Image, poly []Point, x0, y0, x1, y1 float32, stops ...GradientStop) {
	vs, is := GradientVertices(poly, x0, y0, x1, y1, stops...)
	if len(is) == 0 {
		return
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// clipPolygon 保留多边形中 f(p) >= 0 的部分
// f 必须是位置的仿射函数，凸多边形裁剪后仍是凸多边形
func clipPolygon(poly []Point, f func(Point) float64) []Point {
	var out []Point
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		fp, fc := f(prev), f(cur)
		switch {
		case fc >= 0 && fp < 0:
			out = append(out, crossing(prev, cur, fp, fc), cur)
		case fc >= 0:
			out = append(out, cur)
		case fp >= 0:
			out = append(out, crossing(prev, cur, fp, fc))
		}
	}
	return out
}

// crossing 返回线段 ab 上 f 为 0 的点
func crossing(a, b Point, fa, fb float64) Point {
	k := float32(fa / (fa - fb))
	return Point{X: a.X + (b.X-a.X)*k, Y: a.Y + (b.Y-a.Y)*k}
}

// gradientAt 返回渐变在 t 处的颜色
func gradientAt(stops []GradientStop, t float64) color.NRGBA {
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(stops); i++ {
		if t > stops[i].Offset {
			continue
		}
		a, b := stops[i-1], stops[i]
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return color.NRGBA{
			R: lerpUint8(a.Color.R, b.Color.R, f),
			G: lerpUint8(a.Color.G, b.Color.G, f),
			B: lerpUint8(a.Color.B, b.Color.B, f),
			A: lerpUint8(a.Color.A, b.Color.A, f),
		}
	}
	return last.Color
}

func lerpUint8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(Lerp(float64(a), float64(b), t)))
}
