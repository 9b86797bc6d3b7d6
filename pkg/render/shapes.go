package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Painter рисует залитые многоугольники через DrawTriangles. Буферы
// вершин переиспользуются между вызовами.
type Painter struct {
	white *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16
}

func NewPainter() *Painter {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Painter{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vs:    make([]ebiten.Vertex, 0, 16),
		is:    make([]uint16, 0, 24),
	}
}

// FillPolygon заливает многоугольник по точкам (x0, y0, x1, y1, ...).
func (p *Painter) FillPolygon(dst *ebiten.Image, pts []float32, clr color.RGBA) {
	if len(pts) < 6 {
		return
	}
	var path vector.Path
	path.MoveTo(pts[0], pts[1])
	for i := 2; i+1 < len(pts); i += 2 {
		path.LineTo(pts[i], pts[i+1])
	}
	path.Close()

	p.vs, p.is = path.AppendVerticesAndIndicesForFilling(p.vs[:0], p.is[:0])
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range p.vs {
		p.vs[i].SrcX, p.vs[i].SrcY = 1, 1
		p.vs[i].ColorR, p.vs[i].ColorG, p.vs[i].ColorB, p.vs[i].ColorA = r, g, b, a
	}
	dst.DrawTriangles(p.vs, p.is, p.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Plane рисует силуэт самолёта: фюзеляж и крылья. facingUp ставит нос вверх.
func (p *Painter) Plane(dst *ebiten.Image, x, y, w, h float64, facingUp bool, clr color.RGBA) {
	dir := float32(1)
	if facingUp {
		dir = -1
	}
	cx, cy := float32(x), float32(y)
	hw, hh := float32(w/2), float32(h/2)

	p.FillPolygon(dst, []float32{
		cx, cy + dir*hh,
		cx - hw*0.18, cy - dir*hh*0.6,
		cx, cy - dir*hh,
		cx + hw*0.18, cy - dir*hh*0.6,
	}, clr)
	p.FillPolygon(dst, []float32{
		cx - hw, cy + dir*hh*0.05,
		cx, cy + dir*hh*0.35,
		cx + hw, cy + dir*hh*0.05,
		cx, cy - dir*hh*0.2,
	}, DarkenColor(clr))
}

// Heading рисует самолёт, повёрнутый по скорости (vx, vy).
func (p *Painter) Heading(dst *ebiten.Image, x, y, w, h, vx, vy float64, clr color.RGBA) {
	a := math.Atan2(vy, vx)
	cos, sin := math.Cos(a), math.Sin(a)
	rot := func(dx, dy float64) (float32, float32) {
		return float32(x + dx*cos - dy*sin), float32(y + dx*sin + dy*cos)
	}
	hl, hw := h/2, w/2
	var pts []float32
	for _, d := range [][2]float64{{hl, 0}, {-hl * 0.6, -hw * 0.18}, {-hl, 0}, {-hl * 0.6, hw * 0.18}} {
		px, py := rot(d[0], d[1])
		pts = append(pts, px, py)
	}
	p.FillPolygon(dst, pts, clr)

	pts = pts[:0]
	for _, d := range [][2]float64{{hl * 0.05, -hw}, {hl * 0.35, 0}, {hl * 0.05, hw}, {-hl * 0.2, 0}} {
		px, py := rot(d[0], d[1])
		pts = append(pts, px, py)
	}
	p.FillPolygon(dst, pts, DarkenColor(clr))
}

// Bar fills ratio of the rect over a background and a frame.
func Bar(dst *ebiten.Image, x, y, w, h float32, ratio float64, fill, back color.Color) {
	ratio = math.Max(0, math.Min(1, ratio))
	vector.DrawFilledRect(dst, x, y, w, h, back, false)
	if ratio > 0 {
		vector.DrawFilledRect(dst, x, y, w*float32(ratio), h, fill, false)
	}
	vector.StrokeRect(dst, x, y, w, h, 1, color.White, false)
}
