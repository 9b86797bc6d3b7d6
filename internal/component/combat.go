package component

import "math"

// Size — габариты сущности
type Size struct {
	W, H float64
}

// Body — позиция центра плюс габариты. Все проверки столкновений
// работают с прямоугольником, выровненным по центру.
type Body struct {
	Position
	Size
}

func (b Body) Left() float64   { return b.X - b.W/2 }
func (b Body) Right() float64  { return b.X + b.W/2 }
func (b Body) Top() float64    { return b.Y - b.H/2 }
func (b Body) Bottom() float64 { return b.Y + b.H/2 }

// ContainsPoint is inclusive on every edge.
func (b Body) ContainsPoint(x, y float64) bool {
	return x >= b.Left() && x <= b.Right() && y >= b.Top() && y <= b.Bottom()
}

// Overlaps counts touching edges as overlap.
func (b Body) Overlaps(o Body) bool {
	return b.Left() <= o.Right() && b.Right() >= o.Left() &&
		b.Top() <= o.Bottom() && b.Bottom() >= o.Top()
}

// DistanceTo measures from the body centre.
func (b Body) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-b.X, y-b.Y)
}

// InBounds checks the centre against the screen padded by margin.
func (b Body) InBounds(width, height, margin float64) bool {
	return b.X >= -margin && b.X <= width+margin && b.Y >= -margin && b.Y <= height+margin
}
