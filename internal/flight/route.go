package flight

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// Route is a straight pass across the screen.
type Route struct {
	StartX, StartY   float64
	TargetX, TargetY float64
}

func (r Route) Distance() float64 {
	return math.Hypot(r.TargetX-r.StartX, r.TargetY-r.StartY)
}

func (r Route) Heading() float64 {
	return math.Atan2(r.TargetY-r.StartY, r.TargetX-r.StartX)
}

// crossingRoutes — пять маршрутов: слева направо, справа налево, сверху
// вниз и две диагонали. Горизонтальные маршруты идут на высоте
// [bandLo, bandLo+bandSpan] от высоты экрана, вертикальный — в полосе
// [colLo, colLo+colSpan] от ширины.
func crossingRoutes(w, h, bandLo, bandSpan, colLo, colSpan float64, rng *utils.PRNGService) []Route {
	band := func() float64 { return h*bandLo + rng.Float64()*h*bandSpan }
	col := func() float64 { return w*colLo + rng.Float64()*w*colSpan }
	return []Route{
		{StartX: -100, StartY: band(), TargetX: w + 100, TargetY: band()},
		{StartX: w + 100, StartY: band(), TargetX: -100, TargetY: band()},
		{StartX: col(), StartY: -100, TargetX: col(), TargetY: h + 100},
		{StartX: -100, StartY: h * 0.2, TargetX: w + 100, TargetY: h * 0.8},
		{StartX: w + 100, StartY: h * 0.2, TargetX: -100, TargetY: h * 0.8},
	}
}

func PassengerRoute(w, h float64, rng *utils.PRNGService) Route {
	r, _ := utils.Pick(rng, crossingRoutes(w, h, 0.4, 0.4, 0.3, 0.4, rng))
	return r
}

func CargoRoute(w, h float64, rng *utils.PRNGService) Route {
	r, _ := utils.Pick(rng, crossingRoutes(w, h, 0.3, 0.4, 0.2, 0.6, rng))
	return r
}

// Маршруты бомбардировщика держатся верхней части экрана.
func BomberRoute(w, h float64, rng *utils.PRNGService) Route {
	routes := []Route{
		{StartX: -100, StartY: rng.Range(50, 150), TargetX: w + 100, TargetY: rng.Range(50, 150)},
		{StartX: w + 100, StartY: rng.Range(50, 150), TargetX: -100, TargetY: rng.Range(50, 150)},
		{StartX: rng.Range(w*0.2, w*0.8), StartY: -100, TargetX: rng.Range(w*0.2, w*0.8), TargetY: h * 0.3},
		{StartX: -100, StartY: 30, TargetX: w + 100, TargetY: h * 0.4},
		{StartX: w + 100, StartY: 30, TargetX: -100, TargetY: h * 0.4},
	}
	r, _ := utils.Pick(rng, routes)
	return r
}
