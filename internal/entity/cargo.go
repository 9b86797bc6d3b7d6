// internal/entity/cargo.go
package entity

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	CargoWidth  = 80
	CargoHeight = 100
	CargoSpeed  = 2.5
	// разброс точек сброса вокруг самолёта
	cargoDropSpread = 40
)

// CargoPlane пересекает экран и один раз сбрасывает 1–3 бонуса.
type CargoPlane struct {
	component.Body
	VX, VY       float64
	Route        flight.Route
	DropProgress float64
	Dropped      bool
	Escaped      bool
	FlightTimer  int

	totalDistance float64
	screenW       float64
	screenH       float64
	rng           *utils.PRNGService
	spawn         SpawnPort
	available     func() []defs.ItemKind
}

// NewCargoPlane: available выдаёт список бонусов, которые сейчас имеет
// смысл сбрасывать.
func NewCargoPlane(r flight.Route, screenW, screenH float64, rng *utils.PRNGService, spawn SpawnPort, available func() []defs.ItemKind) *CargoPlane {
	h := r.Heading()
	return &CargoPlane{
		Body:          component.Body{Position: component.Position{X: r.StartX, Y: r.StartY}, Size: component.Size{W: CargoWidth, H: CargoHeight}},
		VX:            math.Cos(h) * CargoSpeed,
		VY:            math.Sin(h) * CargoSpeed,
		Route:         r,
		DropProgress:  rng.Range(0.3, 0.7),
		totalDistance: r.Distance(),
		screenW:       screenW,
		screenH:       screenH,
		rng:           rng,
		spawn:         spawn,
		available:     available,
	}
}

func (c *CargoPlane) Progress() float64 {
	if c.totalDistance <= 0 {
		return 1
	}
	return math.Hypot(c.X-c.Route.StartX, c.Y-c.Route.StartY) / c.totalDistance
}

func (c *CargoPlane) Update() {
	if c.Escaped {
		return
	}
	c.FlightTimer++
	c.X += c.VX
	c.Y += c.VY

	if !c.Dropped && c.Progress() >= c.DropProgress {
		c.drop()
		c.Dropped = true
	}
	if outside(c.X, c.Y, c.screenW, c.screenH) {
		c.Escaped = true
	}
}

func (c *CargoPlane) drop() {
	if c.spawn == nil || c.available == nil {
		return
	}
	n := 1 + c.rng.Intn(3)
	for i := 0; i < n; i++ {
		kind, ok := utils.Pick(c.rng, c.available())
		if !ok {
			continue
		}
		dx := (c.rng.Float64() - 0.5) * cargoDropSpread
		dy := (c.rng.Float64() - 0.5) * cargoDropSpread
		c.spawn.SpawnItem(c.X+dx, c.Y+dy, kind)
	}
}
