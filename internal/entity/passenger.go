// internal/entity/passenger.go
package entity

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	PassengerWidth  = 60
	PassengerHeight = 80
	PassengerSpeed  = 2
	PassengerHealth = 100
	// ближе этого к цели полёт считается завершённым
	PassengerArrivalRadius = 50
)

// RepairState — состояние ремонта пассажирского самолёта
type RepairState int

const (
	Flying RepairState = iota
	Repairing
	Repaired
)

func (s RepairState) String() string {
	switch s {
	case Repairing:
		return "repairing"
	case Repaired:
		return "repaired"
	}
	return "flying"
}

// RepairPoint is a repair stop triggered at a fraction of the route.
type RepairPoint struct {
	Progress  float64
	Duration  float64 // секунды
	Triggered bool
}

// Passenger — пассажирский самолёт, который нужно довести до края экрана.
type Passenger struct {
	component.Body
	VX, VY    float64
	Health    int
	MaxHealth int
	Route     flight.Route

	State       RepairState
	Repair      RepairPoint
	RepairTimer int
	FlightTimer int
	Escaped     bool

	totalDistance float64
	screenW       float64
	screenH       float64
}

// NewPassenger создаёт самолёт на маршруте. Ремонт назначается на
// 40–60 % пути и длится 15–25 секунд.
func NewPassenger(r flight.Route, screenW, screenH float64, rng *utils.PRNGService) *Passenger {
	h := r.Heading()
	return &Passenger{
		Body:          component.Body{Position: component.Position{X: r.StartX, Y: r.StartY}, Size: component.Size{W: PassengerWidth, H: PassengerHeight}},
		VX:            math.Cos(h) * PassengerSpeed,
		VY:            math.Sin(h) * PassengerSpeed,
		Health:        PassengerHealth,
		MaxHealth:     PassengerHealth,
		Route:         r,
		Repair:        RepairPoint{Progress: rng.Range(0.4, 0.6), Duration: rng.Range(15, 25)},
		totalDistance: r.Distance(),
		screenW:       screenW,
		screenH:       screenH,
	}
}

func (p *Passenger) Destroyed() bool { return p.Health <= 0 }

func (p *Passenger) TakeDamage(d int) {
	p.Health -= d
	if p.Health < 0 {
		p.Health = 0
	}
}

// FlightProgress returns the flown share of the route in [0, 1].
func (p *Passenger) FlightProgress() float64 {
	if p.totalDistance <= 0 {
		return 1
	}
	d := math.Hypot(p.X-p.Route.StartX, p.Y-p.Route.StartY)
	return math.Min(d/p.totalDistance, 1)
}

// EstimatedFlightTime считает полёт плюс ремонт, в секундах.
func (p *Passenger) EstimatedFlightTime() int {
	return int(math.Round(p.totalDistance/PassengerSpeed/config.TPS + p.Repair.Duration))
}

// RepairFraction is shown as the bar above the plane.
func (p *Passenger) RepairFraction() float64 {
	total := p.Repair.Duration * config.TPS
	if total <= 0 {
		return 1
	}
	return math.Min(float64(p.RepairTimer)/total, 1)
}

func (p *Passenger) Update() {
	if p.Escaped || p.Destroyed() {
		return
	}
	p.FlightTimer++

	if p.State == Repairing {
		p.RepairTimer++
		if float64(p.RepairTimer) >= p.Repair.Duration*config.TPS {
			p.State = Repaired
			p.RepairTimer = 0
		}
		return
	}

	p.X += p.VX
	p.Y += p.VY

	if !p.Repair.Triggered && p.FlightProgress() >= p.Repair.Progress {
		p.Repair.Triggered = true
		p.State = Repairing
		p.RepairTimer = 0
		return
	}

	if p.reachedTarget() || p.exitedScreen() {
		p.Escaped = true
	}
}

func (p *Passenger) reachedTarget() bool {
	return math.Hypot(p.Route.TargetX-p.X, p.Route.TargetY-p.Y) < PassengerArrivalRadius
}

func (p *Passenger) exitedScreen() bool {
	return outside(p.X, p.Y, p.screenW, p.screenH)
}

// за пределами экрана с запасом OffscreenMargin
func outside(x, y, w, h float64) bool {
	m := float64(config.OffscreenMargin)
	return x < -m || x > w+m || y < -m || y > h+m
}
