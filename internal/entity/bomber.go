// internal/entity/bomber.go
package entity

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	BomberWidth  = 80
	BomberHeight = 60
	BomberSpeed  = 1.5
	// столько бомб может одновременно ждать взрыва
	MaxPendingBombs = 15
	// радиус взрыва бомбы масштаба 1
	BombBaseRadius = 80
)

// Bomb — бомба, ждущая взрыва.
type Bomb struct {
	X, Y  float64
	Timer int
	Scale float64
}

// Detonation is a blast the world still has to apply.
type Detonation struct {
	X, Y   float64
	Radius float64
}

// Bomber — бомбардировщик, вызванный бомбой игрока. Пока пересекает
// экран, непрерывно засыпает его бомбами.
type Bomber struct {
	component.Body
	VX, VY  float64
	Route   flight.Route
	Pending []Bomb
	Escaped bool

	sinceBomb    int
	bombInterval float64
	screenW      float64
	screenH      float64
	rng          *utils.PRNGService
}

func NewBomber(screenW, screenH float64, rng *utils.PRNGService) *Bomber {
	r := flight.BomberRoute(screenW, screenH, rng)
	h := r.Heading()
	b := &Bomber{
		Body:         component.Body{Position: component.Position{X: r.StartX, Y: r.StartY}, Size: component.Size{W: BomberWidth, H: BomberHeight}},
		VX:           math.Cos(h) * BomberSpeed,
		VY:           math.Sin(h) * BomberSpeed,
		Route:        r,
		bombInterval: rng.Range(3, 8),
		screenW:      screenW,
		screenH:      screenH,
		rng:          rng,
	}
	for i := 0; i < MaxPendingBombs; i++ {
		b.Pending = append(b.Pending, b.newBomb(5, 20))
	}
	return b
}

// newBomb кладёт бомбу в случайную точку на 10–90 % высоты экрана.
func (b *Bomber) newBomb(minTimer, spread int) Bomb {
	return Bomb{
		X:     b.rng.Float64() * b.screenW,
		Y:     b.screenH*0.1 + b.rng.Float64()*b.screenH*0.8,
		Timer: minTimer + b.rng.Intn(spread),
		Scale: b.rng.Range(0.8, 1.5),
	}
}

// Update двигает бомбардировщик и возвращает бомбы, взорвавшиеся в этом кадре.
func (b *Bomber) Update() []Detonation {
	if b.Escaped {
		return nil
	}
	b.X += b.VX
	b.Y += b.VY

	b.sinceBomb++
	if float64(b.sinceBomb) >= b.bombInterval {
		n := 3 + b.rng.Intn(4)
		for i := 0; i < n && len(b.Pending) < MaxPendingBombs; i++ {
			b.Pending = append(b.Pending, b.newBomb(2, 8))
		}
		b.sinceBomb = 0
		b.bombInterval = b.rng.Range(3, 8)
	}

	var out []Detonation
	for i := len(b.Pending) - 1; i >= 0; i-- {
		b.Pending[i].Timer--
		if b.Pending[i].Timer <= 0 {
			bomb := b.Pending[i]
			out = append(out, Detonation{X: bomb.X, Y: bomb.Y, Radius: BombBaseRadius * bomb.Scale})
			b.Pending = append(b.Pending[:i], b.Pending[i+1:]...)
		}
	}

	if outside(b.X, b.Y, b.screenW, b.screenH) {
		b.Escaped = true
	}
	return out
}
