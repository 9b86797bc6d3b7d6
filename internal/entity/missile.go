// internal/entity/missile.go
package entity

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
)

const (
	maxTrailLength = 8
	trailEvery     = 3
	retargetEvery  = 5
)

// TrackingMissile — самонаводящаяся ракета игрока.
type TrackingMissile struct {
	component.Position
	VX, VY          float64
	Speed           float64
	Damage          int
	ExplosionRadius float64
	Life            int
	Trail           []component.Position

	turnSpeed float64
	lockRange float64
	target    *Enemy
}

func NewTrackingMissile(x, y float64, cfg config.MissileConfig) *TrackingMissile {
	return &TrackingMissile{
		Position:        component.Position{X: x, Y: y},
		VY:              -cfg.Speed,
		Speed:           cfg.Speed,
		Damage:          cfg.Damage,
		ExplosionRadius: cfg.ExplosionRadius,
		Life:            cfg.Life,
		turnSpeed:       cfg.TurnSpeed,
		lockRange:       cfg.LockRange,
	}
}

func (m *TrackingMissile) Target() *Enemy { return m.target }

// Update: перенацеливание каждые 5 кадров или при потере цели,
// плавный доворот вектора скорости, ограничение по модулю.
func (m *TrackingMissile) Update(enemies []*Enemy) {
	m.Life--
	if m.Life <= 0 {
		return
	}

	if m.Life%trailEvery == 0 {
		m.Trail = append(m.Trail, m.Position)
		if len(m.Trail) > maxTrailLength {
			m.Trail = m.Trail[1:]
		}
	}

	if m.target == nil || !m.target.Alive() || m.Life%retargetEvery == 0 {
		m.findTarget(enemies)
	}

	if m.target != nil {
		dx := m.target.X - m.X
		dy := m.target.Y - m.Y
		if distSq := dx*dx + dy*dy; distSq > 1 {
			d := math.Sqrt(distSq)
			m.VX += (dx/d*m.Speed - m.VX) * m.turnSpeed
			m.VY += (dy/d*m.Speed - m.VY) * m.turnSpeed
			if sp := math.Hypot(m.VX, m.VY); sp > m.Speed {
				m.VX *= m.Speed / sp
				m.VY *= m.Speed / sp
			}
		}
	}

	m.X += m.VX
	m.Y += m.VY
}

func (m *TrackingMissile) findTarget(enemies []*Enemy) {
	m.target = nil
	best := math.Inf(1)
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		d := math.Hypot(e.X-m.X, e.Y-m.Y)
		if d < best && d < m.lockRange {
			best = d
			m.target = e
		}
	}
}

// Expired reports a missile out of fuel or off screen.
func (m *TrackingMissile) Expired(screenW, screenH float64) bool {
	return m.Life <= 0 || m.X < -50 || m.X > screenW+50 || m.Y < -50 || m.Y > screenH+50
}
