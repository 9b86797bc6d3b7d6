// internal/entity/wingman.go
package entity

import (
	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	WingmanWidth    = 20
	WingmanHeight   = 25
	WingmanFireRate = 25
	WingmanDamage   = 5
	// уровни 1..6 добавляют ведомых и их стволы
	MaxWingmenLevel = 6

	wingmanOffsetX = 60
	wingmanOffsetY = 40
	wingmanFollow  = 0.1
)

// Wingman — ведомый, держится сбоку от игрока.
type Wingman struct {
	component.Body
	Slot       int // 0 слева, 1 справа
	Barrels    int // 1..3
	ShootTimer int

	bulletSpeed float64
}

func NewWingman(slot, barrels int, bulletSpeed float64) *Wingman {
	return &Wingman{
		Body:        component.Body{Size: component.Size{W: WingmanWidth, H: WingmanHeight}},
		Slot:        slot,
		Barrels:     barrels,
		bulletSpeed: bulletSpeed,
	}
}

// Offset is where the wingman wants to be relative to the player.
func (w *Wingman) Offset() (float64, float64) {
	if w.Slot == 0 {
		return -wingmanOffsetX, wingmanOffsetY
	}
	return wingmanOffsetX, wingmanOffsetY
}

// Update плавно подтягивает ведомого к его месту у игрока.
func (w *Wingman) Update(p *Player) {
	if p != nil {
		ox, oy := w.Offset()
		w.X = utils.Lerp(w.X, p.X+ox, wingmanFollow)
		w.Y = utils.Lerp(w.Y, p.Y+oy, wingmanFollow)
	}
	w.ShootTimer++
}

func (w *Wingman) CanShoot() bool { return w.ShootTimer%WingmanFireRate == 0 }

func (w *Wingman) Shoot() []*PlayerBullet {
	var offsets []float64
	switch w.Barrels {
	case 2:
		offsets = []float64{-6, 6}
	case 3:
		offsets = []float64{-8, 0, 8}
	default:
		offsets = []float64{0}
	}
	out := make([]*PlayerBullet, 0, len(offsets))
	for _, dx := range offsets {
		out = append(out, NewPlayerBullet(w.X+dx, w.Y, w.bulletSpeed, WingmanDamage, 1, true))
	}
	return out
}

// WingmenForLevel builds the flight for a level. Odd levels upgrade the
// left wingman, even levels the right one.
func WingmenForLevel(level int) (left, right int) {
	if level <= 0 {
		return 0, 0
	}
	if level > MaxWingmenLevel {
		level = MaxWingmenLevel
	}
	left = (level + 1) / 2
	right = level / 2
	return left, right
}
