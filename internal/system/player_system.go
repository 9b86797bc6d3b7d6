// internal/system/player_system.go
package system

import (
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
)

// PlayerSystem ведёт самолёт игрока и ведомых: таймеры и автоогонь.
type PlayerSystem struct {
	world *entity.World
}

func NewPlayerSystem(world *entity.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

func (s *PlayerSystem) Update() {
	w := s.world
	p := w.Player
	if p == nil {
		return
	}
	p.Update()
	if p.CanShoot() {
		w.PlayerBullets = append(w.PlayerBullets, p.Shoot()...)
	}
	// ведомые держат строй относительно игрока
	for _, wm := range w.Wingmen {
		wm.Update(p)
		if wm.CanShoot() {
			w.PlayerBullets = append(w.PlayerBullets, wm.Shoot()...)
		}
	}
}
