// internal/system/movement.go
package system

import (
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
)

// MovementSystem двигает врагов, пассажиров и бонусы и убирает тех,
// кто ушёл с экрана. Враги стреляют здесь же, после шага.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update() {
	s.updateEnemies()
	s.updatePassengers()
	s.updateItems()
}

func (s *MovementSystem) updateEnemies() {
	w := s.world
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		// выстрел мог убрать врагов из хвоста
		if i >= len(w.Enemies) {
			continue
		}
		e := w.Enemies[i]
		e.Update()
		if e.Offscreen(w.Height) {
			w.RemoveEnemyAt(i)
			continue
		}
		if e.CanShoot() {
			w.SpawnEnemyBullets(e.Shoot())
		}
	}
}

func (s *MovementSystem) updatePassengers() {
	w := s.world
	for i := len(w.Passengers) - 1; i >= 0; i-- {
		ps := w.Passengers[i]
		ps.Update()
		if ps.Escaped {
			w.Passengers = append(w.Passengers[:i], w.Passengers[i+1:]...)
		}
	}
}

// RemoveDestroyedPassengers убирает сбитых пассажиров после анимации смерти.
func (s *MovementSystem) RemoveDestroyedPassengers() {
	w := s.world
	for i := len(w.Passengers) - 1; i >= 0; i-- {
		if w.Passengers[i].Destroyed() {
			w.Passengers = append(w.Passengers[:i], w.Passengers[i+1:]...)
		}
	}
}

func (s *MovementSystem) updateItems() {
	w := s.world
	for i := len(w.Items) - 1; i >= 0; i-- {
		it := w.Items[i]
		it.Update()
		if it.Offscreen(w.Height) {
			w.RemoveItemAt(i)
		}
	}
}
