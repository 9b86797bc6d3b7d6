// internal/system/projectile.go
package system

import (
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
)

// ProjectileSystem двигает пули и ракеты. Попадания считает CollisionSystem.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// UpdateBullets moves player and enemy bullets and drops those out of bounds.
func (s *ProjectileSystem) UpdateBullets() {
	w := s.world
	for i := len(w.PlayerBullets) - 1; i >= 0; i-- {
		b := w.PlayerBullets[i]
		b.Update()
		if b.Expired() {
			w.RemovePlayerBulletAt(i)
		}
	}
	for i := len(w.EnemyBullets) - 1; i >= 0; i-- {
		b := w.EnemyBullets[i]
		b.Update()
		if b.Expired(w.Width, w.Height) {
			w.RemoveEnemyBulletAt(i)
		}
	}
}

// UpdateMissiles доворачивает ракеты на ближайшую цель.
func (s *ProjectileSystem) UpdateMissiles() {
	w := s.world
	for i := len(w.Missiles) - 1; i >= 0; i-- {
		m := w.Missiles[i]
		m.Update(w.Enemies)
		if m.Expired(w.Width, w.Height) {
			w.RemoveMissileAt(i)
		}
	}
}
