// internal/system/visual_effect.go
package system

import (
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// VisualEffectSystem управляет взрывами, обломками и тряской экрана.
type VisualEffectSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

// UpdateShake гасит тряску экрана.
func (s *VisualEffectSystem) UpdateShake() {
	s.world.ScreenShake.Update(s.rng.Float64)
}

// Update продвигает эффекты и выбрасывает догоревшие.
func (s *VisualEffectSystem) Update() {
	w := s.world
	live := w.Effects[:0]
	for _, e := range w.Effects {
		e.Update()
		if e.Alive() {
			live = append(live, e)
		}
	}
	w.Effects = live
}
