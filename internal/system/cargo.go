// internal/system/cargo.go
package system

import (
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// CargoSystem выпускает грузовые самолёты с бонусами.
type CargoSystem struct {
	world      *entity.World
	cfg        config.CargoConfig
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	available  func() []defs.ItemKind
}

func NewCargoSystem(world *entity.World, cfg config.CargoConfig, rng *utils.PRNGService, dispatcher *event.Dispatcher, available func() []defs.ItemKind) *CargoSystem {
	return &CargoSystem{world: world, cfg: cfg, rng: rng, dispatcher: dispatcher, available: available}
}

// Spawn с вероятностью SpawnRate выпускает самолёт, если в небе их
// меньше MaxActive.
func (s *CargoSystem) Spawn() {
	if !s.rng.Chance(s.cfg.SpawnRate) || len(s.world.Cargo) >= s.cfg.MaxActive {
		return
	}
	s.Launch()
}

// Launch выпускает самолёт немедленно.
func (s *CargoSystem) Launch() *entity.CargoPlane {
	w := s.world
	r := flight.CargoRoute(w.Width, w.Height, s.rng)
	c := entity.NewCargoPlane(r, w.Width, w.Height, s.rng, w, s.available)
	w.Cargo = append(w.Cargo, c)
	s.dispatcher.Notify("Supplies incoming!")
	w.Audio.PlayCargoComing()
	return c
}

func (s *CargoSystem) Update() {
	w := s.world
	for i := len(w.Cargo) - 1; i >= 0; i-- {
		c := w.Cargo[i]
		c.Update()
		if c.Escaped {
			w.Cargo = append(w.Cargo[:i], w.Cargo[i+1:]...)
		}
	}
}
