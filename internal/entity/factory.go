// internal/entity/factory.go
package entity

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/pattern"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// Factory собирает врагов: характеристики из defs.EnemyLibrary,
// здоровье масштабируется коэффициентом сложности.
type Factory struct {
	rng   *utils.PRNGService
	world *World

	// Difficulty returns the current HP multiplier; nil means 1.
	Difficulty func() float64

	nextFormation int
}

func NewFactory(rng *utils.PRNGService, world *World, difficulty func() float64) *Factory {
	return &Factory{rng: rng, world: world, Difficulty: difficulty}
}

func (f *Factory) difficulty() float64 {
	if f.Difficulty == nil {
		return 1
	}
	d := f.Difficulty()
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 1
	}
	return d
}

// NewEnemy создаёт врага в точке (x, y), но не добавляет его в мир.
func (f *Factory) NewEnemy(kind defs.EnemyKind, x, y float64) *Enemy {
	def := defs.Enemy(kind)
	hp := int(math.Ceil(float64(def.HP) * f.difficulty()))
	if hp < 1 {
		hp = 1
	}

	e := &Enemy{
		ID:    f.world.NewEntity(),
		Kind:  def.ID,
		Body:  component.Body{Position: component.Position{X: x, Y: y}, Size: component.Size{W: def.Width, H: def.Height}},
		HP:    hp,
		MaxHP: hp,
		Speed: def.Speed,
		Score: def.Score,
		field: f.world,
		spawn: f.world,
		audio: f.world.Audio,
	}

	switch e.Kind {
	case defs.EnemySmall:
		e.Flight = flight.RandomPattern(f.rng)
		e.Dirs = flight.RandomDirections(f.rng)
	case defs.EnemyLarge:
		e.gen = pattern.NewGenerator(f.rng)
		e.hoverDir = 1
	case defs.EnemyBoss:
		e.Boss = &BossState{
			Engine:      pattern.NewEngine(f.rng, e.playBossCue),
			MoveDir:     1,
			VertDir:     1,
			TargetY:     BossTargetY,
			Phase:       1,
			LastPhaseHP: hp,
		}
	}
	return e
}

// NewFormation создаёт формацию из count врагов вокруг центра. Первый —
// ведущий, остальные держат смещение относительно него.
func (f *Factory) NewFormation(kind defs.EnemyKind, ft flight.FormationType, centerX, centerY float64, count int, p flight.Pattern) []*Enemy {
	w, _ := f.world.ScreenSize()
	cx, cy := flight.PlaceFormation(centerX, centerY, kind, f.world.EnemyPositions(), w, f.rng)
	if p == flight.None {
		p = flight.RandomPattern(f.rng)
	}
	dirs := flight.FormationDirections(cx, w, f.rng)

	f.nextFormation++
	id := f.nextFormation

	offsets := flight.FormationOffsets(ft, count)
	out := make([]*Enemy, 0, len(offsets))
	var leader *Enemy
	for i, off := range offsets {
		e := f.NewEnemy(kind, cx+off.X, cy+off.Y)
		e.Flight = p
		e.Dirs = dirs
		e.ShootTimer = FormationShootDelay
		e.FormationID = id
		if i == 0 {
			e.IsLeader = true
			leader = e
		} else {
			e.LeaderID = leader.ID
			e.FormationOffset = flight.Offset{X: off.X - offsets[0].X, Y: off.Y - offsets[0].Y}
		}
		out = append(out, e)
	}
	return out
}
