// internal/system/powerup.go
package system

import (
	"fmt"
	"log"
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	LifeItemHeal = 50
	// аптечка выпадает, только когда жизней не больше
	lifeItemMaxLives = 2
	missileMuzzle    = 30

	bombDamage        = 9999
	bombShakeBase     = 8
	bombShakePerEnemy = 2
	bombShakeMax      = 16
	bombShakeFrames   = 25
)

// MissileMode — автоматический пуск ракет после подбора бонуса.
type MissileMode struct {
	Active   bool
	Elapsed  int
	Interval int
	Fired    bool // звук пуска уже прозвучал в этой активации
}

// PowerupSystem применяет бонусы: огневую мощь, ведомых, ракеты и бомбы.
type PowerupSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	cfg        config.MissileConfig

	Missile MissileMode
	Bombs   int

	bombing bool
}

func NewPowerupSystem(world *entity.World, cfg config.MissileConfig, rng *utils.PRNGService, dispatcher *event.Dispatcher) *PowerupSystem {
	s := &PowerupSystem{world: world, dispatcher: dispatcher, rng: rng, cfg: cfg}
	if dispatcher != nil {
		dispatcher.Subscribe(event.PlayerHit, s)
	}
	return s
}

// OnEvent: любое попадание выключает ракеты, потеря жизни забирает ведомых.
func (s *PowerupSystem) OnEvent(e event.Event) {
	if e.Type != event.PlayerHit {
		return
	}
	if s.Missile.Active {
		s.Missile.Active = false
		s.dispatcher.Notify("Missiles lost!")
	}
	data, _ := e.Data.(event.PlayerHitData)
	if data.LifeLost && len(s.world.Wingmen) > 0 {
		s.world.Wingmen = nil
		s.dispatcher.Notify("Wingmen lost!")
	}
}

// CollectItem применяет подобранный бонус.
func (s *PowerupSystem) CollectItem(kind defs.ItemKind) {
	p := s.world.Player
	if p == nil {
		return
	}
	s.world.Audio.PlayItemCollect()

	switch kind {
	case defs.ItemDoubleFire:
		p.UpgradeBulletLevel()
		s.dispatcher.Notify("Firepower up!")
	case defs.ItemBomb:
		s.Bombs++
		s.dispatcher.Notify("Bomb acquired!")
	case defs.ItemMissile:
		s.ActivateMissileMode()
		s.dispatcher.Notify("Missiles acquired!")
	case defs.ItemLife:
		p.Heal(LifeItemHeal)
		s.dispatcher.Notify("Health restored!")
	case defs.ItemWingman:
		if p.WingmenLevel < entity.MaxWingmenLevel {
			p.WingmenLevel++
			s.UpdateWingmen()
			s.dispatcher.Notify(fmt.Sprintf("Wingmen support! Firepower: %d/%d", p.WingmenLevel, entity.MaxWingmenLevel))
		}
	default:
		log.Printf("[Powerup] unknown item kind %q", kind)
	}
}

// AvailableItems returns the power-ups worth dropping right now.
func (s *PowerupSystem) AvailableItems() []defs.ItemKind {
	var out []defs.ItemKind
	p := s.world.Player
	if p != nil && p.Lives <= lifeItemMaxLives {
		out = append(out, defs.ItemLife)
	}
	if !s.Missile.Active {
		out = append(out, defs.ItemMissile)
	}
	if s.Bombs == 0 {
		out = append(out, defs.ItemBomb)
	}
	if p != nil && p.WingmenLevel < entity.MaxWingmenLevel {
		out = append(out, defs.ItemWingman)
	}
	return append(out, defs.ItemDoubleFire)
}

// UpdateWingmen пересобирает звено под уровень игрока.
func (s *PowerupSystem) UpdateWingmen() {
	p := s.world.Player
	left, right := entity.WingmenForLevel(p.WingmenLevel)
	s.world.Wingmen = nil
	for slot, barrels := range []int{left, right} {
		if barrels == 0 {
			continue
		}
		w := entity.NewWingman(slot, barrels, p.BulletSpeed())
		ox, oy := w.Offset()
		w.X, w.Y = p.X+ox, p.Y+oy
		s.world.Wingmen = append(s.world.Wingmen, w)
	}
}

func (s *PowerupSystem) rollMissileInterval() int {
	lo, hi := s.cfg.MinIntervalFrames, s.cfg.MaxIntervalFrames
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *PowerupSystem) ActivateMissileMode() {
	s.Missile = MissileMode{Active: true, Interval: s.rollMissileInterval()}
}

// UpdateMissileMode пускает ракету, когда истёк случайный интервал.
func (s *PowerupSystem) UpdateMissileMode() {
	m := &s.Missile
	p := s.world.Player
	if !m.Active || p == nil {
		return
	}
	m.Elapsed++
	if m.Elapsed < m.Interval {
		return
	}
	if !m.Fired {
		s.world.Audio.PlayMissile()
		m.Fired = true
	}
	s.world.Missiles = append(s.world.Missiles, entity.NewTrackingMissile(p.X, p.Y-missileMuzzle, s.cfg))
	m.Elapsed = 0
	m.Interval = s.rollMissileInterval()
}

// ClearScreen тратит бомбу: вражеские снаряды исчезают, прилетает
// бомбардировщик. Возвращает false, если бомб нет.
func (s *PowerupSystem) ClearScreen() bool {
	if s.Bombs <= 0 {
		s.dispatcher.Notify("No bombs!")
		return false
	}
	s.Bombs--
	s.world.Audio.PlayBomber()
	w := s.world
	w.Bombers = append(w.Bombers, entity.NewBomber(w.Width, w.Height, s.rng))
	w.EnemyBullets = nil
	s.bombing = true
	s.dispatcher.Notify("Bombing run!")
	return true
}

func (s *PowerupSystem) Bombing() bool { return s.bombing }

// UpdateBombers двигает бомбардировщики и применяет взрывы.
func (s *PowerupSystem) UpdateBombers() {
	w := s.world
	for i := len(w.Bombers) - 1; i >= 0; i-- {
		b := w.Bombers[i]
		for _, d := range b.Update() {
			s.detonate(d)
		}
		if b.Escaped {
			w.Bombers = append(w.Bombers[:i], w.Bombers[i+1:]...)
		}
	}
	if s.bombing && len(w.Bombers) == 0 {
		s.bombing = false
		s.dispatcher.Notify("Bombing complete!")
	}
}

// detonate: враги в радиусе гибнут без зачёта, снаряды в радиусе исчезают.
func (s *PowerupSystem) detonate(d entity.Detonation) {
	w := s.world
	w.AddEffect(component.NewDestroyAnimation(d.X, d.Y, component.EffectDestroyLarge, s.rng.Float64))
	w.Audio.PlayEnemyDeath()

	killed := 0
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if e.DistanceTo(d.X, d.Y) > d.Radius {
			continue
		}
		e.TakeDamage(bombDamage)
		w.DestroyEffect(e.X, e.Y, e.Kind)
		w.Audio.PlayEnemyDeath()
		w.RemoveEnemyAt(i)
		killed++
		if e.IsBoss() {
			s.dispatcher.Dispatch(event.Event{Type: event.BossDefeated})
		}
	}
	if killed > 0 {
		w.Shake(math.Min(bombShakeBase+bombShakePerEnemy*float64(killed), bombShakeMax), bombShakeFrames)
	}

	for i := len(w.EnemyBullets) - 1; i >= 0; i-- {
		b := w.EnemyBullets[i]
		if utils.Distance(b.X, b.Y, d.X, d.Y) <= d.Radius {
			w.RemoveEnemyBulletAt(i)
		}
	}
}
