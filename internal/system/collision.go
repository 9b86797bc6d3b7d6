// internal/system/collision.go
package system

import (
	"log"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
	"github.com/cheraljun/BoomBoomBoom/internal/event"
	"github.com/cheraljun/BoomBoomBoom/internal/interfaces"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// Радиусы и урон столкновений
const (
	MissileTriggerRadius = 30
	// доля урона ракеты за пределами ядра взрыва
	missileFalloff = 0.6

	PlayerBulletHitRadius = 25
	PlayerRamRadius       = 30
	ItemPickupRadius      = 40
	RamDamage             = 999

	PassengerRamDamage    = 20
	PassengerBulletDamage = 10
	PassengerBumpDamage   = 15

	BossMinionChance = 0.3
)

// CollisionSystem разбирает столкновения один раз за кадр, после всех
// обновлений. Атакующие перебираются с конца, удаление по индексу.
type CollisionSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	collector  interfaces.ItemCollector
	hitDamage  int
}

func NewCollisionSystem(world *entity.World, dispatcher *event.Dispatcher, rng *utils.PRNGService, collector interfaces.ItemCollector, hitDamage int) *CollisionSystem {
	return &CollisionSystem{
		world:      world,
		dispatcher: dispatcher,
		rng:        rng,
		collector:  collector,
		hitDamage:  hitDamage,
	}
}

func (s *CollisionSystem) Update() {
	s.playerBulletsVsEnemies()
	s.missilesVsEnemies()
	if s.world.Player != nil {
		s.enemyBulletsVsPlayer()
		s.enemiesVsPlayer()
	}
	s.passengers()
	if s.world.Player != nil {
		s.items()
	}
	s.sweep()
}

// kill credits the enemy: counters, sound, animation and removal. A boss
// kill also ends the fight.
func (s *CollisionSystem) kill(e *entity.Enemy) {
	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Kind: string(e.Kind), X: e.X, Y: e.Y, Credited: true},
	})
	if !e.IsBoss() {
		s.world.Audio.PlayEnemyDeath()
	}
	s.world.DestroyEffect(e.X, e.Y, e.Kind)
	s.remove(e)
	if e.IsBoss() {
		s.bossDown(e)
	}
}

func (s *CollisionSystem) remove(e *entity.Enemy) {
	if i := s.world.IndexOfEnemy(e); i >= 0 {
		s.world.RemoveEnemyAt(i)
	}
}

// bossDown: с шансом 30 % босс напоследок выпускает подкрепление.
func (s *CollisionSystem) bossDown(e *entity.Enemy) {
	if s.rng.Chance(BossMinionChance) {
		e.SummonMinions()
	}
	log.Printf("[Collision] boss %d destroyed", e.ID)
	s.dispatcher.Dispatch(event.Event{Type: event.BossDefeated})
}

func (s *CollisionSystem) playerBulletsVsEnemies() {
	w := s.world
bullets:
	for i := len(w.PlayerBullets) - 1; i >= 0; i-- {
		b := w.PlayerBullets[i]
		for j := len(w.Enemies) - 1; j >= 0; j-- {
			e := w.Enemies[j]
			if e.Y <= -e.H || !e.ContainsPoint(b.X, b.Y) {
				continue
			}
			e.TakeDamage(b.Damage)
			w.RemovePlayerBulletAt(i)
			if !e.Alive() {
				s.kill(e)
			}
			continue bullets
		}
	}
}

func (s *CollisionSystem) missilesVsEnemies() {
	w := s.world
	for i := len(w.Missiles) - 1; i >= 0; i-- {
		m := w.Missiles[i]
		for j := len(w.Enemies) - 1; j >= 0; j-- {
			if w.Enemies[j].DistanceTo(m.X, m.Y) >= MissileTriggerRadius {
				continue
			}
			s.explode(m)
			w.AddEffect(component.NewDestroyAnimation(m.X, m.Y, component.EffectDestroyNormal, s.rng.Float64))
			w.RemoveMissileAt(i)
			break
		}
	}
}

// explode наносит урон всем врагам в радиусе взрыва ракеты.
func (s *CollisionSystem) explode(m *entity.TrackingMissile) {
	w := s.world
	for k := len(w.Enemies) - 1; k >= 0; k-- {
		e := w.Enemies[k]
		d := e.DistanceTo(m.X, m.Y)
		if d >= m.ExplosionRadius {
			continue
		}
		dmg := m.Damage
		if d >= MissileTriggerRadius {
			dmg = int(float64(m.Damage) * missileFalloff)
		}
		e.TakeDamage(dmg)
		if !e.Alive() {
			s.kill(e)
		}
	}
}

// hitPlayer наносит урон игроку и сообщает о попадании и смерти.
func (s *CollisionSystem) hitPlayer(damage int, cause event.DeathCause) entity.HitResult {
	p := s.world.Player
	res := p.TakeDamage(damage)
	if !res.Applied {
		return res
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.PlayerHit,
		Data: event.PlayerHitData{Damage: damage, LifeLost: res.LifeLost},
	})
	if res.LifeLost && p.Dead() {
		log.Printf("[Collision] player died: %s by %s", cause.Kind, cause.By)
		s.dispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: cause})
	}
	return res
}

func (s *CollisionSystem) enemyBulletsVsPlayer() {
	w := s.world
	p := w.Player
	for i := len(w.EnemyBullets) - 1; i >= 0; i-- {
		b := w.EnemyBullets[i]
		if utils.Distance(b.X, b.Y, p.X, p.Y) >= PlayerBulletHitRadius {
			continue
		}
		w.RemoveEnemyBulletAt(i)
		s.hitPlayer(s.hitDamage, event.DeathCause{Kind: "bullet", By: string(b.Owner), X: b.X, Y: b.Y})
	}
}

// Таран: враг погибает всегда, но убийство не засчитывается.
func (s *CollisionSystem) enemiesVsPlayer() {
	w := s.world
	p := w.Player
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if e.DistanceTo(p.X, p.Y) >= PlayerRamRadius {
			continue
		}
		s.hitPlayer(s.hitDamage, event.DeathCause{Kind: "collision", By: string(e.Kind), X: e.X, Y: e.Y})
		e.TakeDamage(RamDamage)
		w.AddEffect(component.NewExplosion(e.X, e.Y))
		w.DestroyEffect(e.X, e.Y, e.Kind)
		s.remove(e)
		s.dispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{Kind: string(e.Kind), X: e.X, Y: e.Y},
		})
		if e.IsBoss() {
			s.bossDown(e)
		}
	}
}

func (s *CollisionSystem) passengers() {
	w := s.world
	for _, ps := range w.Passengers {
		if ps.Escaped || ps.Destroyed() {
			continue
		}
		s.passengerVsEnemies(ps)
		s.passengerVsBullets(ps)
		if w.Player != nil {
			s.passengerVsPlayer(ps)
		}
	}
}

// passengerDamage наносит урон пассажиру и один раз сообщает о гибели.
func (s *CollisionSystem) passengerDamage(ps *entity.Passenger, d int, cause event.DeathCause) {
	if ps.Destroyed() {
		return
	}
	ps.TakeDamage(d)
	if ps.Destroyed() {
		log.Printf("[Collision] passenger destroyed: %s by %s", cause.Kind, cause.By)
		s.dispatcher.Dispatch(event.Event{Type: event.PassengerDestroyed, Data: cause})
	}
}

func (s *CollisionSystem) passengerVsEnemies(ps *entity.Passenger) {
	w := s.world
	for j := len(w.Enemies) - 1; j >= 0; j-- {
		e := w.Enemies[j]
		if !e.Alive() || !e.Overlaps(ps.Body) {
			continue
		}
		// враг гибнет при ударе, уберёт его финальная зачистка
		e.TakeDamage(e.HP)
		s.passengerDamage(ps, PassengerRamDamage, event.DeathCause{Kind: "collision", By: string(e.Kind), X: e.X, Y: e.Y})
	}
}

func (s *CollisionSystem) passengerVsBullets(ps *entity.Passenger) {
	w := s.world
	for j := len(w.EnemyBullets) - 1; j >= 0; j-- {
		b := w.EnemyBullets[j]
		if !ps.ContainsPoint(b.X, b.Y) {
			continue
		}
		w.RemoveEnemyBulletAt(j)
		s.passengerDamage(ps, PassengerBulletDamage, event.DeathCause{Kind: "bullet", By: string(b.Owner), X: b.X, Y: b.Y})
	}
}

// passengerVsPlayer: при касании страдают оба. У пассажира нет окна
// неуязвимости, он теряет здоровье каждый кадр касания.
func (s *CollisionSystem) passengerVsPlayer(ps *entity.Passenger) {
	p := s.world.Player
	if !p.Overlaps(ps.Body) {
		return
	}
	s.hitPlayer(PassengerBumpDamage, event.DeathCause{Kind: "collision", By: "passenger", X: ps.X, Y: ps.Y})
	s.passengerDamage(ps, PassengerBumpDamage, event.DeathCause{Kind: "collision", By: "player", X: p.X, Y: p.Y})
}

func (s *CollisionSystem) items() {
	w := s.world
	p := w.Player
	for i := len(w.Items) - 1; i >= 0; i-- {
		it := w.Items[i]
		if utils.Distance(it.X, it.Y, p.X, p.Y) >= ItemPickupRadius {
			continue
		}
		w.RemoveItemAt(i)
		if s.collector != nil {
			s.collector.CollectItem(it.Kind)
		}
		s.dispatcher.Dispatch(event.Event{Type: event.ItemCollected, Data: it.Kind})
	}
}

// sweep убирает врагов с HP ≤ 0, которые пережили проходы выше.
// Убийство не засчитывается.
func (s *CollisionSystem) sweep() {
	w := s.world
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if e.Alive() {
			continue
		}
		w.RemoveEnemyAt(i)
		w.DestroyEffect(e.X, e.Y, e.Kind)
		if e.IsBoss() {
			s.bossDown(e)
		} else {
			w.Audio.PlayEnemyDeath()
		}
	}
}
