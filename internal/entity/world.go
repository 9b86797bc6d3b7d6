// internal/entity/world.go
package entity

import (
	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/pattern"
	"github.com/cheraljun/BoomBoomBoom/internal/types"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

// World хранит все живые коллекции сессии. Системы получают только
// нужные им срезы и порты, а не весь мир.
type World struct {
	NextID types.EntityID
	Width  float64
	Height float64

	Player        *Player
	Wingmen       []*Wingman
	Enemies       []*Enemy
	EnemyBullets  []*EnemyBullet
	PlayerBullets []*PlayerBullet
	Missiles      []*TrackingMissile
	Items         []*Item
	Passengers    []*Passenger
	Cargo         []*CargoPlane
	Bombers       []*Bomber
	Effects       []component.Effect
	ScreenShake   component.Shake

	Factory *Factory
	Audio   AudioPort

	rng *utils.PRNGService
}

// NewWorld создаёт пустой мир экрана w×h. difficulty может быть nil.
func NewWorld(w, h float64, rng *utils.PRNGService, audio AudioPort, difficulty func() float64) *World {
	if audio == nil {
		audio = NopAudio{}
	}
	world := &World{
		NextID: 1,
		Width:  w,
		Height: h,
		Audio:  audio,
		rng:    rng,
	}
	world.Factory = NewFactory(rng, world, difficulty)
	return world
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Reset очищает коллекции для новой сессии. Счётчик ID не сбрасывается.
func (w *World) Reset() {
	w.Player = nil
	w.Wingmen = nil
	w.Enemies = nil
	w.EnemyBullets = nil
	w.PlayerBullets = nil
	w.Missiles = nil
	w.Items = nil
	w.Passengers = nil
	w.Cargo = nil
	w.Bombers = nil
	w.Effects = nil
	w.ScreenShake.Reset()
}

func (w *World) Rand() *utils.PRNGService { return w.rng }

// --- Battlefield ---

func (w *World) ScreenSize() (float64, float64) { return w.Width, w.Height }

func (w *World) EnemyByID(id types.EntityID) *Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (w *World) PlayerPosition() (float64, float64, bool) {
	if w.Player == nil {
		return 0, 0, false
	}
	return w.Player.X, w.Player.Y, true
}

// CountEnemyBulletsInBounds считает вражеские снаряды в экране,
// расширенном на BulletBoundsMargin.
func (w *World) CountEnemyBulletsInBounds() int {
	n := 0
	for _, b := range w.EnemyBullets {
		if b.InBounds(w.Width, w.Height, config.BulletBoundsMargin) {
			n++
		}
	}
	return n
}

// --- SpawnPort ---

func (w *World) SpawnEnemy(kind defs.EnemyKind, x, y float64) *Enemy {
	e := w.Factory.NewEnemy(kind, x, y)
	w.AddEnemy(e)
	return e
}

func (w *World) AddEnemy(e *Enemy) {
	w.Enemies = append(w.Enemies, e)
}

func (w *World) SpawnEnemyBullets(shots []pattern.Shot) {
	for _, s := range shots {
		w.EnemyBullets = append(w.EnemyBullets, NewEnemyBullet(s))
	}
}

func (w *World) SpawnItem(x, y float64, kind defs.ItemKind) {
	w.Items = append(w.Items, NewItem(x, y, kind))
}

// --- EffectPort ---

func (w *World) AddEffect(e component.Effect) {
	w.Effects = append(w.Effects, e)
}

func (w *World) Shake(intensity float64, duration int) {
	w.ScreenShake.Start(intensity, duration)
}

// DestroyEffect добавляет анимацию уничтожения по типу врага.
func (w *World) DestroyEffect(x, y float64, kind defs.EnemyKind) {
	w.AddEffect(component.NewDestroyAnimation(x, y, DestroyEffectKind(kind), w.rng.Float64))
}

// DestroyEffectKind picks the destroy animation for an enemy kind.
func DestroyEffectKind(kind defs.EnemyKind) component.EffectKind {
	switch kind {
	case defs.EnemyBoss:
		return component.EffectDestroyBoss
	case defs.EnemyLarge:
		return component.EffectDestroyLarge
	}
	return component.EffectDestroyNormal
}

// --- удаление по индексу ---

func (w *World) RemoveEnemyAt(i int) {
	w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
}

func (w *World) RemoveEnemyBulletAt(i int) {
	w.EnemyBullets = append(w.EnemyBullets[:i], w.EnemyBullets[i+1:]...)
}

func (w *World) RemovePlayerBulletAt(i int) {
	w.PlayerBullets = append(w.PlayerBullets[:i], w.PlayerBullets[i+1:]...)
}

func (w *World) RemoveMissileAt(i int) {
	w.Missiles = append(w.Missiles[:i], w.Missiles[i+1:]...)
}

func (w *World) RemoveItemAt(i int) {
	w.Items = append(w.Items[:i], w.Items[i+1:]...)
}

// IndexOfEnemy returns the slice index of e, or -1.
func (w *World) IndexOfEnemy(e *Enemy) int {
	for i, other := range w.Enemies {
		if other == e {
			return i
		}
	}
	return -1
}

// --- запросы для систем ---

// EnemyPositions собирает позиции живых врагов для расстановки формаций.
func (w *World) EnemyPositions() []component.Position {
	out := make([]component.Position, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		out = append(out, e.Position)
	}
	return out
}

func (w *World) HasEnemyOfKind(kind defs.EnemyKind) bool {
	for _, e := range w.Enemies {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (w *World) CountNonBossEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Kind != defs.EnemyBoss {
			n++
		}
	}
	return n
}

// ActivePassenger returns the first passenger still in flight, or nil.
func (w *World) ActivePassenger() *Passenger {
	for _, p := range w.Passengers {
		if !p.Escaped && !p.Destroyed() {
			return p
		}
	}
	return nil
}
