// internal/entity/ports.go
package entity

import (
	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/pattern"
	"github.com/cheraljun/BoomBoomBoom/internal/types"
)

// SpawnPort lets entities create other entities.
type SpawnPort interface {
	SpawnEnemy(kind defs.EnemyKind, x, y float64) *Enemy
	SpawnEnemyBullets(shots []pattern.Shot)
	SpawnItem(x, y float64, kind defs.ItemKind)
}

// AudioPort — звуковые события логики.
type AudioPort interface {
	PlayBossShoot()
	PlayEnemyDeath()
	PlayMissile()
	PlayItemCollect()
	PlayCargoComing()
	PlayPassenger()
	PlayBomber()
}

// Визуальные эффекты и тряска экрана.
type EffectPort interface {
	AddEffect(e component.Effect)
	Shake(intensity float64, duration int)
}

// Battlefield is what an enemy may ask about the scene.
type Battlefield interface {
	EnemyByID(id types.EntityID) *Enemy
	PlayerPosition() (x, y float64, ok bool)
	CountEnemyBulletsInBounds() int
	ScreenSize() (w, h float64)
}

// NopAudio глушит все звуки. Используется в тестах и без звуковой карты.
type NopAudio struct{}

func (NopAudio) PlayBossShoot()   {}
func (NopAudio) PlayEnemyDeath()  {}
func (NopAudio) PlayMissile()     {}
func (NopAudio) PlayItemCollect() {}
func (NopAudio) PlayCargoComing() {}
func (NopAudio) PlayPassenger()   {}
func (NopAudio) PlayBomber()      {}
