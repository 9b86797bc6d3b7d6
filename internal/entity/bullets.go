// internal/entity/bullets.go
package entity

import (
	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/pattern"
)

const (
	EnemyBulletWidth  = 12
	EnemyBulletHeight = 16

	PlayerBulletWidth  = 8
	PlayerBulletHeight = 16
	// снаряд игрока удаляется выше этой отметки
	PlayerBulletTop = -10
)

// EnemyBullet — вражеский снаряд.
type EnemyBullet struct {
	component.Body
	VX, VY   float64
	LifeTime int // 0 означает без ограничения
	Owner    defs.EnemyKind
	Destroy  bool
}

func NewEnemyBullet(s pattern.Shot) *EnemyBullet {
	size := component.Size{W: EnemyBulletWidth, H: EnemyBulletHeight}
	if s.Size > 0 {
		size = component.Size{W: s.Size, H: s.Size}
	}
	return &EnemyBullet{
		Body:     component.Body{Position: component.Position{X: s.X, Y: s.Y}, Size: size},
		VX:       s.VX,
		VY:       s.VY,
		LifeTime: s.LifeTime,
		Owner:    s.Owner,
	}
}

func (b *EnemyBullet) Update() {
	b.X += b.VX
	b.Y += b.VY
	if b.LifeTime > 0 {
		b.LifeTime--
		if b.LifeTime <= 0 {
			b.Destroy = true
		}
	}
}

// Expired reports a bullet past its lifetime or outside the padded screen.
func (b *EnemyBullet) Expired(screenW, screenH float64) bool {
	return b.Destroy || !b.InBounds(screenW, screenH, config.BulletBoundsMargin)
}

// PlayerBullet летит строго вверх. Его выпускают игрок и ведомые.
type PlayerBullet struct {
	component.Body
	Speed   float64
	Damage  int
	Tier    int
	Wingman bool
}

func NewPlayerBullet(x, y, speed float64, damage, tier int, wingman bool) *PlayerBullet {
	return &PlayerBullet{
		Body:    component.Body{Position: component.Position{X: x, Y: y}, Size: component.Size{W: PlayerBulletWidth, H: PlayerBulletHeight}},
		Speed:   speed,
		Damage:  damage,
		Tier:    tier,
		Wingman: wingman,
	}
}

func (b *PlayerBullet) Update() { b.Y -= b.Speed }

func (b *PlayerBullet) Expired() bool { return b.Y < PlayerBulletTop }
