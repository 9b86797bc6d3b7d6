// internal/entity/player.go
package entity

import (
	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	PlayerWidth  = 32
	PlayerHeight = 40
	// шаг клавиатурного управления за кадр
	PlayerSpeed = 8
	// снаряды появляются над носом самолёта
	muzzleOffset = 25

	MaxBulletLevel = 10
)

// HitResult describes what a hit did to the player.
type HitResult struct {
	Applied  bool // false, если игрок неуязвим
	LifeLost bool
}

// Player — самолёт игрока.
type Player struct {
	component.Body

	Lives        int
	Health       int
	MaxHealth    int
	Invulnerable int

	BulletLevel      int
	BulletTier       int
	HasDoubleUpgrade bool
	WingmenLevel     int

	ShootTimer int

	cfg            config.PlayerConfig
	boundW, boundH float64
}

// NewPlayer ставит игрока в точку (x, y). Экран w×h ограничивает MoveTo.
func NewPlayer(x, y, w, h float64, cfg config.PlayerConfig) *Player {
	return &Player{
		Body:        component.Body{Position: component.Position{X: x, Y: y}, Size: component.Size{W: PlayerWidth, H: PlayerHeight}},
		Lives:       cfg.Lives,
		Health:      cfg.Health,
		MaxHealth:   cfg.Health,
		BulletLevel: 1,
		BulletTier:  1,
		cfg:         cfg,
		boundW:      w,
		boundH:      h,
	}
}

// MoveTo переносит игрока, не выпуская корпус за экран.
func (p *Player) MoveTo(x, y float64) {
	p.X = utils.Clamp(x, p.W/2, p.boundW-p.W/2)
	p.Y = utils.Clamp(y, p.H/2, p.boundH-p.H/2)
}

func (p *Player) Update() {
	p.ShootTimer++
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
}

func (p *Player) CanShoot() bool {
	interval := p.cfg.FireInterval
	if interval <= 0 {
		interval = 1
	}
	return p.ShootTimer%interval == 0
}

// Damage returns per-bullet damage at the current power tier.
func (p *Player) Damage() int {
	return p.cfg.BaseDamage + p.BulletTier*p.cfg.TierDamage
}

func (p *Player) BulletSpeed() float64 { return p.cfg.BulletSpeed }

// EffectiveLevel возвращает число стволов. После первого улучшения одиночный
// выстрел превращается в двойной.
func (p *Player) EffectiveLevel() int {
	if p.HasDoubleUpgrade && p.BulletLevel == 1 {
		return 2
	}
	return p.BulletLevel
}

// BarrelOffsets lists barrel X offsets for a bullet level.
func BarrelOffsets(level int) []float64 {
	switch {
	case level >= MaxBulletLevel:
		out := make([]float64, 10)
		for i := range out {
			out[i] = (float64(i) - 4.5) * 5
		}
		return out
	case level == 8:
		out := make([]float64, 8)
		for i := range out {
			out[i] = (float64(i) - 3.5) * 6
		}
		return out
	case level == 4:
		return []float64{-15, -5, 5, 15}
	case level == 2:
		return []float64{-10, 10}
	}
	return []float64{0}
}

func (p *Player) Shoot() []*PlayerBullet {
	offsets := BarrelOffsets(p.EffectiveLevel())
	out := make([]*PlayerBullet, 0, len(offsets))
	for _, dx := range offsets {
		out = append(out, NewPlayerBullet(p.X+dx, p.Y-muzzleOffset, p.cfg.BulletSpeed, p.Damage(), p.BulletTier, false))
	}
	return out
}

// UpgradeBulletLevel: 1 → 2 → 4 → 8 → 10, после 10 снова 2 и мощность +1.
func (p *Player) UpgradeBulletLevel() {
	switch {
	case p.BulletLevel == 1:
		p.HasDoubleUpgrade = true
		p.BulletLevel = 2
	case p.BulletLevel == 2:
		p.BulletLevel = 4
	case p.BulletLevel == 4:
		p.BulletLevel = 8
	case p.BulletLevel == 8:
		p.BulletLevel = MaxBulletLevel
	case p.BulletLevel >= MaxBulletLevel:
		p.BulletLevel = 2
		p.BulletTier++
	}
}

// TakeDamage наносит урон, если игрок не неуязвим. Когда здоровье
// кончается, сгорает жизнь, здоровье восстанавливается, а стволы
// откатываются к базовому уровню.
func (p *Player) TakeDamage(d int) HitResult {
	if p.Invulnerable > 0 {
		return HitResult{}
	}
	p.Health -= d
	p.Invulnerable = p.cfg.InvulnerableFrames

	res := HitResult{Applied: true}
	if p.Health <= 0 {
		p.Lives--
		p.Health = p.MaxHealth
		p.WingmenLevel = 0
		if p.HasDoubleUpgrade {
			p.BulletLevel = 2
		} else {
			p.BulletLevel = 1
		}
		res.LifeLost = true
	}
	return res
}

// Heal восстанавливает здоровье не выше максимума.
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

func (p *Player) Dead() bool { return p.Lives <= 0 }

// Blink is true on the frames where an invulnerable player is hidden.
func (p *Player) Blink() bool {
	return p.Invulnerable > 0 && (p.Invulnerable/10)%2 == 1
}
