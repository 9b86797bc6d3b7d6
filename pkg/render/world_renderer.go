// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/internal/entity"
)

const (
	starCount     = 60
	hpBarHeight   = 5
	bossBarHeight = 8
)

type star struct {
	x, y, speed float64
}

// WorldRenderer рисует содержимое entity.World в экранных координатах.
// Слои снизу вверх: фон, транспорт, враги, бонусы, снаряды, игрок, эффекты.
type WorldRenderer struct {
	painter *Painter
	stars   []star
	width   float64
	height  float64
}

func NewWorldRenderer(width, height float64) *WorldRenderer {
	r := &WorldRenderer{painter: NewPainter(), width: width, height: height}
	// детерминированное звёздное небо, без зависимости от игрового ГСЧ
	seed := uint32(2463534242)
	next := func() float64 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return float64(seed%10000) / 10000
	}
	for i := 0; i < starCount; i++ {
		r.stars = append(r.stars, star{x: next() * width, y: next() * height, speed: 0.5 + next()*2})
	}
	return r
}

// Painter отдаёт общий рисовальщик для HUD.
func (r *WorldRenderer) Painter() *Painter { return r.painter }

// Draw рисует кадр. frame drives the background animation.
func (r *WorldRenderer) Draw(screen *ebiten.Image, w *entity.World, frame int) {
	screen.Fill(config.BackgroundColor)
	r.drawStars(screen, frame)

	ox, oy := w.ScreenShake.OffsetX, w.ScreenShake.OffsetY
	at := func(x, y float64) (float64, float64) { return x + ox, y + oy }

	for _, c := range w.Cargo {
		x, y := at(c.X, c.Y)
		r.painter.Heading(screen, x, y, c.W, c.H, c.VX, c.VY, config.CargoColor)
	}
	for _, ps := range w.Passengers {
		r.drawPassenger(screen, ps, ox, oy)
	}
	for _, e := range w.Enemies {
		r.drawEnemy(screen, e, ox, oy)
	}
	for _, it := range w.Items {
		x, y := at(it.X, it.Y)
		clr := config.ItemColors[string(it.Kind)]
		pulse := 1 + 0.15*math.Sin(float64(it.Frame)*0.15)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(it.W/2*pulse), clr, true)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(it.W/2*pulse), 2, color.White, true)
	}
	for _, b := range w.EnemyBullets {
		x, y := at(b.X, b.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(b.W/2), config.EnemyBulletColor, true)
	}
	for _, b := range w.PlayerBullets {
		x, y := at(b.X, b.Y)
		clr := config.PlayerBulletColor
		if b.Wingman {
			clr = config.WingmanColor
		}
		vector.DrawFilledRect(screen, float32(x-b.W/4), float32(y-b.H/2), float32(b.W/2), float32(b.H), clr, false)
	}
	for _, m := range w.Missiles {
		for i, p := range m.Trail {
			x, y := at(p.X, p.Y)
			a := float64(i+1) / float64(len(m.Trail)+1)
			vector.DrawFilledCircle(screen, float32(x), float32(y), 2, WithAlpha(config.MissileColor, a*0.6), true)
		}
		x, y := at(m.X, m.Y)
		r.painter.Heading(screen, x, y, 8, 16, m.VX, m.VY, config.MissileColor)
	}
	for _, wm := range w.Wingmen {
		x, y := at(wm.X, wm.Y)
		r.painter.Plane(screen, x, y, wm.W, wm.H, true, config.WingmanColor)
	}
	if p := w.Player; p != nil && !p.Blink() {
		x, y := at(p.X, p.Y)
		r.painter.Plane(screen, x, y, p.W, p.H, true, config.PlayerColor)
	}
	for _, b := range w.Bombers {
		r.drawBomber(screen, b, ox, oy)
	}
	for i := range w.Effects {
		r.drawEffect(screen, &w.Effects[i], ox, oy)
	}
}

func (r *WorldRenderer) drawStars(screen *ebiten.Image, frame int) {
	for _, s := range r.stars {
		y := math.Mod(s.y+s.speed*float64(frame), r.height)
		a := uint8(80 + 40*s.speed)
		vector.DrawFilledRect(screen, float32(s.x), float32(y), 1, float32(s.speed), color.RGBA{a, a, a, 255}, false)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e *entity.Enemy, ox, oy float64) {
	x, y := e.X+ox, e.Y+oy
	clr := config.EnemyColors[string(e.Kind)]
	if e.IsBoss() && e.Boss.Phase == 2 {
		clr = LerpColor(clr, color.RGBA{255, 255, 255, 255}, 0.2)
	}
	r.painter.Plane(screen, x, y, e.W, e.H, false, clr)

	if e.MaxHP <= 1 || e.HP == e.MaxHP {
		return
	}
	ratio := float64(e.HP) / float64(e.MaxHP)
	if e.IsBoss() {
		Bar(screen, config.HUDMargin, 60, float32(r.width-2*config.HUDMargin), bossBarHeight, ratio, HealthColor(ratio), config.ProgressBackColor)
		return
	}
	Bar(screen, float32(x-e.W/2), float32(y-e.H/2-hpBarHeight-3), float32(e.W), hpBarHeight, ratio, HealthColor(ratio), config.ProgressBackColor)
}

func (r *WorldRenderer) drawPassenger(screen *ebiten.Image, ps *entity.Passenger, ox, oy float64) {
	x, y := ps.X+ox, ps.Y+oy
	r.painter.Heading(screen, x, y, ps.W, ps.H, ps.VX, ps.VY, config.PassengerColor)

	ratio := float64(ps.Health) / float64(ps.MaxHealth)
	Bar(screen, float32(x-ps.W/2), float32(y-ps.H/2-12), float32(ps.W), hpBarHeight, ratio, HealthColor(ratio), config.ProgressBackColor)
	if ps.State == entity.Repairing {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(ps.H/2+6), 2, config.ProgressColor, true)
		Bar(screen, float32(x-ps.W/2), float32(y+ps.H/2+6), float32(ps.W), hpBarHeight, ps.RepairFraction(), config.ProgressColor, config.ProgressBackColor)
	}
}

func (r *WorldRenderer) drawBomber(screen *ebiten.Image, b *entity.Bomber, ox, oy float64) {
	for _, bomb := range b.Pending {
		x, y := float32(bomb.X+ox), float32(bomb.Y+oy)
		rad := float32(entity.BombBaseRadius * bomb.Scale)
		vector.StrokeCircle(screen, x, y, rad, 1, WithAlpha(config.ExplosionColor, 0.3), true)
		vector.DrawFilledCircle(screen, x, y, 4, config.ExplosionColor, true)
	}
	r.painter.Heading(screen, b.X+ox, b.Y+oy, b.W, b.H, b.VX, b.VY, config.BomberColor)
}

func (r *WorldRenderer) drawEffect(screen *ebiten.Image, e *component.Effect, ox, oy float64) {
	a := e.Alpha()
	x, y := e.X+ox, e.Y+oy
	switch e.Kind {
	case component.EffectExplosion:
		vector.StrokeCircle(screen, float32(x), float32(y), float32(e.Radius), 3, WithAlpha(config.ExplosionColor, a), true)
	default:
		base := 14.0
		switch e.Kind {
		case component.EffectDestroyLarge:
			base = 30
		case component.EffectDestroyBoss:
			base = 60
		}
		grow := 1 + (1 - a)
		for _, f := range e.Fragments {
			fx, fy := float32(x+f.OffsetX), float32(y+f.OffsetY)
			rad := float32(base * f.Scale * grow)
			vector.DrawFilledCircle(screen, fx, fy, rad, WithAlpha(config.ExplosionColor, a*0.7), true)
			vector.DrawFilledCircle(screen, fx, fy, rad*0.5, WithAlpha(color.RGBA{255, 255, 255, 255}, a), true)
		}
	}
}
