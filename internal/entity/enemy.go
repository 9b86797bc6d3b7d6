// internal/entity/enemy.go
package entity

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
	"github.com/cheraljun/BoomBoomBoom/internal/flight"
	"github.com/cheraljun/BoomBoomBoom/internal/pattern"
	"github.com/cheraljun/BoomBoomBoom/internal/types"
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	BossTargetY = 120
	// босс вызывает подкрепление раз в 5 секунд
	BossSummonInterval = 300
	BossMinionCount    = 3
	bossSwayMargin     = 80
	bossSwayRange      = 40

	HoverTargetY = 120
	// крупный враг стреляет раз в 8 секунд в режиме зависания
	LargeFireInterval = 480
	hoverMinY         = 80
	hoverMaxY         = 160

	FormationShootDelay = 60
	// враг удаляется, когда уходит ниже экрана на столько пикселей
	OffscreenBelow = 50
)

// BossState holds fields only the boss uses.
type BossState struct {
	*pattern.Engine

	InPosition  bool
	MoveDir     float64
	VertDir     float64
	TargetY     float64
	Phase       int
	LastPhaseHP int
}

// Enemy — вражеский самолёт любого типа.
type Enemy struct {
	ID   types.EntityID
	Kind defs.EnemyKind
	component.Body

	HP    int
	MaxHP int
	Speed float64
	Score int

	Flight      flight.Pattern
	FlightFrame int
	Dirs        flight.Directions

	FormationID     int
	IsLeader        bool
	LeaderID        types.EntityID
	FormationOffset flight.Offset

	ShootTimer int

	HoverMode    bool
	hoverReached bool
	hoverDir     float64

	Boss *BossState

	gen   *pattern.Generator
	field Battlefield
	spawn SpawnPort
	audio AudioPort
}

func (e *Enemy) IsBoss() bool { return e.Boss != nil }

func (e *Enemy) Alive() bool { return e.HP > 0 }

// TakeDamage только уменьшает здоровье, поэтому HP ≤ MaxHP всегда.
func (e *Enemy) TakeDamage(d int) {
	if d > 0 {
		e.HP -= d
	}
}

// Offscreen reports an enemy past the bottom edge.
func (e *Enemy) Offscreen(screenH float64) bool {
	return e.Y > screenH+OffscreenBelow
}

func (e *Enemy) playBossCue() {
	if e.audio != nil {
		e.audio.PlayBossShoot()
	}
}

// Update двигает врага на один кадр.
func (e *Enemy) Update() {
	if e.Boss != nil {
		e.updateBoss()
	} else {
		e.updateFlight()
	}
	e.ShootTimer++
	if e.gen != nil {
		e.gen.Update()
	}
}

func (e *Enemy) screenWidth() float64 {
	w, _ := e.field.ScreenSize()
	return w
}

func (e *Enemy) updateFlight() {
	w := e.screenWidth()
	switch {
	case e.FormationID != 0:
		if e.IsLeader {
			e.fly()
		} else if leader := e.field.EnemyByID(e.LeaderID); leader != nil && leader.FormationID == e.FormationID {
			e.X = leader.X + e.FormationOffset.X
			e.Y = leader.Y + e.FormationOffset.Y
		} else {
			// ведущего нет, летим прямо вниз
			e.Y += e.Speed
		}
		e.X = flight.ClampToScreen(e.X, e.W, w)
	case e.Flight != flight.None:
		e.fly()
		e.X = flight.ClampToScreen(e.X, e.W, w)
	case e.Kind == defs.EnemyLarge:
		e.updateHover(w)
	default:
		e.Y += e.Speed
		if e.Kind == defs.EnemySmall {
			e.X += math.Sin(e.Y*0.02) * 2
			e.X = flight.ClampToScreen(e.X, e.W, w)
		}
	}
}

func (e *Enemy) fly() {
	if e.Flight == flight.None {
		e.Y += e.Speed
		return
	}
	e.FlightFrame++
	e.X, e.Y = flight.NextPosition(e.Flight, e.X, e.Y, e.Speed, e.FlightFrame, e.Dirs)
}

// updateHover: снижение до HoverTargetY, потом проход влево-вправо
// с небольшим покачиванием по вертикали.
func (e *Enemy) updateHover(screenW float64) {
	if !e.hoverReached {
		e.Y += e.Speed
		if e.Y >= HoverTargetY {
			e.hoverReached = true
			e.HoverMode = true
			e.Y = HoverTargetY
		}
		return
	}

	e.X += e.hoverDir
	margin := e.W/2 + 20
	if e.X <= margin || e.X >= screenW-margin {
		e.hoverDir = -e.hoverDir
	}
	osc := math.Sin(float64(e.ShootTimer)*0.02) * 40
	e.Y = utils.Clamp(HoverTargetY+osc*0.5, hoverMinY, hoverMaxY)
}

func (e *Enemy) updateBoss() {
	b := e.Boss
	if !b.InPosition {
		if e.Y < b.TargetY {
			e.Y += e.Speed
		} else {
			b.InPosition = true
		}
		return
	}

	w := e.screenWidth()
	e.X += b.MoveDir * e.Speed * 0.5
	if e.X < bossSwayMargin || e.X > w-bossSwayMargin {
		b.MoveDir = -b.MoveDir
	}
	e.Y += b.VertDir * e.Speed * 0.3
	if e.Y < b.TargetY-bossSwayRange || e.Y > b.TargetY+bossSwayRange {
		b.VertDir = -b.VertDir
	}

	if b.Phase == 1 && float64(e.HP) < float64(b.LastPhaseHP)*0.5 {
		b.Phase = 2
		e.Speed *= 1.2
	}

	if e.ShootTimer%BossSummonInterval == 0 && e.HP > 0 {
		e.SummonMinions()
	}

	b.Rotate()
	if shots := b.Tick(); len(shots) > 0 {
		e.spawn.SpawnEnemyBullets(shots)
	}
}

// SummonMinions выпускает трёх мелких врагов из-под корпуса.
func (e *Enemy) SummonMinions() {
	if e.spawn == nil {
		return
	}
	for i := 0; i < BossMinionCount; i++ {
		e.spawn.SpawnEnemy(defs.EnemySmall, e.X+float64(i-1)*40, e.Y+e.H/2)
	}
}

// CanShoot решает, стреляет ли враг в этом кадре. Мелкие и средние не стреляют.
func (e *Enemy) CanShoot() bool {
	switch {
	case e.Boss != nil:
		return e.Boss.CanShoot(e.Boss.InPosition, e.field)
	case e.Kind == defs.EnemyLarge:
		return e.HoverMode && e.ShootTimer%LargeFireInterval == 0
	}
	return false
}

// Shoot строит залп. Вызывать только после CanShoot.
func (e *Enemy) Shoot() []pattern.Shot {
	if e.Boss != nil {
		return e.Boss.Emit(pattern.Origin{
			X:           e.X,
			Y:           e.Y,
			Height:      e.H,
			ScreenWidth: e.screenWidth(),
		})
	}
	if e.gen == nil {
		return nil
	}
	tx, ty, ok := e.field.PlayerPosition()
	if !ok {
		tx, ty = e.X, e.Y+100
	}
	return e.gen.Generate(e.Kind, e.X, e.Y+e.H/2, tx, ty)
}
