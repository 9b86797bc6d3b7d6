package pattern

import (
	"github.com/cheraljun/BoomBoomBoom/internal/utils"
)

const (
	// пауза между рисунками после очистки экрана
	ClearCooldown = 60
	// InitialSpiralMin и InitialSpiralSpread задают длительность спирали 600..1199 кадров
	InitialSpiralMin    = 600
	InitialSpiralSpread = 600
)

// BulletCounter считает вражеские снаряды в расширенных границах экрана.
type BulletCounter interface {
	CountEnemyBulletsInBounds() int
}

// Origin is where the boss fires from.
type Origin struct {
	X, Y        float64
	Height      float64
	ScreenWidth float64
}

// Engine — конечный автомат рисунков босса. Порядок состояний:
// позиционирование, ожидание очистки, кулдаун, активный рисунок.
// Рисунок меняется только после полного цикла ожидания очистки.
type Engine struct {
	Pattern         Kind
	Timer           int
	Cooldown        int
	WaitingForClear bool
	Active          bool

	RotationAngle     float64
	RotationSpeed     float64
	RotationDirection float64

	Config Config
	Queue  *ShotQueue

	// OnCue вызывается на первом выстреле каждой активации рисунка.
	OnCue func()

	spiralMax int
	cued      bool
	rng       *utils.PRNGService
}

func NewEngine(rng *utils.PRNGService, cue func()) *Engine {
	return &Engine{
		RotationDirection: 1,
		Queue:             NewShotQueue(),
		OnCue:             cue,
		spiralMax:         InitialSpiralMin + rng.Intn(InitialSpiralSpread),
		rng:               rng,
	}
}

// CanShoot решает, стреляет ли босс в этом кадре. inPosition означает, что босс
// закончил снижение.
func (e *Engine) CanShoot(inPosition bool, bullets BulletCounter) bool {
	if !inPosition {
		return false
	}

	if e.WaitingForClear {
		if bullets == nil || bullets.CountEnemyBulletsInBounds() == 0 {
			e.WaitingForClear = false
			e.Cooldown = ClearCooldown
			e.Pattern = e.Pattern.Next()
		}
		return false
	}

	if e.Cooldown > 0 {
		e.Cooldown--
		return false
	}

	if !e.Active {
		e.Active = true
		e.Timer = 0
		e.Setup()
	}

	fire := e.ShouldFire()
	if fire && !e.cued {
		e.cued = true
		if e.OnCue != nil {
			e.OnCue()
		}
	}
	return fire
}

func (e *Engine) sign() float64 { return e.rng.Sign() }

// Setup перекатывает параметры текущего рисунка. Номер рисунка не меняется.
func (e *Engine) Setup() {
	e.cued = false
	switch e.Pattern {
	case FixedCircle:
		e.RotationSpeed = 0
		e.RotationDirection = 1
		e.Config = &CircleConfig{
			Density: 8 + e.rng.Intn(5),
			Radius:  e.rng.Range(30, 50),
		}
	case FastRotation:
		e.RotationSpeed = e.rng.Range(0.12, 0.18)
		e.RotationDirection = e.sign()
		lines := 2
		if e.rng.Chance(0.3) {
			lines = 3
		}
		e.Config = &FastRotationConfig{Lines: lines}
	case SingleSpiral:
		e.RotationSpeed = e.rng.Range(0.20, 0.40)
		e.RotationDirection = e.sign()
		e.Config = &SingleSpiralConfig{MaxDuration: e.spiralMax}
	case Windmill:
		e.RotationSpeed = e.rng.Range(0.06, 0.10)
		e.RotationDirection = e.sign()
		arms := 2
		if e.rng.Chance(0.3) {
			arms = 3
		}
		e.Config = &WindmillConfig{Arms: arms, ArmLength: e.rng.Range(40, 60)}
	case Cross:
		e.RotationSpeed = e.rng.Range(0.04, 0.08)
		e.RotationDirection = e.sign()
		e.Config = &CrossConfig{Density: 4 + e.rng.Intn(3), Angle: e.rng.Range(45, 135)}
	case ComplexSweep:
		e.RotationSpeed = e.rng.Range(0.10, 0.15)
		e.RotationDirection = e.sign()
		e.Config = &SweepConfig{Angle: e.rng.Range(60, 120), Bullets: 5 + e.rng.Intn(4)}
	case Rice:
		e.RotationSpeed = e.rng.Range(0.02, 0.06)
		e.RotationDirection = e.sign()
		e.Config = &RiceConfig{Layers: 2 + e.rng.Intn(2), Spacing: e.rng.Range(15, 25)}
	case DualSpiral:
		e.RotationSpeed = e.rng.Range(0.20, 0.40)
		total := 1020 + e.rng.Intn(600)
		phase1 := 300 + e.rng.Intn(total-600)
		dir1 := e.sign()
		e.RotationDirection = dir1
		e.Config = &DualSpiralConfig{
			Phase1Duration: phase1,
			Phase2Duration: total - phase1,
			Direction1:     dir1,
			Direction2:     -dir1,
		}
	case VariableRotation:
		e.RotationDirection = e.sign()
		e.Config = &VariableRotationConfig{
			BaseSpeed:    0.02,
			Acceleration: e.rng.Range(0.001, 0.002),
			MaxSpeed:     0.2,
		}
	}
}

// finish переводит рисунок в ожидание очистки экрана.
func (e *Engine) finish() {
	e.WaitingForClear = true
	e.Active = false
}

// ShouldFire продвигает таймер рисунка и применяет его ритм.
func (e *Engine) ShouldFire() bool {
	e.Timer++
	t := e.Timer

	switch e.Pattern {
	case FixedCircle:
		if t == 1 {
			e.finish()
			return true
		}
	case FastRotation:
		cfg, _ := e.Config.(*FastRotationConfig)
		switch {
		case t <= 45 && t%2 == 0:
			return true
		case t == 46:
			e.RotationDirection = -e.RotationDirection
			if cfg != nil {
				cfg.Phase = 1
			}
		case t >= 47 && t <= 92 && (t-47)%2 == 0:
			return true
		case t > 92:
			e.finish()
		}
	case SingleSpiral:
		limit := e.spiralMax
		if cfg, ok := e.Config.(*SingleSpiralConfig); ok {
			limit = cfg.MaxDuration
		}
		if t <= limit && t%3 == 0 {
			return true
		}
		if t > limit {
			e.finish()
			e.spiralMax = InitialSpiralMin + e.rng.Intn(InitialSpiralSpread)
		}
	case Windmill:
		if t <= 120 && t%5 == 0 {
			return true
		}
		if t > 120 {
			e.finish()
		}
	case Cross:
		if t == 1 || t == 31 || t == 61 {
			return true
		}
		if t > 90 {
			e.finish()
		}
	case ComplexSweep:
		if t <= 100 && t%3 == 0 {
			return true
		}
		if t > 100 {
			e.finish()
		}
	case Rice:
		if t <= 100 && t%20 == 1 {
			return true
		}
		if t > 100 {
			e.finish()
		}
	case DualSpiral:
		return e.dualSpiralStep()
	case VariableRotation:
		return e.variableRotationStep(t)
	}
	return false
}

func (e *Engine) dualSpiralStep() bool {
	cfg, ok := e.Config.(*DualSpiralConfig)
	if !ok {
		e.finish()
		return false
	}
	cfg.Duration++
	if cfg.Phase == 0 {
		if cfg.Duration <= cfg.Phase1Duration {
			e.RotationDirection = cfg.Direction1
			return true
		}
		cfg.Phase = 1
		e.RotationDirection = cfg.Direction2
		return false
	}
	if cfg.Duration <= cfg.Phase1Duration+cfg.Phase2Duration {
		e.RotationDirection = cfg.Direction2
		return true
	}
	e.finish()
	return false
}

func (e *Engine) variableRotationStep(t int) bool {
	cfg, ok := e.Config.(*VariableRotationConfig)
	if !ok {
		e.finish()
		return false
	}
	if t <= 180 && t%2 == 0 {
		cfg.AccelPhase++
		cycle := float64(cfg.AccelPhase%120) / 120
		if cycle < 0.5 {
			e.RotationSpeed = cfg.BaseSpeed + cycle*2*cfg.MaxSpeed
		} else {
			e.RotationSpeed = cfg.MaxSpeed - (cycle-0.5)*2*cfg.MaxSpeed
			if cycle > 0.9 {
				e.RotationDirection = -e.RotationDirection
			}
		}
		return true
	}
	if t > 180 {
		e.finish()
	}
	return false
}

// Rotate поворачивает угол на скорость вращения, угол остаётся в [0, 2π).
func (e *Engine) Rotate() {
	e.RotationAngle = utils.NormalizeAngle(e.RotationAngle + e.RotationSpeed*e.RotationDirection)
}

// Tick продвигает очередь отложенных залпов.
func (e *Engine) Tick() []Shot {
	return e.Queue.Tick()
}

// SpiralMax is the length of the next spiral (pattern 2).
func (e *Engine) SpiralMax() int { return e.spiralMax }
