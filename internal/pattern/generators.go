package pattern

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/defs"
)

// Emit строит залп текущего рисунка. Часть слоёв рисунка FastRotation
// уходит в очередь отложенных залпов.
func (e *Engine) Emit(o Origin) []Shot {
	switch e.Pattern {
	case FixedCircle:
		return e.fixedCircle(o)
	case FastRotation:
		return e.fastRotation(o)
	case SingleSpiral, DualSpiral:
		return []Shot{aimed(o.X, o.Y+o.Height/2, e.RotationAngle, 3.5, 11)}
	case Windmill:
		return e.windmill(o)
	case Cross:
		return e.cross(o)
	case ComplexSweep:
		return e.complexSweep(o)
	case Rice:
		return e.rice(o)
	case VariableRotation:
		return e.variableRotation(o)
	}
	return nil
}

func aimed(x, y, angle, speed, size float64) Shot {
	return Shot{
		X:     x,
		Y:     y,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Size:  size,
		Owner: defs.EnemyBoss,
	}
}

func (e *Engine) fixedCircle(o Origin) []Shot {
	count := 8 + e.rng.Intn(6)
	step := 2 * math.Pi / float64(count)
	const speed = 3
	baseRadius := e.rng.Range(35, 50)
	layers := 1 + e.rng.Intn(7)
	spacing := e.rng.Range(25, 40)

	shots := make([]Shot, 0, count*layers)
	for layer := 0; layer < layers; layer++ {
		r := baseRadius + float64(layer)*spacing
		for i := 0; i < count; i++ {
			a := float64(i) * step
			shots = append(shots, aimed(o.X+math.Cos(a)*r, o.Y+math.Sin(a)*r, a, speed, 0))
		}
	}
	return shots
}

func (e *Engine) fastRotation(o Origin) []Shot {
	const (
		perLayer = 3
		spread   = math.Pi / 12
		speed    = 4
		spacing  = 25
		size     = 10
	)
	layers := 2 + e.rng.Intn(6)
	interval := 1 + e.rng.Intn(12)

	var now []Shot
	for layer := 0; layer < layers; layer++ {
		r := float64(layer) * spacing
		volley := make([]Shot, 0, perLayer)
		for i := 0; i < perLayer; i++ {
			a := e.RotationAngle + float64(i-1)*spread
			volley = append(volley, aimed(o.X+math.Cos(a)*r, o.Y+o.Height/2+math.Sin(a)*r, a, speed, size))
		}
		if layer == 0 {
			now = volley
			continue
		}
		e.Queue.Schedule(layer*interval, volley)
	}
	return now
}

func (e *Engine) windmill(o Origin) []Shot {
	arms := 3 + e.rng.Intn(3)
	var shots []Shot
	for arm := 0; arm < arms; arm++ {
		armAngle := e.RotationAngle + float64(arm)*math.Pi/2
		perArm := 2 + e.rng.Intn(3)
		for i := 0; i < perArm; i++ {
			a := armAngle + float64(i)*e.rng.Range(0.1, 0.2)
			shots = append(shots, aimed(o.X, o.Y+o.Height/2, a, 3.5+float64(i)*0.3, float64(10-i)))
		}
	}
	return shots
}

func (e *Engine) cross(o Origin) []Shot {
	arms := 6 + e.rng.Intn(3)
	step := 2 * math.Pi / float64(arms)
	y := o.Y + o.Height/2
	mirrorX := o.ScreenWidth - o.X

	shots := make([]Shot, 0, arms*2)
	for i := 0; i < arms; i++ {
		shots = append(shots, aimed(o.X, y, float64(i)*step+e.RotationAngle, 4, 11))
	}
	for i := 0; i < arms; i++ {
		shots = append(shots, aimed(mirrorX, y, float64(i)*step-e.RotationAngle, 4*0.8, 9))
	}
	return shots
}

func (e *Engine) complexSweep(o Origin) []Shot {
	count := 4 + e.rng.Intn(3)
	step := 2 * math.Pi / float64(count)
	shots := make([]Shot, 0, count)
	for i := 0; i < count; i++ {
		shots = append(shots, aimed(o.X, o.Y+o.Height/2, float64(i)*step+e.RotationAngle*0.3, 3.8, 12))
	}
	return shots
}

func (e *Engine) rice(o Origin) []Shot {
	count := 12 + e.rng.Intn(4)
	step := 2 * math.Pi / float64(count)
	layers := 2 + e.rng.Intn(2)
	shots := make([]Shot, 0, count*layers)
	for layer := 0; layer < layers; layer++ {
		speed := 2.5 + float64(layer)*0.5
		for i := 0; i < count; i++ {
			a := float64(i)*step + e.RotationAngle + float64(layer)*0.1
			shots = append(shots, aimed(o.X, o.Y+o.Height/2, a, speed, float64(8+layer)))
		}
	}
	return shots
}

func (e *Engine) variableRotation(o Origin) []Shot {
	accelPhase := 0
	if cfg, ok := e.Config.(*VariableRotationConfig); ok {
		accelPhase = cfg.AccelPhase
	}
	lines := 3 + e.rng.Intn(2)
	var shots []Shot
	for line := 0; line < lines; line++ {
		deg := float64(line)*360/float64(lines) + float64(accelPhase)*e.RotationSpeed*e.RotationDirection
		a := deg * math.Pi / 180
		perLine := 3 + e.rng.Intn(3)
		for i := 0; i < perLine; i++ {
			dist := 35 + float64(i)*e.rng.Range(40, 60)
			shots = append(shots, aimed(o.X+math.Cos(a)*dist, o.Y+math.Sin(a)*dist, a, 2, 0))
		}
	}
	return shots
}
