// component/movement.go
package component

import "math"

// Position — компонент позиции (центр сущности)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости в пикселях за кадр
type Velocity struct {
	VX, VY float64
}

// VelocityFromAngle строит скорость по углу и модулю.
func VelocityFromAngle(angle, speed float64) Velocity {
	return Velocity{VX: math.Cos(angle) * speed, VY: math.Sin(angle) * speed}
}

func (v Velocity) Magnitude() float64 {
	return math.Hypot(v.VX, v.VY)
}
