// internal/entity/item.go
package entity

import (
	"math"

	"github.com/cheraljun/BoomBoomBoom/internal/component"
	"github.com/cheraljun/BoomBoomBoom/internal/defs"
)

const (
	ItemSpeed = 2
	ItemSize  = 40
	// itemSwayAmplitude и itemSwayPeriod задают S-образное падение бонуса
	itemSwayAmplitude = 30
	itemSwayPeriod    = 300
)

// Item is a power-up dropped by a cargo plane.
type Item struct {
	component.Body
	Kind   defs.ItemKind
	StartX float64
	StartY float64
	Frame  int
}

func NewItem(x, y float64, kind defs.ItemKind) *Item {
	return &Item{
		Body:   component.Body{Position: component.Position{X: x, Y: y}, Size: component.Size{W: ItemSize, H: ItemSize}},
		Kind:   kind,
		StartX: x,
		StartY: y,
	}
}

func (it *Item) Update() {
	it.Frame++
	progress := (it.Y - it.StartY) / itemSwayPeriod
	it.X = it.StartX + math.Sin(progress*2*math.Pi)*itemSwayAmplitude
	it.Y += ItemSpeed
}

func (it *Item) Offscreen(screenH float64) bool { return it.Y > screenH+50 }
