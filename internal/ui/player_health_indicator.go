// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/cheraljun/BoomBoomBoom/internal/config"
	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

const (
	LifeCircleRadius  = 6.0
	LifeCircleSpacing = 4.0
	healthBarWidth    = 120
	healthBarHeight   = 10
)

// PlayerHealthIndicator — жизни кружками и полоса здоровья под ними.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, lives, maxLives, health, maxHealth int, face font.Face) {
	for j := 0; j < maxLives; j++ {
		cx := i.X + LifeCircleRadius + float32(j)*(LifeCircleRadius*2+LifeCircleSpacing)
		cy := i.Y + LifeCircleRadius
		if j < lives {
			vector.DrawFilledCircle(screen, cx, cy, LifeCircleRadius, config.HealthColor, true)
		}
		vector.StrokeCircle(screen, cx, cy, LifeCircleRadius, 1, color.White, true)
	}

	ratio := 0.0
	if maxHealth > 0 {
		ratio = float64(health) / float64(maxHealth)
	}
	barY := i.Y + LifeCircleRadius*2 + 6
	render.Bar(screen, i.X, barY, healthBarWidth, healthBarHeight, ratio, render.HealthColor(ratio), config.ProgressBackColor)
	render.DrawText(screen, fmt.Sprintf("%d/%d", health, maxHealth), face, int(i.X+healthBarWidth+6), int(barY+healthBarHeight), config.TextLightColor)
}

func (i *PlayerHealthIndicator) GetHeight() float32 {
	return LifeCircleRadius*2 + 6 + healthBarHeight
}
