// internal/ui/player_level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerLevelIndicator рисует уровень стволов полосой и звено квадратами.
type PlayerLevelIndicator struct {
	X, Y float32
}

const (
	levelBarWidth   = 118
	levelBarHeight  = 8
	levelRectWidth  = 16
	levelRectHeight = 10
	levelRectGap    = 6
	borderWidth     = 1
)

var (
	levelBarFill = color.RGBA{255, 215, 0, 220}
	wingmanFill  = color.RGBA{80, 160, 255, 220}
	borderColor  = color.White
)

func NewPlayerLevelIndicator(x, y float32) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y}
}

func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, bulletLevel, maxBulletLevel, wingmen, maxWingmen int) {
	vector.StrokeRect(screen, i.X, i.Y, levelBarWidth, levelBarHeight, borderWidth, borderColor, false)
	fillRatio := 0.0
	if maxBulletLevel > 0 {
		fillRatio = min(float64(bulletLevel)/float64(maxBulletLevel), 1)
	}
	fillWidth := float32(float64(levelBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, levelBarHeight-borderWidth*2, levelBarFill, false)
	}

	rectY := i.Y + levelBarHeight + 6
	for j := 0; j < maxWingmen; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, rectY, levelRectWidth, levelRectHeight, borderWidth, borderColor, false)
		if j < wingmen {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, wingmanFill, false)
		}
	}
}
