// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

// BombButton shows the bombs left and drops one on click.
type BombButton struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
	Color         color.RGBA
}

func NewBombButton(x, y, radius float32, clr color.RGBA) *BombButton {
	return &BombButton{X: x, Y: y, Radius: radius, Color: clr}
}

// Draw рисует кнопку; без бомб она тусклая.
func (i *BombButton) Draw(screen *ebiten.Image, bombs int, face font.Face) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	clr := i.Color
	if bombs == 0 {
		clr = render.DarkenColor(clr)
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 2, color.White, true)
	render.DrawTextCentered(screen, strconv.Itoa(bombs), face, int(i.X), int(i.Y)+5, color.White)
}

func (i *BombButton) IsClicked(x, y int) bool {
	dx := float32(x) - i.X
	dy := float32(y) - i.Y
	return dx*dx+dy*dy <= i.Radius*i.Radius
}

func (i *BombButton) HandleClick() {
	i.LastClickTime = time.Now()
}
