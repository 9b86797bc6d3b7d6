// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

// MenuButton — прямоугольная кнопка меню с подписью.
type MenuButton struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
	bgColor  color.RGBA
	fgColor  color.RGBA
	face     font.Face
}

func NewMenuButton(rect image.Rectangle, text string, face font.Face) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: color.RGBA{60, 70, 100, 255},
		fgColor: color.RGBA{240, 240, 240, 255},
		face:    face,
	}
}

func (b *MenuButton) Draw(screen *ebiten.Image) {
	bg := b.bgColor
	if b.Disabled {
		bg = render.DarkenColor(bg)
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{180, 180, 200, 255}, false)
	cx := b.Rect.Min.X + b.Rect.Dx()/2
	render.DrawTextCentered(screen, b.Text, b.face, cx, b.Rect.Min.Y+b.Rect.Dy()/2+5, b.fgColor)
}

// IsClicked ignores disabled buttons.
func (b *MenuButton) IsClicked(x, y int) bool {
	return !b.Disabled && image.Pt(x, y).In(b.Rect)
}
