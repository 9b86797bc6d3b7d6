package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"github.com/cheraljun/BoomBoomBoom/pkg/render"
)

// MissionIndicator показывает номер текущей миссии римскими цифрами.
type MissionIndicator struct {
	X, Y             float32
	Color            color.Color
	BossColor        color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewMissionIndicator(x, y float32, clr color.Color) *MissionIndicator {
	return &MissionIndicator{
		X:                x,
		Y:                y,
		Color:            clr,
		BossColor:        color.RGBA{230, 40, 40, 255},
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует «II / V». Во время боя с боссом номер красный.
func (i *MissionIndicator) Draw(screen *ebiten.Image, mission, total int, bossFight bool, face font.Face) {
	if mission <= 0 || total <= 0 {
		return
	}
	text := toRoman(mission) + " / " + toRoman(total)
	textColor := i.Color
	if bossFight {
		textColor = i.BossColor
	}
	x := int(i.X) - render.TextWidth(face, text)/2
	render.DrawTextOutlined(screen, text, face, x, int(i.Y), i.OutlineThickness, textColor, i.OutlineColor)
}
