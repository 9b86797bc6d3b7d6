package render

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// LoadFace загружает TTF-шрифт. Пустой путь даёт встроенный моноширинный.
func LoadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	fontData, err := os.ReadFile(path)
	if err != nil {
		return basicfont.Face7x13, fmt.Errorf("failed to read font %s: %w", path, err)
	}
	tt, err := opentype.Parse(fontData)
	if err != nil {
		return basicfont.Face7x13, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

func TextWidth(face font.Face, s string) int {
	b := text.BoundString(face, s)
	return b.Max.X - b.Min.X
}

// DrawText рисует строку, y задаёт базовую линию.
func DrawText(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x, y, clr)
}

// DrawTextCentered рисует строку с центром по x.
func DrawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	text.Draw(dst, s, face, cx-TextWidth(face, s)/2, y, clr)
}

// DrawTextOutlined draws a t pixel outline under the text.
func DrawTextOutlined(dst *ebiten.Image, s string, face font.Face, x, y, t int, clr, outline color.Color) {
	for dy := -t; dy <= t; dy++ {
		for dx := -t; dx <= t; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(dst, s, face, x+dx, y+dy, outline)
		}
	}
	text.Draw(dst, s, face, x, y, clr)
}
