// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha scales the alpha channel by a in [0, 1]. Цвет
// премультиплицирован, поэтому каналы масштабируются вместе.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a <= 0 {
		return color.RGBA{}
	}
	if a >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// LerpColor mixes a and b, t=0 gives a.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// HealthColor goes from green at full health to red at zero.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return color.RGBA{60, 220, 90, 255}
	case ratio > 0.3:
		return color.RGBA{240, 200, 40, 255}
	}
	return color.RGBA{230, 50, 50, 255}
}
