// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors of the static scene: background, path and host.
type Palette struct {
	Background color.RGBA
	Path       color.RGBA
	Title      color.RGBA
	Host       color.RGBA
	Range      color.RGBA
	HealthBack color.RGBA
	HealthFill color.RGBA
	Text       color.RGBA
	TextDark   color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
// Компоненты пересчитываются, т.к. ebiten ждёт premultiplied alpha.
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	k := a * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
