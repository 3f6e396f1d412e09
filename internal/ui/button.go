// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"firewall-frenzy/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect    image.Rectangle
	Text    string
	BgColor color.RGBA
	Enabled  bool
	Visible  bool
	Selected bool // подсветка выбранной башни
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string, bg color.RGBA) *Button {
	return &Button{
		Rect:    rect,
		Text:    text,
		BgColor: bg,
		Enabled: true,
		Visible: true,
	}
}

// Contains проверяет попадание точки в видимую кнопку.
func (b *Button) Contains(x, y int) bool {
	return b.Visible && image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face text.Face, hovered bool) {
	if !b.Visible {
		return
	}
	bg := b.BgColor
	switch {
	case !b.Enabled:
		bg = config.DisabledColor
	case hovered:
		bg = lighten(bg)
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	if b.Selected {
		vector.StrokeRect(screen, x, y, w, h, 3, config.TitleColor, true)
	} else {
		vector.StrokeRect(screen, x, y, w, h, 1, config.TextLightColor, true)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Rect.Min.X)+float64(b.Rect.Dx())/2, float64(b.Rect.Min.Y)+float64(b.Rect.Dy())/2)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, b.Text, face, op)
}

func lighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 {
		return uint8(min(255, int(v)+40))
	}
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}
