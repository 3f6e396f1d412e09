// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"firewall-frenzy/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и её название.
type WaveIndicator struct {
	X, Y         float64
	Color        color.RGBA
	OutlineColor color.RGBA
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.PathColor,
		OutlineColor: config.TextDarkColor,
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

// Label returns the indicator text, empty before the first wave.
func (i *WaveIndicator) Label(waveNumber int, name string) string {
	if waveNumber <= 0 {
		return ""
	}
	return fmt.Sprintf("%s  %s", toRoman(waveNumber), name)
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face text.Face, waveNumber int, name string) {
	label := i.Label(waveNumber, name)
	if label == "" {
		return
	}

	// Обводка
	for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		op := &text.DrawOptions{}
		op.GeoM.Translate(i.X+d[0], i.Y+d[1])
		op.ColorScale.ScaleWithColor(i.OutlineColor)
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, label, face, op)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(i.X, i.Y)
	op.ColorScale.ScaleWithColor(i.Color)
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, label, face, op)
}
