// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthRows          = 2
	HealthCols          = 10
	HealthCircleRadius  = 4.0
	HealthCircleSpacing = 3.0
)

var (
	healthHighColor  = color.RGBA{0x4a, 0x90, 0xe2, 255}
	healthLowColor   = color.RGBA{0xff, 0x33, 0x33, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// HostHealthIndicator отображает здоровье хоста сеткой кружков.
type HostHealthIndicator struct {
	X, Y float32
}

// NewHostHealthIndicator создает новый индикатор здоровья.
func NewHostHealthIndicator(x, y float32) *HostHealthIndicator {
	return &HostHealthIndicator{X: x, Y: y}
}

// pipColor: заполненные кружки красные, если здоровья не больше половины;
// иначе «избыток» сверх половины синий.
func pipColor(j, health, maxHealth int) color.RGBA {
	if j >= health {
		return healthEmptyColor
	}
	half := maxHealth / 2
	if health > half && j < health-half {
		return healthHighColor
	}
	return healthLowColor
}

// Draw рисует индикатор. Дробное здоровье округляется вверх.
func (i *HostHealthIndicator) Draw(screen *ebiten.Image, health float64, maxHealth int) {
	pips := int(math.Ceil(health))
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row := j / HealthCols
		col := j % HealthCols
		x := i.X + float32(col)*step + HealthCircleRadius
		y := i.Y + float32(row)*step + HealthCircleRadius

		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, pipColor(j, pips, maxHealth), true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, color.White, true)
	}
}
