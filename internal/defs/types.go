// internal/defs/types.go
package defs

import (
	"errors"
	"image/color"
)

var (
	// ErrUnknownEnemyType is returned for enemy types outside the closed set.
	ErrUnknownEnemyType = errors.New("unknown enemy type")
	// ErrUnknownTowerType is returned for tower types outside the closed set.
	ErrUnknownTowerType = errors.New("unknown tower type")
)

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  color.RGBA
	Glyph  string  // короткая подпись внутри круга
	Radius float32 // радиус круга в логических пикселях
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
