// internal/ui/tower_info.go
package ui

import (
	"fmt"
	"image/color"

	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	infoPanelWidth  = 520
	infoLineHeight  = 22
	infoPanelMargin = 20
)

// TowerInfoLines описывает каждую башню одной строкой, в порядке кнопок HUD.
func TowerInfoLines() []string {
	lines := make([]string, 0, len(defs.TowerTypes))
	for i, t := range defs.TowerTypes {
		def, err := defs.TowerStats(t)
		if err != nil {
			continue
		}
		effect := fmt.Sprintf("damage %-4g", def.Damage)
		if def.Support {
			effect = "heals +1  "
		}
		lines = append(lines, fmt.Sprintf("%d  %-13s range %-4g %s rate %g/s  $%d",
			i+1, def.Title, def.Range, effect, def.FireRate, def.Cost))
	}
	return lines
}

// DrawTowerInfo рисует окно со справкой по башням поверх затемнённого экрана.
func DrawTowerInfo(screen *ebiten.Image, face text.Face, screenWidth, screenHeight int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), color.RGBA{0, 0, 0, 128}, false)

	lines := TowerInfoLines()
	height := infoPanelMargin*2 + infoLineHeight*(len(lines)+2)
	x := float32(screenWidth-infoPanelWidth) / 2
	y := float32(screenHeight-height) / 2
	vector.DrawFilledRect(screen, x, y, infoPanelWidth, float32(height), config.HUDColor, true)
	vector.StrokeRect(screen, x, y, infoPanelWidth, float32(height), 2, config.PathColor, true)

	draw := func(s string, row int, clr color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+infoPanelMargin, float64(y)+infoPanelMargin+float64(row*infoLineHeight))
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, s, face, op)
	}
	draw("Tower Info", 0, config.TitleColor)
	for i, line := range lines {
		draw(line, i+1, config.TextLightColor)
	}
	draw("Click or press H to close", len(lines)+1, config.DisabledColor)
}
