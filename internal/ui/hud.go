// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"firewall-frenzy/internal/app"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Action is what a HUD click asks the game to do.
type Action int

const (
	ActionNone Action = iota
	ActionSelectTower
	ActionStartWave
	ActionRestart
	ActionPause
	ActionInfo
)

// Command is a HUD action with its argument.
type Command struct {
	Action Action
	Tower  defs.TowerType
}

// HUD — нижняя панель с кнопками и статистикой плюс индикаторы в углу.
type HUD struct {
	face   text.Face
	top    int
	width  int
	height int

	towerButtons  []*Button
	towerTypes    []defs.TowerType
	startButton   *Button
	restartButton *Button
	infoButton    *Button

	Pause     *PauseButton
	indicator *StateIndicator
	wave      *WaveIndicator
	health    *HostHealthIndicator
	statsX    int

	lastWaveActive bool
	lastGameOver   bool
}

func NewHUD(face text.Face, screenWidth, screenHeight int) *HUD {
	top := screenHeight - config.HUDHeight
	buttonY := top + (config.HUDHeight-config.ButtonHeight)/2
	slot := func(i int) image.Rectangle {
		x := config.ButtonSpacing + i*(config.ButtonWidth+config.ButtonSpacing)
		return image.Rect(x, buttonY, x+config.ButtonWidth, buttonY+config.ButtonHeight)
	}

	h := &HUD{
		face:   face,
		top:    top,
		width:  screenWidth,
		height: screenHeight,
	}
	for i, t := range defs.TowerTypes {
		def := defs.MustTowerStats(t)
		label := fmt.Sprintf("%s $%d", def.Title, def.Cost)
		h.towerButtons = append(h.towerButtons, NewButton(slot(i), label, config.ButtonColor))
		h.towerTypes = append(h.towerTypes, t)
	}
	next := len(defs.TowerTypes)
	h.startButton = NewButton(slot(next), "Start Wave", config.WaveStateColor)
	h.restartButton = NewButton(slot(next), "Restart", config.TitleColor)
	h.restartButton.Visible = false
	h.statsX = slot(next+1).Min.X
	infoX := screenWidth - config.ButtonSpacing - config.InfoButtonWidth
	h.infoButton = NewButton(image.Rect(infoX, buttonY, infoX+config.InfoButtonWidth, buttonY+config.ButtonHeight), "Info (H)", config.ButtonColor)

	off := float32(config.IndicatorOffsetX)
	h.Pause = NewPauseButton(off, off, 9, config.TextLightColor, config.TextLightColor)
	h.indicator = NewStateIndicator(off*2, off, 9)
	h.wave = NewWaveIndicator(float64(off*3), float64(off))
	h.health = NewHostHealthIndicator(float32(h.statsX), float32(top+22))
	return h
}

// Sync updates button states from the latest snapshot.
func (h *HUD) Sync(snap app.Snapshot, canBuild bool) {
	for i, b := range h.towerButtons {
		b.Enabled = canBuild
		b.Selected = snap.Preview != nil && snap.Preview.Type == h.towerTypes[i]
	}
	h.startButton.Visible = !snap.GameOver
	h.startButton.Enabled = !snap.WaveActive && !snap.GameOver
	h.restartButton.Visible = snap.GameOver

	if snap.WaveActive != h.lastWaveActive || snap.GameOver != h.lastGameOver {
		h.indicator.Pulse()
	}
	h.lastWaveActive = snap.WaveActive
	h.lastGameOver = snap.GameOver
}

// Click maps a pointer press to a command. The second result reports whether
// the press landed on the HUD at all; such presses never reach the map, even
// when the button under them is disabled.
func (h *HUD) Click(x, y int) (Command, bool) {
	if h.Pause.Contains(x, y) {
		return Command{Action: ActionPause}, true
	}
	if y < h.top {
		return Command{}, false
	}
	for i, b := range h.towerButtons {
		if b.Contains(x, y) && b.Enabled {
			return Command{Action: ActionSelectTower, Tower: h.towerTypes[i]}, true
		}
	}
	if h.startButton.Contains(x, y) && h.startButton.Enabled {
		return Command{Action: ActionStartWave}, true
	}
	if h.restartButton.Contains(x, y) && h.restartButton.Enabled {
		return Command{Action: ActionRestart}, true
	}
	if h.infoButton.Contains(x, y) {
		return Command{Action: ActionInfo}, true
	}
	return Command{}, true
}

// Draw рисует панель, индикаторы и сообщение.
func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot, cursorX, cursorY int) {
	vector.DrawFilledRect(screen, 0, float32(h.top), float32(h.width), config.HUDHeight, config.HUDColor, false)

	for _, b := range h.towerButtons {
		b.Draw(screen, h.face, b.Contains(cursorX, cursorY))
	}
	h.startButton.Draw(screen, h.face, h.startButton.Contains(cursorX, cursorY))
	h.restartButton.Draw(screen, h.face, h.restartButton.Contains(cursorX, cursorY))
	h.infoButton.Draw(screen, h.face, h.infoButton.Contains(cursorX, cursorY))

	stats := fmt.Sprintf("Credits: %d   Health: %.0f", snap.Credits, snap.Health)
	h.drawText(screen, stats, float64(h.statsX), float64(h.top+11), config.TextLightColor, text.AlignStart)
	h.health.Draw(screen, snap.Health, config.BaseHealth)

	h.Pause.Draw(screen)
	h.indicator.Draw(screen, h.phaseColor(snap))
	h.wave.Draw(screen, h.face, snap.Wave, snap.WaveName)

	if snap.Message != "" {
		DrawMessage(screen, h.face, snap.Message, float64(h.width)/2, 70)
	}
}

func (h *HUD) phaseColor(snap app.Snapshot) color.Color {
	switch {
	case snap.GameOver && snap.Victory:
		return config.HealthFillColor
	case snap.GameOver:
		return config.HostColor
	case snap.WaveActive:
		return config.WaveStateColor
	}
	return config.BuildStateColor
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, h.face, op)
}

// DrawMessage рисует всплывающее сообщение по центру (cx, cy).
func DrawMessage(screen *ebiten.Image, face text.Face, msg string, cx, cy float64) {
	w, lh := text.Measure(msg, face, 0)
	pad := 8.0
	vector.DrawFilledRect(screen, float32(cx-w/2-pad), float32(cy-lh/2-pad/2), float32(w+pad*2), float32(lh+pad), config.HUDColor, true)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, msg, face, op)
}
