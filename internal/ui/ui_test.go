package ui

import (
	"fmt"
	"testing"

	"firewall-frenzy/internal/app"
	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", 1: "I", 3: "III", 4: "IV", 9: "IX", 14: "XIV", 40: "XL"}
	for in, want := range cases {
		assert.Equal(t, want, toRoman(in), in)
	}
}

func TestWaveLabel(t *testing.T) {
	w := NewWaveIndicator(0, 0)
	assert.Empty(t, w.Label(0, ""))
	assert.Equal(t, "II  Small Business", w.Label(2, "Small Business"))
}

func TestPipColor(t *testing.T) {
	// полное здоровье: первая половина синяя, вторая красная
	assert.Equal(t, healthHighColor, pipColor(0, 20, 20))
	assert.Equal(t, healthHighColor, pipColor(9, 20, 20))
	assert.Equal(t, healthLowColor, pipColor(10, 20, 20))
	// половина и меньше: всё красное
	assert.Equal(t, healthLowColor, pipColor(0, 10, 20))
	assert.Equal(t, healthEmptyColor, pipColor(10, 10, 20))
	// 15: пять синих
	assert.Equal(t, healthHighColor, pipColor(4, 15, 20))
	assert.Equal(t, healthLowColor, pipColor(5, 15, 20))
}

func buttonCenter(b *Button) (int, int) {
	return (b.Rect.Min.X + b.Rect.Max.X) / 2, (b.Rect.Min.Y + b.Rect.Max.Y) / 2
}

func TestHUDClickSelectsTower(t *testing.T) {
	h := NewHUD(nil, config.ScreenWidth, config.ScreenHeight)
	h.Sync(app.Snapshot{}, true)

	for i, tt := range defs.TowerTypes {
		x, y := buttonCenter(h.towerButtons[i])
		cmd, hit := h.Click(x, y)
		assert.True(t, hit)
		assert.Equal(t, Command{Action: ActionSelectTower, Tower: tt}, cmd)
	}

	x, y := buttonCenter(h.startButton)
	cmd, hit := h.Click(x, y)
	assert.True(t, hit)
	assert.Equal(t, ActionStartWave, cmd.Action)
}

func TestHUDDisabledDuringWave(t *testing.T) {
	h := NewHUD(nil, config.ScreenWidth, config.ScreenHeight)
	h.Sync(app.Snapshot{WaveActive: true}, false)

	x, y := buttonCenter(h.towerButtons[0])
	cmd, hit := h.Click(x, y)
	assert.True(t, hit, "press on a disabled button is still swallowed")
	assert.Equal(t, ActionNone, cmd.Action)

	x, y = buttonCenter(h.startButton)
	cmd, _ = h.Click(x, y)
	assert.Equal(t, ActionNone, cmd.Action)
}

func TestHUDRestartOnlyAfterGameOver(t *testing.T) {
	h := NewHUD(nil, config.ScreenWidth, config.ScreenHeight)
	h.Sync(app.Snapshot{}, true)
	assert.False(t, h.restartButton.Visible)

	h.Sync(app.Snapshot{GameOver: true}, false)
	assert.True(t, h.restartButton.Visible)
	assert.False(t, h.startButton.Visible)
	x, y := buttonCenter(h.restartButton)
	cmd, _ := h.Click(x, y)
	assert.Equal(t, ActionRestart, cmd.Action)
}

func TestHUDMapClicksPassThrough(t *testing.T) {
	h := NewHUD(nil, config.ScreenWidth, config.ScreenHeight)
	_, hit := h.Click(500, 300)
	assert.False(t, hit)

	cmd, hit := h.Click(config.IndicatorOffsetX, config.IndicatorOffsetX)
	assert.True(t, hit)
	assert.Equal(t, ActionPause, cmd.Action)
}

func TestHUDHighlightsSelection(t *testing.T) {
	h := NewHUD(nil, config.ScreenWidth, config.ScreenHeight)
	h.Sync(app.Snapshot{Preview: &component.Selection{Type: defs.TowerHoneypot}}, true)
	for i, b := range h.towerButtons {
		assert.Equal(t, h.towerTypes[i] == defs.TowerHoneypot, b.Selected)
	}
}

func TestHUDInfoButton(t *testing.T) {
	h := NewHUD(nil, config.ScreenWidth, config.ScreenHeight)
	for _, snap := range []app.Snapshot{{}, {WaveActive: true}, {GameOver: true}} {
		h.Sync(snap, !snap.WaveActive && !snap.GameOver)
		x, y := buttonCenter(h.infoButton)
		cmd, hit := h.Click(x, y)
		assert.True(t, hit)
		assert.Equal(t, ActionInfo, cmd.Action, "info is available in every phase")
	}
}

func TestTowerInfoLines(t *testing.T) {
	lines := TowerInfoLines()
	assert.Len(t, lines, len(defs.TowerTypes))
	for i, tt := range defs.TowerTypes {
		def, err := defs.TowerStats(tt)
		if !assert.NoError(t, err) {
			continue
		}
		assert.Contains(t, lines[i], def.Title)
		assert.Contains(t, lines[i], fmt.Sprintf("range %g", def.Range))
		assert.Contains(t, lines[i], fmt.Sprintf("rate %g/s", def.FireRate))
		assert.Contains(t, lines[i], fmt.Sprintf("$%d", def.Cost))
	}
	assert.Contains(t, lines[0], "damage 1")
	assert.Contains(t, lines[3], "heals +1")
}
