// internal/state/menu_state.go
package state

import (
	"firewall-frenzy/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var menuLines = []string{
	"Stop the malware before it reaches the host.",
	"",
	"1-4 / buttons   choose firewall, IDS, honeypot, patch server",
	"click           place the selected tower (between waves)",
	"Space           start the next wave",
	"P / Esc         pause",
	"H / Info        tower stats",
	"R               restart",
	"",
	"Press Space or click to begin",
}

// MenuState — заставка с управлением
type MenuState struct {
	sm   *StateMachine
	face text.Face
	next func() State
}

// NewMenuState создаёт заставку; next строит состояние, в которое она переходит.
func NewMenuState(sm *StateMachine, face text.Face, next func() State) *MenuState {
	return &MenuState{sm: sm, face: face, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.next())
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	op := &text.DrawOptions{}
	op.GeoM.Scale(4, 4)
	op.GeoM.Translate(config.ScreenWidth/2, 140)
	op.ColorScale.ScaleWithColor(config.TitleColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, "Firewall Frenzy", m.face, op)

	for i, line := range menuLines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.ScreenWidth/2-220, float64(260+i*20))
		op.ColorScale.ScaleWithColor(config.TextLightColor)
		text.Draw(screen, line, m.face, op)
	}
}

func (m *MenuState) Exit() {}
