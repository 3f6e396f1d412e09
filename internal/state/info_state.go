// internal/state/info_state.go
package state

import (
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Убеждаемся, что InfoState соответствует интерфейсу State
var _ State = (*InfoState)(nil)

// InfoState показывает справку по башням. Симуляция стоит, пока окно открыто.
type InfoState struct {
	stateMachine  *StateMachine
	previousState *PlayState
	face          text.Face
}

func NewInfoState(sm *StateMachine, prevState *PlayState, face text.Face) *InfoState {
	return &InfoState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *InfoState) Enter() {}

func (s *InfoState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *InfoState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	ui.DrawTowerInfo(screen, s.face, config.ScreenWidth, config.ScreenHeight)
}

func (s *InfoState) Exit() {}
