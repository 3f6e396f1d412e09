// internal/component/game_state.go
package component

import "firewall-frenzy/internal/defs"

// Selection is the pending tower placement chosen in the HUD.
type Selection struct {
	Type defs.TowerType
	X, Y float64 // позиция превью под курсором
}

// GameState — компонент для хранения состояния матча
type GameState struct {
	Credits int
	// Health may go below zero; it is clamped for display only.
	Health     float64
	Wave       int
	WaveActive bool
	GameOver   bool
	Victory    bool
	Selection  *Selection
}

// DisplayHealth returns health clamped to zero.
func (s *GameState) DisplayHealth() float64 {
	if s.Health < 0 {
		return 0
	}
	return s.Health
}
