// internal/app/tower_management.go
package app

import (
	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/defs"
	"fmt"
)

// PlaceTower attempts to place a tower of type t at (x, y). Credits are
// checked and deducted together; a refusal leaves the state untouched.
func (g *Game) PlaceTower(x, y float64, t defs.TowerType) error {
	_, err := g.PlacementSystem.PlaceTower(x, y, t)
	return err
}

// SelectTower sets the pending placement to type t.
func (g *Game) SelectTower(t defs.TowerType) error {
	def, err := defs.TowerStats(t)
	if err != nil {
		return err
	}
	g.World.State.Selection = &component.Selection{Type: t}
	g.showMessage(fmt.Sprintf("%s selected - Click to place ($%d)", def.Title, def.Cost))
	return nil
}

// HandlePointerDown places the selected tower at (x, y). Clicks during a wave
// or without a selection are ignored and report false.
func (g *Game) HandlePointerDown(x, y float64) (bool, error) {
	state := g.World.State
	if state.WaveActive || state.Selection == nil {
		return false, nil
	}
	if err := g.PlaceTower(x, y, state.Selection.Type); err != nil {
		return false, err
	}
	return true, nil
}

// HandlePointerMove moves the placement preview. It has no effect on the simulation.
func (g *Game) HandlePointerMove(x, y float64) {
	if sel := g.World.State.Selection; sel != nil {
		sel.X = x
		sel.Y = y
	}
}

// CanBuild reports whether tower buttons should be enabled.
func (g *Game) CanBuild() bool {
	state := g.World.State
	return !state.WaveActive && !state.GameOver
}
