// internal/app/snapshot.go
package app

import (
	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/types"
	"firewall-frenzy/pkg/polyline"
)

// EnemyView is an enemy with its derived position.
type EnemyView struct {
	ID             types.EntityID
	Type           defs.EnemyType
	X, Y           float64
	HealthFraction float64
}

// TowerView is a placed tower.
type TowerView struct {
	ID     types.EntityID
	Type   defs.TowerType
	X, Y   float64
	Range  float64
	Active bool
}

// ProjectileView is a projectile with its derived position.
type ProjectileView struct {
	Tower          defs.TowerType
	X, Y           float64
	StartX, StartY float64
}

// Snapshot is the read-only view handed to the presentation layer each frame.
type Snapshot struct {
	Path        polyline.Path
	Towers      []TowerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
	Credits     int
	Health      float64 // не меньше нуля
	Wave        int
	WaveName    string
	WaveActive  bool
	GameOver    bool
	Victory     bool
	Preview     *component.Selection
	Message     string
}

// Snapshot copies everything the renderer needs out of the world.
func (g *Game) Snapshot() Snapshot {
	w := g.World
	state := w.State
	snap := Snapshot{
		Path:        w.Path.Clone(),
		Towers:      make([]TowerView, 0, len(w.Towers)),
		Enemies:     make([]EnemyView, 0, len(w.Enemies)),
		Projectiles: make([]ProjectileView, 0, len(w.Projectiles)),
		Credits:     state.Credits,
		Health:      state.DisplayHealth(),
		Wave:        state.Wave,
		WaveActive:  state.WaveActive,
		GameOver:    state.GameOver,
		Victory:     state.Victory,
		Message:     g.message,
	}
	if state.Wave > 0 {
		snap.WaveName = defs.Wave(state.Wave).Name
	}
	if state.Selection != nil {
		sel := *state.Selection
		snap.Preview = &sel
	}
	for _, t := range w.Towers {
		snap.Towers = append(snap.Towers, TowerView{ID: t.ID, Type: t.Type, X: t.X, Y: t.Y, Range: t.Range, Active: t.Active})
	}
	for _, e := range w.Enemies {
		pos := e.Position(w.Path)
		snap.Enemies = append(snap.Enemies, EnemyView{ID: e.ID, Type: e.Type, X: pos.X, Y: pos.Y, HealthFraction: e.HealthFraction()})
	}
	for _, p := range w.Projectiles {
		pos := p.Position()
		snap.Projectiles = append(snap.Projectiles, ProjectileView{Tower: p.Tower, X: pos.X, Y: pos.Y, StartX: p.StartX, StartY: p.StartY})
	}
	return snap
}
