// internal/entity/ecs.go
package entity

import (
	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/types"
	"firewall-frenzy/pkg/polyline"
)

// World is the whole mutable state of one match. A single owner (the tick
// driver) replaces it wholesale on restart.
type World struct {
	Tick        int // тики с начала текущей волны
	NextID      types.EntityID
	State       *component.GameState
	Path        polyline.Path
	Towers      []*component.Tower
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	SpawnQueue  []component.SpawnEntry
}

// NewWorld returns a world with fresh initial values and the given path.
func NewWorld(path polyline.Path) *World {
	return &World{
		NextID: 1,
		State: &component.GameState{
			Credits: config.StartingCredits,
			Health:  config.BaseHealth,
		},
		Path: path,
	}
}

// NewEntity allocates a fresh entity id.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AliveEnemies counts enemies that are still alive.
func (w *World) AliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// Sweep removes dead enemies and finished projectiles, keeping order.
func (w *World) Sweep() {
	enemies := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.Alive {
			enemies = append(enemies, e)
		}
	}
	for i := len(enemies); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = enemies

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Alive {
			projectiles = append(projectiles, p)
		}
	}
	for i := len(projectiles); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = projectiles
}
