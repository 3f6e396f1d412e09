// internal/component/enemy.go
package component

import (
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/types"
	"firewall-frenzy/pkg/polyline"
)

// Enemy представляет вражескую сущность. Its position is never stored: it is
// derived from the wave path and Progress.
type Enemy struct {
	ID        types.EntityID
	Type      defs.EnemyType
	Progress  float64 // пройденная длина дуги пути
	Health    float64
	MaxHealth float64
	Speed     float64
	Damage    float64
	Reward    int
	Alive     bool
}

// NewEnemy creates a live enemy of type t at the start of the path.
func NewEnemy(id types.EntityID, t defs.EnemyType) (*Enemy, error) {
	def, err := defs.EnemyStats(t)
	if err != nil {
		return nil, err
	}
	return &Enemy{
		ID:        id,
		Type:      t,
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Damage:    def.Damage,
		Reward:    def.Reward,
		Alive:     true,
	}, nil
}

// Position returns the point of path at the enemy's progress.
func (e *Enemy) Position(path polyline.Path) polyline.Point {
	return path.PointAt(e.Progress)
}

// HealthFraction returns remaining health in [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 || e.Health <= 0 {
		return 0
	}
	if e.Health >= e.MaxHealth {
		return 1
	}
	return e.Health / e.MaxHealth
}

// TakeDamage subtracts amount from health. When health drops to zero or below
// the enemy dies and its reward is credited. It reports whether this call
// killed the enemy; a dead enemy is never credited twice.
func (e *Enemy) TakeDamage(amount float64, state *GameState) bool {
	if !e.Alive {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Alive = false
		state.Credits += e.Reward
		return true
	}
	return false
}
