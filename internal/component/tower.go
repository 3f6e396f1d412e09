// internal/component/tower.go
package component

import (
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/types"
)

// Tower is a stationary defence placed by the player. Towers are never removed.
type Tower struct {
	ID       types.EntityID
	X, Y     float64
	Type     defs.TowerType
	Range    float64
	Damage   float64
	FireRate float64 // Скорострельность (выстрелов в секунду)
	Cooldown float64 // секунд с последнего действия, не ограничено сверху
	Active   bool    // сработала ли башня в текущем тике
}

// NewTower creates a tower of type t at (x, y).
func NewTower(id types.EntityID, x, y float64, t defs.TowerType) (*Tower, error) {
	def, err := defs.TowerStats(t)
	if err != nil {
		return nil, err
	}
	return &Tower{
		ID:       id,
		X:        x,
		Y:        y,
		Type:     t,
		Range:    def.Range,
		Damage:   def.Damage,
		FireRate: def.FireRate,
	}, nil
}

// Threshold returns the number of seconds the cooldown timer must reach before acting.
func (t *Tower) Threshold() float64 {
	return 1 / t.FireRate
}

// Ready reports whether the cooldown has reached the threshold.
func (t *Tower) Ready() bool {
	return t.Cooldown >= t.Threshold()
}
