// internal/system/placement.go
package system

import (
	"errors"
	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/entity"
	"firewall-frenzy/internal/event"
	"fmt"
)

// ErrInsufficientCredits is returned when the player cannot afford a tower.
var ErrInsufficientCredits = errors.New("not enough credits")

// PlacementSystem строит башни за кредиты
type PlacementSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewPlacementSystem(world *entity.World, eventDispatcher *event.Dispatcher) *PlacementSystem {
	return &PlacementSystem{world: world, eventDispatcher: eventDispatcher}
}

// PlaceTower builds a tower of type t at (x, y). The cost check and the
// deduction happen together; on failure nothing changes. The caller is
// responsible for refusing placement while a wave is running.
func (s *PlacementSystem) PlaceTower(x, y float64, t defs.TowerType) (*component.Tower, error) {
	cost, err := defs.TowerCost(t)
	if err != nil {
		return nil, err
	}
	state := s.world.State
	if state.Credits < cost {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlacementRejected,
			Data: event.TowerData{Type: t, X: x, Y: y, Cost: cost},
		})
		return nil, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientCredits, t, cost, state.Credits)
	}

	tower, err := component.NewTower(s.world.NewEntity(), x, y, t)
	if err != nil {
		return nil, err
	}
	s.world.Towers = append(s.world.Towers, tower)
	state.Credits -= cost
	state.Selection = nil

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: tower.ID, Type: t, X: x, Y: y, Cost: cost},
	})
	return tower, nil
}
