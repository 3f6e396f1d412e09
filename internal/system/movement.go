// internal/system/movement.go
package system

import (
	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/entity"
	"firewall-frenzy/internal/event"
)

// MovementSystem продвигает врагов вдоль пути волны
type MovementSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(world *entity.World, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update advances every enemy by one tick.
func (s *MovementSystem) Update() {
	pathLength := s.world.Path.Length()
	for _, enemy := range s.world.Enemies {
		s.UpdateEnemy(enemy, pathLength)
	}
}

// UpdateEnemy moves a live enemy by its speed. Reaching the end of the path
// kills it and subtracts its damage from base health, which may go negative.
func (s *MovementSystem) UpdateEnemy(enemy *component.Enemy, pathLength float64) {
	if !enemy.Alive {
		return
	}
	enemy.Progress += enemy.Speed
	if enemy.Progress >= pathLength {
		enemy.Alive = false
		s.world.State.Health -= enemy.Damage
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyLeaked,
			Data: event.EnemyData{ID: enemy.ID, Type: enemy.Type, Damage: enemy.Damage},
		})
	}
}
