// internal/system/combat.go
package system

import (
	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/entity"
	"firewall-frenzy/internal/event"
	"firewall-frenzy/pkg/polyline"
	"math"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update runs every tower once, in placement order.
func (s *CombatSystem) Update() {
	for _, tower := range s.world.Towers {
		s.UpdateTower(tower)
	}
}

// UpdateTower accumulates one tick into the cooldown timer and lets the tower act.
func (s *CombatSystem) UpdateTower(tower *component.Tower) {
	tower.Cooldown += config.TickDuration
	tower.Active = false

	def := defs.MustTowerStats(tower.Type)
	if def.Support {
		s.heal(tower)
		return
	}

	target, pos := s.findNearestEnemyInRange(tower)
	if target == nil || !tower.Ready() {
		return
	}

	s.world.Projectiles = append(s.world.Projectiles, &component.Projectile{
		StartX:  tower.X,
		StartY:  tower.Y,
		TargetX: pos.X,
		TargetY: pos.Y,
		Speed:   config.ProjectileStep,
		Tower:   tower.Type,
		Alive:   true,
	})
	tower.Cooldown = 0
	tower.Active = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TowerFired,
		Data: event.TowerData{ID: tower.ID, Type: tower.Type, X: tower.X, Y: tower.Y, Target: target.ID},
	})

	// Урон наносится сразу, снаряд только визуальный
	if target.TakeDamage(tower.Damage, s.world.State) {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyData{ID: target.ID, Type: target.Type, Reward: target.Reward},
		})
	}
}

// heal restores one point of base health while a wave is running.
func (s *CombatSystem) heal(tower *component.Tower) {
	state := s.world.State
	if !state.WaveActive || !tower.Ready() || state.Health >= config.BaseHealth {
		return
	}
	state.Health = math.Min(state.Health+1, config.BaseHealth)
	tower.Cooldown = 0
	tower.Active = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BaseHealed,
		Data: event.TowerData{ID: tower.ID, Type: tower.Type, X: tower.X, Y: tower.Y},
	})
}

// findNearestEnemyInRange returns the live enemy closest to the tower with a
// distance strictly below its range. Ties go to the first one found.
func (s *CombatSystem) findNearestEnemyInRange(tower *component.Tower) (*component.Enemy, polyline.Point) {
	var nearest *component.Enemy
	var nearestPos polyline.Point
	minDistance := tower.Range
	origin := polyline.Point{X: tower.X, Y: tower.Y}
	for _, enemy := range s.world.Enemies {
		if !enemy.Alive {
			continue
		}
		pos := enemy.Position(s.world.Path)
		if d := polyline.Distance(origin, pos); d < minDistance {
			minDistance = d
			nearest = enemy
			nearestPos = pos
		}
	}
	return nearest, nearestPos
}
