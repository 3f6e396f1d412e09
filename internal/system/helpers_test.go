package system

import (
	"testing"

	"firewall-frenzy/internal/entity"
	"firewall-frenzy/internal/event"
	"firewall-frenzy/pkg/polyline"
)

// straightPath is a 1000 px horizontal path along y = 300.
var straightPath = polyline.Path{{X: 0, Y: 300}, {X: 500, Y: 300}, {X: 1000, Y: 300}}

// fixedGenerator returns the base path unchanged and counts calls.
type fixedGenerator struct {
	calls int
}

func (g *fixedGenerator) Generate(base polyline.Path) polyline.Path {
	g.calls++
	return base.Clone()
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	log        *eventLog
	generator  *fixedGenerator
	movement   *MovementSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	wave       *WaveSystem
	placement  *PlacementSystem
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		world:      entity.NewWorld(straightPath.Clone()),
		dispatcher: event.NewDispatcher(),
		log:        &eventLog{},
		generator:  &fixedGenerator{},
	}
	f.dispatcher.SubscribeAll(f.log)
	f.movement = NewMovementSystem(f.world, f.dispatcher)
	f.combat = NewCombatSystem(f.world, f.dispatcher)
	f.projectile = NewProjectileSystem(f.world)
	f.wave = NewWaveSystem(f.world, f.generator, straightPath, f.dispatcher)
	f.placement = NewPlacementSystem(f.world, f.dispatcher)
	return f
}
