// internal/app/game.go
package app

import (
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/entity"
	"firewall-frenzy/internal/event"
	"firewall-frenzy/internal/system"
	"firewall-frenzy/internal/utils"
	"firewall-frenzy/pkg/polyline"
	"fmt"

	"github.com/google/uuid"
)

// Options configures a new Game.
type Options struct {
	// Seed for path jitter. Zero picks a time-based seed.
	Seed int64
}

// Game holds the match state and drives the fixed-tick simulation. It is the
// single owner of the World; presentation code reads Snapshot and writes only
// through the input entry points, always between two steps.
type Game struct {
	World            *entity.World
	MatchID          string
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	WaveSystem       *system.WaveSystem
	PlacementSystem  *system.PlacementSystem
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService

	generator *polyline.Generator
	basePath  polyline.Path

	message      string
	messageTicks int
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	rng := utils.NewPRNGService(opts.Seed)
	bounds := polyline.Bounds{
		MinX: config.PathMargin,
		MinY: config.PathMargin,
		MaxX: config.ScreenWidth - config.PathMargin,
		MaxY: config.ScreenHeight - config.PathMargin,
	}
	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		Rng:             rng,
		generator:       polyline.NewGenerator(config.PathJitter, bounds, rng),
		basePath:        BasePath(),
	}
	g.reset()

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.TowerPlaced,
		event.PlacementRejected,
		event.WaveStarted,
		event.GameWon,
		event.GameLost,
		event.GameRestarted,
	} {
		g.EventDispatcher.Subscribe(t, listener)
	}
	return g
}

// BasePath returns the anchor polyline from config.
func BasePath() polyline.Path {
	path := make(polyline.Path, len(config.BasePath))
	for i, p := range config.BasePath {
		path[i] = polyline.Point{X: p[0], Y: p[1]}
	}
	return path
}

// reset replaces the whole world and the systems bound to it.
func (g *Game) reset() {
	world := entity.NewWorld(g.generator.Generate(g.basePath))
	g.World = world
	g.MatchID = uuid.NewString()
	g.MovementSystem = system.NewMovementSystem(world, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(world, g.EventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world)
	g.WaveSystem = system.NewWaveSystem(world, g.generator, g.basePath, g.EventDispatcher)
	g.PlacementSystem = system.NewPlacementSystem(world, g.EventDispatcher)
	g.message = ""
	g.messageTicks = 0
}

// Update is called once per frame by the presentation loop: one simulation
// step plus ageing of the transient message.
func (g *Game) Update() {
	g.Step()
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
}

// Step progresses the simulation by one tick of 1/60 s.
func (g *Game) Step() {
	state := g.World.State
	if state.GameOver {
		return
	}
	if state.Health <= 0 {
		state.GameOver = true
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.GameLost,
			Data: event.WaveData{Number: state.Wave, Name: defs.Wave(state.Wave).Name},
		})
		return
	}

	g.WaveSystem.Update()

	// Порядок важен: башни видят уже сдвинутых врагов
	g.MovementSystem.Update()
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()

	g.World.Sweep()
	g.World.Tick++
}

// StartWave begins the next enemy wave. It reports false when ignored.
func (g *Game) StartWave() bool {
	return g.WaveSystem.StartWave()
}

// Restart atomically replaces all simulation state with fresh initial values.
func (g *Game) Restart() {
	g.reset()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

// Message returns the current transient user-facing message, if any.
func (g *Game) Message() string {
	return g.message
}

func (g *Game) showMessage(msg string) {
	g.message = msg
	g.messageTicks = config.MessageDuration
}

// GameEventListener превращает игровые события в сообщения для игрока.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TowerPlaced:
		if data, ok := e.Data.(event.TowerData); ok {
			l.game.showMessage(data.Type.String() + " placed!")
		}
	case event.PlacementRejected:
		l.game.showMessage("Not enough credits!")
	case event.WaveStarted:
		if data, ok := e.Data.(event.WaveData); ok {
			l.game.showMessage(fmt.Sprintf("Wave %d: %s", data.Number, data.Name))
		}
	case event.GameWon:
		l.game.showMessage("Victory! All waves defeated!")
	case event.GameLost:
		l.game.showMessage("Game Over! Network Compromised!")
	case event.GameRestarted:
		l.game.showMessage("Game restarted!")
	}
}
