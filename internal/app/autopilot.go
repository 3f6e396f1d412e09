// internal/app/autopilot.go
package app

import (
	"context"
	"errors"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/event"
	"firewall-frenzy/pkg/polyline"
	"math"
)

// Outcome of an autopilot run.
type Outcome string

const (
	OutcomeVictory   Outcome = "victory"
	OutcomeDefeat    Outcome = "defeat"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeCancelled Outcome = "cancelled"
)

// Report summarises a headless match.
type Report struct {
	MatchID      string
	Seed         int64
	Outcome      Outcome
	WavesCleared int
	Kills        int
	Leaks        int
	TowersBuilt  int
	Credits      int
	Health       float64
	Ticks        int
}

// Autopilot plays a match without a window: before every wave it spends
// credits on towers spaced along the current path, then steps until the wave
// is over.
type Autopilot struct {
	game     *Game
	mix      []defs.TowerType
	spacing  float64
	offset   float64
	maxTicks int

	nextSlot int // следующая позиция вдоль пути
	nextType int // индекс в mix
	report   Report
}

// NewAutopilot binds an autopilot to game using the given settings.
func NewAutopilot(game *Game, settings config.AutopilotSettings, maxTicks int) (*Autopilot, error) {
	if len(settings.Mix) == 0 {
		return nil, errors.New("autopilot: empty tower mix")
	}
	mix := make([]defs.TowerType, 0, len(settings.Mix))
	for _, name := range settings.Mix {
		t, err := defs.ParseTowerType(name)
		if err != nil {
			return nil, err
		}
		mix = append(mix, t)
	}
	a := &Autopilot{
		game:     game,
		mix:      mix,
		spacing:  settings.Spacing,
		offset:   settings.Offset,
		maxTicks: maxTicks,
	}
	game.EventDispatcher.Subscribe(event.EnemyKilled, a)
	game.EventDispatcher.Subscribe(event.EnemyLeaked, a)
	game.EventDispatcher.Subscribe(event.WaveEnded, a)
	game.EventDispatcher.Subscribe(event.TowerPlaced, a)
	return a, nil
}

// OnEvent реализует интерфейс event.Listener.
func (a *Autopilot) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		a.report.Kills++
	case event.EnemyLeaked:
		a.report.Leaks++
	case event.WaveEnded:
		a.report.WavesCleared++
	case event.TowerPlaced:
		a.report.TowersBuilt++
	}
}

// Run plays until the game is over, the tick budget is spent or ctx is done.
func (a *Autopilot) Run(ctx context.Context) (Report, error) {
	g := a.game
	state := g.World.State
	ticks := 0
	for !state.GameOver {
		if a.maxTicks > 0 && ticks >= a.maxTicks {
			return a.finish(OutcomeTimeout, ticks), nil
		}
		if ticks%config.TicksPerSecond == 0 {
			if err := ctx.Err(); err != nil {
				return a.finish(OutcomeCancelled, ticks), err
			}
		}
		if !state.WaveActive {
			a.build()
			g.StartWave()
		}
		g.Step()
		ticks++
	}
	outcome := OutcomeDefeat
	if state.Victory {
		outcome = OutcomeVictory
	}
	return a.finish(outcome, ticks), nil
}

func (a *Autopilot) finish(outcome Outcome, ticks int) Report {
	state := a.game.World.State
	a.report.MatchID = a.game.MatchID
	a.report.Seed = a.game.Rng.Seed()
	a.report.Outcome = outcome
	a.report.Credits = state.Credits
	a.report.Health = state.DisplayHealth()
	a.report.Ticks = ticks
	return a.report
}

// build buys towers in mix order while the next one is affordable.
func (a *Autopilot) build() {
	g := a.game
	path := g.World.Path
	length := path.Length()
	for {
		t := a.mix[a.nextType%len(a.mix)]
		cost, _ := defs.TowerCost(t)
		if g.World.State.Credits < cost {
			return
		}
		pos, ok := a.slot(path, length)
		if !ok {
			return
		}
		if err := g.PlaceTower(pos.X, pos.Y, t); err != nil {
			return
		}
		a.nextType++
	}
}

// slot returns the next free tower position: points spaced along the path,
// pushed sideways by offset, alternating sides. Positions off the canvas are skipped.
func (a *Autopilot) slot(path polyline.Path, length float64) (polyline.Point, bool) {
	for {
		d := a.spacing * float64(a.nextSlot+1)
		if d >= length {
			return polyline.Point{}, false
		}
		side := 1.0
		if a.nextSlot%2 == 1 {
			side = -1
		}
		a.nextSlot++

		p := path.PointAt(d)
		q := path.PointAt(math.Min(d+1, length))
		dx, dy := q.X-p.X, q.Y-p.Y
		n := math.Hypot(dx, dy)
		if n == 0 {
			continue
		}
		pos := polyline.Point{
			X: p.X - dy/n*a.offset*side,
			Y: p.Y + dx/n*a.offset*side,
		}
		if pos.X < 0 || pos.X > config.ScreenWidth || pos.Y < 0 || pos.Y > config.ScreenHeight {
			continue
		}
		return pos, true
	}
}
