// internal/logging/events.go
package logging

import (
	"firewall-frenzy/internal/event"

	"github.com/rs/zerolog"
)

// MatchIDFunc returns the id of the match currently being played. It is
// read on every log line, so a restart is picked up without resubscribing.
type MatchIDFunc func() string

// EventLogger пишет игровые события в журнал.
type EventLogger struct {
	logger zerolog.Logger
}

// NewEventLogger wraps logger and stamps every entry with the current match id.
func NewEventLogger(logger zerolog.Logger, matchID MatchIDFunc) *EventLogger {
	hooked := logger.Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		if matchID != nil {
			e.Str("match", matchID())
		}
	}))
	return &EventLogger{logger: hooked}
}

// Attach subscribes the logger to every event of d.
func (l *EventLogger) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l)
}

// OnEvent реализует интерфейс event.Listener.
func (l *EventLogger) OnEvent(e event.Event) {
	var entry *zerolog.Event
	switch e.Type {
	case event.EnemySpawned, event.EnemyKilled, event.TowerFired, event.BaseHealed:
		// много событий за волну, только в debug
		entry = l.logger.Debug()
	case event.EnemyLeaked, event.PlacementRejected:
		entry = l.logger.Warn()
	default:
		entry = l.logger.Info()
	}

	switch data := e.Data.(type) {
	case event.WaveData:
		entry = entry.Int("wave", data.Number).Str("name", data.Name)
		if data.Enemies > 0 {
			entry = entry.Int("enemies", data.Enemies)
		}
	case event.EnemyData:
		entry = entry.Uint64("enemy", uint64(data.ID)).Stringer("type", data.Type)
		if data.Reward > 0 {
			entry = entry.Int("reward", data.Reward)
		}
		if data.Damage > 0 {
			entry = entry.Float64("damage", data.Damage)
		}
	case event.TowerData:
		entry = entry.Stringer("tower", data.Type).
			Float64("x", data.X).
			Float64("y", data.Y)
		if data.ID != 0 {
			entry = entry.Uint64("id", uint64(data.ID))
		}
		if data.Cost > 0 {
			entry = entry.Int("cost", data.Cost)
		}
		if data.Target != 0 {
			entry = entry.Uint64("target", uint64(data.Target))
		}
	}
	entry.Msg(string(e.Type))
}
