// internal/system/wave.go
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

// PathGenerator produces the path of a new wave from the base anchors.
type PathGenerator interface {
	Generate(base polyline.Path) polyline.Path
}

// WaveSystem expands wave definitions into a spawn queue and realises it tick by tick.
type WaveSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	generator       PathGenerator
	basePath        polyline.Path
}

func NewWaveSystem(world *entity.World, generator PathGenerator, basePath polyline.Path, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		generator:       generator,
		basePath:        basePath,
	}
}

// StartWave begins the next wave. It does nothing and returns false while a
// wave is running or after the game is over. The wave number never goes past
// the last defined wave; starting again after it replays the last one.
func (s *WaveSystem) StartWave() bool {
	state := s.world.State
	if state.WaveActive || state.GameOver {
		return false
	}

	state.Wave = min(state.Wave+1, defs.WaveCount())
	state.WaveActive = true

	// Новый путь до появления первого врага волны
	s.world.Path = s.generator.Generate(s.basePath)

	waveDef := defs.Wave(state.Wave)
	s.world.SpawnQueue = BuildSpawnQueue(waveDef)
	s.world.Tick = 0

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Number: state.Wave, Name: waveDef.Name, Enemies: waveDef.EnemyCount()},
	})
	return true
}

// BuildSpawnQueue flattens the groups of a wave. Every group has its own
// timeline starting at tick 0, so groups spawn concurrently.
func BuildSpawnQueue(waveDef defs.WaveDefinition) []component.SpawnEntry {
	queue := make([]component.SpawnEntry, 0, waveDef.EnemyCount())
	for _, group := range waveDef.Groups {
		for i := 0; i < group.Count; i++ {
			tick := int(math.Round(float64(i) * group.Delay * config.TicksPerSecond))
			queue = append(queue, component.SpawnEntry{Type: group.Type, Tick: tick})
		}
	}
	return queue
}

// Update realises every due spawn and then checks whether the running wave is over.
func (s *WaveSystem) Update() {
	s.spawnDue()
	s.checkWaveEnd()
}

func (s *WaveSystem) spawnDue() {
	if len(s.world.SpawnQueue) == 0 {
		return
	}
	remaining := s.world.SpawnQueue[:0]
	for _, entry := range s.world.SpawnQueue {
		if entry.Tick > s.world.Tick {
			remaining = append(remaining, entry)
			continue
		}
		s.spawnEnemy(entry.Type)
	}
	s.world.SpawnQueue = remaining
}

func (s *WaveSystem) spawnEnemy(t defs.EnemyType) {
	enemy, err := component.NewEnemy(s.world.NewEntity(), t)
	if err != nil {
		// Очередь строится только из таблицы волн, сюда попасть нельзя
		panic(err)
	}
	s.world.Enemies = append(s.world.Enemies, enemy)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{ID: enemy.ID, Type: enemy.Type},
	})
}

func (s *WaveSystem) checkWaveEnd() {
	state := s.world.State
	if !state.WaveActive || len(s.world.SpawnQueue) > 0 || s.world.AliveEnemies() > 0 {
		return
	}

	state.WaveActive = false
	waveDef := defs.Wave(state.Wave)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveData{Number: state.Wave, Name: waveDef.Name, Enemies: waveDef.EnemyCount()},
	})

	if state.Wave >= defs.WaveCount() {
		state.GameOver = true
		state.Victory = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon, Data: event.WaveData{Number: state.Wave, Name: waveDef.Name}})
	}
}
