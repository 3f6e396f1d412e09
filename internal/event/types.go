// internal/event/types.go
package event

import (
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/types"
)

const (
	WaveStarted       EventType = "WaveStarted"       // Волна началась
	WaveEnded         EventType = "WaveEnded"         // Волна закончилась
	EnemySpawned      EventType = "EnemySpawned"      // Враг появился
	EnemyKilled       EventType = "EnemyKilled"       // Враг уничтожен башней
	EnemyLeaked       EventType = "EnemyLeaked"       // Враг дошёл до хоста
	TowerPlaced       EventType = "TowerPlaced"       // Башня построена
	TowerFired        EventType = "TowerFired"        // Башня выстрелила
	PlacementRejected EventType = "PlacementRejected" // Не хватило кредитов
	BaseHealed        EventType = "BaseHealed"        // Patch восстановил здоровье
	GameWon           EventType = "GameWon"
	GameLost          EventType = "GameLost"
	GameRestarted     EventType = "GameRestarted"
)

// WaveData accompanies WaveStarted and WaveEnded.
type WaveData struct {
	Number  int
	Name    string
	Enemies int
}

// EnemyData accompanies EnemySpawned, EnemyKilled and EnemyLeaked.
type EnemyData struct {
	ID     types.EntityID
	Type   defs.EnemyType
	Reward int
	Damage float64
}

// TowerData accompanies TowerPlaced, TowerFired, PlacementRejected and BaseHealed.
type TowerData struct {
	ID     types.EntityID
	Type   defs.TowerType
	X, Y   float64
	Cost   int
	Target types.EntityID
}
