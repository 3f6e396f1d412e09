// internal/component/wave.go
package component

import "firewall-frenzy/internal/defs"

// SpawnEntry is one scheduled enemy, stamped in ticks from wave start.
type SpawnEntry struct {
	Type defs.EnemyType
	Tick int
}
