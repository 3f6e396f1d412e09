// internal/defs/waves.go
package defs

// EnemyGroup is one batch of identical enemies inside a wave.
type EnemyGroup struct {
	Type  EnemyType
	Count int
	Delay float64 // секунд между появлением врагов группы
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Name   string
	Groups []EnemyGroup
}

// WavePatterns определяет последовательность волн в игре. Wave N plays WavePatterns[N-1].
var WavePatterns = []WaveDefinition{
	{
		Name:   "Home Wi-Fi",
		Groups: []EnemyGroup{{Type: EnemyVirus, Count: 5, Delay: 0.5}},
	},
	{
		Name: "Small Business",
		Groups: []EnemyGroup{
			{Type: EnemyVirus, Count: 8, Delay: 0.3},
			{Type: EnemyWorm, Count: 3, Delay: 0.5},
		},
	},
	{
		Name: "Corporate Network",
		Groups: []EnemyGroup{
			{Type: EnemyVirus, Count: 10, Delay: 0.2},
			{Type: EnemyWorm, Count: 5, Delay: 0.4},
			{Type: EnemyRansomware, Count: 2, Delay: 1},
		},
	},
	{
		Name: "Mixed Threats",
		Groups: []EnemyGroup{
			{Type: EnemyDDoS, Count: 15, Delay: 0.1},
			{Type: EnemyPhishing, Count: 3, Delay: 0.6},
		},
	},
}

// WaveCount is the number of defined waves.
func WaveCount() int {
	return len(WavePatterns)
}

// Wave returns the definition of the 1-based wave number n, clamped into the table.
func Wave(n int) WaveDefinition {
	if n < 1 {
		n = 1
	}
	if n > len(WavePatterns) {
		n = len(WavePatterns)
	}
	return WavePatterns[n-1]
}

// EnemyCount returns the total number of enemies the wave spawns.
func (w WaveDefinition) EnemyCount() int {
	total := 0
	for _, g := range w.Groups {
		total += g.Count
	}
	return total
}
