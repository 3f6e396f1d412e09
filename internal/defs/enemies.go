// internal/defs/enemies.go
package defs

import (
	"fmt"
	"strings"
)

// EnemyType is the closed set of malware kinds.
type EnemyType int

const (
	EnemyVirus EnemyType = iota
	EnemyWorm
	EnemyRansomware
	EnemyDDoS
	EnemyPhishing
)

// EnemyTypes lists every enemy type in declaration order.
var EnemyTypes = []EnemyType{EnemyVirus, EnemyWorm, EnemyRansomware, EnemyDDoS, EnemyPhishing}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type    EnemyType
	Name    string
	Health  float64
	Speed   float64 // пикселей за тик
	Damage  float64 // урон базе при достижении конца пути
	Reward  int     // кредиты за уничтожение
	Visuals Visuals
}

// enemyLibrary is the fixed stats table, keyed by type.
var enemyLibrary = map[EnemyType]EnemyDefinition{
	EnemyVirus: {
		Type: EnemyVirus, Name: "virus",
		Health: 1, Speed: 2.8, Damage: 1, Reward: 7,
		Visuals: Visuals{Color: rgb(0xff, 0x6b, 0x6b), Glyph: "V", Radius: 15},
	},
	EnemyWorm: {
		Type: EnemyWorm, Name: "worm",
		Health: 2, Speed: 1.7, Damage: 2, Reward: 15,
		Visuals: Visuals{Color: rgb(0xff, 0x99, 0x99), Glyph: "W", Radius: 15},
	},
	EnemyRansomware: {
		Type: EnemyRansomware, Name: "ransomware",
		Health: 4, Speed: 0.8, Damage: 5, Reward: 35,
		Visuals: Visuals{Color: rgb(0xff, 0xcc, 0x00), Glyph: "R", Radius: 15},
	},
	EnemyDDoS: {
		Type: EnemyDDoS, Name: "ddos",
		Health: 1, Speed: 3.5, Damage: 1, Reward: 7,
		Visuals: Visuals{Color: rgb(0xff, 0x33, 0x33), Glyph: "D", Radius: 15},
	},
	EnemyPhishing: {
		Type: EnemyPhishing, Name: "phishing",
		Health: 1, Speed: 2.1, Damage: 1, Reward: 7,
		Visuals: Visuals{Color: rgb(0xff, 0x99, 0xff), Glyph: "P", Radius: 15},
	},
}

// EnemyStats looks up the definition for t.
func EnemyStats(t EnemyType) (EnemyDefinition, error) {
	def, ok := enemyLibrary[t]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %d", ErrUnknownEnemyType, int(t))
	}
	return def, nil
}

// MustEnemyStats is EnemyStats for callers holding one of the declared constants.
func MustEnemyStats(t EnemyType) EnemyDefinition {
	def, err := EnemyStats(t)
	if err != nil {
		panic(err)
	}
	return def
}

func (t EnemyType) String() string {
	if def, ok := enemyLibrary[t]; ok {
		return def.Name
	}
	return fmt.Sprintf("EnemyType(%d)", int(t))
}

// ParseEnemyType maps a name such as "virus" to its EnemyType.
func ParseEnemyType(name string) (EnemyType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range EnemyTypes {
		if enemyLibrary[t].Name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyType, name)
}
