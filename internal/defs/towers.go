// internal/defs/towers.go
package defs

import (
	"fmt"
	"strings"
)

// TowerType defines the category of a tower.
type TowerType int

const (
	TowerFirewall TowerType = iota
	TowerIDS
	TowerHoneypot
	TowerPatch
)

// TowerTypes lists every tower type in the order of the HUD buttons.
var TowerTypes = []TowerType{TowerFirewall, TowerIDS, TowerHoneypot, TowerPatch}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type     TowerType
	Name     string
	Title    string // подпись для интерфейса
	Range    float64
	Damage   float64
	FireRate float64 // Выстрелов в секунду
	Cost     int
	// Support towers never target enemies.
	Support bool
	Visuals Visuals
}

// Cooldown returns the minimum number of seconds between two actions.
func (d TowerDefinition) Cooldown() float64 {
	return 1 / d.FireRate
}

var towerLibrary = map[TowerType]TowerDefinition{
	TowerFirewall: {
		Type: TowerFirewall, Name: "firewall", Title: "Firewall",
		Range: 120, Damage: 1, FireRate: 0.5, Cost: 25,
		Visuals: Visuals{Color: rgb(0xff, 0x6b, 0x6b), Glyph: "FW", Radius: 20},
	},
	TowerIDS: {
		Type: TowerIDS, Name: "ids", Title: "IDS",
		Range: 180, Damage: 1.5, FireRate: 0.3, Cost: 40,
		Visuals: Visuals{Color: rgb(0x4a, 0x90, 0xe2), Glyph: "ID", Radius: 20},
	},
	TowerHoneypot: {
		Type: TowerHoneypot, Name: "honeypot", Title: "Honeypot",
		Range: 100, Damage: 0.5, FireRate: 1, Cost: 35,
		Visuals: Visuals{Color: rgb(0xff, 0xd7, 0x00), Glyph: "HP", Radius: 20},
	},
	TowerPatch: {
		Type: TowerPatch, Name: "patch", Title: "Patch Server",
		Range: 150, Damage: 0, FireRate: 0.5, Cost: 50, Support: true,
		Visuals: Visuals{Color: rgb(0x00, 0xff, 0x00), Glyph: "PS", Radius: 20},
	},
}

// TowerStats looks up the definition for t.
func TowerStats(t TowerType) (TowerDefinition, error) {
	def, ok := towerLibrary[t]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("%w: %d", ErrUnknownTowerType, int(t))
	}
	return def, nil
}

// MustTowerStats is TowerStats for callers holding one of the declared constants.
func MustTowerStats(t TowerType) TowerDefinition {
	def, err := TowerStats(t)
	if err != nil {
		panic(err)
	}
	return def
}

// TowerCost returns the placement price of t.
func TowerCost(t TowerType) (int, error) {
	def, err := TowerStats(t)
	if err != nil {
		return 0, err
	}
	return def.Cost, nil
}

func (t TowerType) String() string {
	if def, ok := towerLibrary[t]; ok {
		return def.Name
	}
	return fmt.Sprintf("TowerType(%d)", int(t))
}

// ParseTowerType maps a name such as "firewall" to its TowerType.
func ParseTowerType(name string) (TowerType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range TowerTypes {
		if towerLibrary[t].Name == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTowerType, name)
}
