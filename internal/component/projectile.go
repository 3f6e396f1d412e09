// internal/component/projectile.go
package component

import (
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/utils"
	"firewall-frenzy/pkg/polyline"
)

// Projectile представляет летящий снаряд. It is cosmetic: damage was applied when
// it was fired, and the target is a snapshot of where the enemy stood.
type Projectile struct {
	StartX, StartY   float64
	TargetX, TargetY float64
	Progress         float64 // 0..1
	Speed            float64 // доля пути за тик
	Tower            defs.TowerType
	Alive            bool
}

// Position interpolates between start and target.
func (p *Projectile) Position() polyline.Point {
	return polyline.Point{
		X: utils.Lerp(p.StartX, p.TargetX, p.Progress),
		Y: utils.Lerp(p.StartY, p.TargetY, p.Progress),
	}
}
