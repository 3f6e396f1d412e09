// internal/system/projectile.go
package system

import "firewall-frenzy/internal/entity"

// ProjectileSystem управляет движением снарядов
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

func (s *ProjectileSystem) Update() {
	for _, proj := range s.world.Projectiles {
		if !proj.Alive {
			continue
		}
		proj.Progress += proj.Speed
		if proj.Progress >= 1 {
			proj.Progress = 1
			proj.Alive = false
		}
	}
}
