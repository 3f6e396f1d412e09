package system

import (
	"testing"

	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addEnemyAt(t *testing.T, f *fixture, typ defs.EnemyType, progress float64) *component.Enemy {
	t.Helper()
	enemy, err := component.NewEnemy(f.world.NewEntity(), typ)
	require.NoError(t, err)
	enemy.Progress = progress
	f.world.Enemies = append(f.world.Enemies, enemy)
	return enemy
}

func addTower(t *testing.T, f *fixture, x, y float64, typ defs.TowerType) *component.Tower {
	t.Helper()
	tower, err := component.NewTower(f.world.NewEntity(), x, y, typ)
	require.NoError(t, err)
	f.world.Towers = append(f.world.Towers, tower)
	return tower
}

func TestNewTowerRejectsUnknownType(t *testing.T) {
	_, err := component.NewTower(1, 0, 0, defs.TowerType(9))
	assert.ErrorIs(t, err, defs.ErrUnknownTowerType)
}

func TestFirewallKillsVirusOnFirstShot(t *testing.T) {
	f := newFixture(t)
	tower := addTower(t, f, 100, 350, defs.TowerFirewall)
	tower.Cooldown = tower.Threshold()
	virus := addEnemyAt(t, f, defs.EnemyVirus, 100)

	f.combat.Update()

	assert.False(t, virus.Alive)
	assert.Equal(t, 107, f.world.State.Credits, "reward is paid when the shot is fired")
	require.Len(t, f.world.Projectiles, 1)
	proj := f.world.Projectiles[0]
	assert.Equal(t, 100.0, proj.StartX)
	assert.Equal(t, 350.0, proj.StartY)
	assert.Equal(t, 100.0, proj.TargetX)
	assert.Equal(t, 300.0, proj.TargetY)
	assert.Zero(t, tower.Cooldown)
	assert.True(t, tower.Active)
	assert.Equal(t, 1, f.log.count(event.EnemyKilled))
}

func TestTowerPicksNearestInRange(t *testing.T) {
	f := newFixture(t)
	tower := addTower(t, f, 300, 300, defs.TowerIDS)
	tower.Cooldown = tower.Threshold()
	far := addEnemyAt(t, f, defs.EnemyRansomware, 150)
	near := addEnemyAt(t, f, defs.EnemyRansomware, 280)
	tie := addEnemyAt(t, f, defs.EnemyRansomware, 320)

	f.combat.Update()

	assert.Equal(t, 4.0, far.Health)
	assert.Equal(t, 2.5, near.Health, "first of two equally near enemies wins")
	assert.Equal(t, 4.0, tie.Health)
}

func TestTowerRangeIsStrict(t *testing.T) {
	f := newFixture(t)
	tower := addTower(t, f, 0, 420, defs.TowerFirewall) // ровно 120 до начала пути
	tower.Cooldown = 10
	addEnemyAt(t, f, defs.EnemyRansomware, 0)

	f.combat.Update()
	assert.Empty(t, f.world.Projectiles)
	assert.False(t, tower.Active)
}

func TestNoTargetKeepsCooldownAccumulating(t *testing.T) {
	f := newFixture(t)
	tower := addTower(t, f, 500, 550, defs.TowerHoneypot)

	for i := 0; i < 180; i++ {
		f.combat.Update()
	}
	assert.Empty(t, f.world.Projectiles)
	assert.InDelta(t, 3.0, tower.Cooldown, 1e-6, "cooldown is not capped")

	enemy := addEnemyAt(t, f, defs.EnemyRansomware, 500)
	tower.Y = 350
	f.combat.Update()

	assert.Len(t, f.world.Projectiles, 1, "fires on the first tick a target is in range")
	assert.Equal(t, 3.5, enemy.Health)
}

func TestTowerWaitsForCooldown(t *testing.T) {
	f := newFixture(t)
	tower := addTower(t, f, 100, 320, defs.TowerFirewall)
	enemy := addEnemyAt(t, f, defs.EnemyRansomware, 100)

	f.combat.Update()
	assert.Empty(t, f.world.Projectiles)
	assert.Equal(t, 4.0, enemy.Health)

	tower.Cooldown = tower.Threshold()
	f.combat.Update()
	assert.Equal(t, 3.0, enemy.Health)

	f.combat.Update()
	assert.Equal(t, 3.0, enemy.Health)
	assert.False(t, tower.Active, "active flag is cleared at the start of every update")
}

func TestTowerIgnoresDeadEnemies(t *testing.T) {
	f := newFixture(t)
	tower := addTower(t, f, 100, 320, defs.TowerFirewall)
	tower.Cooldown = 5
	dead := addEnemyAt(t, f, defs.EnemyVirus, 100)
	dead.Alive = false

	f.combat.Update()
	assert.Empty(t, f.world.Projectiles)
	assert.Equal(t, 100, f.world.State.Credits)
}

func TestPatchHealsOnlyDuringWave(t *testing.T) {
	f := newFixture(t)
	patch := addTower(t, f, 100, 320, defs.TowerPatch)
	addEnemyAt(t, f, defs.EnemyVirus, 100)
	f.world.State.Health = 10
	patch.Cooldown = 10

	f.combat.Update()
	assert.Equal(t, 10.0, f.world.State.Health, "no healing between waves")

	f.world.State.WaveActive = true
	f.combat.Update()
	assert.Equal(t, 11.0, f.world.State.Health)
	assert.True(t, patch.Active)
	assert.Zero(t, patch.Cooldown)

	f.combat.Update()
	assert.Equal(t, 11.0, f.world.State.Health, "waits for the next cooldown")
	assert.Empty(t, f.world.Projectiles, "patch never targets enemies")
	assert.Equal(t, 1, f.log.count(event.BaseHealed))
}

func TestPatchCapsHealth(t *testing.T) {
	f := newFixture(t)
	patch := addTower(t, f, 100, 320, defs.TowerPatch)
	f.world.State.WaveActive = true
	f.world.State.Health = 19.5
	patch.Cooldown = 10

	f.combat.Update()
	assert.Equal(t, 20.0, f.world.State.Health)

	patch.Cooldown = 10
	f.combat.Update()
	assert.Equal(t, 20.0, f.world.State.Health)
	assert.False(t, patch.Active, "full health means no action")
	assert.InDelta(t, 10.0+1.0/60, patch.Cooldown, 1e-9)
}

func TestProjectileFinishes(t *testing.T) {
	f := newFixture(t)
	proj := &component.Projectile{StartX: 0, StartY: 0, TargetX: 100, TargetY: 0, Speed: 0.15, Alive: true}
	f.world.Projectiles = append(f.world.Projectiles, proj)

	f.projectile.Update()
	assert.InDelta(t, 15.0, proj.Position().X, 1e-9)

	for i := 0; i < 6; i++ {
		f.projectile.Update()
	}
	assert.False(t, proj.Alive)
	assert.Equal(t, 100.0, proj.Position().X)
}
