package system

import (
	"testing"

	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/defs"
	"firewall-frenzy/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyStartsAtFirstAnchor(t *testing.T) {
	enemy, err := component.NewEnemy(1, defs.EnemyVirus)
	require.NoError(t, err)
	assert.Equal(t, straightPath.First(), enemy.Position(straightPath))
	assert.True(t, enemy.Alive)
}

func TestNewEnemyRejectsUnknownType(t *testing.T) {
	_, err := component.NewEnemy(1, defs.EnemyType(77))
	assert.ErrorIs(t, err, defs.ErrUnknownEnemyType)
}

func TestMovementAdvancesBySpeed(t *testing.T) {
	f := newFixture(t)
	enemy, _ := component.NewEnemy(f.world.NewEntity(), defs.EnemyWorm)
	f.world.Enemies = append(f.world.Enemies, enemy)

	f.movement.Update()
	f.movement.Update()

	assert.InDelta(t, 3.4, enemy.Progress, 1e-9)
	pos := enemy.Position(f.world.Path)
	assert.InDelta(t, 3.4, pos.X, 1e-9)
	assert.InDelta(t, 300.0, pos.Y, 1e-9)
}

func TestMovementLeakDamagesBase(t *testing.T) {
	f := newFixture(t)
	enemy, _ := component.NewEnemy(f.world.NewEntity(), defs.EnemyRansomware)
	enemy.Progress = f.world.Path.Length() - 0.5
	f.world.Enemies = append(f.world.Enemies, enemy)

	f.movement.Update()

	assert.False(t, enemy.Alive)
	assert.Equal(t, 15.0, f.world.State.Health)
	assert.Equal(t, f.world.Path.Last(), enemy.Position(f.world.Path))
	assert.Equal(t, 1, f.log.count(event.EnemyLeaked))

	// мёртвый враг больше не двигается и не наносит урон
	f.movement.Update()
	assert.Equal(t, 15.0, f.world.State.Health)
	assert.Equal(t, 1, f.log.count(event.EnemyLeaked))
}

func TestMovementHealthMayGoNegative(t *testing.T) {
	f := newFixture(t)
	f.world.State.Health = 2
	enemy, _ := component.NewEnemy(f.world.NewEntity(), defs.EnemyRansomware)
	enemy.Progress = f.world.Path.Length()
	f.world.Enemies = append(f.world.Enemies, enemy)

	f.movement.Update()
	assert.Equal(t, -3.0, f.world.State.Health)
	assert.Equal(t, 0.0, f.world.State.DisplayHealth())
}

func TestTakeDamageCreditsRewardOnce(t *testing.T) {
	f := newFixture(t)
	enemy, _ := component.NewEnemy(f.world.NewEntity(), defs.EnemyWorm)

	assert.False(t, enemy.TakeDamage(1, f.world.State))
	assert.InDelta(t, 0.5, enemy.HealthFraction(), 1e-9)
	assert.Equal(t, 100, f.world.State.Credits)

	assert.True(t, enemy.TakeDamage(1, f.world.State))
	assert.False(t, enemy.Alive)
	assert.Equal(t, 115, f.world.State.Credits)

	assert.False(t, enemy.TakeDamage(5, f.world.State))
	assert.Equal(t, 115, f.world.State.Credits)
	assert.Zero(t, enemy.HealthFraction())
}

func TestKilledEnemyDoesNotLeak(t *testing.T) {
	f := newFixture(t)
	enemy, _ := component.NewEnemy(f.world.NewEntity(), defs.EnemyVirus)
	enemy.Progress = f.world.Path.Length() - 1
	f.world.Enemies = append(f.world.Enemies, enemy)

	enemy.TakeDamage(10, f.world.State)
	f.movement.Update()

	assert.Equal(t, 20.0, f.world.State.Health)
	assert.Equal(t, 107, f.world.State.Credits)
	assert.Zero(t, f.log.count(event.EnemyLeaked))
}
