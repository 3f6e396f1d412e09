package entity

import (
	"testing"

	"firewall-frenzy/internal/component"
	"firewall-frenzy/internal/config"
	"firewall-frenzy/pkg/polyline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldInitialValues(t *testing.T) {
	w := NewWorld(polyline.Path{{X: 0, Y: 0}, {X: 10, Y: 0}})
	assert.Equal(t, config.StartingCredits, w.State.Credits)
	assert.Equal(t, float64(config.BaseHealth), w.State.Health)
	assert.Zero(t, w.State.Wave)
	assert.False(t, w.State.WaveActive)
	assert.Empty(t, w.Enemies)
	assert.Equal(t, 1, int(w.NewEntity()))
	assert.Equal(t, 2, int(w.NewEntity()))
}

func TestSweepKeepsOrderOfSurvivors(t *testing.T) {
	w := NewWorld(polyline.Path{{X: 0, Y: 0}, {X: 10, Y: 0}})
	for i := 0; i < 5; i++ {
		w.Enemies = append(w.Enemies, &component.Enemy{ID: w.NewEntity(), Alive: i%2 == 0})
	}
	w.Projectiles = []*component.Projectile{{Alive: false}, {Alive: true}}

	require.Equal(t, 3, w.AliveEnemies())
	w.Sweep()

	require.Len(t, w.Enemies, 3)
	assert.EqualValues(t, 1, w.Enemies[0].ID)
	assert.EqualValues(t, 3, w.Enemies[1].ID)
	assert.EqualValues(t, 5, w.Enemies[2].ID)
	assert.Len(t, w.Projectiles, 1)
}
