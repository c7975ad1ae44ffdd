package entity

import (
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldCastles(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, 48.0, w.Castle(defs.TeamPlayer).X)
	assert.Equal(t, 782.0, w.Castle(defs.TeamEnemy).X)
	assert.Same(t, w.Castle(defs.TeamEnemy), w.EnemyCastle(defs.TeamPlayer))
	assert.Same(t, w.Castle(defs.TeamPlayer), w.EnemyCastle(defs.TeamEnemy))
}

func TestAddUnitSpawnPoints(t *testing.T) {
	w := NewWorld()
	p := w.AddUnit(defs.TeamPlayer, defs.UnitLibrary[defs.KindBrute])
	e := w.AddUnit(defs.TeamEnemy, defs.UnitLibrary[defs.KindBrute])

	assert.InDelta(t, 48+95*config.SpawnFactor, p.X, 1e-9)
	assert.InDelta(t, 782-95*config.SpawnFactor, e.X, 1e-9)
	assert.Equal(t, w.LaneY, p.Y)
	assert.NotEqual(t, p.ID, e.ID)
	assert.Equal(t, 1, w.CountAlive(defs.TeamPlayer))
}

func TestCompactKeepsOrderAndReturnsDead(t *testing.T) {
	w := NewWorld()
	a := w.AddUnit(defs.TeamPlayer, defs.UnitLibrary[defs.KindStriker])
	b := w.AddUnit(defs.TeamPlayer, defs.UnitLibrary[defs.KindBrute])
	c := w.AddUnit(defs.TeamEnemy, defs.UnitLibrary[defs.KindTank])
	b.Alive = false

	shot := w.AddProjectile(&component.Projectile{})
	gone := w.AddProjectile(&component.Projectile{})
	gone.Alive = false

	dead := w.Compact()
	require.Len(t, dead, 1)
	assert.Same(t, b, dead[0])
	assert.Equal(t, []*component.Unit{a, c}, w.Units)
	assert.Equal(t, []*component.Projectile{shot}, w.Projectiles)
}

func TestClear(t *testing.T) {
	w := NewWorld()
	w.AddUnit(defs.TeamPlayer, defs.UnitLibrary[defs.KindStriker])
	w.AddProjectile(&component.Projectile{})
	w.Particles = append(w.Particles, &component.Particle{})
	w.GameTime = 3

	w.Clear()
	assert.Empty(t, w.Units)
	assert.Empty(t, w.Projectiles)
	assert.Empty(t, w.Particles)
	assert.Zero(t, w.GameTime)
}
