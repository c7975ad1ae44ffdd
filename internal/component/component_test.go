package component

import (
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitTakeDamageKills(t *testing.T) {
	u := NewUnit(1, defs.TeamPlayer, defs.UnitLibrary[defs.KindStriker], 0, 0)
	assert.Equal(t, 125.0, u.VX)

	u.TakeDamage(10)
	assert.Equal(t, 16.0, u.HP)
	assert.Equal(t, config.FlashTime, u.Flash)
	assert.True(t, u.Alive)

	u.TakeDamage(-5)
	assert.Equal(t, 16.0, u.HP, "negative damage never heals")

	u.TakeDamage(16)
	assert.False(t, u.Alive)
}

func TestUnitBounce(t *testing.T) {
	u := NewUnit(1, defs.TeamEnemy, defs.UnitLibrary[defs.KindTank], 100, 0)
	assert.Equal(t, -54.0, u.VX)
	assert.Equal(t, 80.0, u.Leading())

	u.StartBounce(1)
	assert.Equal(t, 62.0, u.VX)
	assert.Equal(t, 0.12, u.ReboundTimer)
	assert.Equal(t, 0.55, u.HitTimer)
}

func TestCastleGeometry(t *testing.T) {
	c := NewCastle(defs.TeamEnemy, 782)
	left, right, bottom, top := c.Bounds(100)
	assert.Equal(t, 782-47.5, left)
	assert.Equal(t, 782+47.5, right)
	assert.Equal(t, 130.0, bottom)
	assert.Equal(t, 390.0, top)

	mx, my := c.Muzzle(100)
	assert.Equal(t, 782.0, mx)
	assert.InDelta(t, 130+260*0.78, my, 1e-9)
}

func TestCastleDamageFloorsAtZero(t *testing.T) {
	c := NewCastle(defs.TeamPlayer, 48)
	c.TakeDamage(500)
	assert.Equal(t, 0.0, c.HP)
	assert.True(t, c.Destroyed())

	c.Timer = 0.5
	c.Reset()
	assert.Equal(t, c.MaxHP, c.HP)
	assert.Equal(t, 0.0, c.Timer)
}

func TestProjectileBounds(t *testing.T) {
	p := &Projectile{X: 10, Y: 10, VX: -100, Alive: true}
	p.Advance(1)
	assert.Equal(t, -90.0, p.X)
	assert.False(t, p.OutOfBounds(830, 820, 120))
	p.Advance(1)
	assert.True(t, p.OutOfBounds(830, 820, 120))
}

func TestParticleExpires(t *testing.T) {
	p := &Particle{VY: 0, Life: 0.1, Alive: true}
	p.Update(0.05, 90)
	assert.True(t, p.Alive)
	assert.InDelta(t, -4.5, p.VY, 1e-9)
	p.Update(0.06, 90)
	assert.False(t, p.Alive)
}

func TestMatchStateStrings(t *testing.T) {
	assert.Equal(t, "loadout", LoadoutState.String())
	assert.True(t, WinState.Finished())
	assert.True(t, LoseState.Finished())
	assert.False(t, PlayState.Finished())
}
