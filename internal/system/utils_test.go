package system

import (
	"math"
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpactDamageFormula(t *testing.T) {
	assert.InDelta(t, 2+8*0.55, ImpactDamage(8, 0), 1e-9)
	assert.InDelta(t, 2+8*0.55, ImpactDamage(8, -50), 1e-9, "negative speed contributes nothing")
	assert.InDelta(t, 2+13*0.55+0.035*math.Pow(100, 1.35), ImpactDamage(13, 100), 1e-9)
}

func TestCastleImpactDamageIsCapped(t *testing.T) {
	capped := (2 + 8*0.55 + 0.035*math.Pow(85, 1.35)) * 0.85
	assert.InDelta(t, capped, CastleImpactDamage(8, 125), 1e-9)
	assert.InDelta(t, capped, CastleImpactDamage(8, 85), 1e-9)
	assert.Less(t, CastleImpactDamage(8, 40), capped)
	assert.Less(t, CastleImpactDamage(8, 40), ImpactDamage(8, 40))
}

func TestClashDamageSharesByMass(t *testing.T) {
	w := entity.NewWorld()
	a := placeUnit(w, defs.TeamPlayer, defs.KindBrute, 100)
	b := placeUnit(w, defs.TeamEnemy, defs.KindBrute, 120)
	toA, toB := ClashDamage(a, b)
	assert.InDelta(t, toA, toB, 1e-9)

	tank := placeUnit(w, defs.TeamPlayer, defs.KindTank, 100)
	striker := placeUnit(w, defs.TeamEnemy, defs.KindStriker, 120)
	toTank, toStriker := ClashDamage(tank, striker)
	assert.Greater(t, toStriker, toTank)

	rel := 54.0 + 125.0
	assert.InDelta(t, ImpactDamage(27, rel)*400/500, toStriker, 1e-9)
	assert.InDelta(t, ImpactDamage(8, rel)*100/500, toTank, 1e-9)
}
