package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeaponPresetsMatchTroopTiers(t *testing.T) {
	striker := UnitLibrary[KindStriker]
	brute := UnitLibrary[KindBrute]
	tank := UnitLibrary[KindTank]

	crossbow := WeaponLibrary[WeaponCrossbow]
	assert.GreaterOrEqual(t, crossbow.Damage, striker.Health)
	assert.GreaterOrEqual(t, 2*crossbow.Damage, brute.Health)

	ballista := WeaponLibrary[WeaponBallista]
	assert.GreaterOrEqual(t, ballista.Damage, brute.Health)
	assert.GreaterOrEqual(t, 3*ballista.Damage, tank.Health)

	catapult := WeaponLibrary[WeaponCatapult]
	assert.Equal(t, 4.0, tank.Health-catapult.Damage)
}

func TestLibrariesCoverChoices(t *testing.T) {
	for _, kind := range UnitKinds {
		def, ok := LookupUnit(kind)
		require.True(t, ok, kind)
		assert.Equal(t, kind, def.Kind)
		assert.Equal(t, def.Radius*def.Radius, def.Mass())
	}
	for _, name := range WeaponChoices {
		def, ok := LookupWeapon(name)
		require.True(t, ok, name)
		assert.Equal(t, name, def.Name)
	}
	_, ok := LookupWeapon("Trebuchet")
	assert.False(t, ok)
}

func TestTeamHelpers(t *testing.T) {
	assert.Equal(t, TeamEnemy, TeamPlayer.Opponent())
	assert.Equal(t, TeamPlayer, TeamEnemy.Opponent())
	assert.Equal(t, 1.0, TeamPlayer.Direction())
	assert.Equal(t, -1.0, TeamEnemy.Direction())
}

func TestSpawnTableWeights(t *testing.T) {
	total := 0
	for _, e := range EnemySpawnTable {
		total += e.Weight
	}
	assert.Equal(t, 100, total)
}
