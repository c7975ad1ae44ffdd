package system

import (
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
	"neon-siege/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAISpawnsOnInterval(t *testing.T) {
	w := entity.NewWorld()
	s := NewSpawnSystem(w, nil, utils.NewPRNGService(5))

	s.Update(1.5)
	assert.Empty(t, w.Units)

	s.Update(0.5)
	require.Len(t, w.Units, 1)
	assert.Equal(t, defs.TeamEnemy, w.Units[0].Team)
	assert.Zero(t, s.SpawnTimer)
}

func TestAIRespectsUnitCap(t *testing.T) {
	w := entity.NewWorld()
	for i := 0; i < 5; i++ {
		placeUnit(w, defs.TeamEnemy, defs.KindStriker, 700-float64(i)*30)
	}
	s := NewSpawnSystem(w, nil, utils.NewPRNGService(5))

	s.Update(2)
	assert.Len(t, w.Units, 5)
	assert.Zero(t, s.SpawnTimer, "timer restarts even when capped")

	w.Units[0].Alive = false
	s.Update(2)
	assert.Len(t, w.Units, 6)
}

func TestPlayerIsNotCapped(t *testing.T) {
	w := entity.NewWorld()
	s := NewSpawnSystem(w, nil, utils.NewPRNGService(5))
	for i := 0; i < 8; i++ {
		placeUnit(w, defs.TeamPlayer, defs.KindStriker, float64(i))
	}
	assert.True(t, s.HasRoom(defs.TeamPlayer))
}

func TestAISpawnKindsAreSeeded(t *testing.T) {
	run := func() []defs.UnitKind {
		w := entity.NewWorld()
		s := NewSpawnSystem(w, nil, utils.NewPRNGService(77))
		var kinds []defs.UnitKind
		for i := 0; i < 20; i++ {
			s.Update(2)
			kinds = append(kinds, w.Units[len(w.Units)-1].Kind)
			w.Units[len(w.Units)-1].Alive = false
		}
		return kinds
	}
	assert.Equal(t, run(), run())
}

func TestSpawnUnitDispatchesAndRejectsUnknown(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	var spawned []event.UnitInfo
	d.Subscribe(event.UnitSpawned, event.ListenerFunc(func(e event.Event) {
		spawned = append(spawned, e.Data.(event.UnitInfo))
	}))
	s := NewSpawnSystem(w, d, utils.NewPRNGService(1))

	u := s.SpawnUnit(defs.TeamPlayer, defs.KindTank)
	require.NotNil(t, u)
	require.Len(t, spawned, 1)
	assert.Equal(t, u.ID, spawned[0].ID)

	assert.Nil(t, s.SpawnUnit(defs.TeamPlayer, "dragon"))
	assert.Len(t, w.Units, 1)
}
