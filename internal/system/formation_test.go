package system

import (
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertSpaced(t *testing.T, w *entity.World, team defs.Team) {
	t.Helper()
	var queue []*component.Unit
	for _, u := range w.Units {
		if u.Alive && u.Team == team {
			queue = append(queue, u)
		}
	}
	sort.Slice(queue, func(i, j int) bool { return queue[i].X < queue[j].X })
	for i := 1; i < len(queue); i++ {
		minSep := (queue[i-1].Radius() + queue[i].Radius()) * (1 + config.FormationPad)
		assert.GreaterOrEqual(t, queue[i].X-queue[i-1].X, minSep-1e-9)
	}
}

func TestFormationPushesPlayerQueueForward(t *testing.T) {
	w := entity.NewWorld()
	a := placeUnit(w, defs.TeamPlayer, defs.KindTank, 100)
	b := placeUnit(w, defs.TeamPlayer, defs.KindStriker, 105)
	c := placeUnit(w, defs.TeamPlayer, defs.KindBrute, 104)

	NewFormationSystem(w).Update()

	assert.Equal(t, 100.0, a.X, "rearmost unit never moves")
	assert.InDelta(t, 100+(20+14)*1.25, c.X, 1e-9)
	assert.InDelta(t, c.X+(14+10)*1.25, b.X, 1e-9)
	assertSpaced(t, w, defs.TeamPlayer)
}

func TestFormationEnemyQueueDescending(t *testing.T) {
	w := entity.NewWorld()
	front := placeUnit(w, defs.TeamEnemy, defs.KindStriker, 700)
	back := placeUnit(w, defs.TeamEnemy, defs.KindStriker, 690)

	NewFormationSystem(w).Update()

	assert.Equal(t, 700.0, front.X)
	assert.InDelta(t, 700-25, back.X, 1e-9)
	assertSpaced(t, w, defs.TeamEnemy)
}

func TestFormationIgnoresDeadAndOtherTeam(t *testing.T) {
	w := entity.NewWorld()
	a := placeUnit(w, defs.TeamPlayer, defs.KindStriker, 100)
	dead := placeUnit(w, defs.TeamPlayer, defs.KindStriker, 101)
	dead.Alive = false
	enemy := placeUnit(w, defs.TeamEnemy, defs.KindStriker, 102)

	NewFormationSystem(w).Update()

	assert.Equal(t, 100.0, a.X)
	assert.Equal(t, 101.0, dead.X)
	assert.Equal(t, 102.0, enemy.X)
}
