package system

import (
	"neon-siege/internal/component"
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateOutcome(t *testing.T) {
	w := entity.NewWorld()
	s := NewStateSystem(w)
	assert.Equal(t, component.PlayState, s.Evaluate(component.PlayState))

	w.Castle(defs.TeamPlayer).TakeDamage(1000)
	assert.Equal(t, component.LoseState, s.Evaluate(component.PlayState))

	w.Castle(defs.TeamEnemy).TakeDamage(1000)
	assert.Equal(t, component.WinState, s.Evaluate(component.PlayState), "enemy castle checked first")

	assert.Equal(t, component.LoadoutState, s.Evaluate(component.LoadoutState))
}
