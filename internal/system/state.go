// internal/system/state.go
package system

import (
	"neon-siege/internal/component"
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
)

// StateSystem проверяет условие конца матча.
type StateSystem struct {
	world *entity.World
}

func NewStateSystem(world *entity.World) *StateSystem {
	return &StateSystem{world: world}
}

// Evaluate возвращает новое состояние матча. Разрушенный замок противника
// проверяется первым: если в одном тике пали оба, это победа.
func (s *StateSystem) Evaluate(current component.MatchState) component.MatchState {
	if current != component.PlayState {
		return current
	}
	if s.world.Castle(defs.TeamEnemy).Destroyed() {
		return component.WinState
	}
	if s.world.Castle(defs.TeamPlayer).Destroyed() {
		return component.LoseState
	}
	return current
}
