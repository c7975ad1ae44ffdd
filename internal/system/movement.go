// internal/system/movement.go
package system

import (
	"math"
	"neon-siege/internal/entity"
)

// MovementSystem двигает юнитов по линии
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update гасит таймеры и сдвигает юнитов. Пока идёт отскок, скорость остаётся
// той, что выставил удар; иначе юнит идёт на базовой скорости к врагу.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, u := range s.world.Units {
		if !u.Alive {
			continue
		}

		u.Flash = math.Max(0, u.Flash-deltaTime)
		u.HitTimer = math.Max(0, u.HitTimer-deltaTime)

		if u.ReboundTimer > 0 {
			u.ReboundTimer = math.Max(0, u.ReboundTimer-deltaTime)
		} else {
			u.VX = u.Team.Direction() * u.Def.Speed
		}

		u.X += u.VX * deltaTime
	}
}
