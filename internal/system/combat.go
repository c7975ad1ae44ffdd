// internal/system/combat.go
package system

import (
	"math"
	"neon-siege/internal/component"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
)

// CombatSystem управляет стрельбой башен
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update: у каждой башни свой таймер. На нуле таймер сбрасывается на кулдаун
// оружия и делается ровно одна попытка выстрела. Нет цели - нет выстрела,
// но таймер всё равно сброшен.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, castle := range s.world.Castles {
		castle.Timer = math.Max(0, castle.Timer-deltaTime)
		if castle.Timer <= 0 {
			castle.Timer = castle.Weapon.Cooldown
			s.fire(castle)
		}
	}
}

func (s *CombatSystem) fire(castle *component.Castle) {
	mx, my := castle.Muzzle(s.world.GroundY)
	target := s.findNearestEnemy(castle, mx)
	if target == nil {
		return
	}

	dx := target.X - mx
	dy := target.Y - my
	dist := math.Max(1.0, math.Hypot(dx, dy))
	speed := castle.Weapon.ProjectileSpeed

	proj := s.world.AddProjectile(&component.Projectile{
		Team:   castle.Team,
		X:      mx,
		Y:      my,
		VX:     dx / dist * speed,
		VY:     dy / dist * speed,
		Radius: castle.Weapon.ProjectileRadius,
		Damage: castle.Weapon.Damage,
	})

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileFired,
			Data: event.Shot{ID: proj.ID, Team: castle.Team, Weapon: castle.Weapon.Name, Target: target.ID},
		})
	}
}

// findNearestEnemy ищет живого врага, ближайшего к дулу по горизонтали.
// При равенстве побеждает первый найденный в порядке хранения.
func (s *CombatSystem) findNearestEnemy(castle *component.Castle, muzzleX float64) *component.Unit {
	var nearest *component.Unit
	minDistance := math.MaxFloat64
	for _, u := range s.world.Units {
		if !u.Alive || u.Team == castle.Team {
			continue
		}
		distance := math.Abs(u.X - muzzleX)
		if nearest == nil || distance < minDistance {
			minDistance = distance
			nearest = u
		}
	}
	return nearest
}
