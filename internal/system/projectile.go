// internal/system/projectile.go
package system

import (
	"math"
	"neon-siege/internal/config"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
)

// ProjectileSystem управляет полётом снарядов и нанесением плоского урона
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update двигает снаряды и проверяет попадания: сначала по вражеским юнитам
// (проверка по квадрату), затем по вражескому замку (прямоугольник, расширенный
// на радиус снаряда). Мёртвые снаряды удаляются в конце тика.
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, p := range s.world.Projectiles {
		if !p.Alive {
			continue
		}

		p.Advance(deltaTime)
		if p.OutOfBounds(config.WorldWidth, config.WorldHeight, config.ProjectileMargin) {
			p.Alive = false
			continue
		}

		for _, u := range s.world.Units {
			if !u.Alive || u.Team == p.Team {
				continue
			}
			reach := u.Radius() + p.Radius
			if math.Abs(u.X-p.X) <= reach && math.Abs(u.Y-p.Y) <= reach {
				u.TakeDamage(p.Damage)
				emitHit(s.eventDispatcher, p.X, p.Y, config.ShotUnitStrength, config.ShotSparkColor)
				p.Alive = false
				break
			}
		}
		if !p.Alive {
			continue
		}

		enemy := s.world.EnemyCastle(p.Team)
		left, right, bottom, top := enemy.Bounds(s.world.GroundY)
		inX := left-p.Radius <= p.X && p.X <= right+p.Radius
		inY := bottom-p.Radius <= p.Y && p.Y <= top+p.Radius
		if inX && inY {
			enemy.TakeDamage(p.Damage)
			if s.eventDispatcher != nil {
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.CastleDamaged,
					Data: event.CastleDamage{Team: enemy.Team, Amount: p.Damage, HP: enemy.HP},
				})
			}
			emitHit(s.eventDispatcher, p.X, p.Y, config.ShotCastleStrength, config.CastleSparkColor)
			p.Alive = false
		}
	}
}
