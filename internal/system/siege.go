// internal/system/siege.go
package system

import (
	"neon-siege/internal/config"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
)

// SiegeSystem обрабатывает тараны: юнит дошёл до вражеского замка.
type SiegeSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewSiegeSystem(world *entity.World, eventDispatcher *event.Dispatcher) *SiegeSystem {
	return &SiegeSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update: юнит вне кулдауна, чей передний край достал до ближней стены замка
// и чья высота в пределах корпуса, бьёт замок с ограниченной скоростью,
// отскакивает и ставится вплотную снаружи стены, чтобы не бить каждый кадр.
func (s *SiegeSystem) Update() {
	for _, u := range s.world.Units {
		if !u.Alive || u.HitTimer > 0 {
			continue
		}

		enemy := s.world.EnemyCastle(u.Team)
		left, right, bottom, top := enemy.Bounds(s.world.GroundY)
		if u.Y < bottom || u.Y > top {
			continue
		}

		dir := u.Team.Direction()
		var wall float64
		if dir > 0 {
			if u.X+u.Radius() < left {
				continue
			}
			wall = left
		} else {
			if u.X-u.Radius() > right {
				continue
			}
			wall = right
		}

		rel := u.VX
		if rel < 0 {
			rel = -rel
		}
		dmg := CastleImpactDamage(u.Def.HitDamage, rel)
		enemy.TakeDamage(dmg)

		if s.eventDispatcher != nil {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.CastleDamaged,
				Data: event.CastleDamage{Team: enemy.Team, Amount: dmg, HP: enemy.HP},
			})
		}
		emitHit(s.eventDispatcher, wall, u.Y, config.CastleRamStrength, config.CastleSparkColor)

		u.StartBounce(-dir)
		u.X = wall - dir*(u.Radius()+1)
	}
}
