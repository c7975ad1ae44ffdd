// internal/system/collision.go
package system

import (
	"math"
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
	"sort"
)

// CollisionSystem разрешает столкновения юнитов разных команд.
//
// Все юниты стоят на одной линии, поэтому после сортировки по x коснуться
// друг друга могут только соседи: хватает сортировки и одного прохода по парам.
// Сортировка меняет порядок хранения в мире, и этот порядок дальше в тике
// используется как порядок обхода (выбор цели башней, попадания снарядов).
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *CollisionSystem) Update() {
	units := s.world.Units
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].X < units[j].X
	})

	for i := 0; i < len(units)-1; i++ {
		a, b := units[i], units[i+1]
		if !a.Alive || !b.Alive || a.Team == b.Team {
			continue
		}

		gap := math.Abs(b.X - a.X)
		sumR := a.Radius() + b.Radius()
		if gap > sumR {
			continue
		}

		if a.HitTimer <= 0 && b.HitTimer <= 0 {
			s.clash(a, b)
		}

		// Перекрытие раздвигаем каждый тик, пока оно есть, а не только в момент удара.
		if overlap := sumR - gap; overlap > 0 {
			a.X -= overlap * 0.5
			b.X += overlap * 0.5
		}
	}
}

// clash — удар пары: a левее b.
func (s *CollisionSystem) clash(a, b *component.Unit) {
	toA, toB := ClashDamage(a, b)
	b.TakeDamage(toB)
	a.TakeDamage(toA)

	emitHit(s.eventDispatcher, (a.X+b.X)*0.5, s.world.LaneY, config.UnitClashStrength, config.ClashSparkColor)

	a.StartBounce(-1)
	b.StartBounce(1)
}
