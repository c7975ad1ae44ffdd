// internal/system/formation.go
package system

import (
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/entity"
	"sort"
)

// FormationSystem не даёт юнитам одной команды обгонять друг друга:
// юниты выстраиваются в очередь с зазором (r1+r2)*(1+FormationPad).
type FormationSystem struct {
	world *entity.World
	queue []*component.Unit
}

func NewFormationSystem(world *entity.World) *FormationSystem {
	return &FormationSystem{world: world}
}

func (s *FormationSystem) Update() {
	s.enforce(defs.TeamPlayer)
	s.enforce(defs.TeamEnemy)
}

// enforce сортирует живых юнитов команды по направлению наступления
// (игрок - по возрастанию x, противник - по убыванию) и сдвигает каждого
// следующего вперёд от предыдущего. Двигается только следующий в очереди.
func (s *FormationSystem) enforce(team defs.Team) {
	queue := s.queue[:0]
	for _, u := range s.world.Units {
		if u.Alive && u.Team == team {
			queue = append(queue, u)
		}
	}

	dir := team.Direction()
	sort.SliceStable(queue, func(i, j int) bool {
		return dir*queue[i].X < dir*queue[j].X
	})

	for i := 1; i < len(queue); i++ {
		prev, cur := queue[i-1], queue[i]
		minSep := (prev.Radius() + cur.Radius()) * (1 + config.FormationPad)
		if dir*(cur.X-prev.X) < minSep {
			cur.X = prev.X + dir*minSep
		}
	}

	for i := range queue {
		queue[i] = nil
	}
	s.queue = queue[:0]
}
