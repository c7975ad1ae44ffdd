// internal/entity/ecs.go
package entity

import (
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/types"
)

// World хранит все сущности матча. Юниты и снаряды лежат в срезах с флагом
// Alive: внутри тика из срезов ничего не удаляется, мёртвые вычищаются
// один раз в конце тика через Compact.
type World struct {
	GameTime    float64
	NextID      types.EntityID
	GroundY     float64
	LaneY       float64
	Castles     [2]*component.Castle
	Units       []*component.Unit
	Projectiles []*component.Projectile
	Particles   []*component.Particle
}

func NewWorld() *World {
	return &World{
		NextID:  1,
		GroundY: config.GroundY(),
		LaneY:   config.LaneY(),
		Castles: [2]*component.Castle{
			component.NewCastle(defs.TeamPlayer, config.CastleInset),
			component.NewCastle(defs.TeamEnemy, config.WorldWidth-config.CastleInset),
		},
		Units:       make([]*component.Unit, 0, 16),
		Projectiles: make([]*component.Projectile, 0, 16),
		Particles:   make([]*component.Particle, 0, config.MaxParticles),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Castle возвращает замок команды.
func (w *World) Castle(team defs.Team) *component.Castle {
	return w.Castles[team]
}

// EnemyCastle возвращает замок, который атакует команда team.
func (w *World) EnemyCastle(team defs.Team) *component.Castle {
	return w.Castles[team.Opponent()]
}

// SpawnX — точка появления юнитов команды перед своим замком.
func (w *World) SpawnX(team defs.Team) float64 {
	c := w.Castle(team)
	return c.X + team.Direction()*c.W*config.SpawnFactor
}

// AddUnit создаёт юнита у своего замка на линии.
func (w *World) AddUnit(team defs.Team, def defs.UnitDefinition) *component.Unit {
	u := component.NewUnit(w.NewEntity(), team, def, w.SpawnX(team), w.LaneY)
	w.Units = append(w.Units, u)
	return u
}

func (w *World) AddProjectile(p *component.Projectile) *component.Projectile {
	p.ID = w.NewEntity()
	p.Alive = true
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// CountAlive считает живых юнитов команды.
func (w *World) CountAlive(team defs.Team) int {
	n := 0
	for _, u := range w.Units {
		if u.Alive && u.Team == team {
			n++
		}
	}
	return n
}

// Compact удаляет мёртвых юнитов и снаряды, сохраняя порядок живых.
// Возвращает удалённых юнитов.
func (w *World) Compact() []*component.Unit {
	var dead []*component.Unit
	alive := w.Units[:0]
	for _, u := range w.Units {
		if u.Alive {
			alive = append(alive, u)
		} else {
			dead = append(dead, u)
		}
	}
	clearTail(w.Units, len(alive))
	w.Units = alive

	live := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Alive {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(w.Projectiles); i++ {
		w.Projectiles[i] = nil
	}
	w.Projectiles = live
	return dead
}

func clearTail(units []*component.Unit, from int) {
	for i := from; i < len(units); i++ {
		units[i] = nil
	}
}

// Clear убирает все юниты, снаряды и частицы. Замки остаются.
func (w *World) Clear() {
	w.Units = w.Units[:0]
	w.Projectiles = w.Projectiles[:0]
	w.Particles = w.Particles[:0]
	w.GameTime = 0
}
