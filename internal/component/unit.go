// internal/component/unit.go
package component

import (
	"neon-siege/internal/config"
	"neon-siege/internal/defs"
	"neon-siege/internal/types"
)

// Unit — наземный юнит на линии.
type Unit struct {
	ID   types.EntityID
	Team defs.Team
	Kind defs.UnitKind
	Def  defs.UnitDefinition

	X, Y float64
	VX   float64
	HP   float64

	HitTimer     float64 // пока > 0, юнит не наносит и не получает урон от столкновений
	ReboundTimer float64 // пока > 0, скорость зафиксирована на отскоке
	Flash        float64 // вспышка попадания, только для отрисовки
	Alive        bool
}

func NewUnit(id types.EntityID, team defs.Team, def defs.UnitDefinition, x, y float64) *Unit {
	return &Unit{
		ID:    id,
		Team:  team,
		Kind:  def.Kind,
		Def:   def,
		X:     x,
		Y:     y,
		VX:    team.Direction() * def.Speed,
		HP:    def.Health,
		Alive: true,
	}
}

func (u *Unit) Radius() float64 { return u.Def.Radius }

func (u *Unit) Mass() float64 { return u.Def.Mass() }

// TakeDamage снимает здоровье и включает вспышку. При hp <= 0 юнит помечается мёртвым,
// из мира он удаляется в конце тика.
func (u *Unit) TakeDamage(dmg float64) {
	if dmg <= 0 {
		return
	}
	u.HP -= dmg
	u.Flash = config.FlashTime
	if u.HP <= 0 {
		u.Alive = false
	}
}

// StartBounce запускает отскок со скоростью bounce_speed в направлении dir (+1/-1)
// и кулдаун попаданий.
func (u *Unit) StartBounce(dir float64) {
	u.ReboundTimer = u.Def.BounceTime
	u.HitTimer = u.Def.HitCooldown
	if dir < 0 {
		u.VX = -u.Def.BounceSpeed
	} else {
		u.VX = u.Def.BounceSpeed
	}
}

// Leading — передний край юнита по направлению движения команды.
func (u *Unit) Leading() float64 {
	return u.X + u.Team.Direction()*u.Def.Radius
}
