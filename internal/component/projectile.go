// internal/component/projectile.go
package component

import (
	"neon-siege/internal/defs"
	"neon-siege/internal/types"
)

// Projectile — снаряд башни. Урон плоский, без отбрасывания,
// направление задаётся при выстреле и дальше не меняется.
type Projectile struct {
	ID     types.EntityID
	Team   defs.Team
	X, Y   float64
	VX, VY float64
	Radius float64
	Damage float64
	Alive  bool
}

func (p *Projectile) Advance(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// OutOfBounds проверяет, улетел ли снаряд за пределы мира с запасом margin.
func (p *Projectile) OutOfBounds(width, height, margin float64) bool {
	return p.X < -margin || p.X > width+margin || p.Y < -margin || p.Y > height+margin
}
