// internal/component/particle.go
package component

import "image/color"

// Particle — искра от попадания. Чисто косметика.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
	Color  color.RGBA
	Alive  bool
}

func (p *Particle) Update(dt, gravity float64) {
	p.Life -= dt
	if p.Life <= 0 {
		p.Alive = false
		return
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY -= gravity * dt
}
