// internal/system/visual_effect.go
package system

import (
	"math"
	"neon-siege/internal/component"
	"neon-siege/internal/config"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
	"neon-siege/internal/utils"
)

// VisualEffectSystem превращает события попаданий в искры и тряску экрана.
// Берёт случайность из своего генератора, поэтому на симуляцию не влияет.
type VisualEffectSystem struct {
	world *entity.World
	rng   *utils.PRNGService

	Shake    float64 // оставшееся время тряски
	ShakeMag float64
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	if hit, ok := e.Data.(event.Hit); ok {
		s.AddHitFX(hit)
	}
}

// AddHitFX выпускает 6+10*strength искр и усиливает тряску.
// Частиц не больше MaxParticles, лишние самые старые отбрасываются.
func (s *VisualEffectSystem) AddHitFX(hit event.Hit) {
	n := int(6 + 10*hit.Strength)
	for i := 0; i < n; i++ {
		ang := s.rng.Float64() * 2 * math.Pi
		spd := s.rng.Range(config.ParticleMinSpeed, config.ParticleMaxSpeed) * hit.Strength
		s.world.Particles = append(s.world.Particles, &component.Particle{
			X:     hit.X,
			Y:     hit.Y,
			VX:    math.Cos(ang) * spd,
			VY:    math.Sin(ang) * spd,
			Life:  s.rng.Range(config.ParticleMinLife, config.ParticleMaxLife),
			Size:  s.rng.Range(config.ParticleMinSize, config.ParticleMaxSize),
			Color: hit.Color,
			Alive: true,
		})
	}

	if extra := len(s.world.Particles) - config.MaxParticles; extra > 0 {
		kept := copy(s.world.Particles, s.world.Particles[extra:])
		s.world.Particles = s.world.Particles[:kept]
	}

	s.Shake = math.Max(s.Shake, config.ShakeTimePerHit*hit.Strength)
	s.ShakeMag = math.Max(s.ShakeMag, config.ShakeMagPerHit*hit.Strength)
}

// Update гасит тряску и старит частицы.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	if s.Shake > 0 {
		s.Shake -= deltaTime
		if s.Shake <= 0 {
			s.ShakeMag = 0
		}
	}

	alive := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		p.Update(deltaTime, config.ParticleGravity)
		if p.Alive {
			alive = append(alive, p)
		}
	}
	s.world.Particles = alive
}

// Offset — текущий сдвиг мира от тряски.
func (s *VisualEffectSystem) Offset() (float64, float64) {
	if s.Shake <= 0 {
		return 0, 0
	}
	ox := (s.rng.Float64()*2 - 1) * s.ShakeMag
	oy := (s.rng.Float64()*2 - 1) * s.ShakeMag
	return ox, oy
}

func (s *VisualEffectSystem) Reset() {
	s.world.Particles = s.world.Particles[:0]
	s.Shake = 0
	s.ShakeMag = 0
}
