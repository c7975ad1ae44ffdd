package system

import (
	"neon-siege/internal/config"
	"neon-siege/internal/entity"
	"neon-siege/internal/event"
	"neon-siege/internal/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitSpawnsParticlesAndShake(t *testing.T) {
	w := entity.NewWorld()
	s := NewVisualEffectSystem(w, utils.NewPRNGService(3))

	s.OnEvent(event.Event{Type: event.HitOccurred, Data: event.Hit{X: 10, Y: 20, Strength: 1.0, Color: config.ClashSparkColor}})

	assert.Len(t, w.Particles, 16)
	assert.InDelta(t, 0.06, s.Shake, 1e-9)
	assert.InDelta(t, 6.0, s.ShakeMag, 1e-9)
	for _, p := range w.Particles {
		assert.Equal(t, 10.0, p.X)
		assert.GreaterOrEqual(t, p.Life, config.ParticleMinLife)
		assert.Less(t, p.Life, config.ParticleMaxLife)
	}

	ox, oy := s.Offset()
	assert.LessOrEqual(t, ox*ox, 36.0)
	assert.LessOrEqual(t, oy*oy, 36.0)
}

func TestParticleCapKeepsNewest(t *testing.T) {
	w := entity.NewWorld()
	s := NewVisualEffectSystem(w, utils.NewPRNGService(3))
	for i := 0; i < 30; i++ {
		s.AddHitFX(event.Hit{X: float64(i), Strength: 1.2})
	}
	assert.Len(t, w.Particles, config.MaxParticles)
	assert.Equal(t, 29.0, w.Particles[len(w.Particles)-1].X)
}

func TestEffectsDecay(t *testing.T) {
	w := entity.NewWorld()
	s := NewVisualEffectSystem(w, utils.NewPRNGService(3))
	s.AddHitFX(event.Hit{Strength: 0.9})

	s.Update(0.1)
	assert.Zero(t, s.ShakeMag)
	ox, oy := s.Offset()
	assert.Zero(t, ox)
	assert.Zero(t, oy)

	s.Update(0.25)
	assert.Empty(t, w.Particles, "max particle life is 0.30s")

	s.AddHitFX(event.Hit{Strength: 1})
	s.Reset()
	assert.Empty(t, w.Particles)
	assert.Zero(t, s.Shake)
}

func TestNonHitEventsIgnored(t *testing.T) {
	w := entity.NewWorld()
	s := NewVisualEffectSystem(w, utils.NewPRNGService(3))
	s.OnEvent(event.Event{Type: event.UnitKilled, Data: event.UnitInfo{}})
	assert.Empty(t, w.Particles)
}
