package audio

import (
	"neon-siege/internal/event"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestPluckIsFiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewPluckGenerator(rate, 440, 60*time.Millisecond)

	n, peak := drain(g)
	assert.Equal(t, rate.N(60*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.0)
	assert.NoError(t, g.Err())
}

func TestArpeggioLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	s := Arpeggio(rate, []float64{440, 660, 880}, 100*time.Millisecond)
	require.NotNil(t, s)

	n, peak := drain(s)
	assert.Equal(t, 3*rate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
}

func TestArpeggioSkipsUnplayable(t *testing.T) {
	rate := beep.SampleRate(8000)
	assert.Nil(t, Arpeggio(rate, []float64{6000}, 10*time.Millisecond))
}

func TestHitMapping(t *testing.T) {
	assert.Greater(t, HitPitch(0.85), HitPitch(1.2), "stronger hits sound lower")
	assert.Equal(t, HitPitch(1.5), HitPitch(10))
	assert.Greater(t, HitVolume(1.2), HitVolume(0.9))
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	d := event.NewDispatcher()
	sm.Subscribe(d)

	assert.NotPanics(t, func() {
		d.Dispatch(event.Event{Type: event.HitOccurred, Data: event.Hit{Strength: 1}})
		d.Dispatch(event.Event{Type: event.MatchEnded, Data: event.MatchInfo{Result: "win"}})
		sm.Cleanup()
	})
	assert.Zero(t, sm.mixer.Len())
}
