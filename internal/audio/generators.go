package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// PluckGenerator — синус с экспоненциальным затуханием и конечной длиной.
type PluckGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func NewPluckGenerator(sr beep.SampleRate, freq float64, duration time.Duration) *PluckGenerator {
	return &PluckGenerator{sr: sr, freq: freq, total: sr.N(duration)}
}

func (g *PluckGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-float64(g.pos) / float64(g.total) * 5)
		sample := 0.4 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PluckGenerator) Err() error {
	return nil
}
