// internal/audio/sound_manager.go
package audio

import (
	"fmt"
	"neon-siege/internal/event"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	maxVoices  = 8 // одновременно звучащих попаданий
)

// SoundManager озвучивает события боя. Без инициализации молчит.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize открывает звуковое устройство.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup останавливает звук и закрывает устройство.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Subscribe подписывает менеджер на события боя.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.HitOccurred, event.MatchStarted, event.MatchEnded)
}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Hit:
		sm.PlayHit(data.Strength)
	case event.MatchInfo:
		switch {
		case e.Type == event.MatchStarted:
			sm.play(Arpeggio(sampleRate, []float64{330, 440}, 90*time.Millisecond))
		case data.Result == "win":
			sm.play(Arpeggio(sampleRate, []float64{523, 659, 784, 1046}, 120*time.Millisecond))
		default:
			sm.play(Arpeggio(sampleRate, []float64{392, 311, 262, 196}, 160*time.Millisecond))
		}
	}
}

// PlayHit — короткий щелчок, ниже и громче для сильных ударов.
func (sm *SoundManager) PlayHit(strength float64) {
	sm.mu.Lock()
	busy := sm.initialized && sm.voices() >= maxVoices
	sm.mu.Unlock()
	if busy {
		return
	}

	tone := NewPluckGenerator(sampleRate, HitPitch(strength), 60*time.Millisecond)
	sm.play(&effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   HitVolume(strength),
	})
}

func (sm *SoundManager) voices() int {
	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HitPitch — частота щелчка: от 660 Гц для слабых до 330 Гц для сильных.
func HitPitch(strength float64) float64 {
	if strength < 0 {
		strength = 0
	}
	if strength > 1.5 {
		strength = 1.5
	}
	return 660 - 220*strength
}

// HitVolume — громкость в степенях двойки относительно исходной.
func HitVolume(strength float64) float64 {
	return -2 + strength
}

// Arpeggio склеивает короткие синусоидальные ноты. Частоты, которые
// генератор не может воспроизвести, пропускаются.
func Arpeggio(sr beep.SampleRate, freqs []float64, note time.Duration) beep.Streamer {
	var notes []beep.Streamer
	for _, f := range freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			continue
		}
		notes = append(notes, &effects.Volume{
			Streamer: beep.Take(sr.N(note), tone),
			Base:     2,
			Volume:   -3,
		})
	}
	if len(notes) == 0 {
		return nil
	}
	return beep.Seq(notes...)
}
