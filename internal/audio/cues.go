package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Cue timings
const (
	shootDuration     = 90 * time.Millisecond
	killDuration      = 180 * time.Millisecond
	explosionDuration = 600 * time.Millisecond
	pickupNote        = 70 * time.Millisecond
	marchTempo        = 450 * time.Millisecond
)

// Cue returns a fresh streamer for s, or nil for unknown cues.
// Every cue except SoundAmbient ends on its own.
func Cue(s core.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case core.SoundShoot:
		osc := NewSweep(1400, 500, shootDuration, WaveSquare, rate)
		return newVolume(NewEnvelope(osc, shootDuration, 5*time.Millisecond, 40*time.Millisecond, rate), 0.25)

	case core.SoundKill:
		noise := NewOscillator(0, killDuration, WaveNoise, rate)
		thud := NewSweep(300, 60, killDuration, WaveSaw, rate)
		mixed := beep.Mix(newVolume(noise, 0.5), newVolume(thud, 0.5))
		return newVolume(NewEnvelope(mixed, killDuration, 2*time.Millisecond, 120*time.Millisecond, rate), 0.35)

	case core.SoundExplosion:
		noise := NewOscillator(0, explosionDuration, WaveNoise, rate)
		rumble := NewSweep(120, 30, explosionDuration, WaveSine, rate)
		mixed := beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.8))
		return newVolume(NewEnvelope(mixed, explosionDuration, 5*time.Millisecond, 450*time.Millisecond, rate), 0.45)

	case core.SoundPickup:
		return newVolume(beep.Seq(tone(987.77, pickupNote, rate), tone(1318.51, pickupNote, rate)), 0.3)

	case core.SoundAmbient:
		return newVolume(NewMarch(marchTempo, rate), 0.2)

	default:
		return nil
	}
}

// tone is a short enveloped sine note.
func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, 5*time.Millisecond, d/2, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, 5*time.Millisecond, d/2, rate)
}
