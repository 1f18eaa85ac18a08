// Package audio synthesizes the games' sound cues and plays them through
// the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player is a core.AudioSink backed by a beep mixer.
// Until Init succeeds every call is a no-op, so a machine without an audio
// device runs the games silently.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	ambient *beep.Ctrl
	ready   bool
	logger  *log.Logger

	// speaker.Lock and speaker.Unlock, replaceable in tests
	lock   func()
	unlock func()
}

// NewPlayer creates a player. Call Init to attach it to the speaker.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.logger.Debug("audio ready", "rate", int(sampleRate))
	return nil
}

// Play starts cue s. Playing the ambient loop while it runs is a no-op.
func (p *Player) Play(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}

	if s == core.SoundAmbient {
		if p.ambient != nil {
			p.lock()
			p.ambient.Paused = false
			p.unlock()
			return
		}
		p.ambient = &beep.Ctrl{Streamer: Cue(s, sampleRate)}
		p.add(p.ambient)
		return
	}

	if cue := Cue(s, sampleRate); cue != nil {
		p.add(cue)
	}
}

// Stop pauses the ambient loop. One-shot cues always play to the end.
func (p *Player) Stop(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || s != core.SoundAmbient || p.ambient == nil {
		return
	}
	p.lock()
	p.ambient.Paused = true
	p.unlock()
}

// Active returns the number of streamers currently in the mixer.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	defer p.unlock()
	return p.mixer.Len()
}

// Close silences everything and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.ambient = nil
	p.ready = false
	speaker.Close()
}

func (p *Player) add(s beep.Streamer) {
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// Sink returns a Player attached to the speaker, or a silent sink when
// muted or when no audio device is available.
func Sink(muted bool, logger *log.Logger) (core.AudioSink, func()) {
	if muted {
		return core.Mute{}, func() {}
	}
	p := NewPlayer(logger)
	if err := p.Init(); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return core.Mute{}, func() {}
	}
	return p, p.Close
}
