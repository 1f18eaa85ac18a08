// Package invaders implements a Space Invaders clone.
//
// The simulation runs in continuous world coordinates (see World) and is
// projected onto the character screen only when rendering.
package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Minimum terminal size for a readable playfield.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts World to the platform's registry.Game contract.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	world   *World
	board   board
	held    *core.HeldInput
	audio   core.AudioSink
	dt      float64

	tick     uint64
	paused   bool
	tooSmall bool
}

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{audio: core.Mute{}}
}

func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// SetAudio sets the sink for sound cues. Nil mutes the game.
func (g *Game) SetAudio(sink core.AudioSink) {
	if sink == nil {
		sink = core.Mute{}
	}
	g.audio = sink
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	g.resetWith(runtime, cfg)
}

// resetWith starts a new game from an explicit config.
func (g *Game) resetWith(runtime core.RuntimeConfig, cfg config.InvadersConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.dt = runtime.TickSeconds()
	g.tick = 0
	g.paused = false
	g.tooSmall = tooSmall(runtime.ScreenW, runtime.ScreenH)
	g.board = board{}
	g.held = core.NewHeldInput(cfg.Input.HoldTicks)

	rng := rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(cfg, rng, &g.board, g.audio)

	g.audio.Stop(core.SoundAmbient)
	g.audio.Play(core.SoundAmbient)
}

// Resize adapts to a new terminal size. The world keeps running in its own
// coordinates; a screen below the minimum freezes it until it grows again.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = tooSmall(width, height)
}

func tooSmall(width, height int) bool {
	return width < MinScreenW || height < MinScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Halted() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.audio.Stop(core.SoundAmbient)
		} else {
			g.audio.Play(core.SoundAmbient)
		}
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.held.Observe(in)
	g.world.Step(g.dt, Input{
		Move: g.held.Axis(core.ActionLeft, core.ActionRight),
		Fire: in.Has(core.ActionFire),
	})

	if g.world.Halted() {
		g.audio.Stop(core.SoundAmbient)
	}
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Halted(),
		Paused:   g.paused,
	}
}

// Progress reports the wave the run reached.
func (g *Game) Progress() string {
	return fmt.Sprintf("Wave %d", g.world.Wave())
}

// World exposes the simulation for tests and tools.
func (g *Game) World() *World {
	return g.world
}

// board is the HUD sink the world reports to.
type board struct {
	score   int
	lives   int
	message string
}

func (b *board) UpdateScore(delta int) { b.score += delta }
func (b *board) UpdateLives(n int)     { b.lives = n }

func (b *board) ShowTerminalMessage(text string) {
	b.message = text
}

func (b *board) livesText() string {
	return fmt.Sprintf("Lives: %d", max(b.lives, 0))
}
