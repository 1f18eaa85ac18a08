// Package avoid implements a small pickup toy: steer a ball around the
// playfield and collect every pickup it touches.
package avoid

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/collision"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// PickupPoints is the score for each collected pickup.
const PickupPoints = 10

// Visual characters for rendering
const (
	PlayerChar = '◉'
	PickupChar = '●'
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

// ball is a circular actor; pickups never move.
type ball struct {
	pos   core.Vec2
	shape collision.Shape
}

func newBall(pos core.Vec2, radius float64) *ball {
	return &ball{pos: pos, shape: collision.Circle(pos, radius)}
}

// moveTo sets the position and keeps the collider on it.
func (b *ball) moveTo(pos core.Vec2) {
	b.shape.Translate(pos.Sub(b.pos))
	b.pos = pos
}

// Game implements the pickup toy.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.AvoidConfig
	grid    *collision.Grid[*ball]
	player  *ball
	pickups []*ball
	held    *core.HeldInput
	audio   core.AudioSink
	dt      float64

	tick     uint64
	score    int
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a new game instance.
func New() *Game {
	return &Game{audio: core.Mute{}}
}

func init() {
	registry.Register("avoid", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "avoid"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pickup Demo"
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
	cfg, err := config.LoadAvoid(configPath)
	if err != nil {
		cfg = config.DefaultAvoidConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAvoidPreset(&cfg, difficultyPreset)
	}
	g.resetWith(runtime, cfg)
}

func (g *Game) resetWith(runtime core.RuntimeConfig, cfg config.AvoidConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.dt = runtime.TickSeconds()
	g.tick = 0
	g.score = 0
	g.won = false
	g.paused = false
	g.tooSmall = tooSmall(runtime.ScreenW, runtime.ScreenH)
	g.held = core.NewHeldInput(cfg.Input.HoldTicks)

	cell := cfg.World.CellScale * 2 * max(cfg.Player.Radius, cfg.Pickups.Radius)
	bounds := collision.Bounds{MinX: 0, MaxX: cfg.World.Width, MinY: 0, MaxY: cfg.World.Height}
	g.grid = collision.NewGrid[*ball](bounds, cell, cell)

	g.player = newBall(core.V(cfg.Player.X, cfg.Player.Y), cfg.Player.Radius)
	g.pickups = g.pickups[:0]
	for _, p := range cfg.Pickups.Positions {
		g.pickups = append(g.pickups, newBall(core.V(p.X, p.Y), cfg.Pickups.Radius))
	}
}

// Resize adapts to a new terminal size without restarting the round.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = tooSmall(width, height)
}

func tooSmall(width, height int) bool {
	return width < 20 || height < 10
}

// Step advances the game by one tick: collect touched pickups, then move.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.won {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.held.Observe(in)

	g.collect()
	g.move()

	if len(g.pickups) == 0 {
		g.won = true
	}
	return core.StepResult{State: g.State()}
}

// collect rebuilds the grid and removes every pickup touching the player.
func (g *Game) collect() {
	g.grid.Clear()
	g.grid.Insert(g.player, g.player.shape)
	for _, p := range g.pickups {
		g.grid.Insert(p, p.shape)
	}

	var taken []*ball
	for other := range g.grid.IterColliding(g.player) {
		taken = append(taken, other)
	}
	for _, p := range taken {
		g.remove(p)
		g.score += PickupPoints
		g.audio.Play(core.SoundPickup)
	}
}

func (g *Game) remove(p *ball) {
	for i, q := range g.pickups {
		if q == p {
			g.pickups = append(g.pickups[:i], g.pickups[i+1:]...)
			return
		}
	}
}

// move applies the held directions. The player stays inside the world.
func (g *Game) move() {
	dx := float64(g.held.Axis(core.ActionLeft, core.ActionRight))
	dy := float64(g.held.Axis(core.ActionDown, core.ActionUp))
	step := g.cfg.Player.Speed * g.dt

	r := g.cfg.Player.Radius
	next := g.player.pos.Add(core.V(dx*step, dy*step))
	next.X = core.ClampF(next.X, r, g.cfg.World.Width-r)
	next.Y = core.ClampF(next.Y, r, g.cfg.World.Height-r)
	g.player.moveTo(next)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.won,
		Paused:   g.paused,
	}
}

// Progress reports how many pickups were collected.
func (g *Game) Progress() string {
	total := len(g.cfg.Pickups.Positions)
	return fmt.Sprintf("%d/%d pickups", total-len(g.pickups), total)
}

// Remaining returns the number of pickups still on the field.
func (g *Game) Remaining() int {
	return len(g.pickups)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawCenteredBox("SCREEN TOO SMALL", "Need at least 20x10")
		return
	}

	field := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(field)

	for _, p := range g.pickups {
		x, y := g.cell(p.pos, field)
		dst.SetColor(x, y, PickupChar, core.ColorBrightRed)
	}
	x, y := g.cell(g.player.pos, field)
	dst.SetColor(x, y, PlayerChar, core.ColorBrightCyan)

	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", g.score), core.ColorBrightYellow)
	left := fmt.Sprintf(" Left: %d ", len(g.pickups))
	dst.DrawText(dst.Width()-len(left)-1, 0, left)

	switch {
	case g.won:
		dst.DrawCenteredBox("ALL COLLECTED", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawCenteredBox("PAUSED", "Press P to resume")
	}
}

// cell maps a world point inside the border of field, flipping y.
func (g *Game) cell(p core.Vec2, field core.Rect) (int, int) {
	innerW := field.W - 2
	innerH := field.H - 2
	x := field.X + 1 + int(p.X/g.cfg.World.Width*float64(innerW))
	y := field.Y + 1 + int((g.cfg.World.Height-p.Y)/g.cfg.World.Height*float64(innerH))
	return core.Clamp(x, field.X+1, field.X+innerW), core.Clamp(y, field.Y+1, field.Y+innerH)
}
