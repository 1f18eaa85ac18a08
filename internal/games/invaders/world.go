package invaders

import (
	"iter"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/collision"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// GameOverMessage is shown when the game reaches its terminal state.
const GameOverMessage = "Game Over"

// HUD receives score and lives changes.
type HUD interface {
	UpdateScore(delta int)
	UpdateLives(n int)
	ShowTerminalMessage(text string)
}

// World is the Space Invaders simulation in continuous world coordinates.
// It owns the live actor set and runs one frame per Step.
type World struct {
	cfg        config.InvadersConfig
	rng        *rand.Rand
	hud        HUD
	audio      core.AudioSink
	difficulty *config.DifficultyManager

	grid       *collision.Grid[Actor]
	actors     []Actor
	pending    []Actor // spawned this frame, joined at the next flush
	cannon     *Cannon
	playerShot *PlayerShot // nil while no player shot is alive
	swarm      *Swarm
	input      Input

	score  int
	lives  int
	level  int
	wave   int
	frame  uint64
	halted bool
}

// NewWorld creates a world with a fresh swarm and cannon.
// A nil hud or audio sink is replaced by a no-op.
func NewWorld(cfg config.InvadersConfig, rng *rand.Rand, hud HUD, audio core.AudioSink) *World {
	if hud == nil {
		hud = nopHUD{}
	}
	if audio == nil {
		audio = core.Mute{}
	}

	cell := cfg.World.CellScale * max(cfg.Cannon.Width, cfg.Cannon.Height, cfg.Swarm.AlienWidth, cfg.Swarm.AlienHeight)
	bounds := collision.Bounds{MinX: 0, MaxX: cfg.World.Width, MinY: 0, MaxY: cfg.World.Height}

	w := &World{
		cfg:        cfg,
		rng:        rng,
		hud:        hud,
		audio:      audio,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		grid:       collision.NewGrid[Actor](bounds, cell, cell),
		lives:      cfg.Gameplay.Lives,
		wave:       1,
	}

	w.swarm = NewSwarm(cfg)
	for a := range w.swarm.Aliens() {
		w.actors = append(w.actors, a)
	}
	w.cannon = w.newCannon()
	w.actors = append(w.actors, w.cannon)

	hud.UpdateLives(w.lives)
	return w
}

// Step runs one frame of dt seconds with the given controls:
//
//  1. rebuild the grid from the live actors
//  2. remove actors that left the playfield
//  3. resolve the player shot's collision
//  4. resolve the cannon's collision and respawn it
//  5. let every column try to shoot
//  6. update every live actor
//  7. advance the swarm
//
// Nothing happens once the world has halted.
func (w *World) Step(dt float64, in Input) {
	if w.halted {
		return
	}
	w.frame++
	w.input = in

	w.grid.Clear()
	for _, a := range w.actors {
		if b := a.base(); b.alive {
			w.grid.Insert(a, b.Shape)
		}
	}

	for _, a := range w.actors {
		if a.base().alive && !w.grid.Contains(a) {
			w.Kill(a)
		}
	}

	if w.playerShot != nil && w.collide(w.playerShot) {
		w.audio.Play(core.SoundKill)
	}

	if w.cannon != nil && w.collide(w.cannon) {
		w.audio.Play(core.SoundExplosion)
		w.respawn()
		if w.halted {
			w.compact()
			return
		}
	}

	for _, col := range w.swarm.columns {
		if pos, ok := col.Shoot(w.rng); ok {
			w.spawn(w.newAlienShot(pos))
		}
	}
	w.flush()

	for _, a := range w.actors {
		if a.base().alive {
			a.Update(w, dt)
		}
	}
	w.flush()
	w.compact()

	w.swarm.Update(dt)

	w.checkInvasion()
	if !w.halted && w.swarm.Len() == 0 {
		w.nextWave()
	}
}

// collide dispatches a's collision with the first live actor overlapping it.
func (w *World) collide(a Actor) bool {
	if !a.base().alive {
		return false
	}
	for other := range w.grid.IterColliding(a) {
		if !other.base().alive {
			continue
		}
		a.Collide(w, other)
		return true
	}
	return false
}

// Kill removes a from the world. Aliens leave their column immediately;
// the actor list is compacted at the end of the frame.
func (w *World) Kill(a Actor) {
	b := a.base()
	if !b.alive {
		return
	}
	b.alive = false

	switch v := a.(type) {
	case *Alien:
		w.swarm.remove(v)
	case *PlayerShot:
		if w.playerShot == v {
			w.playerShot = nil
		}
	}
}

// FirePlayerShot spawns a player shot at pos unless one is already alive.
func (w *World) FirePlayerShot(pos core.Vec2) bool {
	if w.playerShot != nil {
		return false
	}
	w.playerShot = w.newPlayerShot(pos)
	w.spawn(w.playerShot)
	w.audio.Play(core.SoundShoot)
	return true
}

// AddScore adds points and speeds the swarm up at every new level.
func (w *World) AddScore(points int) {
	w.score += points
	w.hud.UpdateScore(points)

	if level := w.difficulty.Level(w.score); level > w.level {
		w.level = level
		w.swarm.SetPeriod(w.difficulty.StepPeriod(w.cfg.Swarm.StepPeriod, w.score))
	}
}

func (w *World) respawn() {
	w.lives--
	w.hud.UpdateLives(w.lives)
	if w.lives < 0 {
		w.halt()
		return
	}
	w.cannon = w.newCannon()
	w.spawn(w.cannon)
}

func (w *World) halt() {
	if w.halted {
		return
	}
	w.halted = true
	w.hud.ShowTerminalMessage(GameOverMessage)
}

// checkInvasion halts the world once any alien reaches the cannon's row.
func (w *World) checkInvasion() {
	line := w.cfg.Cannon.Y + w.cfg.Cannon.Height/2
	for a := range w.swarm.Aliens() {
		_, halfH := a.HalfExtents()
		if a.Pos.Y-halfH <= line {
			w.halt()
			return
		}
	}
}

// nextWave replaces a cleared swarm, keeping the current rhythm.
func (w *World) nextWave() {
	period := w.swarm.Period()
	w.swarm = NewSwarm(w.cfg)
	w.swarm.SetPeriod(period)
	for a := range w.swarm.Aliens() {
		w.spawn(a)
	}
	w.flush()
	w.wave++
}

func (w *World) spawn(a Actor) {
	w.pending = append(w.pending, a)
}

func (w *World) flush() {
	w.actors = append(w.actors, w.pending...)
	clear(w.pending)
	w.pending = w.pending[:0]
}

func (w *World) compact() {
	w.actors = slices.DeleteFunc(w.actors, func(a Actor) bool {
		return !a.base().alive
	})
}

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining spare lives. Negative means the game is over.
func (w *World) Lives() int { return w.lives }

// Wave returns the 1-based wave number.
func (w *World) Wave() int { return w.wave }

// Halted reports whether the world reached its terminal state.
func (w *World) Halted() bool { return w.halted }

// Swarm returns the current swarm.
func (w *World) Swarm() *Swarm { return w.swarm }

// Cannon returns the current cannon. It may be dead after the final hit.
func (w *World) Cannon() *Cannon { return w.cannon }

// PlayerShot returns the live player shot, or nil.
func (w *World) PlayerShot() *PlayerShot { return w.playerShot }

// Actors yields every live actor.
func (w *World) Actors() iter.Seq[Actor] {
	return func(yield func(Actor) bool) {
		for _, a := range w.actors {
			if a.base().alive && !yield(a) {
				return
			}
		}
	}
}

type nopHUD struct{}

func (nopHUD) UpdateScore(int)            {}
func (nopHUD) UpdateLives(int)            {}
func (nopHUD) ShowTerminalMessage(string) {}
