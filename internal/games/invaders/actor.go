package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/collision"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Actor is anything that lives in the world: the cannon, aliens and shots.
// The set of implementations is closed to this package.
type Actor interface {
	base() *Body

	// Update advances the actor's own motion by dt seconds.
	Update(w *World, dt float64)

	// Collide reacts to an overlap with other found by the grid.
	Collide(w *World, other Actor)
}

// Body holds the state shared by every actor.
// Position and collision shape always move together.
type Body struct {
	Pos   core.Vec2
	Shape collision.Shape
	alive bool
}

func newBody(pos core.Vec2, width, height float64) Body {
	return Body{
		Pos:   pos,
		Shape: collision.AARect(pos, width/2, height/2),
		alive: true,
	}
}

func (b *Body) base() *Body { return b }

// Move translates the body and its collision shape by offset.
func (b *Body) Move(offset core.Vec2) {
	b.Pos = b.Pos.Add(offset)
	b.Shape.Translate(offset)
}

// Alive reports whether the actor is still part of the world.
func (b *Body) Alive() bool {
	return b.alive
}

// HalfExtents returns the half width and half height of the body.
func (b *Body) HalfExtents() (float64, float64) {
	return b.Shape.Extents()
}

// Input is the control snapshot the cannon reads during Update.
type Input struct {
	Move int  // -1 left, 0 none, +1 right
	Fire bool // fire requested this frame
}
