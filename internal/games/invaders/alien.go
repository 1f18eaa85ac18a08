package invaders

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Alien is a swarm member. It never moves on its own; the swarm moves it.
type Alien struct {
	Body
	Row    int // 0 is the bottom row
	Points int
	column int // index into Swarm.columns
}

// Update is a no-op; aliens march in lock-step via the swarm.
func (a *Alien) Update(*World, float64) {}

// Collide is a no-op; shots and the cannon resolve alien hits.
func (a *Alien) Collide(*World, Actor) {}

// Column is a vertical group of aliens sharing an x offset.
// The front alien is the bottom-most live one.
type Column struct {
	aliens []*Alien

	minX, maxX  float64 // turn when the front alien passes these
	probability float64
	shotOffset  float64
}

// Len returns the number of live aliens in the column.
func (c *Column) Len() int {
	return len(c.aliens)
}

// Front returns the bottom-most live alien, or nil for an empty column.
func (c *Column) Front() *Alien {
	if len(c.aliens) == 0 {
		return nil
	}
	return c.aliens[0]
}

// Aliens returns the live aliens, front first. The slice must not be modified.
func (c *Column) Aliens() []*Alien {
	return c.aliens
}

// ShouldTurn reports whether the front alien is within the turn margin of
// the edge it is marching toward. Empty columns never turn.
func (c *Column) ShouldTurn(direction int) bool {
	front := c.Front()
	if front == nil {
		return false
	}
	x := front.Pos.X
	return (direction > 0 && x >= c.maxX) || (direction < 0 && x <= c.minX)
}

// Shoot rolls the per-frame shot chance and returns where an alien shot
// should appear below the front alien.
func (c *Column) Shoot(rng *rand.Rand) (core.Vec2, bool) {
	if rng.Float64() >= c.probability || len(c.aliens) == 0 {
		return core.Vec2{}, false
	}
	front := c.aliens[0]
	return core.V(front.Pos.X, front.Pos.Y-c.shotOffset), true
}

// Remove drops alien from the column. Unknown aliens are ignored.
func (c *Column) Remove(alien *Alien) {
	if i := slices.Index(c.aliens, alien); i >= 0 {
		c.aliens = slices.Delete(c.aliens, i, i+1)
	}
}
