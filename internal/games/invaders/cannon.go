package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Cannon is the player-controlled actor at the bottom of the playfield.
type Cannon struct {
	Body
	speed      float64
	shotOffset float64
}

func (w *World) newCannon() *Cannon {
	c := w.cfg.Cannon
	return &Cannon{
		Body:       newBody(core.V(w.cfg.World.Width/2, c.Y), c.Width, c.Height),
		speed:      c.Speed,
		shotOffset: c.ShotOffset,
	}
}

// Update moves the cannon by the held direction and fires on request.
// The cannon only moves toward an edge while its body is still inside it.
func (c *Cannon) Update(w *World, dt float64) {
	halfW, _ := c.HalfExtents()
	x := c.Pos.X

	switch {
	case w.input.Move < 0 && halfW <= x:
		c.Move(core.V(-c.speed*dt, 0))
	case w.input.Move > 0 && x <= w.cfg.World.Width-halfW:
		c.Move(core.V(c.speed*dt, 0))
	}

	if w.input.Fire {
		w.FirePlayerShot(core.V(c.Pos.X, c.Pos.Y+c.shotOffset))
	}
}

// Collide destroys the cannon together with whatever touched it.
func (c *Cannon) Collide(w *World, other Actor) {
	w.Kill(other)
	w.Kill(c)
}
