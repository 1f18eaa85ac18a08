package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// shot flies in a straight vertical line at a fixed signed speed.
type shot struct {
	Body
	speed float64 // positive is up
}

func (s *shot) Update(_ *World, dt float64) {
	s.Move(core.V(0, s.speed*dt))
}

// PlayerShot travels up. At most one is alive at a time.
type PlayerShot struct {
	shot
}

func (w *World) newPlayerShot(pos core.Vec2) *PlayerShot {
	s := w.cfg.Shots
	return &PlayerShot{shot{Body: newBody(pos, s.Width, s.Height), speed: s.PlayerSpeed}}
}

// Collide destroys an alien and the shot, scoring the alien's points.
// Anything else is ignored.
func (s *PlayerShot) Collide(w *World, other Actor) {
	alien, ok := other.(*Alien)
	if !ok {
		return
	}
	w.AddScore(alien.Points)
	w.Kill(alien)
	w.Kill(s)
}

// AlienShot travels down.
type AlienShot struct {
	shot
}

func (w *World) newAlienShot(pos core.Vec2) *AlienShot {
	s := w.cfg.Shots
	return &AlienShot{shot{Body: newBody(pos, s.Width, s.Height), speed: -s.AlienSpeed}}
}

// Collide is a no-op; the cannon resolves its own hits.
func (s *AlienShot) Collide(*World, Actor) {}
