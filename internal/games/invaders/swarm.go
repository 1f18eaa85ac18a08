package invaders

import (
	"iter"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Swarm owns the alien columns and marches them in lock-step: one horizontal
// step per period, or a row drop and direction reversal when any column has
// reached its edge.
type Swarm struct {
	columns   []*Column
	direction int
	stepX     float64
	dropY     float64
	period    float64
	elapsed   float64
}

// NewSwarm builds the formation described by cfg.Swarm.
func NewSwarm(game config.InvadersConfig) *Swarm {
	cfg := game.Swarm
	width := game.World.Width
	s := &Swarm{
		columns:   make([]*Column, cfg.Columns),
		direction: 1,
		stepX:     cfg.StepX,
		dropY:     cfg.DropY,
		period:    cfg.StepPeriod,
	}

	for ci := range s.columns {
		col := &Column{
			aliens:      make([]*Alien, 0, len(cfg.RowPoints)),
			minX:        cfg.TurnMargin,
			maxX:        width - cfg.TurnMargin,
			probability: cfg.ShootProbability,
			shotOffset:  game.Shots.AlienOffset,
		}
		x := cfg.OriginX + float64(ci)*cfg.Spacing
		for row, points := range cfg.RowPoints {
			pos := core.V(x, cfg.OriginY+float64(row)*cfg.Spacing)
			col.aliens = append(col.aliens, &Alien{
				Body:   newBody(pos, cfg.AlienWidth, cfg.AlienHeight),
				Row:    row,
				Points: points,
				column: ci,
			})
		}
		s.columns[ci] = col
	}
	return s
}

// Columns returns the swarm's columns in left-to-right order.
func (s *Swarm) Columns() []*Column {
	return s.columns
}

// Direction returns +1 when marching right and -1 when marching left.
func (s *Swarm) Direction() int {
	return s.direction
}

// Period returns the current step period in seconds.
func (s *Swarm) Period() float64 {
	return s.period
}

// SetPeriod changes the step period. Non-positive values are ignored.
func (s *Swarm) SetPeriod(period float64) {
	if period > 0 {
		s.period = period
	}
}

// Len returns the number of live aliens.
func (s *Swarm) Len() int {
	n := 0
	for _, col := range s.columns {
		n += col.Len()
	}
	return n
}

// Aliens yields every live alien using the columns' current membership.
func (s *Swarm) Aliens() iter.Seq[*Alien] {
	return func(yield func(*Alien) bool) {
		for _, col := range s.columns {
			for _, a := range col.aliens {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// Update accumulates dt and applies one step per elapsed period.
func (s *Swarm) Update(dt float64) {
	s.elapsed += dt
	for s.elapsed >= s.period {
		s.elapsed -= s.period
		s.step()
	}
}

func (s *Swarm) step() {
	offset := core.V(float64(s.direction)*s.stepX, 0)
	if s.shouldTurn() {
		s.direction = -s.direction
		offset = core.V(0, -s.dropY)
	}
	for a := range s.Aliens() {
		a.Move(offset)
	}
}

func (s *Swarm) shouldTurn() bool {
	for _, col := range s.columns {
		if col.ShouldTurn(s.direction) {
			return true
		}
	}
	return false
}

// remove drops alien from the column its handle points at.
func (s *Swarm) remove(alien *Alien) {
	if alien.column >= 0 && alien.column < len(s.columns) {
		s.columns[alien.column].Remove(alien)
	}
}
