package invaders

import "math"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Lives       int
	Wave        int
	Aliens      int
	Direction   int
	Period      float64
	CannonX     float64
	ShotCount   int
	PlayerShotY float64 // -1 when no player shot is alive
	Halted      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	snap := Snapshot{
		Tick:        g.tick,
		Score:       w.Score(),
		Lives:       w.Lives(),
		Wave:        w.Wave(),
		Aliens:      w.swarm.Len(),
		Direction:   w.swarm.Direction(),
		Period:      w.swarm.Period(),
		CannonX:     w.cannon.Pos.X,
		PlayerShotY: -1,
		Halted:      w.Halted(),
	}
	if w.playerShot != nil {
		snap.PlayerShotY = w.playerShot.Pos.Y
	}
	for a := range w.Actors() {
		switch a.(type) {
		case *PlayerShot, *AlienShot:
			snap.ShotCount++
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	counts := []int{snap.Score, snap.Lives + 1, snap.Wave, snap.Aliens, snap.Direction + 1, snap.ShotCount}
	for _, n := range counts {
		h = h*31 + uint64(n) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{snap.Period, snap.CannonX, snap.PlayerShotY} {
		h = h*31 + math.Float64bits(f)
	}
	if snap.Halted {
		h = h*31 + 1
	}
	return h
}
