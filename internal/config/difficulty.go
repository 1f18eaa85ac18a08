package config

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DifficultyManager calculates the swarm rhythm from the score.
// Each completed block of PointsPerLevel points is one level, and every level
// multiplies the step period by PeriodFactor.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.PointsPerLevel > 0
}

// Level returns the difficulty level reached at score, starting at 0.
func (d *DifficultyManager) Level(score int) int {
	if !d.IsEnabled() || score <= 0 {
		return 0
	}
	return score / d.cfg.PointsPerLevel
}

// StepPeriod returns the swarm step period for score, never below MinPeriod.
func (d *DifficultyManager) StepPeriod(base float64, score int) float64 {
	level := d.Level(score)
	if level == 0 {
		return base
	}
	factor := d.cfg.PeriodFactor
	if factor <= 0 || factor > 1 {
		factor = 1
	}
	period := base * math.Pow(factor, float64(level))
	return core.ClampF(period, d.cfg.MinPeriod, base)
}
