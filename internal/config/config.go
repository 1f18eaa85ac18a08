// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// InvadersConfig contains all configuration for the Space Invaders game.
// Distances are world units with the origin at the bottom-left corner and
// y pointing up. Times are seconds.
type InvadersConfig struct {
	World      WorldConfig      `yaml:"world"`
	Swarm      InvadersSwarm    `yaml:"swarm"`
	Cannon     InvadersCannon   `yaml:"cannon"`
	Shots      InvadersShots    `yaml:"shots"`
	Gameplay   InvadersGameplay `yaml:"gameplay"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield and its collision grid.
type WorldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	CellScale float64 `yaml:"cell_scale"` // grid cell = scale * largest sprite dimension
}

// InvadersSwarm defines the alien formation and its marching rhythm.
type InvadersSwarm struct {
	OriginX          float64 `yaml:"origin_x"`
	OriginY          float64 `yaml:"origin_y"`
	Columns          int     `yaml:"columns"`
	Spacing          float64 `yaml:"spacing"`
	RowPoints        []int   `yaml:"row_points"` // bottom row first
	AlienWidth       float64 `yaml:"alien_width"`
	AlienHeight      float64 `yaml:"alien_height"`
	StepX            float64 `yaml:"step_x"`
	DropY            float64 `yaml:"drop_y"`
	StepPeriod       float64 `yaml:"step_period"`
	TurnMargin       float64 `yaml:"turn_margin"`
	ShootProbability float64 `yaml:"shoot_probability"` // per column per frame
}

// InvadersCannon defines the player cannon.
type InvadersCannon struct {
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	ShotOffset float64 `yaml:"shot_offset"`
}

// InvadersShots defines projectile sizes and speeds.
type InvadersShots struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	AlienSpeed  float64 `yaml:"alien_speed"`
	AlienOffset float64 `yaml:"alien_offset"`
}

// InvadersGameplay defines rules outside the swarm.
type InvadersGameplay struct {
	Lives int `yaml:"lives"`
}

// AvoidConfig contains all configuration for the pickup toy.
type AvoidConfig struct {
	World   WorldConfig  `yaml:"world"`
	Player  AvoidPlayer  `yaml:"player"`
	Pickups AvoidPickups `yaml:"pickups"`
	Input   InputConfig  `yaml:"input"`
}

// AvoidPlayer defines the player ball.
type AvoidPlayer struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// AvoidPickups defines the collectible balls.
type AvoidPickups struct {
	Radius    float64 `yaml:"radius"`
	Positions []Point `yaml:"positions"`
}

// Point is a world position in YAML form.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// InputConfig controls how key presses become held directions.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the score-driven difficulty progression.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	PointsPerLevel int     `yaml:"points_per_level"`
	PeriodFactor   float64 `yaml:"period_factor"` // step period multiplier per level
	MinPeriod      float64 `yaml:"min_period"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// Unknown strings yield the empty preset, which leaves configs untouched.
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

var errInvalid = errors.New("invalid config")

// Validate reports the first value that would make the game unplayable.
func (c InvadersConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	switch {
	case c.Swarm.Columns <= 0:
		return fmt.Errorf("%w: swarm.columns must be positive", errInvalid)
	case len(c.Swarm.RowPoints) == 0:
		return fmt.Errorf("%w: swarm.row_points must not be empty", errInvalid)
	case c.Swarm.StepPeriod <= 0:
		return fmt.Errorf("%w: swarm.step_period must be positive", errInvalid)
	case c.Swarm.ShootProbability < 0 || c.Swarm.ShootProbability > 1:
		return fmt.Errorf("%w: swarm.shoot_probability must be in [0,1]", errInvalid)
	case c.Swarm.AlienWidth <= 0 || c.Swarm.AlienHeight <= 0:
		return fmt.Errorf("%w: swarm alien size must be positive", errInvalid)
	case c.Cannon.Width <= 0 || c.Cannon.Height <= 0:
		return fmt.Errorf("%w: cannon size must be positive", errInvalid)
	case c.Shots.Width <= 0 || c.Shots.Height <= 0:
		return fmt.Errorf("%w: shot size must be positive", errInvalid)
	case c.Gameplay.Lives < 0:
		return fmt.Errorf("%w: gameplay.lives must not be negative", errInvalid)
	case c.Difficulty.Enabled && c.Difficulty.PointsPerLevel <= 0:
		return fmt.Errorf("%w: difficulty.points_per_level must be positive", errInvalid)
	}
	return nil
}

// Validate reports the first value that would make the toy unplayable.
func (c AvoidConfig) Validate() error {
	if err := c.World.validate(); err != nil {
		return err
	}
	if c.Player.Radius <= 0 || c.Pickups.Radius <= 0 {
		return fmt.Errorf("%w: radii must be positive", errInvalid)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("%w: player.speed must not be negative", errInvalid)
	}
	return nil
}

func (w WorldConfig) validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive", errInvalid)
	}
	if w.CellScale <= 0 {
		return fmt.Errorf("%w: world.cell_scale must be positive", errInvalid)
	}
	return nil
}
