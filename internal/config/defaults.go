package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

//go:embed defaults/avoid.yaml
var defaultAvoidYAML []byte

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{
			Width:     800,
			Height:    650,
			CellScale: 1.25,
		},
		Swarm: InvadersSwarm{
			OriginX:          100,
			OriginY:          300,
			Columns:          10,
			Spacing:          60,
			RowPoints:        []int{10, 10, 20, 20, 40},
			AlienWidth:       40,
			AlienHeight:      30,
			StepX:            10,
			DropY:            10,
			StepPeriod:       1.0,
			TurnMargin:       50,
			ShootProbability: 0.001,
		},
		Cannon: InvadersCannon{
			Y:          50,
			Width:      50,
			Height:     30,
			Speed:      200,
			ShotOffset: 50,
		},
		Shots: InvadersShots{
			Width:       4,
			Height:      16,
			PlayerSpeed: 400,
			AlienSpeed:  400,
			AlienOffset: 50,
		},
		Gameplay: InvadersGameplay{
			Lives: 3,
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			PointsPerLevel: 150,
			PeriodFactor:   0.5,
			MinPeriod:      0.05,
		},
	}
}

// DefaultAvoidConfig returns the default pickup toy configuration.
func DefaultAvoidConfig() AvoidConfig {
	return AvoidConfig{
		World: WorldConfig{
			Width:     640,
			Height:    480,
			CellScale: 1.25,
		},
		Player: AvoidPlayer{
			X:      320,
			Y:      240,
			Radius: 16,
			Speed:  100,
		},
		Pickups: AvoidPickups{
			Radius: 16,
			Positions: []Point{
				{X: 100, Y: 100},
				{X: 540, Y: 380},
				{X: 540, Y: 100},
				{X: 100, Y: 300},
			},
		},
		Input: InputConfig{
			HoldTicks: 8,
		},
	}
}
