package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	inv, err := decode(defaultInvadersYAML, DefaultInvadersConfig)
	if err != nil {
		t.Fatalf("embedded invaders config: %v", err)
	}
	if !reflect.DeepEqual(inv, DefaultInvadersConfig()) {
		t.Errorf("embedded invaders config differs from DefaultInvadersConfig:\n%+v", inv)
	}

	av, err := decode(defaultAvoidYAML, DefaultAvoidConfig)
	if err != nil {
		t.Fatalf("embedded avoid config: %v", err)
	}
	if !reflect.DeepEqual(av, DefaultAvoidConfig()) {
		t.Errorf("embedded avoid config differs from DefaultAvoidConfig:\n%+v", av)
	}
}

func TestLoadInvadersCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	data := []byte("swarm:\n  shoot_probability: 0.01\ngameplay:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() error = %v", err)
	}
	if cfg.Swarm.ShootProbability != 0.01 {
		t.Errorf("ShootProbability = %v, expected 0.01", cfg.Swarm.ShootProbability)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Gameplay.Lives)
	}
	if cfg.Swarm.Columns != 10 {
		t.Errorf("unset values should keep defaults, Columns = %d", cfg.Swarm.Columns)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("swarm: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAvoid(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("swarm:\n  columns: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadInvaders(invalid)
	if !errors.Is(err, errInvalid) {
		t.Errorf("invalid config error = %v, expected errInvalid", err)
	}
}

func TestInvadersValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		ok     bool
	}{
		{"defaults", func(*InvadersConfig) {}, true},
		{"zero width", func(c *InvadersConfig) { c.World.Width = 0 }, false},
		{"no rows", func(c *InvadersConfig) { c.Swarm.RowPoints = nil }, false},
		{"probability above one", func(c *InvadersConfig) { c.Swarm.ShootProbability = 1.5 }, false},
		{"zero period", func(c *InvadersConfig) { c.Swarm.StepPeriod = 0 }, false},
		{"negative lives", func(c *InvadersConfig) { c.Gameplay.Lives = -1 }, false},
		{"zero lives", func(c *InvadersConfig) { c.Gameplay.Lives = 0 }, true},
		{"fixed difficulty ignores level size", func(c *InvadersConfig) {
			c.Difficulty.Enabled = false
			c.Difficulty.PointsPerLevel = 0
		}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		lives       int
		probability float64
		enabled     bool
	}{
		{DifficultyEasy, 5, 0.0005, true},
		{DifficultyNormal, 3, 0.001, true},
		{DifficultyHard, 2, 0.002, true},
		{DifficultyFixed, 3, 0.001, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			ApplyInvadersPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Gameplay.Lives, tc.lives)
			}
			if cfg.Swarm.ShootProbability != tc.probability {
				t.Errorf("ShootProbability = %v, expected %v", cfg.Swarm.ShootProbability, tc.probability)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Difficulty.Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should return DifficultyHard")
	}
	if ParsePreset("impossible") != "" {
		t.Error("unknown presets should parse to the empty preset")
	}
}

func TestDifficultyStepPeriod(t *testing.T) {
	d := NewDifficultyManager(DefaultInvadersConfig().Difficulty)

	tests := []struct {
		score int
		level int
		want  float64
	}{
		{0, 0, 1.0},
		{149, 0, 1.0},
		{150, 1, 0.5},
		{310, 2, 0.25},
		{10000, 66, 0.05}, // floored at min_period
	}
	for _, tc := range tests {
		if got := d.Level(tc.score); got != tc.level {
			t.Errorf("Level(%d) = %d, expected %d", tc.score, got, tc.level)
		}
		if got := d.StepPeriod(1.0, tc.score); got != tc.want {
			t.Errorf("StepPeriod(1.0, %d) = %v, expected %v", tc.score, got, tc.want)
		}
	}

	d.SetEnabled(false)
	if d.StepPeriod(1.0, 1000) != 1.0 {
		t.Error("disabled progression should keep the base period")
	}
}
