package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadInvaders loads Space Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load(customPath, "invaders.yaml", defaultInvadersYAML, DefaultInvadersConfig)
}

// LoadAvoid loads the pickup toy configuration.
// Search order: customPath -> ~/.arcade/configs/avoid.yaml -> ./configs/avoid.yaml -> embedded default
func LoadAvoid(customPath string) (AvoidConfig, error) {
	return load(customPath, "avoid.yaml", defaultAvoidYAML, DefaultAvoidConfig)
}

// load decodes the first config found over the hardcoded defaults, so files
// only need to name the values they change. A custom path that cannot be
// read or parsed is an error; the other locations are optional.
func load[T validator](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			return defaults(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data, defaults); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(data, defaults); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(embedded, defaults)
	if err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode[T validator](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Swarm.ShootProbability = 0.0005
		cfg.Swarm.StepPeriod = 1.2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Swarm.ShootProbability = 0.002
		cfg.Swarm.StepPeriod = 0.8
	}
}

// ApplyAvoidPreset modifies the config based on a difficulty preset.
func ApplyAvoidPreset(cfg *AvoidConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Speed = 140
	case DifficultyHard:
		cfg.Player.Speed = 70
	}
}
