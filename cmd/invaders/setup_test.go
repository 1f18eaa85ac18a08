package main

import "testing"

func TestValidateGlobalFlags(t *testing.T) {
	defer func(fps int, difficulty string) {
		flagFPS, flagDifficulty = fps, difficulty
	}(flagFPS, flagDifficulty)

	tests := []struct {
		name       string
		fps        int
		difficulty string
		wantErr    bool
	}{
		{"defaults", 60, "", false},
		{"preset", 30, "hard", false},
		{"zero fps", 0, "", true},
		{"too fast", 500, "", true},
		{"unknown preset", 60, "nightmare", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagFPS, flagDifficulty = tt.fps, tt.difficulty
			err := validateGlobalFlags()
			if (err != nil) != tt.wantErr {
				t.Errorf("validateGlobalFlags() error = %v, expected error %v", err, tt.wantErr)
			}
		})
	}
}

func TestMenuConfigPathTargetsInvaders(t *testing.T) {
	defer func(path string) { flagConfig = path }(flagConfig)
	flagConfig = "custom.yaml"

	if got := menuConfigPath("invaders"); got != "custom.yaml" {
		t.Errorf("menuConfigPath(invaders) = %q, expected custom.yaml", got)
	}
	if got := menuConfigPath("avoid"); got != "" {
		t.Errorf("menuConfigPath(avoid) = %q, expected empty", got)
	}
}

func TestConfigureGameRejectsMissingFile(t *testing.T) {
	defer configureGame("invaders", "")

	if err := configureGame("invaders", "/nonexistent/invaders.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
