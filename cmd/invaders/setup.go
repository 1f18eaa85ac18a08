package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/avoid"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// validateGlobalFlags rejects flag values no command can use.
func validateGlobalFlags() error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
	}
	return nil
}

// newLogger returns the CLI logger. The TUI owns the terminal, so logs go
// to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	if flagLogFile == "" {
		return log.NewWithOptions(io.Discard, log.Options{Level: level}), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "invaders",
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// configureGame hands a config path and --difficulty to the chosen game
// and checks that its config loads.
func configureGame(gameID, configPath string) error {
	var err error
	switch gameID {
	case "invaders":
		invaders.SetConfigPath(configPath)
		invaders.SetDifficultyPreset(flagDifficulty)
		_, err = config.LoadInvaders(configPath)
	case "avoid":
		avoid.SetConfigPath(configPath)
		avoid.SetDifficultyPreset(flagDifficulty)
		_, err = config.LoadAvoid(configPath)
	}
	return err
}

// menuConfigPath returns the --config path for games started from a menu.
// A single file can only describe one game, so it goes to Space Invaders.
func menuConfigPath(gameID string) string {
	if gameID == "invaders" {
		return flagConfig
	}
	return ""
}

// openStore opens the score database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// localPlayer names the player recorded with local scores.
func localPlayer() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return storage.DefaultPlayer
}
