package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: invaders).

Controls:
  Left/Right, A/D  - Move the cannon
  Space            - Fire
  P                - Pause
  Esc              - Pause, then leave
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower swarm, fewer alien shots
  normal - Defaults from the config
  hard   - Fewer lives, faster swarm, more alien shots
  fixed  - No speed-up as the score grows

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play invaders --config ./my-invaders.yaml
  invaders play avoid --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'invaders list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := configureGame(gameID, flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sink, closeAudio := audio.Sink(flagMute, logger)

	_, runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Player: localPlayer(),
		Audio:  sink,
		Logger: logger,
	})

	// Release resources before potential exit
	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "err", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
