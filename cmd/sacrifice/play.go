package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
	"github.com/vovakirdan/sacrifice-runner/internal/platform/tui"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W   - Jump (every third jump in a row costs health)
  P            - Pause
  R            - Restart (after game over)
  Tab          - High scores
  Ctrl+S       - Screenshot to ~/.sacrifice/screenshots
  Q/Ctrl+C     - Quit

Examples:
  sacrifice play
  sacrifice play --fps 30
  sacrifice play --config ./hard.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := sacrifice.NewWithConfig(gameConfig)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the game still works
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
