package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Left/Right, A/D  - Move
  Up, W, X         - Rotate clockwise
  Down, S          - Soft drop
  Enter/Space      - Start
  P/Esc            - Pause
  R                - Restart (after game over)
  B                - Back to the start menu
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --fps 30
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	back, err := tui.Run(game, store, logger, cfg)
	if err != nil {
		return err
	}
	if back {
		return menuLoop(logger, store, cfg)
	}
	return nil
}

// playOnce runs one game session from the menu.
func playOnce(logger *log.Logger, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	game, err := newGame(logger)
	if err != nil {
		return false, err
	}
	cfg.Seed = flagSeed
	return tui.Run(game, store, logger, cfg)
}
