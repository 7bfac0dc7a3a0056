package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the menu",
	Long: `Start in interactive menu mode.

Pick Play to start a game or High Scores to browse the scoreboard.
Press B during a game to come back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	return menuLoop(logger, store, runtimeConfig())
}

// menuLoop shows the start menu until the player quits.
func menuLoop(logger *log.Logger, store *storage.Store, cfg core.RuntimeConfig) error {
	title := gameTitle(tetris.ID)

	for {
		res, err := tui.RunMenu(tetris.ID, title, store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		var back bool
		switch res.Choice {
		case tui.MenuPlay:
			back, err = playOnce(logger, store, cfg)
		case tui.MenuScores:
			back, err = tui.RunScoreboard(tetris.ID, title, store, cfg.ScreenW, cfg.ScreenH)
		default:
			return nil
		}
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
