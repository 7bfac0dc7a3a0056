package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Long: `Display totals and averages over every recorded game.

Examples:
  tetris stats
  tetris stats --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.GetGameStats(tetris.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Statistics - %s\n", gameTitle(tetris.ID))
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		return nil
	}

	rows := []struct {
		label string
		value string
	}{
		{"Games played", fmt.Sprint(stats.GamesCount)},
		{"High score", fmt.Sprint(stats.HighScore)},
		{"Average score", fmt.Sprintf("%.1f", stats.AvgScore)},
		{"Total score", fmt.Sprint(stats.TotalScore)},
		{"Total lines", fmt.Sprint(stats.TotalLines)},
		{"Most lines", fmt.Sprint(stats.BestLines)},
		{"Last played", stats.LastPlayed.Local().Format("2006-01-02 15:04")},
	}
	for _, r := range rows {
		fmt.Printf("  %-14s %s\n", r.label+":", r.value)
	}
	return nil
}
