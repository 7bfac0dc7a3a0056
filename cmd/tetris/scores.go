package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagLimit int
	flagAll   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores, best first.

Examples:
  tetris scores
  tetris scores --limit 25
  tetris scores --all
  tetris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(tetris.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAll {
		scores, err = store.AllScores(tetris.ID)
	} else {
		scores, err = store.TopScores(tetris.ID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", gameTitle(tetris.ID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Lines", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, e.Score, e.Lines, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores[0].Score)
	return nil
}
