package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobblab/internal/registry"
	"github.com/vovakirdan/blobblab/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display the top scores for a board (size or game id).
Without an argument, prints a summary for every board that has been played.

Examples:
  blobblab scores
  blobblab scores 8
  blobblab scores blobblab_16 --limit 25
  blobblab scores 12 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the board")
}

func runScores(_ *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameID, err := resolveGameID(args[0], gameConfig.Board.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blobblab list' to see available boards.")
		os.Exit(1)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", gameID)
		return
	}

	if err := printTopScores(store, gameID, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printTopScores prints the ranking table for one board.
func printTopScores(store *storage.Store, gameID string, limit int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blobblab play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Turns", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %s\n", i+1, entry.Score, entry.Turns, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

// printSummary prints one line per played board.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %-7s  %s\n", "Board", "Games", "Best", "Average", "Turns", "Last played")
	fmt.Printf("  %-12s  %-6s  %-8s  %-8s  %-7s  %s\n", "-----", "-----", "----", "-------", "-----", "-----------")

	// Registry order keeps the boards sorted
	for _, info := range registry.List() {
		s, ok := all[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-8d  %-8.1f  %-7d  %s\n",
			info.ID, s.GamesCount, s.HighScore, s.AvgScore, s.TotalTurns, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
