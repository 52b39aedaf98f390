package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobblab/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a board picker menu",
	Long: `Start Blobblab in interactive menu mode.

Use arrow keys or j/k to pick a board, left/right to change the difficulty,
Enter to play. Leave a finished or paused game with Esc to get back to the
menu and play again.

Controls:
  Up/Down/j/k     - Pick board
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  blobblab menu
  blobblab menu --difficulty easy
  blobblab menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := runtimeConfig()
	preset := difficulty

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the last difficulty for the next round
		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := tui.NewGame(menuResult.GameID, gameConfig, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
