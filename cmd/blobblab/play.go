package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobblab/internal/config"
	"github.com/vovakirdan/blobblab/internal/games/blobblab"
	"github.com/vovakirdan/blobblab/internal/platform/tui"
	"github.com/vovakirdan/blobblab/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [size]",
	Short: "Play a game",
	Long: `Start playing on a board of the given size (8, 12 or 16) or game id.
Without an argument the board size from the config is used.

Controls:
  Arrows/WASD/HJKL  - Swipe
  X                 - Give up
  P/Space           - Pause
  Esc/B             - Leave (when paused or over)
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Two starting pieces, three piece preview
  normal - Three starting pieces, three piece preview
  hard   - Five starting pieces, one piece preview
  fixed  - Use the config values as they are

Examples:
  blobblab play
  blobblab play 16
  blobblab play blobblab_12 --difficulty easy
  blobblab play --config ./my-blobblab.yaml --difficulty fixed`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	gameID, err := resolveGameID(arg, gameConfig.Board.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'blobblab list' to see available boards.")
		os.Exit(1)
	}

	game, err := tui.NewGame(gameID, gameConfig, difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveGameID turns a board size or game id into a registered game id.
// An empty argument picks the default size, falling back to the smallest board.
func resolveGameID(arg string, defaultSize int) (string, error) {
	if arg == "" {
		if !config.IsSupportedSize(defaultSize) {
			defaultSize = config.BoardSizes[0]
		}
		return blobblab.GameID(defaultSize), nil
	}

	if n, err := strconv.Atoi(arg); err == nil {
		if !config.IsSupportedSize(n) {
			return "", fmt.Errorf("unsupported board size %d (want one of %v)", n, config.BoardSizes)
		}
		return blobblab.GameID(n), nil
	}

	if !registry.Exists(arg) {
		return "", fmt.Errorf("unknown game %q", arg)
	}
	return arg, nil
}
