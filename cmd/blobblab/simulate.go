package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blobblab/internal/config"
	platformcore "github.com/vovakirdan/blobblab/internal/core"
	"github.com/vovakirdan/blobblab/internal/games/blobblab"
	"github.com/vovakirdan/blobblab/internal/games/blobblab/core"
)

var (
	flagSimSize  int
	flagSimTurns int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with random swipes",
	Long: `Play a game without a terminal UI by swiping in random directions
until the game ends or the swipe budget runs out. The board consistency
check runs after every swipe. The same --seed always gives the same game.

Per-turn details are logged with --verbose.

Examples:
  blobblab simulate
  blobblab simulate --seed 42 --turns 1000
  blobblab simulate --size 16 --difficulty hard --verbose`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimSize, "size", 0, "Board size (0 = config board size)")
	simulateCmd.Flags().IntVar(&flagSimTurns, "turns", 200, "Maximum number of swipes")
}

// simOptions describes one headless run.
type simOptions struct {
	Size       int
	MaxSwipes  int
	Seed       int64
	Config     config.BlobblabConfig
	Difficulty config.DifficultyPreset
}

// simResult summarizes a headless run.
type simResult struct {
	Seed     int64
	Swipes   int // Swipes submitted, including ones that moved nothing
	Turns    int
	Score    int
	Lines    int
	GameOver bool
	Board    core.Snapshot
}

func runSimulate(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	size := flagSimSize
	if size == 0 {
		size = gameConfig.Board.Size
	}

	res, err := simulate(simOptions{
		Size:       size,
		MaxSwipes:  flagSimTurns,
		Seed:       seed,
		Config:     gameConfig,
		Difficulty: difficulty,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Blobblab %dx%d  seed %d\n", size, size, res.Seed)
	fmt.Printf("Swipes: %d  Turns: %d  Score: %d  Lines: %d\n", res.Swipes, res.Turns, res.Score, res.Lines)
	fmt.Printf("Game over: %t\n", res.GameOver)
	fmt.Println()
	fmt.Print(res.Board.String())
}

// simulate plays random swipes through the same game adapter the TUI uses.
func simulate(opts simOptions, logger *log.Logger) (simResult, error) {
	cfg := opts.Config
	config.ApplyBlobblabPreset(&cfg, opts.Difficulty)

	game := blobblab.New(opts.Size)
	game.UseConfig(cfg)
	game.Reset(platformcore.RuntimeConfig{ScreenW: 200, ScreenH: 100, TickRate: 30, Seed: opts.Seed})
	if err := game.Err(); err != nil {
		return simResult{}, err
	}

	session := game.Session()
	rng := rand.New(rand.NewSource(opts.Seed))
	res := simResult{Seed: opts.Seed}

	for res.Swipes < opts.MaxSwipes && !session.GameOver() {
		dir := core.Dirs[rng.Intn(len(core.Dirs))]
		turn, err := session.SubmitSwipe(dir)
		if err != nil {
			return res, err
		}
		res.Swipes++
		res.Lines += turn.LinesCleared

		if err := session.Board().Check(); err != nil {
			return res, fmt.Errorf("swipe %d (%s): %w", res.Swipes, dir, err)
		}

		logger.Debug("swipe",
			"n", res.Swipes,
			"dir", dir,
			"moved", turn.Moved,
			"passes", turn.Passes,
			"lines", turn.LinesCleared,
			"delta", turn.ScoreDelta,
			"score", session.Score(),
			"over", turn.IsGameOver,
		)
	}

	res.Turns = session.Turns()
	res.Score = session.Score()
	res.GameOver = session.GameOver()
	res.Board = session.Snapshot()
	return res, nil
}
