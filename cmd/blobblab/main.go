// blobblab is a sliding block puzzle for the terminal.
//
// Usage:
//
//	blobblab list              - List available boards
//	blobblab play [size]       - Play on an 8, 12 or 16 board
//	blobblab menu              - Start menu to pick boards interactively
//	blobblab serve             - Start SSH server for remote play
//	blobblab scores [board]    - Show high scores
//	blobblab simulate          - Run a headless game with random swipes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.blobblab/scores.db)
//	--config <path>       - Load a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--verbose             - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blobblab/internal/config"
	"github.com/vovakirdan/blobblab/internal/core"
	"github.com/vovakirdan/blobblab/internal/games/blobblab"
	"github.com/vovakirdan/blobblab/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

// Shared state prepared by the root command before any subcommand runs.
var (
	logger     *log.Logger
	gameConfig config.BlobblabConfig
	difficulty config.DifficultyPreset
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blobblab",
	Short: "Blobblab - slide shapes, clear lines, in your terminal",
	Long: `Blobblab is a block puzzle played with swipes. Every swipe slides all
shapes on the board as far as they can go, full rows and columns are cleared,
and a new piece drops in. The game ends when nothing fits anymore.

Available commands:
  list      - Show the available boards
  play      - Play on a board directly
  menu      - Interactive board picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Headless run with random swipes

Examples:
  blobblab play
  blobblab play 12 --difficulty hard
  blobblab menu
  blobblab serve --ssh :2222
  blobblab scores blobblab_16
  blobblab simulate --seed 42 --turns 500 --verbose`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom Blobblab config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup builds the logger and loads the game configuration.
// An unreadable or invalid configuration stops the command.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "blobblab",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	difficulty = preset

	cfg, err := config.LoadBlobblab(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(0); err != nil {
		return fmt.Errorf("%s: %w", cfg.Source, err)
	}
	logger.Debug("config loaded", "source", cfg.Source, "difficulty", difficulty)

	gameConfig = cfg
	blobblab.Configure(cfg)
	return nil
}

// runtimeConfig returns the platform config sized to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}
