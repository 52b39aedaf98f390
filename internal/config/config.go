// Package config provides YAML-based game configuration loading and
// difficulty presets for Blobblab.
package config

// BlobblabConfig contains all configuration for the Blobblab game.
type BlobblabConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Scoring ScoringConfig `yaml:"scoring"`
	Rules   RulesConfig   `yaml:"rules"`

	// Source records where the config was loaded from (path, "embedded" or "builtin").
	Source string `yaml:"-"`
}

// BoardConfig defines the board parameters.
type BoardConfig struct {
	Size          int `yaml:"size"`           // Default board size when none is chosen
	InitialShapes int `yaml:"initial_shapes"` // Pieces spawned at game start
}

// SpawnConfig defines the piece table and the preview queue.
type SpawnConfig struct {
	Preview int           `yaml:"preview"` // Upcoming pieces shown; 0 disables the queue
	Pieces  []PieceConfig `yaml:"pieces"`  // Empty means the built-in table
	Tags    []string      `yaml:"tags"`    // Color names assigned to spawned pieces
}

// PieceConfig defines one footprint as rows of "1"/"0" characters.
type PieceConfig struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// ScoringConfig defines line clear scoring.
type ScoringConfig struct {
	LineBase int `yaml:"line_base"` // Score = line_base * k * k for k cleared lines
}

// RulesConfig toggles optional rules.
type RulesConfig struct {
	StuckEndsGame bool `yaml:"stuck_ends_game"` // End the game when no swipe moves anything
}

// BoardSizes lists the supported board sizes, smallest first.
var BoardSizes = []int{8, 12, 16}

// IsSupportedSize reports whether n is one of BoardSizes.
func IsSupportedSize(n int) bool {
	for _, s := range BoardSizes {
		if s == n {
			return true
		}
	}
	return false
}
