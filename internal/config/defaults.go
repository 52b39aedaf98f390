package config

import (
	_ "embed"
)

//go:embed defaults/blobblab.yaml
var defaultBlobblabYAML []byte

// DefaultTags are the piece colors used when the config lists none.
var DefaultTags = []string{"red", "green", "yellow", "blue", "magenta", "cyan", "orange"}

// DefaultBlobblabConfig returns the default Blobblab configuration.
func DefaultBlobblabConfig() BlobblabConfig {
	return BlobblabConfig{
		Board: BoardConfig{
			Size:          8,
			InitialShapes: 3,
		},
		Spawn: SpawnConfig{
			Preview: 3,
			Pieces: []PieceConfig{
				{Name: "O", Rows: []string{"11", "11"}},
				{Name: "I", Rows: []string{"1", "1", "1", "1"}},
				{Name: "T", Rows: []string{"111", "010"}},
				{Name: "L", Rows: []string{"10", "10", "11"}},
				{Name: "J", Rows: []string{"01", "01", "11"}},
				{Name: "S", Rows: []string{"011", "110"}},
				{Name: "Z", Rows: []string{"110", "011"}},
				{Name: "SINGLE", Rows: []string{"1"}},
			},
			Tags: append([]string(nil), DefaultTags...),
		},
		Scoring: ScoringConfig{
			LineBase: 10,
		},
		Rules: RulesConfig{
			StuckEndsGame: true,
		},
		Source: "builtin",
	}
}
