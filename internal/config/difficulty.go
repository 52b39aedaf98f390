package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetTuning is what a preset changes: how crowded the board starts and
// how far ahead the player can see.
type presetTuning struct {
	InitialShapes int
	Preview       int
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {InitialShapes: 2, Preview: 3},
	DifficultyNormal: {InitialShapes: 3, Preview: 3},
	DifficultyHard:   {InitialShapes: 5, Preview: 1},
}

// Presets returns the preset names in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a name to a preset. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset keeps the config values untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBlobblabPreset modifies the config based on a difficulty preset.
// The fixed preset leaves the loaded values as they are.
func ApplyBlobblabPreset(cfg *BlobblabConfig, preset DifficultyPreset) {
	tuning, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Board.InitialShapes = tuning.InitialShapes
	cfg.Spawn.Preview = tuning.Preview
}
