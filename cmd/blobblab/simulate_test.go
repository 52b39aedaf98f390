package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blobblab/internal/config"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulateDeterministic(t *testing.T) {
	opts := simOptions{
		Size:       8,
		MaxSwipes:  150,
		Seed:       42,
		Config:     config.DefaultBlobblabConfig(),
		Difficulty: config.DifficultyNormal,
	}

	a, err := simulate(opts, quietLogger())
	require.NoError(t, err)
	b, err := simulate(opts, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(42), a.Seed)
	assert.LessOrEqual(t, a.Swipes, opts.MaxSwipes)
	assert.LessOrEqual(t, a.Turns, a.Swipes)
	assert.GreaterOrEqual(t, a.Score, 0)
	if !a.GameOver {
		assert.Equal(t, opts.MaxSwipes, a.Swipes)
	}
}

func TestSimulateSizes(t *testing.T) {
	for _, size := range []int{8, 12, 16} {
		res, err := simulate(simOptions{
			Size:       size,
			MaxSwipes:  60,
			Seed:       7,
			Config:     config.DefaultBlobblabConfig(),
			Difficulty: config.DifficultyHard,
		}, quietLogger())
		require.NoError(t, err, "size %d", size)
		assert.Len(t, res.Board.Cells, size)
	}
}

func TestSimulateZeroSwipes(t *testing.T) {
	res, err := simulate(simOptions{
		Size:       8,
		MaxSwipes:  0,
		Seed:       1,
		Config:     config.DefaultBlobblabConfig(),
		Difficulty: config.DifficultyEasy,
	}, quietLogger())
	require.NoError(t, err)
	assert.Zero(t, res.Swipes)
	assert.Zero(t, res.Turns)
	assert.Zero(t, res.Score)
	assert.False(t, res.GameOver)
}

func TestSimulateInvalidConfig(t *testing.T) {
	cfg := config.DefaultBlobblabConfig()
	cfg.Scoring.LineBase = 0

	_, err := simulate(simOptions{
		Size:       8,
		MaxSwipes:  10,
		Seed:       1,
		Config:     cfg,
		Difficulty: config.DifficultyFixed,
	}, quietLogger())
	assert.Error(t, err)
}
