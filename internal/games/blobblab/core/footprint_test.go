package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFootprint(t *testing.T) {
	fp, err := ParseFootprint("T", []string{"111", "010"})
	require.NoError(t, err)

	assert.Equal(t, 2, fp.Rows())
	assert.Equal(t, 3, fp.Cols())
	assert.Equal(t, 4, fp.Count())
	assert.True(t, fp.Filled(1, 1))
	assert.False(t, fp.Filled(1, 0))
	assert.False(t, fp.Filled(5, 5))
	assert.Equal(t, []Coord{C(0, 0), C(0, 1), C(0, 2), C(1, 1)}, fp.Offsets())
	assert.Equal(t, []string{"111", "010"}, fp.Strings())
}

func TestParseFootprintAlternateCharacters(t *testing.T) {
	fp, err := ParseFootprint("S", []string{".##", "##."})
	require.NoError(t, err)
	assert.Equal(t, []string{"011", "110"}, fp.Strings())
}

func TestParseFootprintErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"blank row", []string{""}},
		{"ragged", []string{"11", "1"}},
		{"all zero", []string{"00", "00"}},
		{"bad char", []string{"1a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFootprint(tt.name, tt.rows)
			assert.ErrorIs(t, err, ErrInvalidFootprint)
		})
	}
}

func TestNewFootprintCopiesInput(t *testing.T) {
	cells := [][]bool{{true, false}}
	fp, err := NewFootprint("x", cells)
	require.NoError(t, err)

	cells[0][1] = true
	assert.Equal(t, 1, fp.Count())
}

func TestDefaultFootprints(t *testing.T) {
	fps := DefaultFootprints()
	require.Len(t, fps, 8)

	names := make([]string, 0, len(fps))
	for _, fp := range fps {
		names = append(names, fp.Name)
		assert.True(t, fp.FitsBoard(4), "%s should fit a 4x4 board", fp.Name)
	}
	assert.Equal(t, []string{"O", "I", "T", "L", "J", "S", "Z", "SINGLE"}, names)
	assert.False(t, fps[1].FitsBoard(3), "I is four tall")
}
