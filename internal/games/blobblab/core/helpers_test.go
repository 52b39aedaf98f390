package core

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, n int) *Board {
	t.Helper()
	b, err := NewBoard(n, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return b
}

// mustCheck fails the test when the board invariants are broken.
func mustCheck(t *testing.T, b *Board) {
	t.Helper()
	require.NoError(t, b.Check())
}

// dump renders the full registry state: every active shape with its tag and
// the coordinates of its members, plus the grid picture.
func dump(b *Board) string {
	var sb strings.Builder
	for _, s := range b.reg.Shapes() {
		cells := make([]string, 0, s.Len())
		for _, id := range s.Blocks {
			blk := b.reg.Block(id)
			cells = append(cells, fmt.Sprintf("%d@%s", id, blk.Pos()))
		}
		sort.Strings(cells)
		fmt.Fprintf(&sb, "shape %d [%s]: %s\n", s.ID, s.Tag, strings.Join(cells, " "))
	}
	sb.WriteString(b.Snapshot().String())
	return sb.String()
}

// cellsOf returns the sorted positions of a shape's members.
func cellsOf(b *Board, id ShapeID) []Coord {
	s := b.reg.Shape(id)
	out := make([]Coord, 0, s.Len())
	for _, blk := range s.Blocks {
		out = append(out, b.reg.Block(blk).Pos())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// fillRow places one single-cell shape on every free cell of the row.
func fillRow(b *Board, row int) {
	for col := 0; col < b.Size(); col++ {
		if b.grid.IsEmpty(row, col) {
			b.PlaceCells("", C(row, col))
		}
	}
}
