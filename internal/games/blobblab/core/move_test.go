package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveSquareToWall(t *testing.T) {
	b := newTestBoard(t, 4)
	id := b.PlaceShape(MustFootprint("O", "11", "11"), "", C(0, 0))

	res := b.MoveDetailed(DirRight)

	assert.True(t, res.Moved)
	assert.Equal(t, 3, res.Passes)
	assert.Equal(t, []Coord{C(0, 2), C(0, 3), C(1, 2), C(1, 3)}, cellsOf(b, id))
	mustCheck(t, b)
}

func TestMoveEveryDirection(t *testing.T) {
	tests := []struct {
		dir  Dir
		want []Coord
	}{
		{DirUp, []Coord{C(0, 1), C(0, 2), C(1, 2)}},
		{DirDown, []Coord{C(3, 1), C(3, 2), C(4, 2)}},
		{DirLeft, []Coord{C(2, 0), C(2, 1), C(3, 1)}},
		{DirRight, []Coord{C(2, 3), C(2, 4), C(3, 4)}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			b := newTestBoard(t, 5)
			id := b.PlaceCells("", C(2, 1), C(2, 2), C(3, 2))

			require.True(t, b.Move(tt.dir))
			assert.Equal(t, tt.want, cellsOf(b, id))
			mustCheck(t, b)
		})
	}
}

// An elongated shape sliding along its own axis passes through cells its
// own blocks occupy; no block may be overwritten on the way.
func TestMoveLongAxis(t *testing.T) {
	tests := []struct {
		name   string
		cells  []Coord
		dir    Dir
		expect []Coord
	}{
		{"I down", []Coord{C(0, 0), C(1, 0), C(2, 0), C(3, 0)}, DirDown,
			[]Coord{C(4, 0), C(5, 0), C(6, 0), C(7, 0)}},
		{"I up", []Coord{C(4, 3), C(5, 3), C(6, 3), C(7, 3)}, DirUp,
			[]Coord{C(0, 3), C(1, 3), C(2, 3), C(3, 3)}},
		{"I right", []Coord{C(5, 0), C(5, 1), C(5, 2), C(5, 3)}, DirRight,
			[]Coord{C(5, 4), C(5, 5), C(5, 6), C(5, 7)}},
		{"I left", []Coord{C(2, 4), C(2, 5), C(2, 6), C(2, 7)}, DirLeft,
			[]Coord{C(2, 0), C(2, 1), C(2, 2), C(2, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(t, 8)
			id := b.PlaceCells("", tt.cells...)

			res := b.MoveDetailed(tt.dir)
			require.True(t, res.Moved)
			assert.LessOrEqual(t, res.Passes, b.Size())
			assert.Equal(t, tt.expect, cellsOf(b, id))
			assert.Equal(t, 4, b.Registry().BlockCount())
			mustCheck(t, b)
		})
	}
}

// Two shapes in a row along the axis: the one nearer the wall moves first,
// the trailing one follows one pass later.
func TestMoveCollisionBlocksTrailingShape(t *testing.T) {
	b := newTestBoard(t, 4)
	lead := b.PlaceCells("", C(0, 1))
	trail := b.PlaceCells("", C(0, 0))

	require.True(t, b.pass(DirRight))
	assert.Equal(t, []Coord{C(0, 2)}, cellsOf(b, lead))
	assert.Equal(t, []Coord{C(0, 0)}, cellsOf(b, trail), "trailing shape was blocked at pass start")
	mustCheck(t, b)

	require.True(t, b.pass(DirRight))
	assert.Equal(t, []Coord{C(0, 3)}, cellsOf(b, lead))
	assert.Equal(t, []Coord{C(0, 1)}, cellsOf(b, trail))

	require.True(t, b.pass(DirRight))
	assert.Equal(t, []Coord{C(0, 3)}, cellsOf(b, lead), "lead is at the wall")
	assert.Equal(t, []Coord{C(0, 2)}, cellsOf(b, trail))

	assert.False(t, b.pass(DirRight))
	mustCheck(t, b)
}

func TestMoveTrailingShapeStaysBlocked(t *testing.T) {
	b := newTestBoard(t, 4)
	wall := b.PlaceCells("", C(0, 3))
	trail := b.PlaceCells("", C(0, 2))

	assert.False(t, b.Move(DirRight))
	assert.Equal(t, []Coord{C(0, 3)}, cellsOf(b, wall))
	assert.Equal(t, []Coord{C(0, 2)}, cellsOf(b, trail))
}

func TestMoveChainSettlesWithinBoardSize(t *testing.T) {
	const n = 6
	b := newTestBoard(t, n)
	ids := make([]ShapeID, 0, 3)
	for col := 0; col < 3; col++ {
		ids = append(ids, b.PlaceCells("", C(2, col)))
	}

	res := b.MoveDetailed(DirRight)

	require.True(t, res.Moved)
	assert.LessOrEqual(t, res.Passes, n)
	assert.Equal(t, []Coord{C(2, 3)}, cellsOf(b, ids[0]))
	assert.Equal(t, []Coord{C(2, 4)}, cellsOf(b, ids[1]))
	assert.Equal(t, []Coord{C(2, 5)}, cellsOf(b, ids[2]))
	mustCheck(t, b)
}

// Shapes that interlock sideways still settle without overlapping.
func TestMoveInterlockedShapes(t *testing.T) {
	b := newTestBoard(t, 6)
	tee := b.PlaceShape(MustFootprint("T", "111", "010"), "", C(3, 0))
	ell := b.PlaceShape(MustFootprint("L", "10", "10", "11"), "", C(0, 1))

	require.True(t, b.Move(DirDown))
	mustCheck(t, b)

	assert.Equal(t, []Coord{C(4, 0), C(4, 1), C(4, 2), C(5, 1)}, cellsOf(b, tee))
	assert.Equal(t, []Coord{C(1, 1), C(2, 1), C(3, 1), C(3, 2)}, cellsOf(b, ell))
}

func TestMoveNoOpIsIdempotent(t *testing.T) {
	b := newTestBoard(t, 4)
	b.PlaceShape(MustFootprint("O", "11", "11"), "red", C(2, 2))
	b.PlaceCells("blue", C(0, 3))
	before := dump(b)

	assert.False(t, b.CanMove(DirRight))
	res := b.MoveDetailed(DirRight)

	assert.False(t, res.Moved)
	assert.Equal(t, 1, res.Passes)
	assert.Equal(t, before, dump(b))
}

func TestMoveSkipsEmptyShapes(t *testing.T) {
	b := newTestBoard(t, 3)
	ghost := b.PlaceCells("", C(0, 2))
	mover := b.PlaceCells("", C(0, 0))

	// Detach the ghost's only block from the grid and the arena; the shape
	// itself stays in the registry, empty.
	b.removeBlock(b.Registry().Shape(ghost).Blocks[0])
	require.True(t, b.Registry().Shape(ghost).Empty())

	require.True(t, b.Move(DirRight))
	assert.Equal(t, []Coord{C(0, 2)}, cellsOf(b, mover))
	mustCheck(t, b)
}

func TestCanMoveMatchesMove(t *testing.T) {
	b := newTestBoard(t, 4)
	b.PlaceCells("", C(0, 0))

	assert.False(t, b.CanMove(DirUp))
	assert.False(t, b.CanMove(DirLeft))
	assert.True(t, b.CanMove(DirDown))
	assert.True(t, b.CanMove(DirRight))
	assert.True(t, b.CanMoveAny())

	assert.False(t, b.Move(DirUp))
	assert.True(t, b.Move(DirDown))
}

func TestCanMoveAnyEmptyBoard(t *testing.T) {
	b := newTestBoard(t, 4)
	assert.False(t, b.CanMoveAny())
}
