package core

import "strings"

// CellView is the read-only view of one board cell.
type CellView struct {
	Occupied bool
	Shape    ShapeID
	Tag      string
}

// Snapshot is a read-only copy of the board, used for rendering and for
// determinism checks. Mutating it never affects the board.
type Snapshot struct {
	Size     int
	Cells    [][]CellView // Cells[row][col]
	Shapes   int          // Number of non-empty shapes
	Score    int
	Turns    int
	GameOver bool
}

// Snapshot captures the current cell ownership.
func (b *Board) Snapshot() Snapshot {
	n := b.Size()
	cells := make([][]CellView, n)
	for row := 0; row < n; row++ {
		cells[row] = make([]CellView, n)
		for col := 0; col < n; col++ {
			id := b.grid.Get(row, col)
			if id == NoBlock {
				continue
			}
			owner := b.reg.Block(id).Shape
			view := CellView{Occupied: true, Shape: owner}
			if s, ok := b.reg.LookupShape(owner); ok {
				view.Tag = s.Tag
			}
			cells[row][col] = view
		}
	}

	shapes := 0
	for _, s := range b.reg.Shapes() {
		if !s.Empty() {
			shapes++
		}
	}

	return Snapshot{Size: n, Cells: cells, Shapes: shapes}
}

// Cell returns the view at (row, col); off-board positions read as empty.
func (s Snapshot) Cell(row, col int) CellView {
	if row < 0 || row >= s.Size || col < 0 || col >= s.Size {
		return CellView{}
	}
	return s.Cells[row][col]
}

// SameShape reports whether both cells are occupied by the same shape.
// Renderers use it to decide where to draw shape borders.
func (s Snapshot) SameShape(r1, c1, r2, c2 int) bool {
	a, b := s.Cell(r1, c1), s.Cell(r2, c2)
	return a.Occupied && b.Occupied && a.Shape == b.Shape
}

// EmptyCount returns the number of free cells.
func (s Snapshot) EmptyCount() int {
	count := 0
	for _, row := range s.Cells {
		for _, c := range row {
			if !c.Occupied {
				count++
			}
		}
	}
	return count
}

// String renders the board as text: '.' for empty cells and one letter per
// shape (cycling a-z by id). Unowned blocks show as '#'.
func (s Snapshot) String() string {
	var sb strings.Builder
	sb.Grow(s.Size * (s.Size + 1))
	for row := 0; row < s.Size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < s.Size; col++ {
			c := s.Cells[row][col]
			if !c.Occupied {
				sb.WriteByte('.')
				continue
			}
			if c.Shape == NoShape {
				sb.WriteByte('#')
				continue
			}
			sb.WriteByte(byte('a' + int(c.Shape-1)%26))
		}
	}
	return sb.String()
}
