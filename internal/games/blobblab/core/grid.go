package core

// Grid is the board's cell occupancy: an N×N square of block ids.
// Cells are stored in row-major order: index = row*N + col.
type Grid struct {
	n     int
	cells []BlockID
}

// NewGrid creates an empty n×n grid.
func NewGrid(n int) *Grid {
	return &Grid{
		n:     n,
		cells: make([]BlockID, n*n),
	}
}

// Size returns the board dimension N.
func (g *Grid) Size() int {
	return g.n
}

// index converts a position to a flat array index.
// Callers derive positions from loop bounds, so a miss is a bug.
func (g *Grid) index(row, col int) int {
	if !g.InBounds(row, col) {
		invariant("grid access out of bounds (%d,%d) on %dx%d board", row, col, g.n, g.n)
	}
	return row*g.n + col
}

// InBounds returns true if the position is on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// Clear resets every cell to empty.
func (g *Grid) Clear() {
	clear(g.cells)
}

// Get returns the block id at the position, or NoBlock if empty.
func (g *Grid) Get(row, col int) BlockID {
	return g.cells[g.index(row, col)]
}

// Set stores a block id (or NoBlock) at the position.
func (g *Grid) Set(row, col int, id BlockID) {
	g.cells[g.index(row, col)] = id
}

// IsEmpty returns true if no block occupies the position.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.Get(row, col) == NoBlock
}

// RowFull returns true if every cell in the row is occupied.
func (g *Grid) RowFull(row int) bool {
	for col := 0; col < g.n; col++ {
		if g.IsEmpty(row, col) {
			return false
		}
	}
	return true
}

// ColFull returns true if every cell in the column is occupied.
func (g *Grid) ColFull(col int) bool {
	for row := 0; row < g.n; row++ {
		if g.IsEmpty(row, col) {
			return false
		}
	}
	return true
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, id := range g.cells {
		if id == NoBlock {
			count++
		}
	}
	return count
}
