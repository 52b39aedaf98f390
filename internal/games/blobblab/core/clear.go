package core

// ClearResult describes the outcome of a line clear.
type ClearResult struct {
	Rows       []int // Full rows that were cleared
	Cols       []int // Full columns that were cleared
	Cleared    int   // Distinct blocks removed
	ScoreDelta int   // LineBase * k * k, k = len(Rows) + len(Cols)
}

// Lines returns the number of cleared rows plus cleared columns.
func (r ClearResult) Lines() int {
	return len(r.Rows) + len(r.Cols)
}

// DefaultLineBase is the score multiplier for line clears.
const DefaultLineBase = 10

// ClearLines removes every full row and column, scores them, and rebuilds
// the shapes from the surviving blocks. Uses DefaultLineBase.
func (b *Board) ClearLines() ClearResult {
	return b.ClearLinesScored(DefaultLineBase)
}

// ClearLinesScored is ClearLines with a custom score multiplier.
func (b *Board) ClearLinesScored(lineBase int) ClearResult {
	n := b.Size()
	var res ClearResult

	// Rows and columns are flagged independently; an intersection cell can
	// be in both sets.
	for row := 0; row < n; row++ {
		if b.grid.RowFull(row) {
			res.Rows = append(res.Rows, row)
		}
	}
	for col := 0; col < n; col++ {
		if b.grid.ColFull(col) {
			res.Cols = append(res.Cols, col)
		}
	}

	k := res.Lines()
	if k == 0 {
		return res
	}
	res.ScoreDelta = lineBase * k * k

	// Collect distinct blocks, row-major, so a block at an intersection is
	// removed once.
	seen := make(map[BlockID]bool)
	var doomed []BlockID
	collect := func(row, col int) {
		id := b.grid.Get(row, col)
		if id == NoBlock || seen[id] {
			return
		}
		seen[id] = true
		doomed = append(doomed, id)
	}
	for _, row := range res.Rows {
		for col := 0; col < n; col++ {
			collect(row, col)
		}
	}
	for _, col := range res.Cols {
		for row := 0; row < n; row++ {
			collect(row, col)
		}
	}

	for _, id := range doomed {
		b.removeBlock(id)
	}
	res.Cleared = len(doomed)

	b.restructure()
	return res
}

// restructure regroups the surviving blocks into connected shapes.
//
// Two 4-adjacent occupied cells join iff their blocks belonged to the same
// shape before this call, so unrelated shapes that happen to touch never
// merge. Every maximal component becomes a new shape carrying the old tag;
// all previous shapes are dropped.
func (b *Board) restructure() {
	n := b.Size()

	// Owner of each cell before regrouping.
	owner := make([]ShapeID, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if id := b.grid.Get(row, col); id != NoBlock {
				owner[row*n+col] = b.reg.Block(id).Shape
			}
		}
	}

	visited := make([]bool, n*n)
	var fresh []ShapeID
	var stack []Coord

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			start := row*n + col
			if visited[start] || b.grid.IsEmpty(row, col) {
				continue
			}

			oldID := owner[start]
			tag := ""
			if old, ok := b.reg.LookupShape(oldID); ok {
				tag = old.Tag
			}
			newID := b.reg.CreateShape(tag)
			fresh = append(fresh, newID)

			visited[start] = true
			stack = append(stack[:0], C(row, col))
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				b.reg.AddBlock(newID, b.grid.Get(cur.Row, cur.Col))

				for _, d := range Dirs {
					next := cur.Step(d)
					if !b.grid.InBounds(next.Row, next.Col) {
						continue
					}
					idx := next.Row*n + next.Col
					if visited[idx] || b.grid.IsEmpty(next.Row, next.Col) || owner[idx] != oldID {
						continue
					}
					visited[idx] = true
					stack = append(stack, next)
				}
			}
		}
	}

	b.reg.Replace(fresh)
}
