package core

import "slices"

// MoveResult describes how a swipe resolved.
type MoveResult struct {
	Moved  bool // Whether any shape moved in any pass
	Passes int  // Passes run, including the final one that moved nothing
}

// Move slides every shape in the direction until nothing can move.
// Returns whether anything moved. A false result leaves the board unchanged.
func (b *Board) Move(dir Dir) bool {
	return b.MoveDetailed(dir).Moved
}

// MoveDetailed is Move with the pass count reported.
//
// Each pass tests every non-empty shape against the grid as it stood at the
// start of the pass; all shapes that can shift one cell then shift together.
// A shape blocked by another shape therefore advances one pass after the
// blocker opens a gap.
func (b *Board) MoveDetailed(dir Dir) MoveResult {
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return MoveResult{}
	}

	// Every moving pass advances at least one block by one cell along the
	// axis, and no block can advance more than N-1 cells.
	limit := b.reg.BlockCount()*b.Size() + 1

	var res MoveResult
	for {
		res.Passes++
		if res.Passes > limit {
			invariant("movement did not settle after %d passes", limit)
		}

		if !b.pass(dir) {
			return res
		}
		res.Moved = true
	}
}

// pass runs a single movement pass and reports whether anything moved.
func (b *Board) pass(dir Dir) bool {
	dr, dc := dir.Delta()

	var queued []*Shape
	for _, s := range b.reg.Shapes() {
		if s.Empty() {
			continue
		}
		if b.canShift(s, dr, dc) {
			queued = append(queued, s)
		}
	}

	if len(queued) == 0 {
		return false
	}
	b.shift(queued, dir)
	return true
}

// CanMove reports whether a swipe in the direction would move anything.
// It is exactly the first pass of MoveDetailed without applying it.
func (b *Board) CanMove(dir Dir) bool {
	dr, dc := dir.Delta()
	if dr == 0 && dc == 0 {
		return false
	}
	for _, s := range b.reg.Shapes() {
		if !s.Empty() && b.canShift(s, dr, dc) {
			return true
		}
	}
	return false
}

// CanMoveAny reports whether some direction would move anything.
func (b *Board) CanMoveAny() bool {
	for _, d := range Dirs {
		if b.CanMove(d) {
			return true
		}
	}
	return false
}

// canShift tests whether every block of the shape can move by (dr, dc):
// the destination must be on the board and either empty or held by the
// same shape.
func (b *Board) canShift(s *Shape, dr, dc int) bool {
	for _, id := range s.Blocks {
		blk := b.reg.Block(id)
		row, col := blk.Row+dr, blk.Col+dc
		if !b.grid.InBounds(row, col) {
			return false
		}
		other := b.grid.Get(row, col)
		if other == NoBlock {
			continue
		}
		if b.reg.Block(other).Shape != s.ID {
			return false
		}
	}
	return true
}

// shift moves all queued shapes one cell at once.
// Old cells of every moving block are cleared before any new cell is
// written, so neither a shape's own blocks nor a neighbour moving in the
// same pass can be overwritten.
func (b *Board) shift(queued []*Shape, dir Dir) {
	dr, dc := dir.Delta()

	ordered := make([][]*Block, len(queued))
	for i, s := range queued {
		blocks := make([]*Block, 0, s.Len())
		for _, id := range s.Blocks {
			blk := b.reg.Block(id)
			if blk.Shape != s.ID {
				invariant("block %d in shape %d is owned by %d", id, s.ID, blk.Shape)
			}
			blocks = append(blocks, blk)
		}
		sortLeadingFirst(blocks, dir)
		ordered[i] = blocks
	}

	for _, blocks := range ordered {
		for _, blk := range blocks {
			b.grid.Set(blk.Row, blk.Col, NoBlock)
		}
	}

	for _, blocks := range ordered {
		for _, blk := range blocks {
			blk.Row += dr
			blk.Col += dc
			b.grid.Set(blk.Row, blk.Col, blk.ID)
		}
	}
}

// sortLeadingFirst orders blocks farthest along the direction of travel
// first: descending position for positive directions, ascending for
// negative ones. Ties fall back to the cross axis and then the id.
func sortLeadingFirst(blocks []*Block, dir Dir) {
	dr, dc := dir.Delta()
	slices.SortFunc(blocks, func(x, y *Block) int {
		ax := x.Row*dr + x.Col*dc
		ay := y.Row*dr + y.Col*dc
		if ax != ay {
			return ay - ax
		}
		if x.Row != y.Row {
			return x.Row - y.Row
		}
		if x.Col != y.Col {
			return x.Col - y.Col
		}
		return int(x.ID - y.ID)
	})
}
