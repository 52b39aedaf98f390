package core

// Fits reports whether the footprint, anchored with its top-left corner at
// anchor, stays on the board and covers only empty cells.
func (b *Board) Fits(fp Footprint, anchor Coord) bool {
	n := b.Size()
	if anchor.Row < 0 || anchor.Col < 0 || anchor.Row+fp.Rows() > n || anchor.Col+fp.Cols() > n {
		return false
	}

	for _, off := range fp.Offsets() {
		if !b.grid.IsEmpty(anchor.Row+off.Row, anchor.Col+off.Col) {
			return false
		}
	}
	return true
}

// ValidAnchors returns every anchor where the footprint fits, in row-major order.
func (b *Board) ValidAnchors(fp Footprint) []Coord {
	n := b.Size()
	var anchors []Coord
	for row := 0; row+fp.Rows() <= n; row++ {
		for col := 0; col+fp.Cols() <= n; col++ {
			if b.Fits(fp, C(row, col)) {
				anchors = append(anchors, C(row, col))
			}
		}
	}
	return anchors
}

// FindPlacement picks one valid anchor for the footprint uniformly at random.
// Returns false when the footprint fits nowhere.
func (b *Board) FindPlacement(fp Footprint) (Coord, bool) {
	anchors := b.ValidAnchors(fp)
	if len(anchors) == 0 {
		return Coord{}, false
	}
	return anchors[b.rng.Intn(len(anchors))], true
}

// HasEmptyCell reports whether any cell is free. It is the 1×1 placement
// search, which is the game-over oracle.
func (b *Board) HasEmptyCell() bool {
	return len(b.ValidAnchors(Single)) > 0
}

// Spawn places a new shape from the footprint at a random valid anchor.
// Returns false, leaving the board untouched, when no anchor is valid.
func (b *Board) Spawn(fp Footprint, tag string) (ShapeID, bool) {
	anchor, ok := b.FindPlacement(fp)
	if !ok {
		return NoShape, false
	}
	return b.PlaceShape(fp, tag, anchor), true
}
