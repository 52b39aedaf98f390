package core

import (
	"fmt"
	"math/rand"
)

// Board ties the grid and the shape registry together and hosts the
// placement, movement and line-clear algorithms.
type Board struct {
	grid *Grid
	reg  *Registry
	rng  *rand.Rand
}

// NewBoard creates an empty n×n board.
// rng selects among valid placement anchors.
func NewBoard(n int, rng *rand.Rand) (*Board, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Board{
		grid: NewGrid(n),
		reg:  NewRegistry(),
		rng:  rng,
	}, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.grid.Size()
}

// Grid exposes the cell occupancy.
func (b *Board) Grid() *Grid {
	return b.grid
}

// Registry exposes the shape registry.
func (b *Board) Registry() *Registry {
	return b.reg
}

// Reset empties the grid and the registry.
func (b *Board) Reset() {
	b.grid.Clear()
	b.reg.Reset()
}

// PlaceShape creates a new shape from the footprint with its top-left
// corner at anchor. The target cells must be empty and on the board.
func (b *Board) PlaceShape(fp Footprint, tag string, anchor Coord) ShapeID {
	if !b.Fits(fp, anchor) {
		invariant("footprint %s does not fit at %s", fp.Name, anchor)
	}

	id := b.reg.CreateShape(tag)
	for _, off := range fp.Offsets() {
		pos := anchor.Add(off.Row, off.Col)
		blk := b.reg.NewBlock(pos.Row, pos.Col)
		b.grid.Set(pos.Row, pos.Col, blk)
		b.reg.AddBlock(id, blk)
	}
	return id
}

// PlaceCells creates a new shape from absolute positions.
// Useful for building arbitrary (even disconnected) layouts in tests and tools.
func (b *Board) PlaceCells(tag string, cells ...Coord) ShapeID {
	for _, pos := range cells {
		if !b.grid.IsEmpty(pos.Row, pos.Col) {
			invariant("cell %s already occupied", pos)
		}
	}

	id := b.reg.CreateShape(tag)
	for _, pos := range cells {
		blk := b.reg.NewBlock(pos.Row, pos.Col)
		b.grid.Set(pos.Row, pos.Col, blk)
		b.reg.AddBlock(id, blk)
	}
	return id
}

// ShapeAt returns the id of the shape owning the cell, or NoShape.
func (b *Board) ShapeAt(row, col int) ShapeID {
	id := b.grid.Get(row, col)
	if id == NoBlock {
		return NoShape
	}
	return b.reg.Block(id).Shape
}

// removeBlock destroys a block: it leaves the grid, its shape and the arena together.
func (b *Board) removeBlock(id BlockID) {
	blk := b.reg.Block(id)
	if b.grid.Get(blk.Row, blk.Col) == id {
		b.grid.Set(blk.Row, blk.Col, NoBlock)
	}
	b.reg.DeleteBlock(id)
}

// Check verifies the board/registry invariants:
//   - every occupied cell holds a block whose coordinates match the cell
//     and whose owning shape lists it;
//   - every member of an active shape sits on the grid at its coordinates;
//   - the arena holds exactly the blocks on the grid.
func (b *Board) Check() error {
	n := b.Size()
	occupied := 0

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			id := b.grid.Get(row, col)
			if id == NoBlock {
				continue
			}
			occupied++

			blk, ok := b.reg.blocks.Get(id)
			if !ok {
				return fmt.Errorf("cell (%d,%d) holds unknown block %d", row, col, id)
			}
			if blk.Row != row || blk.Col != col {
				return fmt.Errorf("block %d at (%d,%d) stored in cell (%d,%d)", id, blk.Row, blk.Col, row, col)
			}
			if blk.Shape == NoShape {
				continue
			}
			s, ok := b.reg.LookupShape(blk.Shape)
			if !ok {
				return fmt.Errorf("block %d owned by unknown shape %d", id, blk.Shape)
			}
			if !s.Has(id) {
				return fmt.Errorf("block %d claims shape %d which does not list it", id, blk.Shape)
			}
		}
	}

	for _, s := range b.reg.Shapes() {
		for _, id := range s.Blocks {
			blk, ok := b.reg.blocks.Get(id)
			if !ok {
				return fmt.Errorf("shape %d lists unknown block %d", s.ID, id)
			}
			if blk.Shape != s.ID {
				return fmt.Errorf("shape %d lists block %d owned by %d", s.ID, id, blk.Shape)
			}
			if b.grid.Get(blk.Row, blk.Col) != id {
				return fmt.Errorf("shape %d member %d not on grid at (%d,%d)", s.ID, id, blk.Row, blk.Col)
			}
		}
	}

	if occupied != b.reg.BlockCount() {
		return fmt.Errorf("%d occupied cells but %d blocks in arena", occupied, b.reg.BlockCount())
	}
	return nil
}
