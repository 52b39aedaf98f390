package core

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// ShapeID identifies a shape. Ids start at 1 and increase monotonically.
type ShapeID int

// BlockID identifies a block. Ids start at 1 and increase monotonically.
type BlockID int

const (
	NoShape ShapeID = 0 // Owner of a block that belongs to no shape
	NoBlock BlockID = 0 // Grid value of an empty cell
)

// Block is a single occupied cell.
// Shape is a non-owning back-reference resolved through the Registry.
type Block struct {
	ID    BlockID
	Row   int
	Col   int
	Shape ShapeID
}

// Pos returns the block position as a Coord.
func (b *Block) Pos() Coord {
	return C(b.Row, b.Col)
}

// Shape is a set of connected blocks that move as a unit.
type Shape struct {
	ID     ShapeID
	Tag    string    // Visual tag (colour name) carried from the spawned piece
	Blocks []BlockID // Member blocks; order is only used for deterministic sorting
}

// Len returns the number of member blocks.
func (s *Shape) Len() int {
	return len(s.Blocks)
}

// Empty reports whether the shape has no members left.
// Empty shapes are inert: they never move and never block movement.
func (s *Shape) Empty() bool {
	return len(s.Blocks) == 0
}

// Has reports whether the block is a member of this shape.
func (s *Shape) Has(id BlockID) bool {
	return slices.Contains(s.Blocks, id)
}

// Registry owns shape identity and membership, plus the block arena.
// Shapes and blocks are stored in id-keyed maps; the grid and the
// shapes refer to blocks by id only.
type Registry struct {
	nextShape ShapeID
	nextBlock BlockID

	shapes *intmap.Map[ShapeID, *Shape]
	blocks *intmap.Map[BlockID, *Block]
	active []ShapeID // Active shapes in creation order
	live   int       // Number of blocks in the arena
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset drops all shapes and blocks and restarts the id counters.
// Nothing created before Reset survives it, so restarted ids cannot collide.
func (r *Registry) Reset() {
	r.nextShape = 0
	r.nextBlock = 0
	r.shapes = intmap.New[ShapeID, *Shape](64)
	r.blocks = intmap.New[BlockID, *Block](256)
	r.active = r.active[:0]
	r.live = 0
}

// CreateShape allocates a new, empty shape with a fresh id and adds it to
// the active collection.
func (r *Registry) CreateShape(tag string) ShapeID {
	r.nextShape++
	id := r.nextShape
	r.shapes.Put(id, &Shape{ID: id, Tag: tag})
	r.active = append(r.active, id)
	return id
}

// NewBlock allocates a new unowned block at the given position.
// Placing it on the grid is the caller's job.
func (r *Registry) NewBlock(row, col int) BlockID {
	r.nextBlock++
	id := r.nextBlock
	r.blocks.Put(id, &Block{ID: id, Row: row, Col: col, Shape: NoShape})
	r.live++
	return id
}

// DeleteBlock detaches the block from its shape and removes it from the arena.
func (r *Registry) DeleteBlock(id BlockID) {
	b := r.Block(id)
	if b.Shape != NoShape {
		r.RemoveBlock(b.Shape, id)
	}
	r.blocks.Del(id)
	r.live--
}

// AddBlock makes the block a member of the shape.
// No-op if it already is; a block owned by another shape is moved over,
// so after the call the block belongs to exactly this shape.
func (r *Registry) AddBlock(shapeID ShapeID, blockID BlockID) {
	s := r.Shape(shapeID)
	b := r.Block(blockID)

	if b.Shape == shapeID && s.Has(blockID) {
		return
	}
	if b.Shape != NoShape && b.Shape != shapeID {
		r.RemoveBlock(b.Shape, blockID)
	}

	s.Blocks = append(s.Blocks, blockID)
	b.Shape = shapeID
}

// RemoveBlock drops the block from the shape's membership and clears the
// block's owner. The shape is kept even if it becomes empty.
func (r *Registry) RemoveBlock(shapeID ShapeID, blockID BlockID) {
	s := r.Shape(shapeID)
	idx := slices.Index(s.Blocks, blockID)
	if idx < 0 {
		return
	}
	s.Blocks = slices.Delete(s.Blocks, idx, idx+1)

	b := r.Block(blockID)
	if b.Shape == shapeID {
		b.Shape = NoShape
	}
}

// Shape returns the shape with the given id. Unknown ids panic.
func (r *Registry) Shape(id ShapeID) *Shape {
	s, ok := r.shapes.Get(id)
	if !ok {
		invariant("unknown shape %d", id)
	}
	return s
}

// LookupShape returns the shape with the given id, if it exists.
func (r *Registry) LookupShape(id ShapeID) (*Shape, bool) {
	return r.shapes.Get(id)
}

// Block returns the block with the given id. Unknown ids panic.
func (r *Registry) Block(id BlockID) *Block {
	b, ok := r.blocks.Get(id)
	if !ok {
		invariant("unknown block %d", id)
	}
	return b
}

// Shapes returns the active shapes in creation order, empty ones included.
func (r *Registry) Shapes() []*Shape {
	out := make([]*Shape, 0, len(r.active))
	for _, id := range r.active {
		out = append(out, r.Shape(id))
	}
	return out
}

// ShapeCount returns the number of active shapes.
func (r *Registry) ShapeCount() int {
	return len(r.active)
}

// BlockCount returns the number of blocks in the arena.
func (r *Registry) BlockCount() int {
	return r.live
}

// Replace swaps in a new active shape collection.
// Shapes not listed are dropped; they must be empty by then.
func (r *Registry) Replace(ids []ShapeID) {
	keep := make(map[ShapeID]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	for _, id := range r.active {
		if keep[id] {
			continue
		}
		if s := r.Shape(id); !s.Empty() {
			invariant("dropping shape %d with %d members", id, s.Len())
		}
		r.shapes.Del(id)
	}

	r.active = append(r.active[:0], ids...)
}
