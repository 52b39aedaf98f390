package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIDsAreMonotonic(t *testing.T) {
	r := NewRegistry()

	a := r.CreateShape("red")
	b := r.CreateShape("blue")
	c := r.CreateShape("")

	assert.Equal(t, ShapeID(1), a)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
	assert.Equal(t, 3, r.ShapeCount())

	// Dropping shapes does not recycle their ids.
	r.Replace([]ShapeID{c})
	d := r.CreateShape("")
	assert.Greater(t, d, c)
}

func TestRegistryAddBlock(t *testing.T) {
	r := NewRegistry()
	s := r.CreateShape("")
	blk := r.NewBlock(2, 3)

	r.AddBlock(s, blk)
	r.AddBlock(s, blk) // no-op

	assert.Equal(t, []BlockID{blk}, r.Shape(s).Blocks)
	assert.Equal(t, s, r.Block(blk).Shape)
}

func TestRegistryAddBlockMovesOwnership(t *testing.T) {
	r := NewRegistry()
	first := r.CreateShape("")
	second := r.CreateShape("")
	blk := r.NewBlock(0, 0)

	r.AddBlock(first, blk)
	r.AddBlock(second, blk)

	assert.True(t, r.Shape(first).Empty())
	assert.True(t, r.Shape(second).Has(blk))
	assert.Equal(t, second, r.Block(blk).Shape)
}

func TestRegistryRemoveBlockKeepsShape(t *testing.T) {
	r := NewRegistry()
	s := r.CreateShape("")
	blk := r.NewBlock(1, 1)
	r.AddBlock(s, blk)

	r.RemoveBlock(s, blk)

	shape, ok := r.LookupShape(s)
	require.True(t, ok)
	assert.True(t, shape.Empty())
	assert.Equal(t, NoShape, r.Block(blk).Shape)
	assert.Equal(t, 1, r.ShapeCount())
}

func TestRegistryDeleteBlock(t *testing.T) {
	r := NewRegistry()
	s := r.CreateShape("")
	blk := r.NewBlock(1, 1)
	r.AddBlock(s, blk)
	require.Equal(t, 1, r.BlockCount())

	r.DeleteBlock(blk)

	assert.Equal(t, 0, r.BlockCount())
	assert.True(t, r.Shape(s).Empty())
	assert.Panics(t, func() { r.Block(blk) })
}

func TestRegistryReplaceRejectsLiveShapes(t *testing.T) {
	r := NewRegistry()
	s := r.CreateShape("")
	r.AddBlock(s, r.NewBlock(0, 0))

	assert.Panics(t, func() { r.Replace(nil) })
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	s := r.CreateShape("")
	r.AddBlock(s, r.NewBlock(0, 0))

	r.Reset()

	assert.Equal(t, 0, r.ShapeCount())
	assert.Equal(t, 0, r.BlockCount())
	assert.Equal(t, ShapeID(1), r.CreateShape(""))
	assert.Equal(t, BlockID(1), r.NewBlock(0, 0))
}

func TestRegistryUnknownIDsPanic(t *testing.T) {
	r := NewRegistry()
	assert.Panics(t, func() { r.Shape(7) })
	assert.Panics(t, func() { r.Block(7) })

	_, ok := r.LookupShape(7)
	assert.False(t, ok)
}
