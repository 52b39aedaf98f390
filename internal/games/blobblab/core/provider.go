package core

import (
	"fmt"
	"math/rand"
)

// Piece is what gets spawned: a footprint plus a visual tag.
type Piece struct {
	Footprint Footprint
	Tag       string
}

// Provider supplies the next piece to spawn. The engine treats it as opaque.
type Provider interface {
	Next() Piece
}

// Previewer is implemented by providers that can show upcoming pieces.
type Previewer interface {
	// Peek returns up to n upcoming pieces without consuming them.
	Peek(n int) []Piece
}

// RandomProvider picks a footprint and a tag uniformly at random.
type RandomProvider struct {
	rng        *rand.Rand
	footprints []Footprint
	tags       []string
}

// NewRandomProvider creates a uniform random provider.
// An empty tag list yields pieces with an empty tag.
func NewRandomProvider(rng *rand.Rand, footprints []Footprint, tags []string) (*RandomProvider, error) {
	if len(footprints) == 0 {
		return nil, ErrEmptyPieceTable
	}
	if rng == nil {
		return nil, fmt.Errorf("blobblab: random provider needs an rng")
	}
	return &RandomProvider{
		rng:        rng,
		footprints: footprints,
		tags:       tags,
	}, nil
}

// Next returns a freshly drawn piece.
func (p *RandomProvider) Next() Piece {
	piece := Piece{Footprint: p.footprints[p.rng.Intn(len(p.footprints))]}
	if len(p.tags) > 0 {
		piece.Tag = p.tags[p.rng.Intn(len(p.tags))]
	}
	return piece
}

// PreviewQueue keeps a fixed-length look-ahead queue filled from a source
// provider. Next pops the head and draws a replacement at the tail.
type PreviewQueue struct {
	source Provider
	queue  []Piece
}

// NewPreviewQueue creates a queue of the given length (at least 1).
func NewPreviewQueue(source Provider, length int) *PreviewQueue {
	if length < 1 {
		length = 1
	}
	q := &PreviewQueue{source: source}
	q.fill(length)
	return q
}

func (q *PreviewQueue) fill(length int) {
	q.queue = make([]Piece, 0, length)
	for i := 0; i < length; i++ {
		q.queue = append(q.queue, q.source.Next())
	}
}

// Next pops the head of the queue and refills the tail.
func (q *PreviewQueue) Next() Piece {
	head := q.queue[0]
	q.queue = append(q.queue[1:], q.source.Next())
	return head
}

// Peek returns up to n upcoming pieces without consuming them.
func (q *PreviewQueue) Peek(n int) []Piece {
	if n > len(q.queue) {
		n = len(q.queue)
	}
	out := make([]Piece, n)
	copy(out, q.queue[:n])
	return out
}

// Len returns the preview length.
func (q *PreviewQueue) Len() int {
	return len(q.queue)
}

// Reset redraws the whole queue.
func (q *PreviewQueue) Reset() {
	q.fill(len(q.queue))
}

// SequenceProvider replays a fixed list of pieces in a loop.
// Handy for scripted boards and tests.
type SequenceProvider struct {
	pieces []Piece
	next   int
}

// NewSequenceProvider creates a looping provider over pieces.
func NewSequenceProvider(pieces ...Piece) (*SequenceProvider, error) {
	if len(pieces) == 0 {
		return nil, ErrEmptyPieceTable
	}
	return &SequenceProvider{pieces: pieces}, nil
}

// Next returns the next piece in the sequence.
func (p *SequenceProvider) Next() Piece {
	piece := p.pieces[p.next]
	p.next = (p.next + 1) % len(p.pieces)
	return piece
}
