package skylight

import (
	"math/bits"

	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// words is the bitmap size for a full 256-tall, 16x16 column:
// 16*256*16 = 65536 cells, 64 bits per word.
const words = 65536 / 64

// Queue is a dual-buffered bitmap BFS queue over a column's cells.
// Draining the primary buffer while newly-touched positions land in
// the secondary buffer keeps a position enqueued mid-pass from being
// processed again until the next pass, the way the reference's
// per-chunk lighting queue does at 16x16x16 scale.
type Queue struct {
	primary, secondary [words]uint64
	skip               int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{skip: words}
}

// Enqueue marks p for relaxation on the next Flip.
func (q *Queue) Enqueue(p voxel.BlockPosition) {
	idx := p.YZX()
	q.secondary[idx/64] |= 1 << (idx % 64)
}

// EnqueueNeighbors marks every in-bounds 6-neighbor of p.
func (q *Queue) EnqueueNeighbors(p voxel.BlockPosition) {
	if n, ok := p.MinusX(); ok {
		q.Enqueue(n)
	}
	if n, ok := p.PlusX(); ok {
		q.Enqueue(n)
	}
	if n, ok := p.MinusZ(); ok {
		q.Enqueue(n)
	}
	if n, ok := p.PlusZ(); ok {
		q.Enqueue(n)
	}
	if n, ok := p.MinusY(); ok {
		q.Enqueue(n)
	}
	if n, ok := p.PlusY(); ok {
		q.Enqueue(n)
	}
}

// Flip swaps the primary and secondary buffers, clearing the new
// secondary, and reports whether the new primary holds anything.
func (q *Queue) Flip() bool {
	q.primary, q.secondary = q.secondary, q.primary
	q.secondary = [words]uint64{}

	q.skip = 0
	for q.skip < words && q.primary[q.skip] == 0 {
		q.skip++
	}
	return q.skip < words
}

// Next pops and clears the lowest-indexed set bit in the primary
// buffer, returning ok=false once it's exhausted.
func (q *Queue) Next() (voxel.BlockPosition, bool) {
	for q.skip < words {
		word := q.primary[q.skip]
		if word == 0 {
			q.skip++
			continue
		}
		bit := bits.TrailingZeros64(word)
		q.primary[q.skip] &^= 1 << uint(bit)
		return voxel.FromYZX(uint16(q.skip*64 + bit)), true
	}
	return 0, false
}
