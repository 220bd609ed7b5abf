package skylight

import (
	"testing"

	"github.com/coderbot16/i73go/pkg/world/voxel"
)

func TestQueueFlipMovesSecondaryToPrimary(t *testing.T) {
	q := NewQueue()

	if q.Flip() {
		t.Fatalf("Flip() on an empty queue should report nothing pending")
	}

	p := voxel.NewBlockPosition(1, 2, 3)
	q.Enqueue(p)

	if !q.Flip() {
		t.Fatalf("Flip() should report pending work after an Enqueue")
	}

	got, ok := q.Next()
	if !ok {
		t.Fatalf("Next() = _, false, want a position")
	}
	if got != p {
		t.Fatalf("Next() = %v, want %v", got, p)
	}

	if _, ok := q.Next(); ok {
		t.Fatalf("Next() should be exhausted after popping the only entry")
	}
}

func TestQueueEnqueueDuringDrainDefersToNextPass(t *testing.T) {
	q := NewQueue()
	a := voxel.NewBlockPosition(0, 0, 0)
	b := voxel.NewBlockPosition(1, 0, 0)

	q.Enqueue(a)
	q.Flip()

	popped, ok := q.Next()
	if !ok || popped != a {
		t.Fatalf("Next() = %v,%v want %v,true", popped, ok, a)
	}

	// Enqueuing b mid-drain must land in the secondary buffer, not be
	// visible until the next Flip.
	q.Enqueue(b)
	if _, ok := q.Next(); ok {
		t.Fatalf("Next() should not see an Enqueue that happened after the last Flip")
	}

	if !q.Flip() {
		t.Fatalf("Flip() should now see b")
	}
	popped, ok = q.Next()
	if !ok || popped != b {
		t.Fatalf("Next() = %v,%v want %v,true", popped, ok, b)
	}
}

func TestQueueEnqueueNeighborsSkipsOutOfBounds(t *testing.T) {
	q := NewQueue()
	corner := voxel.NewBlockPosition(0, 0, 0)

	q.EnqueueNeighbors(corner)
	q.Flip()

	count := 0
	for {
		_, ok := q.Next()
		if !ok {
			break
		}
		count++
	}

	// Corner has 3 valid in-bounds neighbors: +X, +Z, +Y.
	if count != 3 {
		t.Fatalf("EnqueueNeighbors at a corner produced %d entries, want 3", count)
	}
}
