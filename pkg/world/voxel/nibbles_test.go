package voxel

import "testing"

func TestChunkNibblesGetSet(t *testing.T) {
	var n ChunkNibbles

	n.Set(FromYZX(0), 0xA)
	n.Set(FromYZX(1), 0x5)

	if got := n.Get(FromYZX(0)); got != 0xA {
		t.Fatalf("Get(0) = %#x, want 0xA", got)
	}
	if got := n.Get(FromYZX(1)); got != 0x5 {
		t.Fatalf("Get(1) = %#x, want 0x5", got)
	}
}

func TestChunkNibblesSetMasksToFourBits(t *testing.T) {
	var n ChunkNibbles
	n.Set(FromYZX(2), 0xFF)
	if got := n.Get(FromYZX(2)); got != 0xF {
		t.Fatalf("Get(2) = %#x, want 0xF (masked)", got)
	}
}

func TestSkyColumnGetSetAcrossChunks(t *testing.T) {
	col := NewSkyColumn()

	low := NewBlockPosition(0, 5, 0)
	high := NewBlockPosition(0, 200, 0)

	col.Set(low, 3)
	col.Set(high, 9)

	if got := col.Get(low); got != 3 {
		t.Fatalf("Get(low) = %d, want 3", got)
	}
	if got := col.Get(high); got != 9 {
		t.Fatalf("Get(high) = %d, want 9", got)
	}
}
