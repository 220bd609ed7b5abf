package voxel

import "testing"

func TestPackedStorageRoundTrip(t *testing.T) {
	for _, bits := range []uint{1, 4, 5, 8, 13, 16} {
		s := NewPackedStorage(bits)
		max := uint64(1)<<bits - 1

		for i := 0; i < Positions; i++ {
			p := FromYZX(uint16(i))
			value := uint64(i) & max
			s.Set(p, value)
			if got := s.Get(p); got != value {
				t.Fatalf("bits=%d: Get(%d) = %d, want %d", bits, i, got, value)
			}
		}
	}
}

func TestPackedStorageStraddlingWords(t *testing.T) {
	// 13 bits per entry guarantees some entries straddle a 64-bit word.
	s := NewPackedStorage(13)

	for i := 0; i < Positions; i++ {
		s.Set(FromYZX(uint16(i)), uint64(i%8192))
	}
	for i := 0; i < Positions; i++ {
		want := uint64(i % 8192)
		if got := s.Get(FromYZX(uint16(i))); got != want {
			t.Fatalf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestPackedStorageZeroBits(t *testing.T) {
	s := NewPackedStorage(0)
	if s.Get(FromYZX(0)) != 0 {
		t.Fatalf("zero-bit storage must read 0 everywhere")
	}
	s.Set(FromYZX(0), 5) // no-op
	if s.Get(FromYZX(0)) != 0 {
		t.Fatalf("zero-bit storage Set must be a no-op")
	}
}

func TestPackedStorageRebit(t *testing.T) {
	s := NewPackedStorage(4)
	for i := 0; i < Positions; i++ {
		s.Set(FromYZX(uint16(i)), uint64(i%16))
	}

	s.Rebit(5)

	if s.BitsPerEntry() != 5 {
		t.Fatalf("BitsPerEntry() = %d, want 5", s.BitsPerEntry())
	}
	for i := 0; i < Positions; i++ {
		want := uint64(i % 16)
		if got := s.Get(FromYZX(uint16(i))); got != want {
			t.Fatalf("after rebit, Get(%d) = %d, want %d", i, got, want)
		}
	}
}
