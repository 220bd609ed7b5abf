package biome

import "testing"

func TestSegmentedGetBeforeAnyBoundary(t *testing.T) {
	s := NewSegmented(99)
	if got := s.Get(0.5); got != 99 {
		t.Fatalf("Get() = %d, want default 99", got)
	}
}

func TestSegmentedAddBoundaryAndGet(t *testing.T) {
	s := NewSegmented(0)
	s.AddBoundary(0.5, 1)
	s.AddBoundary(1.0, 2)

	cases := []struct {
		at   float64
		want int
	}{
		{0.0, 1},
		{0.4, 1},
		{0.5, 1},
		{0.6, 2},
		{1.0, 2},
		{1.5, 0}, // past the last boundary: default
	}

	for _, c := range cases {
		if got := s.Get(c.at); got != c.want {
			t.Fatalf("Get(%v) = %d, want %d", c.at, got, c.want)
		}
	}
}

func TestSegmentedAddBoundaryOverwritesExisting(t *testing.T) {
	s := NewSegmented(0)
	s.AddBoundary(1.0, 5)
	s.AddBoundary(1.0, 9)

	if got := s.Get(1.0); got != 9 {
		t.Fatalf("Get(1.0) = %d, want 9 (overwritten)", got)
	}
}

func TestSegmentedAlignInsertsSplitBoundaries(t *testing.T) {
	s := NewSegmented(0)
	s.AddBoundary(1.0, 7)

	above := func() int { return -1 }
	clone := func(v int) int { return v }

	s.Align(0.3, 0.6, above, clone)

	if got := s.Get(0.2); got != 7 {
		t.Fatalf("Get(0.2) = %d, want 7 (cloned from the single pre-existing segment)", got)
	}
	if got := s.Get(0.5); got != 7 {
		t.Fatalf("Get(0.5) = %d, want 7", got)
	}
	if got := s.Get(1.0); got != 7 {
		t.Fatalf("Get(1.0) = %d, want 7", got)
	}
}

func TestSegmentedForAllAlignedAppliesOnlyWithinRange(t *testing.T) {
	s := NewSegmented(0)
	s.AddBoundary(1.0, 1)

	above := func() int { return 0 }
	clone := func(v int) int { return v }

	s.ForAllAligned(0.25, 0.75, above, clone, func(v *int) {
		*v = *v + 100
	})

	if got := s.Get(0.1); got == 100 || got == 101 {
		t.Fatalf("Get(0.1) = %d, on() should not have touched a segment outside (0.25,0.75]", got)
	}
	if got := s.Get(0.5); got < 100 {
		t.Fatalf("Get(0.5) = %d, expected the on() callback to have applied", got)
	}
}
