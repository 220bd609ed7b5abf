package noise

import (
	"testing"

	"github.com/coderbot16/i73go/pkg/world/rng"
)

func TestPermutationsIsAValidShuffle(t *testing.T) {
	p := NewPermutations(rng.NewJava(42))

	seen := make(map[uint16]bool, 256)
	for i := uint16(0); i < 256; i++ {
		v := p.hash(i)
		if v >= 256 {
			t.Fatalf("hash(%d) = %d, out of range", i, v)
		}
		seen[v] = true
	}
	if len(seen) != 256 {
		t.Fatalf("permutation table is not a bijection: only %d distinct values", len(seen))
	}
}

func TestPermutationsOffsetRange(t *testing.T) {
	p := NewPermutations(rng.NewJava(7))

	for _, v := range []float64{p.Offset.X, p.Offset.Y, p.Offset.Z} {
		if v < 0 || v >= 256 {
			t.Fatalf("offset component %v out of [0,256) range", v)
		}
	}
}

func TestPermutationsDeterministic(t *testing.T) {
	a := NewPermutations(rng.NewJava(1234))
	b := NewPermutations(rng.NewJava(1234))

	if a.Offset != b.Offset {
		t.Fatalf("same seed produced different offsets: %v vs %v", a.Offset, b.Offset)
	}
	if a.permutations != b.permutations {
		t.Fatalf("same seed produced different permutation tables")
	}
}

func TestPermutationsDifferentSeedsDiverge(t *testing.T) {
	a := NewPermutations(rng.NewJava(1))
	b := NewPermutations(rng.NewJava(2))

	if a.Offset == b.Offset && a.permutations == b.permutations {
		t.Fatalf("different seeds produced identical permutation state")
	}
}
