// Package noise implements the Perlin and Simplex noise generators and
// their octave combinators used to build the terrain noise field.
package noise

import "github.com/coderbot16/i73go/pkg/world/rng"

// Vec3 is a plain 3-component point; the noise package has no use for
// a general-purpose linear algebra library, so it rolls its own tiny
// value type instead of carrying one in for three fields.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a plain 2-component point, used by the 2D noise sample path.
type Vec2 struct {
	X, Z float64
}

// Permutations is the per-seed shuffled lookup table shared by Perlin
// and Simplex: a random coordinate offset plus a Fisher-Yates shuffle
// of 0..256 drawn from the generator's RNG.
type Permutations struct {
	Offset       Vec3
	permutations [256]uint8
}

// NewPermutations draws a fresh offset and permutation table from rng,
// consuming it in the exact order the reference implementation does:
// three next_f64 calls for the offset, then 256 swaps.
func NewPermutations(r *rng.Java) *Permutations {
	p := &Permutations{
		Offset: Vec3{
			X: r.NextFloat64() * 256.0,
			Y: r.NextFloat64() * 256.0,
			Z: r.NextFloat64() * 256.0,
		},
	}

	for i := range p.permutations {
		p.permutations[i] = uint8(i)
	}

	for i := int32(0); i < 256; i++ {
		j := r.NextInt(256-i) + i
		p.permutations[i], p.permutations[j] = p.permutations[j], p.permutations[i]
	}

	return p
}

func (p *Permutations) hash(i uint16) uint16 {
	return uint16(p.permutations[i&0xFF])
}
