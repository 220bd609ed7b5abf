package rng

// OddCoefficient draws a random odd i64 from r, the way the reference
// derives the multipliers used to reseed a per-chunk RNG
// from chunk coordinates: draw a long, then force the low bit on.
func OddCoefficient(r *Java) int64 {
	v := r.NextLong()
	return (v>>1)<<1 | 1
}

// MixChunkSeed combines a world seed with chunk coordinates and a pair
// of odd coefficients (drawn once per world seed via OddCoefficient) into
// the seed for that chunk's RNG. Both the cave carver and the
// decoration quad grid reseed this way.
func MixChunkSeed(worldSeed int64, cx, cz int32, oddA, oddB int64) int64 {
	return (int64(cx)*oddA + int64(cz)*oddB) ^ worldSeed
}
