package noise

import "github.com/coderbot16/i73go/pkg/world/rng"

var gradTable = [16]Vec3{
	{X: 1, Y: 1, Z: 0}, {X: -1, Y: 1, Z: 0}, {X: 1, Y: -1, Z: 0}, {X: -1, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 1}, {X: -1, Y: 0, Z: 1}, {X: 1, Y: 0, Z: -1}, {X: -1, Y: 0, Z: -1},
	{X: 0, Y: 1, Z: 1}, {X: 0, Y: -1, Z: 1}, {X: 0, Y: 1, Z: -1}, {X: 0, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 0}, {X: 0, Y: -1, Z: -1},
}

// grad returns the dot product of vec with a pseudorandomly selected
// gradient vector chosen from the low 4 bits of t.
func grad(t uint16, vec Vec3) float64 {
	g := gradTable[t&0xF]
	return g.X*vec.X + g.Y*vec.Y + g.Z*vec.Z
}

func grad2d(t uint16, x, z float64) float64 {
	return grad(t, Vec3{X: x, Z: z})
}

// Farlands bounds: imitates a combination of floor() and Java float to
// integer rounding, capped at the signed 32-bit integer limits so the
// classic overflow artifacts ("far lands") are preserved.
const (
	farlandsUpper = 2147483647.0
	farlandsLower = -2147483648.0
)

func floorCapped(t float64) float64 {
	f := floor(t)
	if f < farlandsLower {
		return farlandsLower
	}
	if f > farlandsUpper {
		return farlandsUpper
	}
	return f
}

func floor(t float64) float64 {
	i := int64(t)
	if t < 0 && float64(i) != t {
		i--
	}
	return float64(i)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6.0-15.0) + 10.0)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// Perlin is a 2D/3D Perlin noise generator over a fixed permutation
// table, scale and amplitude.
type Perlin struct {
	p         *Permutations
	Scale     Vec3
	Amplitude float64
}

// NewPerlin builds a Perlin generator from an already-drawn
// permutation table.
func NewPerlin(p *Permutations, scale Vec3, amplitude float64) *Perlin {
	return &Perlin{p: p, Scale: scale, Amplitude: amplitude}
}

// NewPerlinFromRNG draws a fresh permutation table from r.
func NewPerlinFromRNG(r *rng.Java, scale Vec3, amplitude float64) *Perlin {
	return NewPerlin(NewPermutations(r), scale, amplitude)
}

func (n *Perlin) hash(i uint16) uint16 { return n.p.hash(i) }

// Generate samples 3D Perlin noise at loc.
func (n *Perlin) Generate(loc Vec3) float64 {
	scaled := Vec3{
		X: loc.X*n.Scale.X + n.p.Offset.X,
		Y: loc.Y*n.Scale.Y + n.p.Offset.Y,
		Z: loc.Z*n.Scale.Z + n.p.Offset.Z,
	}

	floored := Vec3{X: floorCapped(scaled.X), Y: floorCapped(scaled.Y), Z: floorCapped(scaled.Z)}

	// Cell index modulo 256; matches the reference's own float-to-u16
	// cast, which it notes is broken for negative coordinates.
	px := uint16(int64(floored.X)) % 256
	py := uint16(int64(floored.Y)) % 256
	pz := uint16(int64(floored.Z)) % 256

	rel := Vec3{X: scaled.X - floored.X, Y: scaled.Y - floored.Y, Z: scaled.Z - floored.Z}
	faded := Vec3{X: fade(rel.X), Y: fade(rel.Y), Z: fade(rel.Z)}

	a := n.hash(px) + py
	aa := n.hash(a) + pz
	ab := n.hash(a+1) + pz

	b := n.hash(px+1) + py
	ba := n.hash(b) + pz
	bb := n.hash(b+1) + pz

	return lerp(faded.Z,
		lerp(faded.Y,
			lerp(faded.X,
				grad(n.hash(aa), rel),
				grad(n.hash(ba), Vec3{X: rel.X - 1, Y: rel.Y, Z: rel.Z}),
			),
			lerp(faded.X,
				grad(n.hash(ab), Vec3{X: rel.X, Y: rel.Y - 1, Z: rel.Z}),
				grad(n.hash(bb), Vec3{X: rel.X - 1, Y: rel.Y - 1, Z: rel.Z}),
			),
		),
		lerp(faded.Y,
			lerp(faded.X,
				grad(n.hash(aa+1), Vec3{X: rel.X, Y: rel.Y, Z: rel.Z - 1}),
				grad(n.hash(ba+1), Vec3{X: rel.X - 1, Y: rel.Y, Z: rel.Z - 1}),
			),
			lerp(faded.X,
				grad(n.hash(ab+1), Vec3{X: rel.X, Y: rel.Y - 1, Z: rel.Z - 1}),
				grad(n.hash(bb+1), Vec3{X: rel.X - 1, Y: rel.Y - 1, Z: rel.Z - 1}),
			),
		),
	) * n.Amplitude
}

// GenerateOverride samples 3D Perlin noise at loc, but substitutes
// actualY for the fractional Y component after the fade weights are
// computed from the real one. Used when a precomputed y table
// (GenerateYTable) has already resolved the vertical component for a
// column of samples sharing the same X/Z cell.
func (n *Perlin) GenerateOverride(loc Vec3, actualY float64) float64 {
	scaled := Vec3{
		X: loc.X*n.Scale.X + n.p.Offset.X,
		Y: loc.Y*n.Scale.Y + n.p.Offset.Y,
		Z: loc.Z*n.Scale.Z + n.p.Offset.Z,
	}

	floored := Vec3{X: floorCapped(scaled.X), Y: floorCapped(scaled.Y), Z: floorCapped(scaled.Z)}

	px := uint16(int64(floored.X)) % 256 & 255
	py := uint16(int64(floored.Y)) % 256 & 255
	pz := uint16(int64(floored.Z)) % 256 & 255

	rel := Vec3{X: scaled.X - floored.X, Y: scaled.Y - floored.Y, Z: scaled.Z - floored.Z}
	faded := Vec3{X: fade(rel.X), Y: fade(rel.Y), Z: fade(rel.Z)}
	rel.Y = actualY

	a := n.hash(px) + py
	aa := n.hash(a) + pz
	ab := n.hash(a+1) + pz

	b := n.hash(px+1) + py
	ba := n.hash(b) + pz
	bb := n.hash(b+1) + pz

	return lerp(faded.Z,
		lerp(faded.Y,
			lerp(faded.X,
				grad(n.hash(aa), rel),
				grad(n.hash(ba), Vec3{X: rel.X - 1, Y: rel.Y, Z: rel.Z}),
			),
			lerp(faded.X,
				grad(n.hash(ab), Vec3{X: rel.X, Y: rel.Y - 1, Z: rel.Z}),
				grad(n.hash(bb), Vec3{X: rel.X - 1, Y: rel.Y - 1, Z: rel.Z}),
			),
		),
		lerp(faded.Y,
			lerp(faded.X,
				grad(n.hash(aa+1), Vec3{X: rel.X, Y: rel.Y, Z: rel.Z - 1}),
				grad(n.hash(ba+1), Vec3{X: rel.X - 1, Y: rel.Y, Z: rel.Z - 1}),
			),
			lerp(faded.X,
				grad(n.hash(ab+1), Vec3{X: rel.X, Y: rel.Y - 1, Z: rel.Z - 1}),
				grad(n.hash(bb+1), Vec3{X: rel.X - 1, Y: rel.Y - 1, Z: rel.Z - 1}),
			),
		),
	) * n.Amplitude
}

// GenerateYTable precomputes the fractional-Y component for `start +
// offset` for every entry of table, reusing the previous entry's value
// whenever the integer cell index hasn't changed. PerlinOctaves uses
// this to avoid recomputing the vertical component once per X/Z
// column slice.
func (n *Perlin) GenerateYTable(start float64, table []float64) {
	actualY := 0.0
	lastP := uint16(65535)

	for offset := range table {
		y := (start+float64(offset))*n.Scale.Y + n.p.Offset.Y
		floored := floorCapped(y)
		p := uint16(int64(floored)) % 256
		rel := y - floored

		if p != lastP {
			actualY = rel
		}
		lastP = p

		table[offset] = actualY
	}
}

// Sample evaluates 2D Perlin noise, used directly by SimplexOctaves'
// sibling PerlinOctaves combinator.
func (n *Perlin) Sample(point Vec2) float64 {
	loc := Vec2{X: point.X*n.Scale.X + n.p.Offset.X, Z: point.Z*n.Scale.Z + n.p.Offset.Z}

	floored := Vec2{X: floorCapped(loc.X), Z: floorCapped(loc.Z)}
	px := uint16(int64(floored.X)) % 256 & 255
	pz := uint16(int64(floored.Z)) % 256 & 255

	rel := Vec2{X: loc.X - floored.X, Z: loc.Z - floored.Z}
	faded := Vec2{X: fade(rel.X), Z: fade(rel.Z)}

	aa := n.hash(n.hash(px)) + pz
	ba := n.hash(n.hash(px+1)) + pz

	return lerp(faded.Z,
		lerp(faded.X,
			grad2d(n.hash(aa), rel.X, rel.Z),
			grad2d(n.hash(ba), rel.X-1, rel.Z),
		),
		lerp(faded.X,
			grad2d(n.hash(aa+1), rel.X, rel.Z-1),
			grad2d(n.hash(ba+1), rel.X-1, rel.Z-1),
		),
	) * n.Amplitude
}
