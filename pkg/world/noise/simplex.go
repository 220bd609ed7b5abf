package noise

import (
	"math"

	"github.com/coderbot16/i73go/pkg/world/rng"
)

var simplexGradTable = [12]Vec2{
	{X: 1, Z: 1}, {X: -1, Z: 1}, {X: 1, Z: -1}, {X: -1, Z: -1},
	{X: 1, Z: 0}, {X: -1, Z: 0}, {X: 1, Z: 0}, {X: -1, Z: 0},
	{X: 0, Z: 1}, {X: 0, Z: -1}, {X: 0, Z: 1}, {X: 0, Z: -1},
}

func simplexGrad(hash uint16, x, z float64) float64 {
	g := simplexGradTable[hash%12]
	return g.X*x + g.Z*z
}

const (
	sqrtThree = 1.7320508075688772935
	simplexF2 = 0.5 * (sqrtThree - 1.0)
	simplexG2 = (3.0 - sqrtThree) / 6.0
)

// Simplex implements 2D-only simplex noise; a 3D variant would
// infringe the original patent the reference implementation avoids.
type Simplex struct {
	p         *Permutations
	Scale     Vec2
	Amplitude float64
}

// NewSimplex builds a generator from an already-drawn permutation table.
func NewSimplex(p *Permutations, scale Vec2, amplitude float64) *Simplex {
	return &Simplex{p: p, Scale: scale, Amplitude: amplitude}
}

// NewSimplexFromRNG draws a fresh permutation table from r.
func NewSimplexFromRNG(r *rng.Java, scale Vec2, amplitude float64) *Simplex {
	return NewSimplex(NewPermutations(r), scale, amplitude)
}

func (n *Simplex) hash(i uint16) uint16 { return n.p.hash(i) }

// Sample evaluates 2D simplex noise at point.
func (n *Simplex) Sample(point Vec2) float64 {
	x := point.X*n.Scale.X + n.p.Offset.X
	z := point.Z*n.Scale.Z + n.p.Offset.Z

	s := (x + z) * simplexF2
	fx := math.Floor(x + s)
	fz := math.Floor(z + s)
	t := (fx + fz) * simplexG2

	x0 := x - (fx - t)
	z0 := z - (fz - t)

	var biasX, biasZ float64
	if x0 > z0 {
		biasX = 1
	} else {
		biasZ = 1
	}

	x1 := x0 - biasX + simplexG2
	z1 := z0 - biasZ + simplexG2
	x2 := x0 - 1.0 + simplexG2*2.0
	z2 := z0 - 1.0 + simplexG2*2.0

	// Cell index modulo 255; matches the reference's own broken
	// negative-coordinate handling, kept intentionally.
	xi := uint16(int64(fx)) % 256 % 255
	zi := uint16(int64(fz)) % 256 % 255

	t0 := math.Max(0.5-x0*x0-z0*z0, 0.0)
	n0 := math.Pow(t0, 4) * simplexGrad(n.hash(xi+n.hash(zi)), x0, z0)

	t1 := math.Max(0.5-x1*x1-z1*z1, 0.0)
	n1 := math.Pow(t1, 4) * simplexGrad(n.hash(xi+uint16(biasX)+n.hash(zi+uint16(biasZ))), x1, z1)

	t2 := math.Max(0.5-x2*x2-z2*z2, 0.0)
	n2 := math.Pow(t2, 4) * simplexGrad(n.hash(xi+1+n.hash(zi+1)), x2, z2)

	return (70.0 * n.Amplitude) * (n0 + n1 + n2)
}
