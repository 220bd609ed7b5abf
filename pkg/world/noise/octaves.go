package noise

import "github.com/coderbot16/i73go/pkg/world/rng"

// SimplexOctaves sums several Simplex layers ("octaves"), each with its
// own coordinate scale and amplitude, into a single fractal sample.
type SimplexOctaves struct {
	octaves []*Simplex
}

// NewSimplexOctaves draws `octaves` independent Simplex layers from r.
// The base scale is divided by 1.5; each layer's coordinate scale is fq
// times the previous one's, and layer i's amplitude is 0.55 divided by
// persistence^i.
func NewSimplexOctaves(r *rng.Java, octaves int, fq, persistence float64, scale Vec2) *SimplexOctaves {
	scale = Vec2{X: scale.X / 1.5, Z: scale.Z / 1.5}

	frequency := 1.0
	amplitude := 1.0

	layers := make([]*Simplex, 0, octaves)
	for i := 0; i < octaves; i++ {
		layers = append(layers, NewSimplexFromRNG(
			r,
			Vec2{X: scale.X * frequency, Z: scale.Z * frequency},
			0.55/amplitude,
		))

		frequency *= fq
		amplitude *= persistence
	}

	return &SimplexOctaves{octaves: layers}
}

// Sample sums every octave's contribution at point.
func (s *SimplexOctaves) Sample(point Vec2) float64 {
	result := 0.0
	for _, octave := range s.octaves {
		result += octave.Sample(point)
	}
	return result
}

// perlinOctave pairs a Perlin layer with its precomputed Y table, the
// vertical-component cache GenerateYTable fills in.
type perlinOctave struct {
	perlin *Perlin
	yTable []float64
}

// PerlinOctaves sums several Perlin layers whose frequency halves each
// octave, precomputing each layer's Y-table once up front so
// GenerateOverride calls across a vertical column can reuse it.
type PerlinOctaves struct {
	octaves []perlinOctave
}

// NewPerlinOctaves draws `octaves` independent Perlin layers from r,
// each one's y table spanning `count` entries starting at `start`.
func NewPerlinOctaves(r *rng.Java, octaves int, scale Vec3, start float64, count int) *PerlinOctaves {
	frequency := 1.0

	layers := make([]perlinOctave, 0, octaves)
	for i := 0; i < octaves; i++ {
		perlin := NewPerlinFromRNG(r, Vec3{X: scale.X * frequency, Y: scale.Y * frequency, Z: scale.Z * frequency}, 1.0/frequency)

		table := make([]float64, count)
		perlin.GenerateYTable(start, table)

		layers = append(layers, perlinOctave{perlin: perlin, yTable: table})

		frequency /= 2.0
	}

	return &PerlinOctaves{octaves: layers}
}

// GenerateOverride sums every octave's GenerateOverride contribution
// at point, using each octave's precomputed y-table entry at index.
func (p *PerlinOctaves) GenerateOverride(point Vec3, index int) float64 {
	result := 0.0
	for _, octave := range p.octaves {
		result += octave.perlin.GenerateOverride(point, octave.yTable[index])
	}
	return result
}

// Sample sums every octave's 2D contribution at point.
func (p *PerlinOctaves) Sample(point Vec2) float64 {
	result := 0.0
	for _, octave := range p.octaves {
		result += octave.perlin.Sample(point)
	}
	return result
}

// Generate sums every octave's full 3D contribution at point, with no
// y-table override — used where an octave stack samples a genuinely
// 3D field rather than a dense vertical slice (the paint pass's
// horizontal gravel noise).
func (p *PerlinOctaves) Generate(point Vec3) float64 {
	result := 0.0
	for _, octave := range p.octaves {
		result += octave.perlin.Generate(point)
	}
	return result
}

// VerticalRef recomputes every octave's y table over count entries
// starting at start, independent of the table baked in at
// construction. The paint pass uses this each chunk to slide the
// sand/thickness noise's table along the chunk's absolute Z run,
// something a table fixed at construction time can't do.
func (p *PerlinOctaves) VerticalRef(start float64, count int) *PerlinOctaves {
	layers := make([]perlinOctave, len(p.octaves))
	for i, o := range p.octaves {
		table := make([]float64, count)
		o.perlin.GenerateYTable(start, table)
		layers[i] = perlinOctave{perlin: o.perlin, yTable: table}
	}
	return &PerlinOctaves{octaves: layers}
}
