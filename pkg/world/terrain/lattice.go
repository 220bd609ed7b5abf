// Package terrain implements the shape and paint passes: turning the
// seeded noise fields into solid/ocean/ice/air voxels, then dressing
// the exposed surface with each biome's top/fill/chain blocks.
package terrain

import (
	"github.com/coderbot16/i73go/pkg/world/noise"
	"github.com/coderbot16/i73go/pkg/world/noisefield"
	"github.com/coderbot16/i73go/pkg/world/rng"
)

// worldHeight is the classic Beta-era build limit the 5x17x5 density
// lattice covers (17 rows at step 8 = 0..136, trilinearly interpolated
// down to 128 real Y levels). Levels above it are left air: the voxel
// package's Column carries a modern 256-tall stack, so the shape pass
// simply never writes anything above the legacy ceiling.
const worldHeight = 128

// Sources bundles every seeded noise field a region's columns sample
// from: tri-noise density, height, climate for the shape pass, and the
// sand/gravel/thickness octaves the paint pass reads per column. All
// but climate and the sand fork share one JavaRng stream, in the exact
// draw order the reference's Settings::passes constructs them in —
// tri, then sand (itself a fresh fork reseeded from the shared
// stream's current state), then gravel, thickness and height
// continuing the shared stream, with climate independently reseeded
// from the world seed.
type Sources struct {
	Tri     *noisefield.TriNoiseSource
	Field   noisefield.FieldSettings
	Height  *noisefield.HeightSource
	Climate *noisefield.ClimateSource

	Sand      *noise.PerlinOctaves
	Gravel    *noise.PerlinOctaves
	Thickness *noise.PerlinOctaves
}

// NewSources draws every field from seed in the reference's order.
func NewSources(seed int64, tri noisefield.TriNoiseSettings, field noisefield.FieldSettings, height noisefield.HeightSettings, climate noisefield.ClimateSettings) *Sources {
	shared := rng.NewJava(seed)

	triSource := noisefield.NewTriNoiseSource(shared, tri)

	sandRNG := rng.NewJava(shared.Seed())
	sand := noise.NewPerlinOctaves(sandRNG, 4, noise.Vec3{X: 1.0 / 32.0, Y: 1.0 / 32.0, Z: 1.0}, 0, 1)
	gravel := noise.NewPerlinOctaves(shared, 4, noise.Vec3{X: 1.0 / 32.0, Y: 1.0, Z: 1.0 / 32.0}, 0, 1)
	thickness := noise.NewPerlinOctaves(shared, 4, noise.Vec3{X: 1.0 / 16.0, Y: 1.0 / 16.0, Z: 1.0 / 16.0}, 0, 1)

	heightSource := noisefield.NewHeightSource(shared, height)
	climateSource := noisefield.NewClimateSource(seed, climate)

	return &Sources{
		Tri:       triSource,
		Field:     field,
		Height:    heightSource,
		Climate:   climateSource,
		Sand:      sand,
		Gravel:    gravel,
		Thickness: thickness,
	}
}

// Lattice is the 5x17x5 density field sampled once per column, ready
// for the shape pass to trilinearly interpolate into 16x16x128 writes.
type Lattice struct {
	values [noisefield.HNoiseSize][noisefield.YNoiseSize][noisefield.HNoiseSize]float64
}

// Fill samples density across the lattice for the column at (cx, cz)
// in chunk coordinates (block coordinates cx*16, cz*16).
func (s *Sources) Fill(cx, cz int32) *Lattice {
	var l Lattice

	blockX := float64(cx) * 16.0
	blockZ := float64(cz) * 16.0

	for x := 0; x < noisefield.HNoiseSize; x++ {
		sampleX := blockX + float64(3*x+1)

		for z := 0; z < noisefield.HNoiseSize; z++ {
			sampleZ := blockZ + float64(3*z+1)

			climate := s.Climate.Sample(noise.Vec2{X: sampleX, Z: sampleZ})
			height := s.Height.Sample(noise.Vec2{X: sampleX, Z: sampleZ}, climate)

			for y := 0; y < noisefield.YNoiseSize; y++ {
				tri := s.Tri.Sample(noise.Vec3{X: sampleX, Y: float64(y), Z: sampleZ}, y)
				value := s.Field.ComputeNoiseValue(float64(y), height, tri)
				l.values[x][y][z] = reduceUpper(value, y, s.Field.TaperThreshold, 10.0, noisefield.YNoiseSize)
			}
		}
	}

	return &l
}

// reduceUpper tapers density toward the world ceiling: above
// y_size-taper rows, the value is blended toward -floorOut.
func reduceUpper(value float64, y int, taper, floorOut float64, ySize int) float64 {
	threshold := float64(ySize) - taper
	if float64(y) <= threshold {
		return value
	}

	factor := (float64(y) - threshold) / (taper - 1.0)
	return value*(1.0-factor) - floorOut*factor
}

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

// sample trilinearly interpolates the density at block-local (x, y, z)
// with x,z in [0,16) and y in [0, worldHeight), using lattice steps of
// (4, 8, 4).
func (l *Lattice) sample(x, y, z int) float64 {
	ix, fx := x/4, float64(x%4)/4.0
	iz, fz := z/4, float64(z%4)/4.0
	iy, fy := y/8, float64(y%8)/8.0

	x000 := l.values[ix][iy][iz]
	x100 := l.values[ix+1][iy][iz]
	x010 := l.values[ix][iy+1][iz]
	x110 := l.values[ix+1][iy+1][iz]
	x001 := l.values[ix][iy][iz+1]
	x101 := l.values[ix+1][iy][iz+1]
	x011 := l.values[ix][iy+1][iz+1]
	x111 := l.values[ix+1][iy+1][iz+1]

	xy00 := lerp(fx, x000, x100)
	xy10 := lerp(fx, x010, x110)
	xy01 := lerp(fx, x001, x101)
	xy11 := lerp(fx, x011, x111)

	y0 := lerp(fy, xy00, xy10)
	y1 := lerp(fy, xy01, xy11)

	return lerp(fz, y0, y1)
}
