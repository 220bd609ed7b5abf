package noisefield

import (
	"github.com/coderbot16/i73go/pkg/world/noise"
	"github.com/coderbot16/i73go/pkg/world/rng"
)

// HNoiseSize is the horizontal width, in lerp cells, of the 5x5 density
// sample grid used per chunk.
const HNoiseSize = 5

// YNoiseSize is the vertical height, in lerp cells, of the density grid.
const YNoiseSize = 17

// TriNoiseSettings tunes the lower/upper/main density octave fields.
type TriNoiseSettings struct {
	MainOutScale  float64
	UpperOutScale float64
	LowerOutScale float64
	LowerScale    noise.Vec3
	UpperScale    noise.Vec3
	MainScale     noise.Vec3
}

// DefaultTriNoiseSettings returns the Beta 1.7.3 overworld tuning.
func DefaultTriNoiseSettings() TriNoiseSettings {
	return TriNoiseSettings{
		MainOutScale:  20.0,
		UpperOutScale: 512.0,
		LowerOutScale: 512.0,
		LowerScale:    noise.Vec3{X: 684.412, Y: 684.412, Z: 684.412},
		UpperScale:    noise.Vec3{X: 684.412, Y: 684.412, Z: 684.412},
		MainScale:     noise.Vec3{X: 684.412 / 80.0, Y: 684.412 / 160.0, Z: 684.412 / 80.0},
	}
}

// TriNoiseSource blends three vertical Perlin octave fields (lower
// bound, upper bound, and a main selector) into a single density
// value per lattice point.
type TriNoiseSource struct {
	lower *noise.PerlinOctaves
	upper *noise.PerlinOctaves
	main  *noise.PerlinOctaves

	mainOutScale  float64
	upperOutScale float64
	lowerOutScale float64
}

// NewTriNoiseSource draws lower (16 octaves), upper (16 octaves), then
// main (8 octaves) from rng, in that order, each spanning YNoiseSize
// vertical samples starting at y=0.
func NewTriNoiseSource(r *rng.Java, settings TriNoiseSettings) *TriNoiseSource {
	return &TriNoiseSource{
		lower: noise.NewPerlinOctaves(r, 16, settings.LowerScale, 0, YNoiseSize),
		upper: noise.NewPerlinOctaves(r, 16, settings.UpperScale, 0, YNoiseSize),
		main:  noise.NewPerlinOctaves(r, 8, settings.MainScale, 0, YNoiseSize),

		mainOutScale:  settings.MainOutScale,
		upperOutScale: settings.UpperOutScale,
		lowerOutScale: settings.LowerOutScale,
	}
}

// Sample blends lower/upper/main at point, where index selects the
// vertical slice's precomputed y-table entry.
func (t *TriNoiseSource) Sample(point noise.Vec3, index int) float64 {
	lower := t.lower.GenerateOverride(point, index) / t.lowerOutScale
	upper := t.upper.GenerateOverride(point, index) / t.upperOutScale
	main := t.main.GenerateOverride(point, index)/t.mainOutScale + 0.5

	return lerp(clamp01(main), lower, upper)
}

func lerp(frac, a, b float64) float64 { return a + frac*(b-a) }

// FieldSettings turns a tri-noise density sample plus the column's
// Height into a final shaping value, applying vertical seabed/ground
// stretch and a taper near the world ceiling.
type FieldSettings struct {
	SeabedStretch  float64
	GroundStretch  float64
	TaperThreshold float64
	HeightStretch  float64
}

// DefaultFieldSettings returns the Beta 1.7.3 overworld tuning.
func DefaultFieldSettings() FieldSettings {
	return FieldSettings{
		SeabedStretch:  4.0,
		GroundStretch:  1.0,
		TaperThreshold: 13.0,
		HeightStretch:  12.0,
	}
}

// ComputeNoiseValue folds y, height and the raw tri-noise sample into
// the final density value the shape pass thresholds against zero.
func (s FieldSettings) ComputeNoiseValue(y float64, height Height, triNoise float64) float64 {
	reductionFactor := (maxF(y, s.TaperThreshold) - s.TaperThreshold) / 3.0

	distance := y - height.Center
	if distance < 0.0 {
		distance *= s.SeabedStretch
	} else {
		distance *= s.GroundStretch
	}

	reduction := distance * s.HeightStretch / height.Chaos
	value := triNoise - reduction

	return value*(1.0-reductionFactor) - 10.0*reductionFactor
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
