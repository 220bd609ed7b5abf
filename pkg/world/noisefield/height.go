package noisefield

import (
	"github.com/coderbot16/i73go/pkg/world/noise"
	"github.com/coderbot16/i73go/pkg/world/rng"
)

// Height is the terrain center elevation and chaos (variance) at a
// column, derived from climate and a pair of low-frequency Perlin
// fields.
type Height struct {
	Center float64
	Chaos  float64
}

// HeightSettings tunes the biome-influence and depth noise fields.
type HeightSettings struct {
	BiomeInfluenceCoordScale noise.Vec3
	BiomeInfluenceScale      float64
	DepthCoordScale          noise.Vec3
	DepthScale               float64
	DepthBase                float64
}

// DefaultHeightSettings returns the Beta 1.7.3 overworld tuning.
func DefaultHeightSettings() HeightSettings {
	return HeightSettings{
		BiomeInfluenceCoordScale: noise.Vec3{X: 1.121, Y: 0, Z: 1.121},
		BiomeInfluenceScale:      512.0,
		DepthCoordScale:          noise.Vec3{X: 200.0, Y: 0, Z: 200.0},
		DepthScale:               8000.0,
		DepthBase:                8.5,
	}
}

// HeightSource samples Height at a column from two Perlin octave
// fields: how strongly the biome climate perturbs the base height,
// and how deep/shallow the terrain runs there.
type HeightSource struct {
	biomeInfluence      *noise.PerlinOctaves
	depth                *noise.PerlinOctaves
	biomeInfluenceScale float64
	depthScale          float64
	depthBase           float64
}

// NewHeightSource draws the two Perlin octave fields from rng in
// order: 10 biome-influence octaves, then 16 depth octaves. Only 2D
// Sample is ever called on either field, so their y tables are sized
// trivially.
func NewHeightSource(r *rng.Java, settings HeightSettings) *HeightSource {
	return &HeightSource{
		biomeInfluence:      noise.NewPerlinOctaves(r, 10, settings.BiomeInfluenceCoordScale, 0, 1),
		depth:                noise.NewPerlinOctaves(r, 16, settings.DepthCoordScale, 0, 1),
		biomeInfluenceScale: settings.BiomeInfluenceScale,
		depthScale:          settings.DepthScale,
		depthBase:           settings.DepthBase,
	}
}

// Sample computes the terrain Height at point given the climate
// already sampled there.
func (h *HeightSource) Sample(point noise.Vec2, climate Climate) Height {
	scaledNoise := h.biomeInfluence.Sample(point) / h.biomeInfluenceScale

	chaos := clamp01(climate.InfluenceFactor()*(scaledNoise+0.5)) + 0.5

	depth := h.depth.Sample(point) / h.depthScale
	if depth < 0.0 {
		depth *= 0.3
	}

	depth = minF(absF(depth), 1.0)*3.0 - 2.0
	if depth < 0.0 {
		depth /= 1.4
	} else {
		depth /= 2.0
	}

	result := Height{Center: h.depthBase + depth*(h.depthBase/8.0)}
	if depth < 0.0 {
		result.Chaos = 0.5
	} else {
		result.Chaos = chaos
	}
	return result
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
