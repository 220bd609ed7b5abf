// Package noisefield composes the noise primitives in pkg/world/noise
// into the climate, height and density fields the terrain shape pass
// samples from.
package noisefield

import (
	"github.com/coderbot16/i73go/pkg/world/noise"
	"github.com/coderbot16/i73go/pkg/world/rng"
)

// ClimateSettings tunes the temperature/rainfall/mixin blend.
type ClimateSettings struct {
	TemperatureFq    float64
	RainfallFq       float64
	MixinFq          float64
	TemperatureMixin float64
	RainfallMixin    float64
	TemperatureMean  float64
	TemperatureCoeff float64
	RainfallMean     float64
	RainfallCoeff    float64
	MixinMean        float64
	MixinCoeff       float64
}

// DefaultClimateSettings returns the Beta 1.7.3 overworld tuning.
func DefaultClimateSettings() ClimateSettings {
	return ClimateSettings{
		TemperatureFq:    0.25,
		RainfallFq:       1.0 / 3.0,
		MixinFq:          1.0 / 1.7,
		TemperatureMixin: 0.010,
		RainfallMixin:    0.002,
		TemperatureMean:  0.7,
		TemperatureCoeff: 0.15,
		RainfallMean:     0.5,
		RainfallCoeff:    0.15,
		MixinMean:        0.5,
		MixinCoeff:       1.1,
	}
}

const (
	tempCoeff  int64 = 9871
	rainCoeff  int64 = 39811
	mixinCoeff int64 = 543321
)

// ClimateSource derives temperature/rainfall fields from three
// independently seeded SimplexOctaves layers.
type ClimateSource struct {
	temperature *noise.SimplexOctaves
	rainfall    *noise.SimplexOctaves
	mixin       *noise.SimplexOctaves
	settings    ClimateSettings
	tempKeep    float64
	rainKeep    float64
}

// NewClimateSource derives the three sub-seeds from seed the way the
// reference does: plain (wrapping) int64 multiplication by a distinct
// coefficient per layer, each then scrambled fresh by NewJava.
func NewClimateSource(seed int64, settings ClimateSettings) *ClimateSource {
	const scale = 16.0 // 1 << 4

	return &ClimateSource{
		temperature: noise.NewSimplexOctaves(rng.NewJava(seed*tempCoeff), 4, settings.TemperatureFq, 0.5, noise.Vec2{X: 0.4 / scale, Z: 0.4 / scale}),
		rainfall:    noise.NewSimplexOctaves(rng.NewJava(seed*rainCoeff), 4, settings.RainfallFq, 0.5, noise.Vec2{X: 0.8 / scale, Z: 0.8 / scale}),
		mixin:       noise.NewSimplexOctaves(rng.NewJava(seed*mixinCoeff), 2, settings.MixinFq, 0.5, noise.Vec2{X: 4.0 / scale, Z: 4.0 / scale}),
		settings:    settings,
		tempKeep:    1.0 - settings.TemperatureMixin,
		rainKeep:    1.0 - settings.RainfallMixin,
	}
}

// Sample evaluates the blended climate at point.
func (c *ClimateSource) Sample(point noise.Vec2) Climate {
	mixin := c.mixin.Sample(point)*c.settings.MixinCoeff + c.settings.MixinMean

	temp := (c.temperature.Sample(point)*c.settings.TemperatureCoeff+c.settings.TemperatureMean)*c.tempKeep + mixin*c.settings.TemperatureMixin
	rain := (c.rainfall.Sample(point)*c.settings.RainfallCoeff+c.settings.RainfallMean)*c.rainKeep + mixin*c.settings.RainfallMixin

	temp = 1.0 - (1.0-temp)*(1.0-temp)

	return NewClimate(temp, rain)
}

// Climate is a clamped temperature/rainfall pair driving biome lookup
// and terrain shaping.
type Climate struct {
	temperature float64
	rainfall    float64
}

// AlphaClimate reproduces Minecraft Alpha's uniform hot/wet terrain
// (no biome system).
func AlphaClimate() Climate {
	return Climate{temperature: 1.0, rainfall: 1.0}
}

// NewClimate clamps both components to [0, 1].
func NewClimate(temperature, rainfall float64) Climate {
	return Climate{
		temperature: clamp01(temperature),
		rainfall:    clamp01(rainfall),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (c Climate) Temperature() float64 { return c.temperature }
func (c Climate) Rainfall() float64    { return c.rainfall }

// Freezing reports whether ice/snow should form at this climate.
func (c Climate) Freezing() bool { return c.temperature < 0.5 }

// AdjustedRainfall scales rainfall down in cold climates: it is
// temperature times rainfall.
func (c Climate) AdjustedRainfall() float64 { return c.temperature * c.rainfall }

// InfluenceFactor is 0..1; 1.0 means no biome signals rainforest-like
// terrain (the baseline used by generators without biomes).
func (c Climate) InfluenceFactor() float64 {
	keep := 1.0 - c.AdjustedRainfall()
	return 1.0 - keep*keep*keep*keep
}
