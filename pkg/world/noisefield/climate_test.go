package noisefield

import (
	"testing"

	"github.com/coderbot16/i73go/pkg/world/noise"
)

func TestClimateSourceSampleIsClamped(t *testing.T) {
	c := NewClimateSource(12345, DefaultClimateSettings())

	for x := -200.0; x <= 200.0; x += 37 {
		for z := -200.0; z <= 200.0; z += 41 {
			climate := c.Sample(noise.Vec2{X: x, Z: z})
			if climate.Temperature() < 0 || climate.Temperature() > 1 {
				t.Fatalf("temperature %v out of [0,1] at (%v,%v)", climate.Temperature(), x, z)
			}
			if climate.Rainfall() < 0 || climate.Rainfall() > 1 {
				t.Fatalf("rainfall %v out of [0,1] at (%v,%v)", climate.Rainfall(), x, z)
			}
		}
	}
}

func TestClimateSourceIsDeterministic(t *testing.T) {
	a := NewClimateSource(7, DefaultClimateSettings())
	b := NewClimateSource(7, DefaultClimateSettings())

	p := noise.Vec2{X: 33, Z: -17}
	ca, cb := a.Sample(p), b.Sample(p)
	if ca != cb {
		t.Fatalf("same seed produced different climates: %v vs %v", ca, cb)
	}
}

func TestClimateFreezingThreshold(t *testing.T) {
	cold := NewClimate(0.2, 0.5)
	if !cold.Freezing() {
		t.Fatalf("temperature 0.2 should be freezing")
	}

	warm := NewClimate(0.8, 0.5)
	if warm.Freezing() {
		t.Fatalf("temperature 0.8 should not be freezing")
	}
}

func TestClimateAlphaIsFixed(t *testing.T) {
	a := AlphaClimate()
	if a.Temperature() != 1.0 || a.Rainfall() != 1.0 {
		t.Fatalf("AlphaClimate() = %+v, want temperature=1 rainfall=1", a)
	}
}

func TestClimateInfluenceFactorBounds(t *testing.T) {
	for _, rain := range []float64{0.0, 0.25, 0.5, 1.0} {
		c := NewClimate(1.0, rain)
		f := c.InfluenceFactor()
		if f < 0 || f > 1 {
			t.Fatalf("InfluenceFactor() = %v out of [0,1] at rainfall=%v", f, rain)
		}
	}
}

func TestClimateNewClampsOutOfRangeInputs(t *testing.T) {
	c := NewClimate(-5, 5)
	if c.Temperature() != 0 || c.Rainfall() != 1 {
		t.Fatalf("NewClimate did not clamp: %+v", c)
	}
}
