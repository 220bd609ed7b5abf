package biome

import "github.com/coderbot16/i73go/pkg/world/noisefield"

// Grid maps (rainfall, temperature) rectangles to biomes via two
// nested Segmented axes: rainfall selects a temperature Segmented,
// which in turn selects the Biome.
type Grid struct {
	rainfall *Segmented[*Segmented[Biome]]
}

func newTemperatures(b Biome) *Segmented[Biome] {
	temps := NewSegmented(b.Clone())
	temps.AddBoundary(1.0, b.Clone())
	return temps
}

// NewGrid returns a grid where every climate maps to def until
// overridden by Add.
func NewGrid(def Biome) *Grid {
	temps := newTemperatures(def)

	rainfall := NewSegmented(temps)
	rainfall.AddBoundary(1.0, temps)

	return &Grid{rainfall: rainfall}
}

// Add assigns biome to every climate within the temperature x rainfall
// rectangle, splitting existing segments at the rectangle's edges as
// needed.
func (g *Grid) Add(temperature, rainfall [2]float64, biome Biome) {
	above := func() *Segmented[Biome] { return newTemperatures(biome.Clone()) }
	clone := func(t *Segmented[Biome]) *Segmented[Biome] {
		cloned := *t
		segs := make([]Segment[Biome], len(t.segments))
		for i, s := range t.segments {
			segs[i] = Segment[Biome]{Upper: s.Upper, Value: s.Value.Clone()}
		}
		cloned.segments = segs
		return &cloned
	}

	g.rainfall.ForAllAligned(rainfall[0], rainfall[1], above, clone, func(temps **Segmented[Biome]) {
		(*temps).ForAllAligned(temperature[0], temperature[1],
			func() Biome { return biome.Clone() },
			func(b Biome) Biome { return b.Clone() },
			func(existing *Biome) { *existing = biome.Clone() },
		)
	})
}

// Lookup resolves the biome at a sampled climate.
func (g *Grid) Lookup(climate noisefield.Climate) Biome {
	temps := g.rainfall.Get(climate.AdjustedRainfall())
	return temps.Get(climate.Temperature())
}
