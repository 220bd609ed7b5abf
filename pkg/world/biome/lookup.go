package biome

import "github.com/coderbot16/i73go/pkg/world/noisefield"

// lookupSize is the resolution of the precomputed climate lookup: 64
// steps per axis, matching the reference's temperature/63, rainfall/63
// quantization.
const lookupSize = 64

// Lookup is a precomputed 64x64 table resolving a quantized climate
// directly to a Biome, avoiding a Grid traversal per column during
// generation.
type Lookup struct {
	biomes [lookupSize * lookupSize]Biome
}

// Filled returns a lookup where every cell is biome.
func Filled(biome Biome) *Lookup {
	var l Lookup
	for i := range l.biomes {
		l.biomes[i] = biome.Clone()
	}
	return &l
}

// GenerateLookup quantizes every (temperature, rainfall) cell of grid
// into a dense table.
func GenerateLookup(grid *Grid) *Lookup {
	var l Lookup

	for temp := 0; temp < lookupSize; temp++ {
		for rain := 0; rain < lookupSize; rain++ {
			climate := noisefield.NewClimate(float64(temp)/63.0, float64(rain)/63.0)
			l.biomes[temp*lookupSize+rain] = grid.Lookup(climate).Clone()
		}
	}

	return &l
}

// All returns every biome cell of the table, for callers that need to
// enumerate the full set of distinct biomes a lookup can produce (the
// paint pass ensures every biome's blocks are palette-available before
// freezing).
func (l *Lookup) All() []Biome { return l.biomes[:] }

func (l *Lookup) lookupRaw(temperature, rainfall int) Biome {
	return l.biomes[temperature*lookupSize+rainfall]
}

// Lookup resolves climate to a biome via direct index, quantizing both
// axes to [0, 63].
func (l *Lookup) Lookup(climate noisefield.Climate) Biome {
	temp := int(climate.Temperature() * 63.0)
	rain := int(climate.Rainfall() * 63.0)
	return l.lookupRaw(temp, rain)
}
