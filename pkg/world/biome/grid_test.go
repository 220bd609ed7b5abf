package biome

import (
	"testing"

	"github.com/coderbot16/i73go/pkg/world/noisefield"
)

func TestGridDefaultFallsBackToDefaultBiome(t *testing.T) {
	def := Biome{Surface: Surface{Top: 1, Fill: 2}, ID: 'd', Name: "Default"}
	grid := NewGrid(def)

	got := grid.Lookup(noisefield.NewClimate(0.99, 0.99))
	if got.ID != 'd' {
		t.Fatalf("Lookup on a fresh grid = %q, want default %q", got.ID, def.ID)
	}
}

func TestGridAddOverridesRectangle(t *testing.T) {
	def := Biome{ID: 'd'}
	grid := NewGrid(def)

	hot := Biome{ID: 'h', Name: "Hot"}
	grid.Add([2]float64{0.8, 1.0}, [2]float64{0.0, 1.0}, hot)

	inside := grid.Lookup(noisefield.NewClimate(0.9, 0.5))
	if inside.ID != 'h' {
		t.Fatalf("Lookup inside the added rectangle = %q, want %q", inside.ID, hot.ID)
	}

	outside := grid.Lookup(noisefield.NewClimate(0.1, 0.5))
	if outside.ID != 'd' {
		t.Fatalf("Lookup outside the added rectangle = %q, want default %q", outside.ID, def.ID)
	}
}

func TestGridAddIsIndependentPerInstance(t *testing.T) {
	a := NewGrid(Biome{ID: 'a'})
	b := NewGrid(Biome{ID: 'a'})

	a.Add([2]float64{0.0, 1.0}, [2]float64{0.0, 1.0}, Biome{ID: 'z'})

	if got := b.Lookup(noisefield.NewClimate(0.5, 0.5)); got.ID != 'a' {
		t.Fatalf("mutating grid a leaked into grid b: got %q", got.ID)
	}
}
