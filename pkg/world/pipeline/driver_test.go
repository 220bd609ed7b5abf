package pipeline

import (
	"testing"

	"github.com/coderbot16/i73go/pkg/world/config"
	"github.com/coderbot16/i73go/pkg/world/terrain"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// goldenSeed is the seed used by spec §8's concrete end-to-end
// scenarios.
const goldenSeed = 8399452073110208023

func TestGenerateRegionProducesAFullGrid(t *testing.T) {
	settings := config.DefaultSettings(12345)
	driver := NewDriver(settings)

	snapshots := driver.GenerateRegion(0, 0)

	want := voxel.RegionSize * voxel.RegionSize
	if len(snapshots) != want {
		t.Fatalf("GenerateRegion returned %d columns, want %d", len(snapshots), want)
	}

	seen := make(map[[2]int32]bool, want)
	for _, snap := range snapshots {
		if !snap.TerrainPopulated || !snap.LightPopulated {
			t.Fatalf("column (%d,%d) missing population flags", snap.X, snap.Z)
		}
		seen[[2]int32{snap.X, snap.Z}] = true

		for _, chunk := range snap.Chunks {
			if chunk.Blocks == nil {
				t.Fatalf("column (%d,%d) has a nil chunk", snap.X, snap.Z)
			}
		}
	}

	if len(seen) != want {
		t.Fatalf("GenerateRegion produced %d distinct columns, want %d", len(seen), want)
	}
}

func TestGenerateRegionIsDeterministic(t *testing.T) {
	settingsA := config.DefaultSettings(777)
	settingsB := config.DefaultSettings(777)

	snapsA := NewDriver(settingsA).GenerateRegion(0, 0)
	snapsB := NewDriver(settingsB).GenerateRegion(0, 0)

	if len(snapsA) != len(snapsB) {
		t.Fatalf("snapshot counts diverged: %d != %d", len(snapsA), len(snapsB))
	}

	for i := range snapsA {
		a, b := snapsA[i], snapsB[i]
		if a.X != b.X || a.Z != b.Z {
			t.Fatalf("column order diverged at index %d", i)
		}
		if a.Heightmap != b.Heightmap {
			t.Fatalf("heightmap diverged at column (%d,%d)", a.X, a.Z)
		}
		if a.Biomes != b.Biomes {
			t.Fatalf("biome map diverged at column (%d,%d)", a.X, a.Z)
		}
	}
}

// TestGenerateRegionGoldenScenarioColumnZeroZero is spec §8's concrete
// scenario 1, run through the full shape->paint->caves->decorate
// pipeline: column (0,0) of region (0,0) has the configured ocean sea
// block at (0,63,0) and stone at (0,0,0). Caves can't disturb either:
// their carve AABB never reaches y=0, and a carve blob touching any
// ocean block -- (0,63,0) already is one -- gets skipped outright
// before it writes anything.
func TestGenerateRegionGoldenScenarioColumnZeroZero(t *testing.T) {
	settings := config.DefaultSettings(goldenSeed)
	driver := NewDriver(settings)

	snapshots := driver.GenerateRegion(0, 0)

	var col *ColumnSnapshot
	for i := range snapshots {
		if snapshots[i].X == 0 && snapshots[i].Z == 0 {
			col = &snapshots[i]
			break
		}
	}
	if col == nil {
		t.Fatalf("region (0,0) missing column (0,0)")
	}

	shapeBlocks := terrain.DefaultShapeBlocks()

	floor := col.Chunks[0].Blocks.GetBlock(voxel.NewBlockPosition(0, 0, 0))
	if floor != shapeBlocks.Solid {
		t.Errorf("(0,0,0) = %d, want stone (%d)", floor, shapeBlocks.Solid)
	}

	seaLevel := col.Chunks[3].Blocks.GetBlock(voxel.NewBlockPosition(0, 63, 0))
	if seaLevel != shapeBlocks.Ocean {
		t.Errorf("(0,63,0) = %d, want ocean (%d)", seaLevel, shapeBlocks.Ocean)
	}
}

func TestGenerateRegionSkyLightTopChunkIsFullyLit(t *testing.T) {
	settings := config.DefaultSettings(55)
	driver := NewDriver(settings)

	snapshots := driver.GenerateRegion(0, 0)

	for _, snap := range snapshots {
		top := snap.Chunks[15]
		if top.SkyLight == nil {
			t.Fatalf("column (%d,%d) missing sky-light for its top chunk", snap.X, snap.Z)
		}

		if got := top.SkyLight.Get(voxel.NewBlockPosition(0, 15, 0)); got != 15 {
			t.Fatalf("column (%d,%d) sky-light at the world ceiling = %d, want 15", snap.X, snap.Z, got)
		}
	}
}
