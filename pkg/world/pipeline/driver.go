package pipeline

import (
	"fmt"

	"github.com/coderbot16/i73go/pkg/world/config"
	"github.com/coderbot16/i73go/pkg/world/noise"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/skylight"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// Driver runs Settings against a region's worth of columns: shape,
// paint and caves per column, then a 31x31 grid of 2x2 decoration
// quads, then sky-light settled to a cross-column fixed point.
//
// The core is single-threaded per region: ordering dependencies in the
// reference RNG stream forbid interleaving passes on a single column,
// and decorator dispatch depends on a region-global RNG sequenced by
// (qx, qz). Distinct regions carry independent RNG streams and may run
// concurrently.
type Driver struct {
	Settings config.Settings
	World    *voxel.Sparse
	Sky      *voxel.SkySparse
}

// NewDriver builds a driver with fresh, empty world/sky indexes.
func NewDriver(settings config.Settings) *Driver {
	return &Driver{
		Settings: settings,
		World:    voxel.NewSparse(),
		Sky:      voxel.NewSkySparse(),
	}
}

// packedBits is the starting bits-per-entry for a freshly created
// column; the shape pass's EnsureAvailable calls grow it as needed.
const packedBits = 4

// GenerateRegion runs the full pipeline over the 32x32 columns of
// region (rx, rz), returning one snapshot per column in row-major
// (z-major) order.
func (d *Driver) GenerateRegion(rx, rz int32) []ColumnSnapshot {
	baseX := rx * voxel.RegionSize
	baseZ := rz * voxel.RegionSize

	d.terrainAndCaves(baseX, baseZ)
	d.decorate(baseX, baseZ)
	lightStates := d.skylight(baseX, baseZ)

	snapshots := make([]ColumnSnapshot, 0, voxel.RegionSize*voxel.RegionSize)
	for lz := int32(0); lz < voxel.RegionSize; lz++ {
		for lx := int32(0); lx < voxel.RegionSize; lx++ {
			gx, gz := baseX+lx, baseZ+lz
			pos := voxel.GlobalColumnPosition{X: gx, Z: gz}

			col, ok := d.World.Get(pos)
			if !ok {
				panic(fmt.Sprintf("pipeline: missing column at %d,%d after terrain pass", gx, gz))
			}

			st := lightStates[pos]
			d.Sky.SetColumn(pos, st.Sky)

			biomes := d.columnBiomes(gx, gz)
			snapshots = append(snapshots, newColumnSnapshot(gx, gz, col, st.Sky, st.Heightmap, biomes))
		}
	}

	return snapshots
}

// terrainAndCaves instantiates every column in the region and runs
// shape, paint and caves on each. Caves only ever write into the
// column passed to Generator.Apply, so every source chunk within
// CaveRadius of a target column can be mixed and applied without any
// of those source columns needing to exist yet.
func (d *Driver) terrainAndCaves(baseX, baseZ int32) {
	for lz := int32(0); lz < voxel.RegionSize; lz++ {
		for lx := int32(0); lx < voxel.RegionSize; lx++ {
			gx, gz := baseX+lx, baseZ+lz
			pos := voxel.GlobalColumnPosition{X: gx, Z: gz}

			col := d.World.GetOrCreateMut(pos, packedBits, d.Settings.Air)

			lattice := d.Settings.Sources.Fill(gx, gz)
			d.Settings.Shape.Apply(col, lattice, d.Settings.Sources, gx, gz)
			d.Settings.Paint.Apply(col, d.Settings.Sources, gx, gz)

			radius := d.Settings.CaveRadius
			for sz := gz - radius; sz <= gz+radius; sz++ {
				for sx := gx - radius; sx <= gx+radius; sx++ {
					seed := rng.MixChunkSeed(d.Settings.Seed, sx, sz, d.Settings.CaveOddA, d.Settings.CaveOddB)
					d.Settings.Caves.Apply(seed, col, gx, gz, sx, sz, radius)
				}
			}
		}
	}
}

// decorate walks the region's 31x31 quad grid, reseeding the RNG at
// each quad from (qx*odd_a + qz*odd_b) XOR seed before running every
// dispatcher in order.
func (d *Driver) decorate(baseX, baseZ int32) {
	for qz := int32(0); qz < voxel.RegionSize-1; qz++ {
		for qx := int32(0); qx < voxel.RegionSize-1; qx++ {
			gx, gz := baseX+qx, baseZ+qz
			pos := voxel.GlobalColumnPosition{X: gx, Z: gz}

			quad, ok := d.World.GetQuadMut(pos)
			if !ok {
				panic(fmt.Sprintf("pipeline: missing quad at %d,%d for decoration", gx, gz))
			}

			seed := rng.MixChunkSeed(d.Settings.Seed, gx, gz, d.Settings.DecorateOddA, d.Settings.DecorateOddB)
			r := rng.NewJava(seed)

			for _, dispatcher := range d.Settings.Decorators {
				dispatcher.Generate(quad, r)
			}
		}
	}
}

// skylight seeds and relaxes every column's sky-light in isolation,
// then settles cross-column spillover to a fixed point entirely within
// this region (spillover that would cross the region's own boundary is
// simply dropped, per the queued-spillover-only contract).
func (d *Driver) skylight(baseX, baseZ int32) map[voxel.GlobalColumnPosition]*skylight.State {
	states := make(map[voxel.GlobalColumnPosition]*skylight.State)
	queues := make(map[voxel.GlobalColumnPosition]*skylight.Queue)
	pending := make(map[voxel.GlobalColumnPosition][]skylight.BorderSpill)

	for lz := int32(0); lz < voxel.RegionSize; lz++ {
		for lx := int32(0); lx < voxel.RegionSize; lx++ {
			pos := voxel.GlobalColumnPosition{X: baseX + lx, Z: baseZ + lz}

			col, ok := d.World.Get(pos)
			if !ok {
				panic(fmt.Sprintf("pipeline: missing column at %d,%d for sky-light", pos.X, pos.Z))
			}

			st, q := d.Settings.Sky.Seed(col, d.Settings.Air)
			spills := d.Settings.Sky.Step(col, st, q)

			states[pos] = st
			queues[pos] = q
			if len(spills) > 0 {
				pending[pos] = spills
			}
		}
	}

	for len(pending) > 0 {
		next := make(map[voxel.GlobalColumnPosition][]skylight.BorderSpill)

		for pos, spills := range pending {
			st := states[pos]

			for _, spill := range spills {
				neighborPos, neighborAt, ok := neighborEdge(pos, spill)
				if !ok {
					continue
				}

				neighborState, ok := states[neighborPos]
				if !ok {
					continue
				}
				neighborCol, ok := d.World.Get(neighborPos)
				if !ok {
					continue
				}

				more := d.Settings.Sky.ApplyBorder(neighborCol, neighborState, queues[neighborPos], neighborAt, st.Sky.Get(spill.At))
				if len(more) > 0 {
					next[neighborPos] = append(next[neighborPos], more...)
				}
			}
		}

		pending = next
	}

	return states
}

// neighborEdge maps a column-edge spill to the neighboring column and
// the mirrored position in that neighbor sharing the same face.
func neighborEdge(pos voxel.GlobalColumnPosition, spill skylight.BorderSpill) (voxel.GlobalColumnPosition, voxel.BlockPosition, bool) {
	x, y, z := spill.At.X(), spill.At.Y(), spill.At.Z()

	switch spill.Dir {
	case skylight.DirMinusX:
		return voxel.GlobalColumnPosition{X: pos.X - 1, Z: pos.Z}, voxel.NewBlockPosition(15, y, z), true
	case skylight.DirPlusX:
		return voxel.GlobalColumnPosition{X: pos.X + 1, Z: pos.Z}, voxel.NewBlockPosition(0, y, z), true
	case skylight.DirMinusZ:
		return voxel.GlobalColumnPosition{X: pos.X, Z: pos.Z - 1}, voxel.NewBlockPosition(x, y, 15), true
	case skylight.DirPlusZ:
		return voxel.GlobalColumnPosition{X: pos.X, Z: pos.Z + 1}, voxel.NewBlockPosition(x, y, 0), true
	default:
		return voxel.GlobalColumnPosition{}, 0, false
	}
}

// columnBiomes samples the biome lookup once per block column,
// packing each biome's legacy single-character ID as a byte.
func (d *Driver) columnBiomes(cx, cz int32) [256]byte {
	var biomes [256]byte

	blockX := float64(cx) * 16.0
	blockZ := float64(cz) * 16.0

	for x := uint8(0); x < 16; x++ {
		for z := uint8(0); z < 16; z++ {
			climate := d.Settings.Sources.Climate.Sample(noise.Vec2{X: blockX + float64(x), Z: blockZ + float64(z)})
			bio := d.Settings.Biomes.Lookup(climate)
			biomes[voxel.NewLayerPosition(x, z).ZX()] = byte(bio.ID)
		}
	}

	return biomes
}
