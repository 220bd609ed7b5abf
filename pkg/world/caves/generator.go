package caves

import (
	"github.com/coderbot16/i73go/pkg/world/matcher"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// Blocks names the block identity the generator carves with.
type Blocks struct {
	Carve uint16
}

// Generator carves branching tunnel/room cave systems into a column.
type Generator struct {
	Blocks Blocks

	// Ocean matches any block that should stop a blob from carving at
	// all, so caves don't breach into open water.
	Ocean matcher.Block

	// Carvable matches blocks a blob is allowed to replace.
	Carvable matcher.Block
}

// DefaultGenerator carves with carve, refusing to carve anything that
// is already air, and aborting a blob that would breach ocean.
func DefaultGenerator(carve, air, ocean uint16) Generator {
	return Generator{
		Blocks:   Blocks{Carve: carve},
		Ocean:    matcher.Is(ocean),
		Carvable: matcher.IsNot(air),
	}
}

// Apply carves into col, the column at chunk position (cx, cz), every
// cave start that the source chunk (fromX, fromZ) yields; radius is the
// cave search radius in chunks, which also bounds each tunnel's length.
// seed must already be the per-chunk seed the driver mixed from the
// world seed and (fromX, fromZ).
func (g Generator) Apply(seed int64, col *voxel.Column, cx, cz, fromX, fromZ, radius int32) {
	r := rng.NewJava(seed)
	cvs := newCaves(r, cx, cz, fromX, fromZ, radius)

	col.EnsureAvailable(g.Blocks.Carve)
	blocks, palettes := col.FreezePalettes()

	carve, ok := palettes.ReverseLookup(g.Blocks.Carve)
	if !ok {
		return
	}

	for {
		s, hasNext := cvs.next()
		if !hasNext {
			return
		}

		switch {
		case s.tunnel != nil:
			g.carveTunnel(*s.tunnel, cvs, carve, blocks, palettes, cx, cz)
		case s.blob != nil:
			g.carveBlob(*s.blob, carve, blocks, palettes, cx, cz)
		}
	}
}

func (g Generator) carveTunnel(tunnel Tunnel, cvs *Caves, carve voxel.ColumnAssociation, blocks *voxel.ColumnBlocks, palettes voxel.ColumnPalettes, cx, cz int32) {
	for {
		out := tunnel.step()

		switch out.kind {
		case outcomeSplit:
			a, b := tunnel.split(cvs)
			g.carveTunnel(*a, cvs, carve, blocks, palettes, cx, cz)
			g.carveTunnel(*b, cvs, carve, blocks, palettes, cx, cz)
			return
		case outcomeUnreachable, outcomeDone:
			return
		case outcomeCarve:
			g.carveBlob(*out.blob, carve, blocks, palettes, cx, cz)
		}
		// Constrict and OutOfChunk just loop to the next step.
	}
}

// carveBlob first sanity-scans the blob's AABB for ocean, bailing out
// entirely if found (misses blocks across chunk boundaries -- there is
// no easy way to fix this without cross-chunk reads), then carves
// every block inside the ellipsoid, with a flat floor enforced by the
// y > -0.7 cutoff.
func (g Generator) carveBlob(blob Blob, carve voxel.ColumnAssociation, blocks *voxel.ColumnBlocks, palettes voxel.ColumnPalettes, cx, cz int32) {
	chunkBlockX := float64(cx) * 16.0
	chunkBlockZ := float64(cz) * 16.0

	for z := int(blob.Lower.Z); z < int(blob.Upper.Z); z++ {
		for x := int(blob.Lower.X); x < int(blob.Upper.X); x++ {
			y := int(blob.Upper.Y) + 1

			for y >= int(blob.Lower.Y)-1 {
				if y < 0 || y >= 128 {
					y--
					continue
				}

				pos := voxel.NewBlockPosition(uint8(x), uint8(y), uint8(z))
				if candidate, ok := palettes[pos.ChunkY()].At(blocks.Get(pos)); ok && g.Ocean(candidate) {
					return
				}

				// Only check the edges and the floor; skip the interior.
				if y != int(blob.Lower.Y)-1 &&
					x != int(blob.Lower.X) && x != int(blob.Upper.X)-1 &&
					z != int(blob.Lower.Z) && z != int(blob.Upper.Z)-1 {
					y = int(blob.Lower.Y)
				}

				y--
			}
		}
	}

	for z := int(blob.Lower.Z); z < int(blob.Upper.Z); z++ {
		for x := int(blob.Lower.X); x < int(blob.Upper.X); x++ {
			for y := int(blob.Lower.Y); y < int(blob.Upper.Y); y++ {
				sx := (float64(x) + chunkBlockX + 0.5 - blob.Center[0]) / blob.Size.Horizontal
				sy := (float64(y) + 0.5 - blob.Center[1]) / blob.Size.Vertical
				sz := (float64(z) + chunkBlockZ + 0.5 - blob.Center[2]) / blob.Size.Horizontal

				if sy <= -0.7 || sx*sx+sy*sy+sz*sz >= 1.0 {
					continue
				}

				pos := voxel.NewBlockPosition(uint8(x), uint8(y), uint8(z))
				if candidate, ok := palettes[pos.ChunkY()].At(blocks.Get(pos)); ok && !g.Carvable(candidate) {
					continue
				}

				blocks.Set(pos, carve)
			}
		}
	}
}
