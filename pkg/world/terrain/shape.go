package terrain

import (
	"github.com/coderbot16/i73go/pkg/world/noise"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// ShapeBlocks names the four block identities the shape pass writes.
type ShapeBlocks struct {
	Solid, Ocean, Ice, Air uint16
}

// DefaultShapeBlocks returns the Beta 1.7.3 overworld block IDs
// (id<<4, no metadata): stone, water, ice, air.
func DefaultShapeBlocks() ShapeBlocks {
	return ShapeBlocks{
		Solid: 1 * 16,
		Ocean: 9 * 16,
		Ice:   79 * 16,
		Air:   0,
	}
}

// ShapePass turns a column's density lattice into solid/ocean/ice/air
// voxels.
type ShapePass struct {
	Blocks   ShapeBlocks
	SeaCoord int32
}

// Apply writes every block of col from density, thresholding the
// lattice against zero and the configured sea coordinate. climate
// supplies the freezing test for the ice/ocean distinction at the
// sea-level ring.
func (p ShapePass) Apply(col *voxel.Column, lattice *Lattice, sources *Sources, cx, cz int32) {
	col.EnsureAvailable(p.Blocks.Solid)
	col.EnsureAvailable(p.Blocks.Ocean)
	col.EnsureAvailable(p.Blocks.Ice)
	col.EnsureAvailable(p.Blocks.Air)

	blocks, palettes := col.FreezePalettes()

	solid, _ := palettes.ReverseLookup(p.Blocks.Solid)
	ocean, _ := palettes.ReverseLookup(p.Blocks.Ocean)
	ice, _ := palettes.ReverseLookup(p.Blocks.Ice)
	air, _ := palettes.ReverseLookup(p.Blocks.Air)

	blockX := float64(cx) * 16.0
	blockZ := float64(cz) * 16.0

	for x := uint8(0); x < 16; x++ {
		for z := uint8(0); z < 16; z++ {
			climate := sources.Climate.Sample(noise.Vec2{X: blockX + float64(x), Z: blockZ + float64(z)})
			freezing := climate.Freezing()

			for y := 0; y < 256; y++ {
				pos := voxel.NewBlockPosition(x, uint8(y), z)

				var assoc voxel.ColumnAssociation
				switch {
				case y >= worldHeight:
					assoc = air
				default:
					density := lattice.sample(int(x), y, int(z))
					switch {
					case density > 0:
						assoc = solid
					case y == int(p.SeaCoord) && freezing:
						assoc = ice
					case y <= int(p.SeaCoord):
						assoc = ocean
					default:
						assoc = air
					}
				}

				blocks.Set(pos, assoc)
			}
		}
	}
}
