package decorate

import "github.com/coderbot16/i73go/pkg/world/voxel"

// newTestQuad builds a 2x2-column quad uniformly filled with fill, the
// way the pipeline driver's region setup does before decoration runs.
func newTestQuad(fill uint16) *voxel.Quad {
	var q voxel.Quad
	for i := range q.Columns {
		q.Columns[i] = voxel.NewColumn(4, fill)
	}
	return &q
}

// fillColumnBelow sets every block in every quad column at y < surfaceY to
// solid, the rest to air, so tests have natural ground to walk down to.
func fillColumnBelow(q *voxel.Quad, solid, air uint16, surfaceY uint8) {
	q.EnsureAvailable(solid)
	q.EnsureAvailable(air)
	blocks, palettes := q.FreezePalettes()

	solidAssoc, _ := palettes.ReverseLookupAll(solid)
	airAssoc, _ := palettes.ReverseLookupAll(air)

	for x := uint8(0); x < 32; x++ {
		for z := uint8(0); z < 32; z++ {
			for y := uint8(0); y < surfaceY; y++ {
				blocks.SetAll(voxel.NewQuadPosition(x, y, z), solidAssoc)
			}
			for y := surfaceY; ; y++ {
				blocks.SetAll(voxel.NewQuadPosition(x, y, z), airAssoc)
				if y == 255 {
					break
				}
			}
		}
	}
}
