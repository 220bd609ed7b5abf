package decorate

import (
	"github.com/coderbot16/i73go/pkg/world/matcher"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// LakeSettings tunes the blob count and the fill/carve split within
// the lake's own 8-tall local frame.
type LakeSettings struct {
	Surface          int32
	MinBlobs, AddBlobs int32
}

// DefaultLakeSettings returns the Beta 1.7.3 tuning shared by water and
// lava lakes.
func DefaultLakeSettings() LakeSettings {
	return LakeSettings{Surface: 4, MinBlobs: 4, AddBlobs: 3}
}

// LakeBlocks names the block identities a Lake reads and writes.
type LakeBlocks struct {
	// Open matches the blocks the initial downward walk treats as
	// passable (air, or anything caves already carved).
	Open matcher.Block

	// IsLiquid, IsSolid and Replaceable classify blocks the border
	// check and the fill/carve step read.
	IsLiquid, IsSolid, Replaceable matcher.Block

	// Liquid and Air are the blocks written below/above the surface
	// split.
	Liquid, Air uint16
}

// Lake carves a 16x8x16 blob-filled basin into a quad, refusing to
// generate at all if its border would touch open liquid.
type Lake struct {
	Blocks   LakeBlocks
	Settings LakeSettings
}

// Generate walks down from position to find natural ground, then fills
// a noise-shaped basin below it. position is reduced to its
// column-local (x, z) via ToCentered and, faithfully matching the
// reference, those column-local coordinates are reused directly as
// the basin's quad-space origin rather than being re-centered --
// biasing every lake toward the quad's low (x, z) corner.
func (l Lake) Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error {
	x, y, z, ok := position.ToCentered()
	if !ok {
		return ErrSpilled
	}

	lowerY := int32(y)
	for lowerY > 0 && l.Blocks.Open(quad.GetBlock(voxel.NewQuadPosition(x, uint8(lowerY), z))) {
		lowerY--
	}
	lowerY -= 4
	if lowerY < 0 {
		return nil
	}

	volume := l.buildVolume(r)
	border := computeLakeBorder(volume)

	if !l.checkBorder(quad, border, x, z, lowerY) {
		return nil
	}

	l.fillAndCarve(quad, volume, x, z, lowerY)
	return nil
}

func (l Lake) buildVolume(r *rng.Java) *[16][8][16]bool {
	var volume [16][8][16]bool

	count := l.Settings.MinBlobs + r.NextInt(l.Settings.AddBlobs+1)
	for i := int32(0); i < count; i++ {
		dx := float64(r.NextFloat32())*6.0 + 3.0
		dy := float64(r.NextFloat32())*4.0 + 2.0
		dz := float64(r.NextFloat32())*6.0 + 3.0
		rx, ry, rz := dx/2.0, dy/2.0, dz/2.0

		cx := float64(r.NextFloat32())*(16.0-dx-2.0) + 1.0 + rx
		cy := float64(r.NextFloat32())*(8.0-dy-4.0) + 2.0 + ry
		cz := float64(r.NextFloat32())*(16.0-dz-2.0) + 1.0 + rz

		for x := 1; x < 15; x++ {
			for y := 1; y < 7; y++ {
				for z := 1; z < 15; z++ {
					sx := (float64(x) + 0.5 - cx) / rx
					sy := (float64(y) + 0.5 - cy) / ry
					sz := (float64(z) + 0.5 - cz) / rz
					if sx*sx+sy*sy+sz*sz < 1.0 {
						volume[x][y][z] = true
					}
				}
			}
		}
	}

	return &volume
}

// computeLakeBorder derives the shell of volume that faces an empty
// neighbor: the true border test for interior cells, and a
// same-layer copy for the outermost ring where no neighbor data
// exists. Edges and corners where both rules would apply are left
// false, matching the reference's own acknowledged gap there.
func computeLakeBorder(volume *[16][8][16]bool) *[16][8][16]bool {
	var border [16][8][16]bool

	at := func(x, y, z int) bool {
		if x < 0 || x >= 16 || y < 0 || y >= 8 || z < 0 || z >= 16 {
			return false
		}
		return volume[x][y][z]
	}

	for x := 1; x < 15; x++ {
		for y := 1; y < 7; y++ {
			for z := 1; z < 15; z++ {
				if !volume[x][y][z] {
					continue
				}
				if !at(x-1, y, z) || !at(x+1, y, z) ||
					!at(x, y-1, z) || !at(x, y+1, z) ||
					!at(x, y, z-1) || !at(x, y, z+1) {
					border[x][y][z] = true
				}
			}
		}
	}

	for x := 1; x < 15; x++ {
		for z := 1; z < 15; z++ {
			border[x][0][z] = volume[x][1][z]
			border[x][7][z] = volume[x][6][z]
		}
	}
	for x := 1; x < 15; x++ {
		for y := 1; y < 7; y++ {
			border[x][y][0] = volume[x][y][1]
			border[x][y][15] = volume[x][y][14]
		}
	}
	for y := 1; y < 7; y++ {
		for z := 1; z < 15; z++ {
			border[0][y][z] = volume[1][y][z]
			border[15][y][z] = volume[14][y][z]
		}
	}

	return &border
}

func (l Lake) checkBorder(quad *voxel.Quad, border *[16][8][16]bool, baseX, baseZ uint8, lowerY int32) bool {
	surface := l.Settings.Surface

	for lx := 0; lx < 16; lx++ {
		for lz := 0; lz < 16; lz++ {
			for ly := int32(0); ly < 8; ly++ {
				if !border[lx][ly][lz] {
					continue
				}

				gx := int32(baseX) + int32(lx)
				gz := int32(baseZ) + int32(lz)
				gy := lowerY + ly
				if gx < 0 || gx >= 32 || gz < 0 || gz >= 32 || gy < 0 || gy >= 256 {
					continue
				}

				block := quad.GetBlock(voxel.NewQuadPosition(uint8(gx), uint8(gy), uint8(gz)))
				if ly < surface {
					if l.Blocks.IsLiquid(block) && !l.Blocks.IsSolid(block) {
						return false
					}
				} else if l.Blocks.IsLiquid(block) {
					return false
				}
			}
		}
	}

	return true
}

func (l Lake) fillAndCarve(quad *voxel.Quad, volume *[16][8][16]bool, baseX, baseZ uint8, lowerY int32) {
	quad.EnsureAvailable(l.Blocks.Liquid)
	quad.EnsureAvailable(l.Blocks.Air)

	blocks, palettes := quad.FreezePalettes()

	liquid, okLiquid := palettes.ReverseLookupAll(l.Blocks.Liquid)
	air, okAir := palettes.ReverseLookupAll(l.Blocks.Air)
	if !okLiquid || !okAir {
		return
	}

	surface := l.Settings.Surface

	for lx := 0; lx < 16; lx++ {
		for lz := 0; lz < 16; lz++ {
			for ly := int32(0); ly < 8; ly++ {
				if !volume[lx][ly][lz] {
					continue
				}

				gx := int32(baseX) + int32(lx)
				gz := int32(baseZ) + int32(lz)
				gy := lowerY + ly
				if gx < 0 || gx >= 32 || gz < 0 || gz >= 32 || gy < 0 || gy >= 256 {
					continue
				}

				pos := voxel.NewQuadPosition(uint8(gx), uint8(gy), uint8(gz))
				if !l.Blocks.Replaceable(quad.GetBlock(pos)) {
					continue
				}

				if ly < surface {
					blocks.SetAll(pos, liquid)
				} else {
					blocks.SetAll(pos, air)
				}
			}
		}
	}
}
