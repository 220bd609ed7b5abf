package decorate

import (
	"math"

	"github.com/coderbot16/i73go/pkg/world/matcher"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// notchPi is the Notchian approximation of pi used by the quantized
// trig table's callers, not math.Pi itself.
const notchPi = 3.1415927

// VeinBlocks names the block identity a Vein carves and the matcher
// that gates which existing blocks it may replace.
type VeinBlocks struct {
	Replace matcher.Block
	Block   uint16
}

// Vein carves a chain of Size+1 ellipsoid blobs along a random line
// segment through its dispatch point -- a mineral seam.
type Vein struct {
	Blocks VeinBlocks
	Size   int32
}

type veinGeometry struct {
	size  int32
	sizeF float64
	from  [3]float64
	to    [3]float64
}

func newVeinGeometry(size int32, base [3]float64, r *rng.Java) veinGeometry {
	sizeF32 := float32(size)
	angle := r.NextFloat32() * notchPi

	xSize := float64(rng.Sin(angle) * sizeF32 / 8.0)
	zSize := float64(rng.Cos(angle) * sizeF32 / 8.0)

	return veinGeometry{
		size:  size,
		sizeF: float64(size),
		from: [3]float64{
			base[0] + xSize,
			base[1] + 2.0 + float64(r.NextInt(3)),
			base[2] + zSize,
		},
		to: [3]float64{
			base[0] - xSize,
			base[1] + 2.0 + float64(r.NextInt(3)),
			base[2] - zSize,
		},
	}
}

// lerpFraction keeps the reference's exact a + (b-a)*index/size
// evaluation order, since re-associating it changes float rounding.
func lerpFraction(index, size int32, a, b float64) float64 {
	return a + (b-a)*float64(index)/float64(size)
}

type veinBlob struct {
	center [3]float64
	radius float64
}

func (g veinGeometry) blob(index int32, r *rng.Java) veinBlob {
	var center [3]float64
	for axis := range center {
		center[axis] = lerpFraction(index, g.size, g.from[axis], g.to[axis])
	}

	radiusMultiplier := r.NextFloat64() * g.sizeF / 16.0
	diameter := (math.Sin(float64(index)*math.Pi/g.sizeF) + 1.0) * radiusMultiplier + 1.0

	return veinBlob{center: center, radius: diameter / 2.0}
}

func (b veinBlob) distanceSquared(x, y, z float64) float64 {
	dx := (x - b.center[0]) / b.radius
	dy := (y - b.center[1]) / b.radius
	dz := (z - b.center[2]) / b.radius
	return dx*dx + dy*dy + dz*dz
}

// Generate carves every blob step along the vein, replacing any block
// the Replace matcher accepts.
func (v Vein) Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error {
	base := [3]float64{float64(position.X), float64(position.Y), float64(position.Z)}
	geometry := newVeinGeometry(v.Size, base, r)

	quad.EnsureAvailable(v.Blocks.Block)
	blocks, palettes := quad.FreezePalettes()

	assoc, ok := palettes.ReverseLookupAll(v.Blocks.Block)
	if !ok {
		return nil
	}

	for index := int32(0); index <= v.Size; index++ {
		b := geometry.blob(index, r)

		lowerX := int32(math.Floor(b.center[0] - b.radius))
		upperX := int32(math.Floor(b.center[0] + b.radius))
		lowerY := int32(math.Floor(b.center[1] - b.radius))
		upperY := int32(math.Floor(b.center[1] + b.radius))
		lowerZ := int32(math.Floor(b.center[2] - b.radius))
		upperZ := int32(math.Floor(b.center[2] + b.radius))

		for x := lowerX; x <= upperX; x++ {
			for y := lowerY; y <= upperY; y++ {
				for z := lowerZ; z <= upperZ; z++ {
					if x < 0 || x >= 32 || y < 0 || y >= 256 || z < 0 || z >= 32 {
						continue
					}
					if b.distanceSquared(float64(x)+0.5, float64(y)+0.5, float64(z)+0.5) >= 1.0 {
						continue
					}

					pos := voxel.NewQuadPosition(uint8(x), uint8(y), uint8(z))
					if !v.Blocks.Replace(quad.GetBlock(pos)) {
						continue
					}
					blocks.SetAll(pos, assoc)
				}
			}
		}
	}

	return nil
}

// SeasideVein requires an ocean block 8 west and 8 south of the
// dispatch point before carving at all, restricting the vein (clay,
// in the reference) to coastal columns.
type SeasideVein struct {
	Vein
	Ocean matcher.Block
}

func (v SeasideVein) Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error {
	check, ok := position.Offset(-8, 0, -8)
	if !ok || !v.Ocean(quad.GetBlock(check)) {
		return nil
	}
	return v.Vein.Generate(quad, r, position)
}
