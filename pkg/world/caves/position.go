package caves

import "github.com/coderbot16/i73go/pkg/world/rng"

// Position tracks a tunnel's head: the chunk being carved, the block
// it is centered on, and its current heading.
type Position struct {
	cx, cz                     int32
	chunkCenterX, chunkCenterZ float64
	block                      [3]float64
	yaw, pitch                 float32
	yawVelocity, pitchVelocity float32
}

func newPosition(cx, cz int32, block [3]float64) Position {
	return newPositionWithAngles(cx, cz, block, 0, 0)
}

func newPositionWithAngles(cx, cz int32, block [3]float64, yaw, pitch float32) Position {
	return Position{
		cx:           cx,
		cz:           cz,
		chunkCenterX: float64(cx*16 + 8),
		chunkCenterZ: float64(cz*16 + 8),
		block:        block,
		yaw:          yaw,
		pitch:        pitch,
	}
}

// step advances the head one unit along its heading and lets the
// heading itself drift, the way a worm wanders.
func (p *Position) step(r *rng.Java, pitchKeep float32) {
	cosPitch := rng.Cos(p.pitch)

	p.block[0] += float64(rng.Cos(p.yaw) * cosPitch)
	p.block[1] += float64(rng.Sin(p.pitch))
	p.block[2] += float64(rng.Sin(p.yaw) * cosPitch)

	p.pitch *= pitchKeep
	p.pitch += p.pitchVelocity * 0.1
	p.yaw += p.yawVelocity * 0.1

	p.pitchVelocity *= 0.9
	p.yawVelocity *= 0.75
	p.pitchVelocity += (r.NextFloat32() - r.NextFloat32()) * r.NextFloat32() * 2.0
	p.yawVelocity += (r.NextFloat32() - r.NextFloat32()) * r.NextFloat32() * 4.0
}

func (p *Position) distanceFromChunkSquared() float64 {
	dx := p.block[0] - p.chunkCenterX
	dz := p.block[2] - p.chunkCenterZ
	return dx*dx + dz*dz
}

func (p *Position) outOfChunk(size BlobSize) bool {
	d := size.horizontalDiameter()

	return p.block[0] < p.chunkCenterX-16.0-d ||
		p.block[2] < p.chunkCenterZ-16.0-d ||
		p.block[0] > p.chunkCenterX+16.0+d ||
		p.block[2] > p.chunkCenterZ+16.0+d
}

// blob clamps the carve region to the chunk's own lattice: the -1/+1
// padding widens the scan for the ocean sanity check and ellipsoid
// test, but X/Z bounds are clamped to [0,16) so no write ever lands
// outside the chunk this blob was produced for.
func (p *Position) blob(size BlobSize) Blob {
	lowerX := clampI32(floorCapped32(p.block[0]-size.Horizontal)-p.cx*16-1, 0, 16)
	lowerY := clampI32(floorCapped32(p.block[1]-size.Vertical)-1, 1, 255)
	lowerZ := clampI32(floorCapped32(p.block[2]-size.Horizontal)-p.cz*16-1, 0, 16)

	upperX := clampI32(floorCapped32(p.block[0]+size.Horizontal)-p.cx*16+1, 0, 16)
	upperY := clampI32(floorCapped32(p.block[1]+size.Vertical)+1, 0, 120)
	upperZ := clampI32(floorCapped32(p.block[2]+size.Horizontal)-p.cz*16+1, 0, 16)

	return Blob{
		Center: p.block,
		Size:   size,
		Lower:  Coord{X: uint8(lowerX), Y: uint8(lowerY), Z: uint8(lowerZ)},
		Upper:  Coord{X: uint8(upperX), Y: uint8(upperY), Z: uint8(upperZ)},
	}
}
