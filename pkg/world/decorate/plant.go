package decorate

import (
	"github.com/coderbot16/i73go/pkg/world/matcher"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// PlantBlocks names the block a Plant places, the block it requires
// underneath, and what it's allowed to displace at the target cell.
type PlantBlocks struct {
	Block       uint16
	Base        matcher.Block
	Replaceable matcher.Block
}

// Plant places a single block atop Base, provided the target cell is
// air or already matches Replaceable.
type Plant struct {
	Blocks PlantBlocks
}

func (p Plant) Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error {
	current := quad.GetBlock(position)
	if current != 0 && !p.Blocks.Replaceable(current) {
		return nil
	}

	below, ok := position.Offset(0, -1, 0)
	if !ok || !p.Blocks.Base(quad.GetBlock(below)) {
		return nil
	}

	quad.EnsureAvailable(p.Blocks.Block)
	blocks, palettes := quad.FreezePalettes()

	assoc, ok := palettes.ReverseLookupAll(p.Blocks.Block)
	if !ok {
		return nil
	}

	blocks.SetAll(position, assoc)
	return nil
}

// Clump scatters Iterations attempts at a Decorator around a center
// point, jittered independently on each axis by fewer than Horizontal
// (x/z) or Vertical (y) blocks in either direction.
type Clump struct {
	Iterations           int32
	Horizontal, Vertical int32
	Decorator            Decorator
}

func (c Clump) Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error {
	for i := int32(0); i < c.Iterations; i++ {
		dx := r.NextInt(c.Horizontal) - r.NextInt(c.Horizontal)
		dy := r.NextInt(c.Vertical) - r.NextInt(c.Vertical)
		dz := r.NextInt(c.Horizontal) - r.NextInt(c.Horizontal)

		if int32(position.Y)+dy < 0 {
			continue
		}

		at, ok := position.Offset(dx, dy, dz)
		if !ok {
			continue
		}

		_ = c.Decorator.Generate(quad, r, at)
	}
	return nil
}

// FlatClump is Clump restricted to the horizontal plane, for
// decorators that only ever scatter across a single Y level (surface
// plants, grass tufts).
type FlatClump struct {
	Iterations int32
	Horizontal int32
	Decorator  Decorator
}

func (c FlatClump) Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error {
	for i := int32(0); i < c.Iterations; i++ {
		dx := r.NextInt(c.Horizontal) - r.NextInt(c.Horizontal)
		dz := r.NextInt(c.Horizontal) - r.NextInt(c.Horizontal)

		at, ok := position.Offset(dx, 0, dz)
		if !ok {
			continue
		}

		_ = c.Decorator.Generate(quad, r, at)
	}
	return nil
}
