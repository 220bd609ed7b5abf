package terrain

import (
	"github.com/coderbot16/i73go/pkg/world/biome"
	"github.com/coderbot16/i73go/pkg/world/noise"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// PaintBlocks names the block identities the paint pass writes outside
// of the per-biome Surface chain.
type PaintBlocks struct {
	Air, Stone, Ocean, Ice, Gravel, Sand, Sandstone, Bedrock uint16
}

// DefaultPaintBlocks returns the Beta 1.7.3 overworld block IDs.
func DefaultPaintBlocks() PaintBlocks {
	return PaintBlocks{
		Air:       0,
		Stone:     1 * 16,
		Ocean:     9 * 16,
		Ice:       79 * 16,
		Gravel:    13 * 16,
		Sand:      12 * 16,
		Sandstone: 24 * 16,
		Bedrock:   7 * 16,
	}
}

// PaintPass dresses each column's exposed surface with the biome's
// top/fill/chain blocks, picking beach variants near the waterline.
type PaintPass struct {
	Blocks     PaintBlocks
	Biomes     *biome.Lookup
	SeaCoord   int32
	BedrockMax int32
}

// basin is used where thickness noise goes non-positive: the surface
// erodes away to bare stone, with no top/fill dressing at all.
func (p PaintPass) basin() biome.Surface {
	return biome.Surface{Top: p.Blocks.Stone, Fill: p.Blocks.Stone}
}

func (p PaintPass) sandBeach() biome.Surface {
	return biome.Surface{Top: p.Blocks.Sand, Fill: p.Blocks.Sand}
}

func (p PaintPass) gravelBeach() biome.Surface {
	return biome.Surface{Top: p.Blocks.Gravel, Fill: p.Blocks.Gravel}
}

// surfaceBlocks collects every block identity that could ever appear
// in a Surface this pass might paint, so they can all be ensured
// available before the palette is frozen.
func (p PaintPass) surfaceBlocks() []uint16 {
	blocks := []uint16{
		p.Blocks.Air, p.Blocks.Stone, p.Blocks.Ocean, p.Blocks.Ice,
		p.Blocks.Gravel, p.Blocks.Sand, p.Blocks.Sandstone, p.Blocks.Bedrock,
	}

	seen := make(map[uint16]bool, len(blocks))
	for _, b := range blocks {
		seen[b] = true
	}

	add := func(b uint16) {
		if !seen[b] {
			seen[b] = true
			blocks = append(blocks, b)
		}
	}

	for _, b := range p.Biomes.All() {
		add(b.Surface.Top)
		add(b.Surface.Fill)
		for _, f := range b.Surface.Chain {
			add(f.Block)
		}
	}

	return blocks
}

// Apply dresses col's exposed surface for the column at (cx, cz) in
// chunk coordinates. The column RNG is seeded exactly as the shape
// pass's counterpart chunk is by the reference (cx*341873128712 +
// cz*132897987541, wrapping), and the sand/thickness noise tables are
// re-sliced for this chunk's absolute Z run via VerticalRef.
func (p PaintPass) Apply(col *voxel.Column, sources *Sources, cx, cz int32) {
	blockX := float64(cx) * 16.0
	blockZ := float64(cz) * 16.0

	seed := int64(cx)*341873128712 + int64(cz)*132897987541
	r := rng.NewJava(seed)

	sandVertical := sources.Sand.VerticalRef(blockZ, 16)
	thicknessVertical := sources.Thickness.VerticalRef(blockZ, 16)

	for _, b := range p.surfaceBlocks() {
		col.EnsureAvailable(b)
	}

	blocks, palettes := col.FreezePalettes()

	for z := 0; z < 16; z++ {
		for x := 0; x < 16; x++ {
			sandVariation := r.NextFloat64() * 0.2
			gravelVariation := r.NextFloat64() * 0.2
			thicknessVariation := r.NextFloat64() * 0.25

			verticalPoint := noise.Vec3{X: blockX + float64(x), Y: blockZ + float64(z), Z: 0.0}

			sand := sandVertical.GenerateOverride(verticalPoint, z)+sandVariation > 0.0
			gravel := sources.Gravel.Generate(noise.Vec3{X: blockX + float64(x), Y: 109.0134, Z: blockZ + float64(z)})+gravelVariation > 3.0
			thickness := int32(thicknessVertical.GenerateOverride(verticalPoint, z)/3.0 + 3.0 + thicknessVariation)

			climate := sources.Climate.Sample(noise.Vec2{X: blockX + float64(x), Z: blockZ + float64(z)})
			bio := p.Biomes.Lookup(climate)

			p.paintStack(blocks, palettes, r, uint8(x), uint8(z), sand, gravel, thickness, bio.Surface)
		}
	}
}

func (p PaintPass) chooseVariant(thickness int32, y int32, sand, gravel bool, biomeSurface biome.Surface) biome.Surface {
	switch {
	case thickness <= 0:
		return p.basin()
	case y > p.SeaCoord-4 && y < p.SeaCoord+1:
		switch {
		case sand:
			return p.sandBeach()
		case gravel:
			return p.gravelBeach()
		default:
			return biomeSurface
		}
	default:
		return biomeSurface
	}
}

// paintStack walks a single (x, z) stack from the world ceiling down,
// implementing the bedrock/ignore/reset/depth-counter state machine
// described in the paint pass's contract.
func (p PaintPass) paintStack(blocks *voxel.ColumnBlocks, palettes voxel.ColumnPalettes, r *rng.Java, x, z uint8, sand, gravel bool, thickness int32, biomeSurface biome.Surface) {
	bedrock, _ := palettes.ReverseLookup(p.Blocks.Bedrock)

	write := func(pos voxel.BlockPosition, block uint16) {
		assoc, ok := palettes.ReverseLookup(block)
		if !ok {
			return
		}
		blocks.Set(pos, assoc)
	}

	haveVariant := false
	done := false
	var variant biome.Surface
	remaining := int32(0)
	chainIndex := -1

	for y := 255; y >= 0; y-- {
		pos := voxel.NewBlockPosition(x, uint8(y), z)

		if int32(y) < p.BedrockMax && int32(y) <= r.NextInt(p.BedrockMax) {
			blocks.Set(pos, bedrock)
			continue
		}

		current := blocks.Get(pos)
		currentBlock, _ := palettes[pos.ChunkY()].At(current)

		switch {
		case currentBlock == p.Blocks.Air:
			continue
		case currentBlock == p.Blocks.Ocean || currentBlock == p.Blocks.Ice:
			haveVariant = false
			done = false
			continue
		}

		if done {
			continue
		}

		if !haveVariant {
			variant = p.chooseVariant(thickness, int32(y), sand, gravel, biomeSurface)
			haveVariant = true
			remaining = thickness
			chainIndex = -1

			if int32(y) >= p.SeaCoord {
				write(pos, variant.Top)
			} else {
				write(pos, variant.Fill)
			}
			continue
		}

		var target uint16
		if chainIndex >= 0 && chainIndex < len(variant.Chain) {
			target = variant.Chain[chainIndex].Block
		} else {
			target = variant.Fill
		}
		write(pos, target)

		remaining--
		if remaining <= 0 {
			chainIndex++
			if chainIndex >= len(variant.Chain) {
				done = true
			} else {
				remaining = r.NextInt(int32(variant.Chain[chainIndex].MaxDepth) + 1)
			}
		}
	}
}
