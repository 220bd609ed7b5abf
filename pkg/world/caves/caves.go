package caves

import (
	"github.com/coderbot16/i73go/pkg/world/distribution"
	"github.com/coderbot16/i73go/pkg/world/rng"
)

// defaultRarity makes most chunks spawn no cave start at all -- a 1/15
// chance of a nonzero count, itself half-normal distributed up to 39 --
// so the world doesn't turn into swiss cheese, while branching still
// lets a single start carve a sprawling system.
func defaultRarity() distribution.Rarity {
	return distribution.Rare{Base: distribution.HalfNormal3{Max: 39}, Chance: 15}
}

// Caves is the per-chunk iterator of cave starts: it owns the chunk's
// root RNG and hands out Tunnel or circular-blob starts until its
// rarity-drawn budget is exhausted.
type Caves struct {
	state          *rng.Java
	cx, cz         int32
	fromX, fromZ   int32
	maxChunkRadius int32

	remaining int32

	hasExtra    bool
	extraCount  int32
	extraOrigin [3]float64
}

// newCaves seeds a Caves iterator that yields the starts of the source
// chunk (fromX, fromZ) for carving into the chunk at (cx, cz);
// maxChunkRadius is the cave search radius in chunks.
func newCaves(state *rng.Java, cx, cz, fromX, fromZ, maxChunkRadius int32) *Caves {
	remaining := defaultRarity().Get(state)

	return &Caves{
		state:          state,
		cx:             cx,
		cz:             cz,
		fromX:          fromX,
		fromZ:          fromZ,
		maxChunkRadius: maxChunkRadius,
		remaining:      remaining,
	}
}

// start is either a branching Tunnel or an optional single blob (a
// circular start that turned out to lie entirely outside the chunk
// carries no blob at all, and is simply a no-op).
type start struct {
	tunnel *Tunnel
	blob   *Blob
}

// next yields the next cave start, or ok=false once the budget is
// exhausted. A circular start queues 1-4 extra normal starts at the
// same origin, which next drains before drawing a fresh origin.
func (c *Caves) next() (start, bool) {
	if c.remaining == 0 {
		return start{}, false
	}
	c.remaining--

	if c.hasExtra && c.extraCount > 0 {
		c.extraCount--
		return start{tunnel: newNormalTunnel(c.state, c.cx, c.cz, c.extraOrigin, c.maxChunkRadius)}, true
	}
	c.hasExtra = false

	x := c.state.NextInt(16)
	y := c.state.NextInt(120)
	y = c.state.NextInt(y + 8)
	z := c.state.NextInt(16)

	origin := [3]float64{
		float64(c.fromX*16 + x),
		float64(y),
		float64(c.fromZ*16 + z),
	}

	if c.state.NextInt(4) == 0 {
		blob := newCircularStart(c.state, c.cx, c.cz, origin, c.maxChunkRadius)

		extra := 1 + c.state.NextInt(4)
		c.remaining += extra
		c.hasExtra = true
		c.extraCount = extra
		c.extraOrigin = origin

		return start{blob: blob}, true
	}

	return start{tunnel: newNormalTunnel(c.state, c.cx, c.cz, origin, c.maxChunkRadius)}, true
}

func newCircularStart(r *rng.Java, cx, cz int32, block [3]float64, maxChunkRadius int32) *Blob {
	blobSizeFactor := 1.0 + r.NextFloat32()*6.0
	state := rng.NewJava(r.NextLong())

	size := newSystemSize(state, 0, maxChunkRadius)
	size.Current = size.Max / 2

	radius := minHSize + float64(rng.Sin(float32(size.Current)*notchPi/float32(size.Max))*blobSizeFactor)
	bs := blobSizeFromHorizontal(radius, 0.5)

	position := newPosition(cx, cz, [3]float64{block[0] + 1.0, block[1], block[2]})

	if position.outOfChunk(bs) {
		return nil
	}

	blob := position.blob(bs)
	return &blob
}
