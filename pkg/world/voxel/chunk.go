package voxel

// Chunk is a 16x16x16 palette-compressed block volume: a packed store
// of slot indices plus the palette those indices resolve against, and
// a per-slot reference count (invariant: counts always sum to
// Positions).
type Chunk struct {
	Storage *PackedStorage
	Palette *Palette
	counts  []int
}

// NewChunk allocates a chunk uniformly filled with one block.
func NewChunk(bits uint, fill uint16) *Chunk {
	counts := make([]int, 1<<bits)
	counts[0] = Positions

	return &Chunk{
		Storage: NewPackedStorage(bits),
		Palette: NewPalette(bits, fill),
		counts:  counts,
	}
}

// Counts returns the current per-slot reference counts.
func (c *Chunk) Counts() []int { return c.counts }

func (c *Chunk) growCounts() {
	if len(c.counts) == c.Palette.Capacity() {
		return
	}
	grown := make([]int, c.Palette.Capacity())
	copy(grown, c.counts)
	c.counts = grown
}

// EnsureAvailable guarantees block has a palette slot, growing the
// palette and re-bitting storage if the palette was full.
func (c *Chunk) EnsureAvailable(block uint16) {
	if _, ok := c.Palette.TryInsert(block); ok {
		c.growCounts()
		return
	}

	c.Palette.ReserveBits(1)
	c.Storage.Rebit(c.Storage.BitsPerEntry() + 1)
	c.growCounts()

	if _, ok := c.Palette.TryInsert(block); !ok {
		panic("voxel: palette insert failed immediately after reserve_bits")
	}
	c.growCounts()
}

// Get returns the slot index at position p.
func (c *Chunk) Get(p BlockPosition) int { return int(c.Storage.Get(p)) }

// GetBlock resolves the block identity at position p.
func (c *Chunk) GetBlock(p BlockPosition) uint16 {
	block, _ := c.Palette.At(c.Get(p))
	return block
}

// Set writes slot at position p, maintaining reference counts.
func (c *Chunk) Set(p BlockPosition, slot int) {
	old := c.Get(p)
	if old == slot {
		return
	}
	c.counts[old]--
	c.counts[slot]++
	c.Storage.Set(p, uint64(slot))
}

// FrozenBlocks is the mutable half of the ensure-available+freeze
// discipline: direct storage access with counts kept consistent,
// without touching the palette itself.
type FrozenBlocks struct {
	storage *PackedStorage
	counts  []int
}

func (b *FrozenBlocks) Get(p BlockPosition) int { return int(b.storage.Get(p)) }

func (b *FrozenBlocks) Set(p BlockPosition, slot int) {
	old := int(b.storage.Get(p))
	if old == slot {
		return
	}
	b.counts[old]--
	b.counts[slot]++
	b.storage.Set(p, uint64(slot))
}

// FreezePalette yields a mutable block-array handle and a read-only
// palette view, amortizing palette mutation out of hot loops.
func (c *Chunk) FreezePalette() (*FrozenBlocks, PaletteView) {
	return &FrozenBlocks{storage: c.Storage, counts: c.counts}, PaletteView{p: c.Palette}
}
