package voxel

// Palette is an ordered, reverse-lookup-capable bijection between
// block identities (packed `id<<4 | meta` per spec's closed-variant
// design note) and bit-packed slot indices.
type Palette struct {
	entries []paletteEntry
	reverse map[uint16]int
}

type paletteEntry struct {
	block   uint16
	present bool
}

// NewPalette allocates a palette of 2^bits slots, with slot 0 already
// bound to fill (the chunk's initial uniform block).
func NewPalette(bits uint, fill uint16) *Palette {
	capacity := 1 << bits
	p := &Palette{
		entries: make([]paletteEntry, capacity),
		reverse: make(map[uint16]int, capacity),
	}
	p.entries[0] = paletteEntry{block: fill, present: true}
	p.reverse[fill] = 0
	return p
}

// Bits returns the current bits-per-entry implied by palette capacity.
func (p *Palette) Bits() uint {
	bits := uint(0)
	for (1 << bits) < len(p.entries) {
		bits++
	}
	return bits
}

// Capacity returns the number of slots, vacant or not.
func (p *Palette) Capacity() int { return len(p.entries) }

// TryInsert returns the slot holding block, inserting it into the
// first vacant slot if it isn't already present. ok is false if the
// palette has no vacant slots left.
func (p *Palette) TryInsert(block uint16) (slot int, ok bool) {
	if s, found := p.reverse[block]; found {
		return s, true
	}

	for i := range p.entries {
		if !p.entries[i].present {
			p.entries[i] = paletteEntry{block: block, present: true}
			p.reverse[block] = i
			return i, true
		}
	}

	return -1, false
}

// ReverseLookup returns a slot currently holding block, if any.
func (p *Palette) ReverseLookup(block uint16) (slot int, ok bool) {
	s, found := p.reverse[block]
	return s, found
}

// At returns the block identity held by a slot.
func (p *Palette) At(slot int) (block uint16, present bool) {
	e := p.entries[slot]
	return e.block, e.present
}

// Replace changes the block identity held by slot. If slot was the
// reverse-lookup target for its old block, the reverse map is
// repointed to another slot still holding that block (if any counts
// are nonzero there) or removed.
func (p *Palette) Replace(slot int, block uint16, counts []int) {
	old := p.entries[slot].block

	if cur, ok := p.reverse[old]; ok && cur == slot {
		delete(p.reverse, old)
		for i := range p.entries {
			if i == slot || !p.entries[i].present || p.entries[i].block != old {
				continue
			}
			if counts != nil && counts[i] == 0 {
				continue
			}
			p.reverse[old] = i
			break
		}
	}

	p.entries[slot] = paletteEntry{block: block, present: true}
	p.reverse[block] = slot
}

// ReserveBits doubles palette capacity k times, appending vacant slots
// without disturbing existing entries' indices.
func (p *Palette) ReserveBits(k uint) {
	for i := uint(0); i < k; i++ {
		grown := make([]paletteEntry, len(p.entries)*2)
		copy(grown, p.entries)
		p.entries = grown
	}
}

// PaletteView is a read-only handle into a Palette, handed out by
// FreezePalette so hot inner loops can resolve slots via reverse
// lookup without risking a palette mutation (which would invalidate
// precomputed slot indices).
type PaletteView struct {
	p *Palette
}

func (v PaletteView) ReverseLookup(block uint16) (int, bool) { return v.p.ReverseLookup(block) }
func (v PaletteView) At(slot int) (uint16, bool)             { return v.p.At(slot) }
