package voxel

// QuadPosition addresses a single cell within a Quad: X and Z span
// [0,32) across the 2x2 column window, Y spans the full column height.
type QuadPosition struct {
	X, Y, Z uint8
}

// NewQuadPosition builds a quad-local position directly.
func NewQuadPosition(x, y, z uint8) QuadPosition {
	return QuadPosition{X: x, Y: y, Z: z}
}

// FromCentered maps a column-local position (x,z in [0,16)) into the
// quad's SW-column-centered frame, offsetting by 8 so a decorator can
// spill up to 8 blocks toward any edge without leaving the quad.
func FromCentered(x, y, z uint8) QuadPosition {
	return QuadPosition{X: x + 8, Y: y, Z: z + 8}
}

// ToCentered reverses FromCentered. ok is false if the position falls
// outside the centered [8,24) window, signalling the position spilled
// out of the quad's reachable decoration area.
func (p QuadPosition) ToCentered() (x, y, z uint8, ok bool) {
	if p.X < 8 || p.X >= 24 || p.Z < 8 || p.Z >= 24 {
		return 0, 0, 0, false
	}
	return p.X - 8, p.Y, p.Z - 8, true
}

// Offset translates p by the given deltas, returning ok=false if the
// result would fall outside the quad's [0,32)x[0,256)x[0,32) bounds —
// the "spilled" case the dispatcher contract requires callers to check.
func (p QuadPosition) Offset(dx, dy, dz int32) (QuadPosition, bool) {
	x := int32(p.X) + dx
	y := int32(p.Y) + dy
	z := int32(p.Z) + dz

	if x < 0 || x >= 32 || y < 0 || y >= 256 || z < 0 || z >= 32 {
		return QuadPosition{}, false
	}

	return QuadPosition{X: uint8(x), Y: uint8(y), Z: uint8(z)}, true
}

// split resolves p to its owning column index (SW=0, SE=1, NW=2, NE=3,
// matching Sparse.GetQuadMut's ordering) and a column-local BlockPosition.
func (p QuadPosition) split() (columnIndex int, local BlockPosition) {
	idx := 0
	x := p.X
	z := p.Z
	if x >= 16 {
		idx |= 1
		x -= 16
	}
	if z >= 16 {
		idx |= 2
		z -= 16
	}
	return idx, NewBlockPosition(x, p.Y, z)
}

// EnsureAvailable guarantees block has a slot in every column of the quad.
func (q *Quad) EnsureAvailable(block uint16) {
	for _, col := range q.Columns {
		col.EnsureAvailable(block)
	}
}

// GetBlock resolves the block identity at a quad-relative position.
func (q *Quad) GetBlock(p QuadPosition) uint16 {
	idx, local := p.split()
	return q.Columns[idx].GetBlock(local)
}

// QuadBlocks is the frozen, mutable block-array view across all 4
// columns of a quad.
type QuadBlocks struct {
	columns [4]*ColumnBlocks
}

func (b *QuadBlocks) Get(p QuadPosition) int {
	idx, local := p.split()
	return b.columns[idx].Get(local)
}

func (b *QuadBlocks) Set(p QuadPosition, assoc ColumnAssociation) {
	idx, local := p.split()
	b.columns[idx].Set(local, assoc)
}

// QuadPalettes is the frozen, read-only palette view across all 4
// columns of a quad.
type QuadPalettes [4]ColumnPalettes

// ReverseLookup resolves block to a per-column association, valid only
// in the column it was resolved against — callers index QuadPalettes
// directly by the column they're writing into.
func (pp QuadPalettes) ReverseLookup(columnIndex int, block uint16) (ColumnAssociation, bool) {
	return pp[columnIndex].ReverseLookup(block)
}

// FreezePalettes yields simultaneous mutable block-array access and
// immutable palette views for every column in the quad.
func (q *Quad) FreezePalettes() (*QuadBlocks, QuadPalettes) {
	blocks := &QuadBlocks{}
	var palettes QuadPalettes

	for i, col := range q.Columns {
		cb, cp := col.FreezePalettes()
		blocks.columns[i] = cb
		palettes[i] = cp
	}

	return blocks, palettes
}

// ReverseLookupAll resolves block to an association good for every
// column of the quad, for callers that write the same block across
// multiple columns (e.g. decorators spanning a quad boundary).
type QuadAssociation [4]ColumnAssociation

func (pp QuadPalettes) ReverseLookupAll(block uint16) (QuadAssociation, bool) {
	var assoc QuadAssociation
	for i := range pp {
		a, ok := pp[i].ReverseLookup(block)
		if !ok {
			return QuadAssociation{}, false
		}
		assoc[i] = a
	}
	return assoc, true
}

func (b *QuadBlocks) SetAll(p QuadPosition, assoc QuadAssociation) {
	idx, local := p.split()
	b.columns[idx].Set(local, assoc[idx])
}
