package voxel

import "sync"

// RegionSize is the width/height, in columns, of a region sector.
const RegionSize = 32

// GlobalColumnPosition addresses a column in the infinite world.
type GlobalColumnPosition struct {
	X, Z int32
}

func regionKey(p GlobalColumnPosition) [2]int32 {
	return [2]int32{p.X >> 5, p.Z >> 5}
}

func innerIndex(p GlobalColumnPosition) (x, z int) {
	return int(p.X & (RegionSize - 1)), int(p.Z & (RegionSize - 1))
}

type region struct {
	columns [RegionSize * RegionSize]*Column
}

func slotIndex(x, z int) int { return z*RegionSize + x }

// Sparse is a hash map keyed by region (rx, rz), each holding a 32x32
// sector of optional columns. Lookups are O(1) after hashing the
// region key, matching spec.md's world/region index contract.
type Sparse struct {
	mu      sync.RWMutex
	regions map[[2]int32]*region
}

// NewSparse returns an empty world index.
func NewSparse() *Sparse {
	return &Sparse{regions: make(map[[2]int32]*region)}
}

// Get returns the column at p, if present.
func (s *Sparse) Get(p GlobalColumnPosition) (*Column, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.regions[regionKey(p)]
	if !ok {
		return nil, false
	}

	x, z := innerIndex(p)
	col := r.columns[slotIndex(x, z)]
	return col, col != nil
}

// GetOrCreateMut returns the column at p, creating a fresh one filled
// with `fill` at `bits` bits-per-entry if absent.
func (s *Sparse) GetOrCreateMut(p GlobalColumnPosition, bits uint, fill uint16) *Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := regionKey(p)
	r, ok := s.regions[key]
	if !ok {
		r = &region{}
		s.regions[key] = r
	}

	x, z := innerIndex(p)
	idx := slotIndex(x, z)
	if r.columns[idx] == nil {
		r.columns[idx] = NewColumn(bits, fill)
	}
	return r.columns[idx]
}

// SetColumn installs all 16 chunks of col at p at once.
func (s *Sparse) SetColumn(p GlobalColumnPosition, col *Column) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := regionKey(p)
	r, ok := s.regions[key]
	if !ok {
		r = &region{}
		s.regions[key] = r
	}

	x, z := innerIndex(p)
	r.columns[slotIndex(x, z)] = col
}

// Remove clears the column at p.
func (s *Sparse) Remove(p GlobalColumnPosition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.regions[regionKey(p)]
	if !ok {
		return
	}

	x, z := innerIndex(p)
	r.columns[slotIndex(x, z)] = nil
}

// Quad is the 2x2 window of columns (cx,cz)..(cx+1,cz+1) used during
// decoration, ordered SW, SE, NW, NE.
type Quad struct {
	Columns [4]*Column
}

// GetQuadMut fetches simultaneous access to the 2x2 columns anchored
// at p. ok is false if any of the four is absent, since the pipeline
// driver guarantees shape/paint/caves already ran on every column
// before decoration begins.
func (s *Sparse) GetQuadMut(p GlobalColumnPosition) (*Quad, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var q Quad
	offsets := [4]GlobalColumnPosition{
		{X: p.X, Z: p.Z},
		{X: p.X + 1, Z: p.Z},
		{X: p.X, Z: p.Z + 1},
		{X: p.X + 1, Z: p.Z + 1},
	}

	for i, o := range offsets {
		r, ok := s.regions[regionKey(o)]
		if !ok {
			return nil, false
		}

		x, z := innerIndex(o)
		col := r.columns[slotIndex(x, z)]
		if col == nil {
			return nil, false
		}
		q.Columns[i] = col
	}

	return &q, true
}
