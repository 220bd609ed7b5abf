// Package biome implements the temperature/rainfall grid that maps a
// sampled Climate to a concrete Biome, plus the precomputed 64x64
// Lookup table the terrain passes actually query.
package biome

// Segment is one boundary of a Segmented range: every value at or
// below Upper (and above the previous segment's Upper) maps to Value.
type Segment[T any] struct {
	Upper float64
	Value T
}

// Segmented is a sorted list of half-open ranges over [-inf, +inf),
// each carrying a value, with a default `out` value for any point past
// the last boundary. It backs both the rainfall axis of a biome Grid
// and, nested one level deeper, each rainfall band's temperature axis.
type Segmented[T any] struct {
	segments []Segment[T]
	out      T
}

// NewSegmented returns an empty range with everything mapping to def.
func NewSegmented[T any](def T) *Segmented[T] {
	return &Segmented[T]{out: def}
}

// segmentIndex finds the first segment whose Upper bound covers at.
// The last segment (or any segment, if alwaysInclusive) also matches
// exactly at its own Upper bound, so boundary points resolve to the
// segment they terminate rather than falling through to `out`.
func (s *Segmented[T]) segmentIndex(at float64, alwaysInclusive bool) (int, bool) {
	lastIdx := len(s.segments) - 1

	for i, seg := range s.segments {
		if at < seg.Upper || ((i == lastIdx || alwaysInclusive) && at == seg.Upper) {
			return i, true
		}
	}

	return -1, false
}

// AddBoundary inserts (or overwrites) a boundary at upper carrying
// value, keeping segments sorted by Upper.
func (s *Segmented[T]) AddBoundary(upper float64, value T) {
	idx, ok := s.segmentIndex(upper, true)
	if !ok {
		s.segments = append(s.segments, Segment[T]{Upper: upper, Value: value})
		return
	}

	if s.segments[idx].Upper == upper {
		s.segments[idx].Value = value
		return
	}

	s.segments = insertSegment(s.segments, idx, Segment[T]{Upper: upper, Value: value})
}

// Get returns the value of the segment covering at, or the default if
// at falls past every boundary.
func (s *Segmented[T]) Get(at float64) T {
	if idx, ok := s.segmentIndex(at, true); ok {
		return s.segments[idx].Value
	}
	return s.out
}

// ForAllAligned first aligns boundaries at lower and upper (inserting
// split segments as needed via clone/above), then calls on for every
// segment strictly within (lower, upper].
func (s *Segmented[T]) ForAllAligned(lower, upper float64, above func() T, clone func(T) T, on func(*T)) {
	s.Align(lower, upper, above, clone)

	var lastUpper float64
	haveLast := false

	for i := range s.segments {
		isAbove := true
		if haveLast {
			isAbove = lower <= lastUpper
		}

		if isAbove && lower < s.segments[i].Upper && s.segments[i].Upper <= upper {
			on(&s.segments[i].Value)
		}

		lastUpper = s.segments[i].Upper
		haveLast = true
	}
}

// Align guarantees a segment boundary exists at exactly lower and at
// exactly upper.
func (s *Segmented[T]) Align(lower, upper float64, above func() T, clone func(T) T) {
	splitIdx, ok := s.segmentIndex(lower, true)
	if !ok {
		splitIdx = len(s.segments) - 1
	}
	s.split(splitIdx, lower, above, clone)

	endIdx, ok := s.segmentIndex(upper, true)
	if !ok {
		endIdx = len(s.segments) - 1
	}
	s.split(endIdx, upper, above, clone)
}

func (s *Segmented[T]) split(index int, newBoundary float64, above func() T, clone func(T) T) {
	if s.segments[index].Upper == newBoundary {
		return
	}

	before := s.segments[index].Upper > newBoundary

	var insertIdx int
	var value T
	if before {
		insertIdx = index
		value = clone(s.segments[index].Value)
	} else {
		insertIdx = index + 1
		value = above()
	}

	s.segments = insertSegment(s.segments, insertIdx, Segment[T]{Upper: newBoundary, Value: value})
}

func insertSegment[T any](segs []Segment[T], idx int, v Segment[T]) []Segment[T] {
	segs = append(segs, Segment[T]{})
	copy(segs[idx+1:], segs[idx:])
	segs[idx] = v
	return segs
}
