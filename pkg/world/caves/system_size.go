package caves

import "github.com/coderbot16/i73go/pkg/world/rng"

// SystemSize counts a tunnel's progress toward its own randomly chosen
// total length, in steps.
type SystemSize struct {
	Current int32
	Max     int32
}

func newSystemSize(r *rng.Java, current, maxChunkRadius int32) SystemSize {
	maxBlockRadius := maxChunkRadius*16 - 16
	max := maxBlockRadius - r.NextInt(maxBlockRadius/4)
	return SystemSize{Current: current, Max: max}
}

func (s *SystemSize) step() { s.Current++ }

func (s SystemSize) done() bool { return s.Current >= s.Max }

func (s SystemSize) shouldSplit(splitThreshold *int32) bool {
	return splitThreshold != nil && s.Current == *splitThreshold
}

// split decides where, if anywhere, a tunnel of this size will branch
// into two. The draw always happens, even when blobSizeFactor rules
// out a split, so later draws from r stay in lockstep with the
// reference.
func (s SystemSize) split(r *rng.Java, blobSizeFactor float32) *int32 {
	threshold := r.NextInt(s.Max/2) + s.Max/4

	if blobSizeFactor > 1.0 {
		return &threshold
	}
	return nil
}
