package distribution

import "github.com/coderbot16/i73go/pkg/world/rng"

// Distribution draws a signed value from r. Unlike Rarity's
// non-negative attempt counts, a Distribution is used for a
// decorator's height (and, via Centered, horizontal jitter) --
// anywhere the dispatcher needs a single placement coordinate rather
// than a repeat count.
type Distribution interface {
	Next(r *rng.Java) int32
}

// ChanceOrdering selects whether Chance draws its payload before or
// after the probability check -- both orders are exercised by the
// reference's decorator configs, so both are kept as reusable
// combinators rather than picking one.
type ChanceOrdering int

const (
	AlwaysGeneratePayload ChanceOrdering = iota
	CheckChanceBeforePayload
)

// Chance wraps a base Distribution with a 1/Chance probability of
// returning its value instead of 0. Chance<=1 always returns the
// payload without touching the RNG.
type Chance struct {
	Chance   int32
	Ordering ChanceOrdering
	Base     Distribution
}

func (c Chance) Next(r *rng.Java) int32 {
	switch c.Ordering {
	case CheckChanceBeforePayload:
		if c.Chance <= 1 || r.NextInt(c.Chance) == 0 {
			return c.Base.Next(r)
		}
		return 0
	default: // AlwaysGeneratePayload
		payload := c.Base.Next(r)
		if c.Chance <= 1 || r.NextInt(c.Chance) == 0 {
			return payload
		}
		return 0
	}
}

// Linear draws uniformly from [min, max].
type Linear struct {
	Min, Max int32
}

func (l Linear) Next(r *rng.Java) int32 {
	return l.Min + r.NextInt(l.Max-l.Min+1)
}

// Packed2 packs more of its output toward Min using two RNG draws.
type Packed2 struct {
	Min, LinearStart, Max int32
}

func (p Packed2) Next(r *rng.Java) int32 {
	initial := r.NextInt(p.Max - p.LinearStart + 2)
	return p.Min + r.NextInt(initial+p.LinearStart-p.Min)
}

// Packed3 packs heavily toward 0 using three nested RNG draws; its
// average is max/8.
type Packed3 struct {
	Max int32
}

func (p Packed3) Next(r *rng.Java) int32 {
	result := r.NextInt(p.Max + 1)
	result = r.NextInt(result + 1)
	return r.NextInt(result + 1)
}

// Centered draws symmetrically around Center with a maximum variance
// of Radius on either side.
type Centered struct {
	Center, Radius int32
}

func (c Centered) Next(r *rng.Java) int32 {
	return r.NextInt(c.Radius) + r.NextInt(c.Radius) + c.Center - c.Radius
}

// Next lets Constant (already a Rarity) double as a Distribution,
// since both simply hand back a fixed value without touching the RNG.
func (c Constant) Next(*rng.Java) int32 { return int32(c) }
