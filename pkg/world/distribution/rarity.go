// Package distribution implements the small RNG-driven distributions
// that decide how many times a structure generator fires per chunk
// (rarity) and, later, where its attempts land (height/position
// baselines used by the decorator dispatcher).
package distribution

import "github.com/coderbot16/i73go/pkg/world/rng"

// Rarity draws a non-negative attempt count from r.
type Rarity interface {
	Get(r *rng.Java) int32
}

// Constant always returns the same count.
type Constant int32

func (c Constant) Get(*rng.Java) int32 { return int32(c) }

// HalfNormal3 is half of a normal distribution approximated with three
// nested RNG draws. Average is max/8.
type HalfNormal3 struct {
	Max int32
}

func (h HalfNormal3) Get(r *rng.Java) int32 {
	result := r.NextInt(h.Max + 1)
	result = r.NextInt(result + 1)
	return r.NextInt(result + 1)
}

// Rare extends a base rarity to normally return zero, with a 1/Chance
// probability of returning the base's candidate value instead.
type Rare struct {
	Base   Rarity
	Chance int32
}

func (r2 Rare) Get(r *rng.Java) int32 {
	candidate := r2.Base.Get(r)

	if r.NextInt(r2.Chance) == 0 {
		return candidate
	}
	return 0
}
