// Package decorate implements the per-quad decoration pass: lakes,
// ore veins and plant clumps scattered across a 2x2 column window
// once shape, paint and caves have already run.
package decorate

import (
	"errors"
	"fmt"

	"github.com/coderbot16/i73go/pkg/world/distribution"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

// ErrSpilled is returned by a Decorator whose placement position fell
// outside the quad's centered window. Dispatcher.Generate treats it as
// a bug in the decorator and panics.
var ErrSpilled = errors.New("decorate: position spilled out of quad")

// Decorator places a single feature at a quad-relative position.
type Decorator interface {
	Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error
}

// Dispatcher draws Rarity attempts per quad, each picking a random
// column-local (x, z) and a Height-distributed y, then invoking
// Decorator at the corresponding centered quad position.
type Dispatcher struct {
	Height    distribution.Distribution
	Rarity    distribution.Rarity
	Decorator Decorator
}

// Generate runs every attempt this quad's rarity draw allows. The quad
// window is sized so a dispatch point (always within the centered
// [8,24) range FromCentered produces) can never itself spill; a
// Decorator reporting ErrSpilled at that point indicates the decorator
// escaped its bounded window, a bug the driver surfaces immediately
// rather than silently dropping the feature.
func (d Dispatcher) Generate(quad *voxel.Quad, r *rng.Java) {
	count := d.Rarity.Get(r)
	for i := int32(0); i < count; i++ {
		x := uint8(r.NextInt(16))
		y := uint8(d.Height.Next(r))
		z := uint8(r.NextInt(16))

		at := voxel.FromCentered(x, y, z)
		if err := d.Decorator.Generate(quad, r, at); errors.Is(err, ErrSpilled) {
			panic(fmt.Sprintf("decorate: dispatch position %+v spilled out of quad", at))
		}
	}
}
