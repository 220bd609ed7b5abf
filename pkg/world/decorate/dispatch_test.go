package decorate

import (
	"testing"

	"github.com/coderbot16/i73go/pkg/world/distribution"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

type countingDecorator struct {
	calls int
}

func (c *countingDecorator) Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error {
	c.calls++
	return nil
}

func TestDispatcherGenerateRunsRarityCount(t *testing.T) {
	quad := newTestQuad(0)
	counter := &countingDecorator{}

	d := Dispatcher{
		Height:    distribution.Linear{Min: 0, Max: 10},
		Rarity:    distribution.Constant(5),
		Decorator: counter,
	}

	d.Generate(quad, rng.NewJava(1))

	if counter.calls != 5 {
		t.Fatalf("counter.calls = %d, want 5", counter.calls)
	}
}

func TestDispatcherGenerateZeroRarityNeverCallsDecorator(t *testing.T) {
	quad := newTestQuad(0)
	counter := &countingDecorator{}

	d := Dispatcher{
		Height:    distribution.Constant(0),
		Rarity:    distribution.Constant(0),
		Decorator: counter,
	}

	d.Generate(quad, rng.NewJava(2))

	if counter.calls != 0 {
		t.Fatalf("counter.calls = %d, want 0", counter.calls)
	}
}

type spillingDecorator struct{}

func (spillingDecorator) Generate(quad *voxel.Quad, r *rng.Java, position voxel.QuadPosition) error {
	return ErrSpilled
}

func TestDispatcherPanicsOnSpill(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Dispatcher.Generate to panic when the decorator reports ErrSpilled")
		}
	}()

	quad := newTestQuad(0)
	d := Dispatcher{
		Height:    distribution.Constant(0),
		Rarity:    distribution.Constant(1),
		Decorator: spillingDecorator{},
	}

	d.Generate(quad, rng.NewJava(3))
}
