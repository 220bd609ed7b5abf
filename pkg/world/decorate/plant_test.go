package decorate

import (
	"testing"

	"github.com/coderbot16/i73go/pkg/world/matcher"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/voxel"
)

func TestPlantGeneratePlacesOnMatchingBase(t *testing.T) {
	quad := newTestQuad(testAir)
	quad.EnsureAvailable(testStone)
	blocks, palettes := quad.FreezePalettes()
	below := voxel.NewQuadPosition(8, 31, 8)
	assoc, _ := palettes.ReverseLookupAll(testStone)
	blocks.SetAll(below, assoc)

	plant := Plant{Blocks: PlantBlocks{
		Block:       31 * 16,
		Base:        matcher.Is(testStone),
		Replaceable: matcher.Is(testAir),
	}}

	position := voxel.NewQuadPosition(8, 32, 8)
	if err := plant.Generate(quad, rng.NewJava(1), position); err != nil {
		t.Fatalf("Plant.Generate returned error: %v", err)
	}

	if got := quad.GetBlock(position); got != 31*16 {
		t.Fatalf("GetBlock(position) = %d, want %d", got, 31*16)
	}
}

func TestPlantGenerateSkipsWithoutMatchingBase(t *testing.T) {
	quad := newTestQuad(testAir)

	plant := Plant{Blocks: PlantBlocks{
		Block:       31 * 16,
		Base:        matcher.Is(testStone),
		Replaceable: matcher.Is(testAir),
	}}

	position := voxel.NewQuadPosition(8, 32, 8)
	if err := plant.Generate(quad, rng.NewJava(2), position); err != nil {
		t.Fatalf("Plant.Generate returned error: %v", err)
	}

	if got := quad.GetBlock(position); got != testAir {
		t.Fatalf("GetBlock(position) = %d, want unchanged air", got)
	}
}

type recordingDecorator struct {
	positions []voxel.QuadPosition
}

func (r *recordingDecorator) Generate(quad *voxel.Quad, rnd *rng.Java, position voxel.QuadPosition) error {
	r.positions = append(r.positions, position)
	return nil
}

func TestClumpGeneratesIterationsAttempts(t *testing.T) {
	quad := newTestQuad(testAir)
	rec := &recordingDecorator{}

	clump := Clump{Iterations: 10, Horizontal: 4, Vertical: 2, Decorator: rec}
	center := voxel.NewQuadPosition(16, 100, 16)

	if err := clump.Generate(quad, rng.NewJava(3), center); err != nil {
		t.Fatalf("Clump.Generate returned error: %v", err)
	}

	if len(rec.positions) == 0 {
		t.Fatalf("expected Clump to dispatch at least one in-bounds attempt")
	}
	if len(rec.positions) > 10 {
		t.Fatalf("Clump dispatched %d attempts, want at most 10", len(rec.positions))
	}
}

func TestFlatClumpStaysOnSingleYLevel(t *testing.T) {
	quad := newTestQuad(testAir)
	rec := &recordingDecorator{}

	clump := FlatClump{Iterations: 20, Horizontal: 8, Decorator: rec}
	center := voxel.NewQuadPosition(16, 70, 16)

	if err := clump.Generate(quad, rng.NewJava(4), center); err != nil {
		t.Fatalf("FlatClump.Generate returned error: %v", err)
	}

	for _, p := range rec.positions {
		if p.Y != 70 {
			t.Fatalf("FlatClump dispatched at Y=%d, want 70", p.Y)
		}
	}
}
