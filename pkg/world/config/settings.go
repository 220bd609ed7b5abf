// Package config assembles the seeded noise fields, passes, cave
// generator, decorators and sky-light tuning into a single Settings
// value the pipeline driver runs against, the way the teacher's
// server.Config bundles a running server's tunables.
package config

import (
	"github.com/coderbot16/i73go/pkg/world/biome"
	"github.com/coderbot16/i73go/pkg/world/caves"
	"github.com/coderbot16/i73go/pkg/world/decorate"
	"github.com/coderbot16/i73go/pkg/world/distribution"
	"github.com/coderbot16/i73go/pkg/world/matcher"
	"github.com/coderbot16/i73go/pkg/world/noisefield"
	"github.com/coderbot16/i73go/pkg/world/rng"
	"github.com/coderbot16/i73go/pkg/world/skylight"
	"github.com/coderbot16/i73go/pkg/world/terrain"
)

// Settings bundles everything a region needs generated: seed, the
// seeded noise/shape/paint/cave/decorate/sky-light machinery, and the
// region-wide constants (sea level, cave search radius, the two odd
// coefficient pairs mixed into chunk/quad RNG seeds).
type Settings struct {
	Seed int64

	Shape   terrain.ShapePass
	Paint   terrain.PaintPass
	Sources *terrain.Sources
	Biomes  *biome.Lookup

	Caves      caves.Generator
	CaveRadius int32

	Decorators []decorate.Dispatcher

	Sky skylight.Engine
	Air uint16

	CaveOddA, CaveOddB       int64
	DecorateOddA, DecorateOddB int64
}

// DefaultSettings builds the full Beta 1.7.3 overworld configuration
// for the given world seed.
func DefaultSettings(seed int64) Settings {
	shapeBlocks := terrain.DefaultShapeBlocks()
	paintBlocks := terrain.DefaultPaintBlocks()

	const seaCoord = 63

	// bedrockMax is 0 (disabled) for the default profile: the upstream
	// i73 reference's paint pass (original_source/src/surface.rs,
	// generator/overworld_173.rs) never actually emits a bedrock floor
	// -- paint_stack there is a stub -- so the "customized" profile's
	// golden scenario leaves y=0 as the shape pass's stone, not
	// bedrock. PaintPass.BedrockMax > 0 still implements spec.md
	// §4.8's bedrock walk faithfully for profiles that opt in.
	const bedrockMax = 0

	sources := terrain.NewSources(
		seed,
		noisefield.DefaultTriNoiseSettings(),
		noisefield.DefaultFieldSettings(),
		noisefield.DefaultHeightSettings(),
		noisefield.DefaultClimateSettings(),
	)

	biomes := biome.GenerateLookup(biome.DefaultGrid())

	caveGen := caves.DefaultGenerator(shapeBlocks.Air, shapeBlocks.Air, shapeBlocks.Ocean)

	const leaves = 18 * 16
	opacity := skylight.DefaultOpacity(shapeBlocks.Air, shapeBlocks.Ocean, shapeBlocks.Ice, leaves)

	root := rng.NewJava(seed)
	caveOddA := rng.OddCoefficient(root)
	caveOddB := rng.OddCoefficient(root)
	decorateOddA := rng.OddCoefficient(root)
	decorateOddB := rng.OddCoefficient(root)

	return Settings{
		Seed: seed,

		Shape: terrain.ShapePass{
			Blocks:   shapeBlocks,
			SeaCoord: seaCoord,
		},
		Paint: terrain.PaintPass{
			Blocks:     paintBlocks,
			Biomes:     biomes,
			SeaCoord:   seaCoord,
			BedrockMax: bedrockMax,
		},
		Sources: sources,
		Biomes:  biomes,

		Caves:      caveGen,
		CaveRadius: 8,

		Decorators: defaultDecorators(paintBlocks, shapeBlocks),

		Sky: skylight.Engine{Opacity: opacity},
		Air: shapeBlocks.Air,

		CaveOddA:     caveOddA,
		CaveOddB:     caveOddB,
		DecorateOddA: decorateOddA,
		DecorateOddB: decorateOddB,
	}
}

// defaultDecorators builds the Beta 1.7.3 lake, ore vein, clay and
// plant-clump dispatchers, in the fixed order the pipeline always
// invokes them (lake, seaside vein, vein, plant clump).
func defaultDecorators(paint terrain.PaintBlocks, shape terrain.ShapeBlocks) []decorate.Dispatcher {
	stone := paint.Stone
	air := paint.Air
	ocean := shape.Ocean

	notAir := matcher.IsNot(air)
	isStone := matcher.Is(stone)
	isOcean := matcher.Is(ocean)
	isAir := matcher.Is(air)

	waterLake := decorate.Lake{
		Blocks: decorate.LakeBlocks{
			Open:        isAir,
			IsLiquid:    matcher.AnyOf(ocean, 10*16, 11*16), // water, flowing/still lava share the liquid check
			IsSolid:     isStone,
			Replaceable: notAir,
			Liquid:      ocean,
			Air:         air,
		},
		Settings: decorate.DefaultLakeSettings(),
	}

	lavaLake := decorate.Lake{
		Blocks: decorate.LakeBlocks{
			Open:        isAir,
			IsLiquid:    matcher.AnyOf(ocean, 10*16, 11*16),
			IsSolid:     isStone,
			Replaceable: notAir,
			Liquid:      10 * 16, // stationary lava
			Air:         air,
		},
		Settings: decorate.DefaultLakeSettings(),
	}

	oreVein := func(block uint16, size int32, minY, maxY int32, chance int32) decorate.Dispatcher {
		return decorate.Dispatcher{
			Height: distribution.Linear{Min: minY, Max: maxY},
			Rarity: distribution.Rare{Base: distribution.Constant(1), Chance: chance},
			Decorator: decorate.Vein{
				Blocks: decorate.VeinBlocks{Replace: isStone, Block: block},
				Size:   size,
			},
		}
	}

	clayVein := decorate.Dispatcher{
		Height: distribution.Linear{Min: 0, Max: int32(63)},
		Rarity: distribution.Rare{Base: distribution.Constant(1), Chance: 5},
		Decorator: decorate.SeasideVein{
			Vein: decorate.Vein{
				Blocks: decorate.VeinBlocks{Replace: matcher.AnyOf(12 * 16 /* sand */, ocean), Block: 82 * 16 /* clay */},
				Size:   3,
			},
			Ocean: isOcean,
		},
	}

	tallGrass := decorate.Dispatcher{
		Height: distribution.Centered{Center: 64, Radius: 32},
		Rarity: distribution.Constant(1),
		Decorator: decorate.FlatClump{
			Iterations: 32,
			Horizontal: 8,
			Decorator: decorate.Plant{
				Blocks: decorate.PlantBlocks{
					Block:       31*16 + 1, // tall grass
					Base:        notAir,
					Replaceable: isAir,
				},
			},
		},
	}

	deadBush := decorate.Dispatcher{
		Height: distribution.Centered{Center: 64, Radius: 32},
		Rarity: distribution.Rare{Base: distribution.Constant(1), Chance: 3},
		Decorator: decorate.Plant{
			Blocks: decorate.PlantBlocks{
				Block:       32 * 16, // dead bush
				Base:        matcher.AnyOf(12 * 16 /* sand */),
				Replaceable: isAir,
			},
		},
	}

	return []decorate.Dispatcher{
		{Height: distribution.Centered{Center: 64, Radius: 64}, Rarity: distribution.Rare{Base: distribution.Constant(1), Chance: 4}, Decorator: waterLake},
		{Height: distribution.Linear{Min: 0, Max: 40}, Rarity: distribution.Rare{Base: distribution.Constant(1), Chance: 8}, Decorator: lavaLake},
		clayVein,
		oreVein(16*16, 33, 0, 128, 1),  // coal
		oreVein(15*16, 9, 0, 64, 1),    // iron
		oreVein(14*16, 9, 0, 32, 2),    // gold
		oreVein(73*16, 8, 0, 16, 4),    // redstone
		oreVein(56*16, 8, 0, 16, 12),   // diamond
		oreVein(21*16, 7, 0, 32, 1),    // lapis
		tallGrass,
		deadBush,
	}
}
