// Package pipeline sequences shape, paint, cave-carving, decoration
// and sky-light into a single per-region driver, emitting column
// snapshots ready for the file-format layer.
package pipeline

import "github.com/coderbot16/i73go/pkg/world/voxel"

// ChunkSnapshot is one 16-tall slice of a finished column, ready for
// the file-format layer to serialize.
type ChunkSnapshot struct {
	Blocks    *voxel.Chunk
	SkyLight  *voxel.ChunkNibbles
	BlockLight voxel.ChunkNibbles
}

// ColumnSnapshot packages one fully generated column: its 16 chunk
// slices, biome map and heightmap, plus the population flags a
// file-format writer needs.
type ColumnSnapshot struct {
	X, Z int32

	Chunks    [16]ChunkSnapshot
	Heightmap [256]uint32
	Biomes    [256]byte

	TerrainPopulated bool
	LightPopulated   bool
}

// newColumnSnapshot packages col/sky/heightmap/biomes at (x, z) into a
// ColumnSnapshot, both passes already complete.
func newColumnSnapshot(x, z int32, col *voxel.Column, sky *voxel.SkyColumn, heightmap [256]uint32, biomes [256]byte) ColumnSnapshot {
	var snap ColumnSnapshot
	snap.X, snap.Z = x, z
	snap.Heightmap = heightmap
	snap.Biomes = biomes
	snap.TerrainPopulated = true
	snap.LightPopulated = true

	for i := range snap.Chunks {
		snap.Chunks[i] = ChunkSnapshot{
			Blocks:   col.Chunks[i],
			SkyLight: sky.Chunks[i],
		}
	}

	return snap
}
