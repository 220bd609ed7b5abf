package skylight

import "github.com/coderbot16/i73go/pkg/world/voxel"

const fullLight = 15

// GenerateHeightmap returns, for every (x, z) column, the lowest y at
// or above which every block equals target -- the height open sky
// starts at for that column.
func GenerateHeightmap(col *voxel.Column, target uint16) [256]uint32 {
	var heights [256]uint32

	for x := uint8(0); x < 16; x++ {
		for z := uint8(0); z < 16; z++ {
			y := 255
			for y >= 0 && col.GetBlock(voxel.NewBlockPosition(x, uint8(y), z)) == target {
				y--
			}
			heights[voxel.NewLayerPosition(x, z).ZX()] = uint32(y + 1)
		}
	}

	return heights
}

// State holds one column's in-progress sky-light values and the
// heightmap they were seeded from.
type State struct {
	Sky       *voxel.SkyColumn
	Heightmap [256]uint32
}

// Direction names the horizontal face a relaxed edge cell spills
// across into the neighboring column.
type Direction int

const (
	DirMinusX Direction = iota
	DirPlusX
	DirMinusZ
	DirPlusZ
)

// BorderSpill records a column-edge cell that changed during a Step,
// which the driver must mirror into (and re-check against) the
// neighboring column for the cross-column fixed point.
type BorderSpill struct {
	At  voxel.BlockPosition
	Dir Direction
}

// Engine seeds and relaxes sky-light for a column.
type Engine struct {
	Opacity *Opacity
}

// Seed builds a fresh State for col, fully lighting every cell at or
// above the heightmap and queuing the first row below it for
// relaxation.
func (e Engine) Seed(col *voxel.Column, air uint16) (*State, *Queue) {
	st := &State{Sky: voxel.NewSkyColumn(), Heightmap: GenerateHeightmap(col, air)}
	q := NewQueue()

	for x := uint8(0); x < 16; x++ {
		for z := uint8(0); z < 16; z++ {
			height := st.Heightmap[voxel.NewLayerPosition(x, z).ZX()]
			for y := height; y < 256; y++ {
				st.Sky.Set(voxel.NewBlockPosition(x, uint8(y), z), fullLight)
			}
			if height > 0 {
				q.Enqueue(voxel.NewBlockPosition(x, uint8(height-1), z))
			}
		}
	}

	q.Flip()
	return st, q
}

func neighborMax(sky *voxel.SkyColumn, p voxel.BlockPosition) uint8 {
	max := uint8(0)
	consider := func(n voxel.BlockPosition, ok bool) {
		if !ok {
			return
		}
		if v := sky.Get(n); v > max {
			max = v
		}
	}
	consider(p.MinusX())
	consider(p.PlusX())
	consider(p.MinusZ())
	consider(p.PlusZ())
	consider(p.MinusY())
	consider(p.PlusY())
	return max
}

// Step drains q to its local fixed point, relaxing every queued cell
// against its neighbors' current values and re-queuing neighbors
// whenever a cell's value rises. It returns every column-edge cell
// that changed along the way, for the driver's cross-column pass.
func (e Engine) Step(col *voxel.Column, st *State, q *Queue) []BorderSpill {
	var spills []BorderSpill

	for {
		p, ok := q.Next()
		if !ok {
			if !q.Flip() {
				break
			}
			continue
		}

		opacity := e.Opacity.Get(col.GetBlock(p))

		max := neighborMax(st.Sky, p)
		newValue := uint8(0)
		if max > opacity {
			newValue = max - opacity
		}

		if newValue == st.Sky.Get(p) {
			continue
		}

		st.Sky.Set(p, newValue)
		q.EnqueueNeighbors(p)

		switch {
		case p.X() == 0:
			spills = append(spills, BorderSpill{At: p, Dir: DirMinusX})
		case p.X() == 15:
			spills = append(spills, BorderSpill{At: p, Dir: DirPlusX})
		}
		switch {
		case p.Z() == 0:
			spills = append(spills, BorderSpill{At: p, Dir: DirMinusZ})
		case p.Z() == 15:
			spills = append(spills, BorderSpill{At: p, Dir: DirPlusZ})
		}
	}

	return spills
}

// ApplyBorder injects neighborValue (the current light at the
// mirrored cell across a column boundary) at at, and if it raises at's
// value, drains the resulting relaxation with Step.
func (e Engine) ApplyBorder(col *voxel.Column, st *State, q *Queue, at voxel.BlockPosition, neighborValue uint8) []BorderSpill {
	opacity := e.Opacity.Get(col.GetBlock(at))

	candidate := uint8(0)
	if neighborValue > opacity {
		candidate = neighborValue - opacity
	}

	if candidate <= st.Sky.Get(at) {
		return nil
	}

	st.Sky.Set(at, candidate)
	q.EnqueueNeighbors(at)
	return e.Step(col, st, q)
}
