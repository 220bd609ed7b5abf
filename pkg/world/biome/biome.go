package biome

// Followup is one step of a surface's subsurface block chain: after
// max_depth cells of the previous layer, switch to block.
type Followup struct {
	Block    uint16
	MaxDepth uint32
}

// Surface describes the paint pass's vertical block chain for a
// biome: the single top block, the fill block beneath it, then any
// Followup layers (e.g. desert's sandstone band under sand).
type Surface struct {
	Top   uint16
	Fill  uint16
	Chain []Followup
}

func (s Surface) clone() Surface {
	chain := make([]Followup, len(s.Chain))
	copy(chain, s.Chain)
	return Surface{Top: s.Top, Fill: s.Fill, Chain: chain}
}

// Biome names a point in climate space: its paint-pass surface chain,
// a single-character legacy ID, and a display name.
type Biome struct {
	Surface Surface
	ID      rune
	Name    string
}

// Clone returns a deep copy safe to store in more than one Segmented
// cell without aliasing the surface chain.
func (b Biome) Clone() Biome {
	return Biome{Surface: b.Surface.clone(), ID: b.ID, Name: b.Name}
}
