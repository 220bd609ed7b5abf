package rng

import "math"

const trigTableSize = 16384

// Trig is a table-driven sin/cos matching the reference's fixed-point
// quantization and quadrant-symmetry reconstruction bit for bit.
type Trig struct {
	sin [trigTableSize]float32
}

var defaultTrig = NewTrig()

// NewTrig builds the sine quarter-table: sin(i * 2π/65536) for the
// first quadrant only, stored as IEEE-754 float32.
func NewTrig() *Trig {
	t := &Trig{}
	for i := 0; i < trigTableSize; i++ {
		t.sin[i] = float32(math.Sin(float64(i) * math.Pi * 2.0 / 65536.0))
	}
	return t
}

// sinIndex reconstructs the full-period value from a 16-bit quantized
// index using the sign/reflection symmetry bits: bit15 is the output
// sign, bit14 selects the mirrored half of the quarter-table.
func (t *Trig) sinIndex(idx uint16) float32 {
	negative := idx&0x8000 != 0
	reflect := idx&0x4000 != 0

	sub := idx & 0x3FFF

	var value float32
	if reflect {
		mirror := trigTableSize - sub
		if mirror > trigTableSize-1 {
			mirror = trigTableSize - 1
		}
		value = t.sin[mirror]
	} else {
		value = t.sin[sub]
	}

	if negative {
		value = -value
	}

	return value
}

// Sin samples sin(x) via the quantized lookup table.
func (t *Trig) Sin(x float32) float32 {
	idx := uint16(int32(x * 10430.38))
	return t.sinIndex(idx)
}

// Cos samples cos(x) as sin(x + quarter period).
func (t *Trig) Cos(x float32) float32 {
	idx := uint16(int32(x*10430.38) + 16384)
	return t.sinIndex(idx)
}

// Sin samples sin(x) using the shared default table.
func Sin(x float32) float32 { return defaultTrig.Sin(x) }

// Cos samples cos(x) using the shared default table.
func Cos(x float32) float32 { return defaultTrig.Cos(x) }
