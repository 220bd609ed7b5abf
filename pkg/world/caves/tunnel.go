package caves

import "github.com/coderbot16/i73go/pkg/world/rng"

const (
	notchPi  float32 = 3.141593
	piDiv2   float32 = 1.570796
	minHSize float64 = 1.5
)

// Tunnel is a branching worm: a wandering Position plus the RNG and
// size bookkeeping that decide how long it runs, where it splits, and
// how wide each carved room is.
type Tunnel struct {
	state          *rng.Java
	position       Position
	size           SystemSize
	splitThreshold *int32
	pitchKeep      float32 // 0.92 steep, 0.7 normal
	blobSizeFactor float32
}

func newNormalTunnel(r *rng.Java, cx, cz int32, block [3]float64, maxChunkRadius int32) *Tunnel {
	position := newPositionWithAngles(cx, cz, block, r.NextFloat32()*notchPi*2.0, (r.NextFloat32()-0.5)/4.0)
	blobSizeFactor := r.NextFloat32()*2.0 + r.NextFloat32()

	state := rng.NewJava(r.NextLong())

	size := newSystemSize(state, 0, maxChunkRadius)
	split := size.split(state, blobSizeFactor)

	pitchKeep := float32(0.7)
	if state.NextInt(6) == 0 {
		pitchKeep = 0.92
	}

	return &Tunnel{
		state:          state,
		position:       position,
		size:           size,
		splitThreshold: split,
		pitchKeep:      pitchKeep,
		blobSizeFactor: blobSizeFactor,
	}
}

// splitOff builds one of the two children produced when a tunnel
// splits. blobSizeFactor is drawn from t's own sub-RNG, but the
// child's entire state is reseeded from parentRNG -- the parent Caves
// iterator's RNG, not t's. That mismatch is MC-7196: it is the source
// of visible cross-chunk seams and must not be "corrected".
func (t *Tunnel) splitOff(parentRNG *rng.Java, yawOffset float32) *Tunnel {
	position := newPositionWithAngles(t.position.cx, t.position.cz, t.position.block, t.position.yaw+yawOffset, t.position.pitch/3.0)
	blobSizeFactor := t.state.NextFloat32()*0.5 + 0.5

	state := rng.NewJava(parentRNG.NextLong())

	size := t.size
	split := size.split(state, blobSizeFactor)

	pitchKeep := float32(0.7)
	if state.NextInt(6) == 0 {
		pitchKeep = 0.92
	}

	return &Tunnel{
		state:          state,
		position:       position,
		size:           size,
		splitThreshold: split,
		pitchKeep:      pitchKeep,
		blobSizeFactor: blobSizeFactor,
	}
}

func (t *Tunnel) split(cvs *Caves) (*Tunnel, *Tunnel) {
	a := t.splitOff(cvs.state, -piDiv2)
	b := t.splitOff(cvs.state, piDiv2)
	return a, b
}

// isChunkUnreachable bails a tunnel out early once it is judged too
// far from the chunk to ever carve into it again. The reference mixes
// a squared distance with a linear remaining-steps term -- MC-7200,
// an arithmetic bug that is preserved exactly rather than fixed.
func (t *Tunnel) isChunkUnreachable() bool {
	remaining := float64(t.size.Max - t.size.Current)
	buffer := float64(t.blobSizeFactor*2.0 + 16.0)

	return t.position.distanceFromChunkSquared()-remaining*remaining > buffer*buffer
}

func (t *Tunnel) nextBlobSize() BlobSize {
	radius := minHSize + float64(rng.Sin(float32(t.size.Current)*notchPi/float32(t.size.Max))*t.blobSizeFactor)
	return sphereBlobSize(radius)
}

// outcomeKind names what a single Tunnel.step call asks the carver to
// do next.
type outcomeKind int

const (
	outcomeSplit outcomeKind = iota
	outcomeConstrict
	outcomeUnreachable
	outcomeOutOfChunk
	outcomeCarve
	outcomeDone
)

type outcome struct {
	kind outcomeKind
	blob *Blob
}

// step advances the tunnel by one unit and decides what happens this
// iteration. size.step() is only called on the branches that consume
// a unit of progress (Constrict, OutOfChunk, Carve); Split, Unreachable
// and Done leave the counter untouched, matching the reference.
func (t *Tunnel) step() outcome {
	if t.size.done() {
		return outcome{kind: outcomeDone}
	}

	t.position.step(t.state, t.pitchKeep)

	if t.size.shouldSplit(t.splitThreshold) {
		return outcome{kind: outcomeSplit}
	}

	if t.state.NextInt(4) == 0 {
		t.size.step()
		return outcome{kind: outcomeConstrict}
	}

	if t.isChunkUnreachable() {
		return outcome{kind: outcomeUnreachable}
	}

	size := t.nextBlobSize()

	if t.position.outOfChunk(size) {
		t.size.step()
		return outcome{kind: outcomeOutOfChunk}
	}

	blob := t.position.blob(size)
	t.size.step()

	return outcome{kind: outcomeCarve, blob: &blob}
}
