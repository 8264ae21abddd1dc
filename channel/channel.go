// Package channel defines the Fiat-Shamir transcript contract the
// polynomial core consumes, plus a default SHA3-backed adapter so the
// core's own tests can drive a full commit-sample-fold loop in-process.
package channel

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/circle-stark-core/cm31"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/qm31"
)

// Channel is the transcript the core mixes commitments into and draws
// challenges from.
type Channel interface {
	// MixU64 absorbs a 64-bit value, e.g. a column count or log size.
	MixU64(v uint64)
	// MixRoot absorbs a Merkle commitment root.
	MixRoot(root []byte)
	// DrawFelt draws a uniformly sampled secure-field challenge.
	DrawFelt() qm31.QM31
	// DrawRandomBytes draws n pseudo-random bytes, e.g. for query indices.
	DrawRandomBytes(n int) []byte
	// Digest returns the channel's current transcript digest.
	Digest() []byte
}

// drawF31 rejection-samples a single canonical F31 element from a stream
// of transcript bytes, since F31's range [0, 2^31-1) is not a clean byte
// boundary: a raw 4-byte read is masked to its low 31 bits, and the one
// out-of-range result, P itself, is resampled rather than reduced to 0
// (reducing would bias 0).
func drawF31(stream func(n int) []byte) m31.F31 {
	for {
		b := stream(4)
		v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
		v &= m31.P // keep only the low 31 bits
		if v != m31.P {
			return m31.New(v)
		}
	}
}

// drawQM31 draws four rejection-sampled F31 lanes and assembles them into
// a QM31 challenge, matching qm31.QM31{A: CM31{A,B}, B: CM31{A,B}}'s lane
// order.
func drawQM31(stream func(n int) []byte) qm31.QM31 {
	a0 := drawF31(stream)
	a1 := drawF31(stream)
	b0 := drawF31(stream)
	b1 := drawF31(stream)
	return qm31.New(cm31.New(a0, a1), cm31.New(b0, b1))
}

// SHA3Channel is the default Channel, mirroring the append-then-rehash
// transcript shape of an append-only Fiat-Shamir log: every Mix call
// appends to the running state and rehashes it, and every Draw call
// carves pseudo-random bytes off a counter-extended rehash of that state
// without mutating it.
type SHA3Channel struct {
	state   [32]byte
	drawCtr uint64
}

// NewSHA3Channel returns a channel seeded with an all-zero initial state.
func NewSHA3Channel() *SHA3Channel {
	return &SHA3Channel{}
}

// MixU64 absorbs v's little-endian bytes into the transcript state.
func (c *SHA3Channel) MixU64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	c.absorb(buf[:])
}

// MixRoot absorbs a commitment root into the transcript state.
func (c *SHA3Channel) MixRoot(root []byte) {
	c.absorb(root)
}

func (c *SHA3Channel) absorb(data []byte) {
	h := sha3.New256()
	h.Write(c.state[:])
	h.Write(data)
	copy(c.state[:], h.Sum(nil))
	c.drawCtr = 0
}

// drawBlock derives the i-th 32-byte pseudo-random block from the
// current state without mutating it, so repeated draws within the same
// mix epoch stay independent of each other via the counter suffix.
func (c *SHA3Channel) drawBlock(i uint64) [32]byte {
	var ctrBuf [8]byte
	binary.LittleEndian.PutUint64(ctrBuf[:], i)
	h := sha3.New256()
	h.Write(c.state[:])
	h.Write(ctrBuf[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// DrawRandomBytes returns n pseudo-random bytes drawn from successive
// counter-extended rehashes of the transcript state.
func (c *SHA3Channel) DrawRandomBytes(n int) []byte {
	out := make([]byte, 0, n)
	for len(out) < n {
		block := c.drawBlock(c.drawCtr)
		c.drawCtr++
		out = append(out, block[:]...)
	}
	return out[:n]
}

// DrawFelt draws a QM31 challenge by rejection-sampling four F31 lanes
// from the transcript's pseudo-random byte stream.
func (c *SHA3Channel) DrawFelt() qm31.QM31 {
	return drawQM31(c.DrawRandomBytes)
}

// Digest returns the channel's current transcript state.
func (c *SHA3Channel) Digest() []byte {
	out := make([]byte, len(c.state))
	copy(out, c.state[:])
	return out
}
