// Package grind implements the proof-of-work grinding step a prover runs
// against its transcript channel before drawing query indices, raising
// the cost of a query-phase grinding attack.
package grind

import (
	"math/bits"

	"github.com/vybium/circle-stark-core/channel"
)

// GrindOps grinds a nonce into ch until its post-mix digest has at least
// powBits leading zero bits, then returns the accepted nonce.
type GrindOps interface {
	Grind(ch channel.Channel, powBits uint32) uint64
}

// NonceSearch is the default GrindOps: a sequential nonce search over
// fresh scratch SHA3 channels seeded with the caller's digest (MixRoot)
// and then the nonce (MixU64). The caller's channel is only read, never
// mixed into; the winning nonce is returned for the caller to mix.
type NonceSearch struct{}

// Grind implements GrindOps.
func (NonceSearch) Grind(ch channel.Channel, powBits uint32) uint64 {
	if powBits == 0 {
		return 0
	}
	base := ch.Digest()
	for nonce := uint64(0); ; nonce++ {
		scratch := channel.NewSHA3Channel()
		scratch.MixRoot(base)
		scratch.MixU64(nonce)
		if leadingZeroBits(scratch.Digest()) >= powBits {
			return nonce
		}
	}
}

// leadingZeroBits counts the number of leading zero bits in digest,
// reading whole bytes first and falling back to bits.LeadingZeros8 only
// on the first nonzero byte.
func leadingZeroBits(digest []byte) uint32 {
	var count uint32
	for _, b := range digest {
		if b == 0 {
			count += 8
			continue
		}
		count += uint32(bits.LeadingZeros8(b))
		break
	}
	return count
}
