package poly

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vybium/circle-stark-core/bitops"
	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/starkerr"
)

// batchInverseChunk bounds the temporary memory of a single batch-inverse
// call inside precompute: inputs larger than this are inverted in chunks.
const batchInverseChunk = 1 << 12

// TwiddleTree holds the forward/inverse twiddle buffers the circle FFT
// engine needs to transform over rootCoset and its iterated halvings.
// Each layer is stored bit-reversed; one sentinel element pads the total
// length to a power of two.
type TwiddleTree struct {
	RootCoset circle.Coset
	Twiddles  []m31.F31
	ITwiddles []m31.F31
}

// PrecomputeTwiddles builds the forward and inverse twiddle buffers for a
// root coset of size 2^m: m layers of halving x-coordinates (largest first,
// each bit-reversed in place), plus one sentinel element.
func PrecomputeTwiddles(rootCoset circle.Coset) (*TwiddleTree, error) {
	m := rootCoset.LogSize
	log.Debug().Uint32("log_size", m).Msg("precomputing twiddles")

	twiddles := make([]m31.F31, 0, 1<<m)
	c := rootCoset
	for c.LogSize > 0 {
		half := c.Size() / 2
		layer := make([]m31.F31, half)
		for i := 0; i < half; i++ {
			layer[i] = c.At(i).X
		}
		bitops.BitReverse(layer)
		twiddles = append(twiddles, layer...)
		c = c.Double()
	}
	twiddles = append(twiddles, m31.One) // sentinel

	itwiddles, err := batchInverseChunked(twiddles)
	if err != nil {
		return nil, fmt.Errorf("poly: precompute twiddles: %w", err)
	}

	return &TwiddleTree{RootCoset: rootCoset, Twiddles: twiddles, ITwiddles: itwiddles}, nil
}

// batchInverseChunked inverts in in fixed-size chunks to bound temporary
// memory, falling back to a single pass when in is smaller than the chunk.
func batchInverseChunked(in []m31.F31) ([]m31.F31, error) {
	if len(in) <= batchInverseChunk {
		return m31.BatchInverse(in)
	}
	out := make([]m31.F31, len(in))
	for start := 0; start < len(in); start += batchInverseChunk {
		end := start + batchInverseChunk
		if end > len(in) {
			end = len(in)
		}
		chunk, err := m31.BatchInverse(in[start:end])
		if err != nil {
			return nil, err
		}
		copy(out[start:end], chunk)
	}
	return out, nil
}

// domainLineTwiddlesFromTree slices a forward/inverse twiddle buffer into
// logSize-1 layer slices for a domain of the given log-size. Entry k holds
// the twiddles of FFT layer k+1: entry 0 is the largest slice and the last
// entry is the single element just before the sentinel.
func domainLineTwiddlesFromTree(logSize uint32, twiddles []m31.F31) [][]m31.F31 {
	n := len(twiddles)
	layers := make([][]m31.F31, logSize-1)
	for i := uint32(0); i+1 < logSize; i++ {
		lo := n - 2*(1<<i)
		hi := n - (1 << i)
		layers[logSize-2-i] = twiddles[lo:hi]
	}
	return layers
}

// circleTwiddlesFromLineTwiddles derives the layer-0 twiddle sequence for
// the circle FFT's outermost butterflies from the first (largest)
// line-twiddle layer: for each adjacent pair (x,y), emit (y,-y,-x,x).
func circleTwiddlesFromLineTwiddles(layer0 []m31.F31) []m31.F31 {
	out := make([]m31.F31, 0, len(layer0)*2)
	for i := 0; i+1 < len(layer0); i += 2 {
		x, y := layer0[i], layer0[i+1]
		out = append(out, y, y.Neg(), x.Neg(), x)
	}
	return out
}

// matchesDomain reports whether t.RootCoset, doubled zero or more times,
// equals domainHalf: the TwiddleMismatch check evaluate/interpolate must perform.
func matchesDomain(t *TwiddleTree, domainHalf circle.Coset) error {
	root := t.RootCoset
	for root.LogSize > domainHalf.LogSize {
		root = root.Double()
	}
	if root.LogSize != domainHalf.LogSize {
		return starkerr.New(starkerr.CodeTwiddleMismatch,
			"twiddle tree root coset log size does not match domain half coset")
	}
	if !root.Initial.Equal(domainHalf.Initial) || !root.Step.Equal(domainHalf.Step) {
		return starkerr.New(starkerr.CodeTwiddleMismatch,
			"twiddle tree root coset does not match domain half coset")
	}
	return nil
}
