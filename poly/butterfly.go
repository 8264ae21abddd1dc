package poly

import "github.com/vybium/circle-stark-core/m31"

// butterfly returns (v0 + v1*twid, v0 - v1*twid), the forward radix-2 step.
func butterfly(v0, v1, twid m31.F31) (m31.F31, m31.F31) {
	t := v1.Mul(twid)
	return v0.Add(t), v0.Sub(t)
}

// ibutterfly returns (v0 + v1, (v0 - v1)*itwid), the inverse radix-2 step.
func ibutterfly(v0, v1, itwid m31.F31) (m31.F31, m31.F31) {
	sum := v0.Add(v1)
	diff := v0.Sub(v1).Mul(itwid)
	return sum, diff
}

// fftLayerLoop pairs idx0=(h<<(i+1))+l and idx1=idx0+(1<<i) for l in
// [0, 2^i) and applies fn in place.
func fftLayerLoop(values []m31.F31, i, h int, t m31.F31, fn func(v0, v1, t m31.F31) (m31.F31, m31.F31)) {
	for l := 0; l < (1 << i); l++ {
		idx0 := (h << (i + 1)) + l
		idx1 := idx0 + (1 << i)
		values[idx0], values[idx1] = fn(values[idx0], values[idx1], t)
	}
}
