// Package bitops provides the bit-reversal and power-of-two helpers shared
// by the circle FFT engine and the FRI folding step.
package bitops

import "golang.org/x/exp/constraints"

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

// Log2 returns the base-2 logarithm of n, or -1 if n is not a power of two.
func Log2(n int) int {
	if !IsPowerOfTwo(n) {
		return -1
	}
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// NextPowerOfTwo returns the smallest power of two >= n, for any ordered
// integer type.
func NextPowerOfTwo[T constraints.Integer](n T) T {
	if n <= 0 {
		return 1
	}
	if IsPowerOfTwo(int(n)) {
		return n
	}
	power := T(1)
	for power < n {
		power <<= 1
	}
	return power
}

// BitReverseIndex reverses the low logSize bits of i.
func BitReverseIndex(i, logSize uint32) uint32 {
	var r uint32
	for b := uint32(0); b < logSize; b++ {
		r = (r << 1) | ((i >> b) & 1)
	}
	return r
}

// BitReverse permutes s in place into bit-reversed order. len(s) must be a
// power of two.
func BitReverse[T any](s []T) {
	n := len(s)
	if !IsPowerOfTwo(n) {
		return
	}
	logSize := uint32(Log2(n))
	for i := 0; i < n; i++ {
		j := int(BitReverseIndex(uint32(i), logSize))
		if j > i {
			s[i], s[j] = s[j], s[i]
		}
	}
}

// Fold recursively combines values under the factor sequence factors, per
// the coefficient-tree fold the circle FFT's point evaluation uses:
// fold([v], []) = embed(v); otherwise values splits into two halves and
// factors into head+tail, and the result is
// fold(values[:mid], tail) + fold(values[mid:], tail)*head. len(values)
// must be a power of two and len(factors) == log2(len(values)).
func Fold[V any, F any](values []V, factors []F, embed func(V) F, add func(F, F) F, mul func(F, F) F) F {
	if len(values) == 1 {
		return embed(values[0])
	}
	mid := len(values) / 2
	head, tail := factors[0], factors[1:]
	left := Fold(values[:mid], tail, embed, add, mul)
	right := Fold(values[mid:], tail, embed, add, mul)
	return add(left, mul(right, head))
}

// RepeatValue returns a slice of length n where every element is v.
func RepeatValue[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}
	return out
}
