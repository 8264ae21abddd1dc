// Package m31 implements arithmetic over the Mersenne-31 prime field
// F31 = Z / (2^31 - 1).
package m31

import "fmt"

// P is the Mersenne-31 prime, 2^31 - 1.
const P uint32 = (1 << 31) - 1

// F31 is an element of the Mersenne-31 prime field, always held reduced
// to the canonical range [0, P).
type F31 struct {
	v uint32
}

// Zero is the additive identity.
var Zero = F31{0}

// One is the multiplicative identity.
var One = F31{1}

// New reduces v modulo P and returns the corresponding field element.
func New(v uint32) F31 {
	return F31{reduce(uint64(v))}
}

// FromInt64 reduces a signed integer modulo P, handling negative inputs.
func FromInt64(v int64) F31 {
	m := int64(P)
	r := v % m
	if r < 0 {
		r += m
	}
	return F31{uint32(r)}
}

// reduce folds a sum of at most two field elements (which fits in 32 bits
// plus one carry bit) back into [0, P) using the Mersenne shortcut
// x mod (2^31-1) == (x & P) + (x >> 31), applied until the value is in range.
func reduce(x uint64) uint32 {
	for x>>31 != 0 {
		x = (x & uint64(P)) + (x >> 31)
	}
	if uint32(x) == P {
		return 0
	}
	return uint32(x)
}

// Uint32 returns the canonical representative in [0, P).
func (a F31) Uint32() uint32 { return a.v }

// IsZero reports whether a is the additive identity.
func (a F31) IsZero() bool { return a.v == 0 }

// Add returns a + b.
func (a F31) Add(b F31) F31 {
	return F31{reduce(uint64(a.v) + uint64(b.v))}
}

// Sub returns a - b.
func (a F31) Sub(b F31) F31 {
	if a.v >= b.v {
		return F31{a.v - b.v}
	}
	return F31{P - (b.v - a.v)}
}

// Neg returns -a.
func (a F31) Neg() F31 {
	if a.v == 0 {
		return a
	}
	return F31{P - a.v}
}

// Mul returns a * b using a 64-bit product followed by Mersenne reduction.
func (a F31) Mul(b F31) F31 {
	return F31{reduceWide(uint64(a.v) * uint64(b.v))}
}

// reduceWide reduces a full 62-bit product modulo P.
func reduceWide(x uint64) uint32 {
	for x>>31 != 0 {
		x = (x & uint64(P)) + (x >> 31)
	}
	if uint32(x) == P {
		return 0
	}
	return uint32(x)
}

// Square returns a * a.
func (a F31) Square() F31 { return a.Mul(a) }

// Double returns a + a.
func (a F31) Double() F31 { return a.Add(a) }

// Pow returns a^e via square-and-multiply.
func (a F31) Pow(e uint64) F31 {
	result := One
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

// Inverse returns the multiplicative inverse of a via Fermat's little
// theorem (a^(P-2)), since P is prime. Returns an error for a zero input.
func (a F31) Inverse() (F31, error) {
	if a.IsZero() {
		return Zero, fmt.Errorf("m31: cannot invert zero")
	}
	return a.Pow(uint64(P) - 2), nil
}

// Equal reports whether a and b denote the same field element.
func (a F31) Equal(b F31) bool { return a.v == b.v }

// String renders the canonical decimal representative.
func (a F31) String() string { return fmt.Sprintf("%d", a.v) }

// ComplexConjugate is the identity on F31; it exists so F31 satisfies the
// same interface shape CM31 and QM31 expose for their conjugation.
func (a F31) ComplexConjugate() F31 { return a }
