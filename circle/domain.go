package circle

import "github.com/vybium/circle-stark-core/m31"

// Domain is the disjoint union of a half_coset and its conjugate: the
// evaluation domain the circle FFT engine operates on. Iteration order is
// half_coset forward, then its conjugate forward.
type Domain struct {
	HalfCoset Coset
}

// NewDomain wraps half as a CircleDomain.
func NewDomain(half Coset) Domain {
	return Domain{HalfCoset: half}
}

// LogSize returns log2 of the domain's size: HalfCoset.LogSize + 1.
func (d Domain) LogSize() uint32 { return d.HalfCoset.LogSize + 1 }

// Size returns the domain's size, 2^LogSize().
func (d Domain) Size() int { return 1 << d.LogSize() }

// IsCanonic reports the canonic-domain invariant: HalfCoset.Initial*4 ==
// HalfCoset.Step.
func (d Domain) IsCanonic() bool {
	return d.HalfCoset.Initial.MulInt(4).Equal(d.HalfCoset.Step)
}

// IndexAt returns the index of the i-th domain point: half.IndexAt(i) for
// i < |half|, else the negation of half.IndexAt(i-|half|).
func (d Domain) IndexAt(i int) Index {
	half := d.HalfCoset.Size()
	if i < half {
		return d.HalfCoset.IndexAt(i)
	}
	return d.HalfCoset.IndexAt(i - half).Neg()
}

// At returns the i-th domain point.
func (d Domain) At(i int) Point[m31.F31] {
	return d.IndexAt(i).ToPoint()
}

// Split partitions the domain into a sub-domain of log-size LogSize()-k
// under 2^k shift offsets, such that interleaving the sub-domain under
// each shift recovers the original iteration order.
func (d Domain) Split(k uint32) (sub Domain, shifts []Index) {
	subHalf := Coset{Initial: d.HalfCoset.Initial, Step: d.HalfCoset.Step.MulInt(1 << k), LogSize: d.HalfCoset.LogSize - k}
	sub = Domain{HalfCoset: subHalf}
	shifts = make([]Index, 1<<k)
	for i := range shifts {
		shifts[i] = d.HalfCoset.Step.MulInt(uint64(i))
	}
	return sub, shifts
}

// CanonicCoset wraps Coset::odds(logSize), a coset of size 2^logSize
// (logSize >= 1) whose circle_domain is the natural evaluation domain for a
// trace of that log-size.
type CanonicCoset struct {
	coset   Coset
	logSize uint32
}

// NewCanonicCoset builds the canonic coset of the given log-size.
func NewCanonicCoset(logSize uint32) CanonicCoset {
	return CanonicCoset{coset: Odds(logSize), logSize: logSize}
}

// LogSize returns the coset's log-size.
func (c CanonicCoset) LogSize() uint32 { return c.logSize }

// Size returns 2^LogSize.
func (c CanonicCoset) Size() int { return 1 << c.logSize }

// Coset exposes the underlying odds(logSize) coset.
func (c CanonicCoset) Coset() Coset { return c.coset }

// HalfCoset returns half_odds(logSize-1), the half-coset underlying this
// canonic coset's circle domain.
func (c CanonicCoset) HalfCoset() Coset {
	return HalfOdds(c.logSize - 1)
}

// CircleDomain returns CircleDomain::new(half_odds(logSize-1)): size 2^logSize,
// reordered into the conjugate-pair layout.
func (c CanonicCoset) CircleDomain() Domain {
	return NewDomain(c.HalfCoset())
}
