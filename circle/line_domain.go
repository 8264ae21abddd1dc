package circle

import (
	"math/bits"

	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/starkerr"
)

// LogOrder returns log2 of i's order in the Z/2^31 group: 0 for the
// identity, otherwise 31 minus the 2-adic valuation of its residue.
func (i Index) LogOrder() uint32 {
	if i.v == 0 {
		return 0
	}
	return LogOrderBits - uint32(bits.TrailingZeros32(i.v))
}

// LineDomain holds the x-coordinates of a Coset whose points have pairwise
// distinct x-coordinates, the 1-dimensional evaluation domain LinePoly is
// defined over.
type LineDomain struct {
	coset Coset
}

// NewLineDomain validates coset and wraps it as a LineDomain. Validity:
// size <= 2 is accepted trivially except the degenerate size-2 coset whose
// initial point has x=0: a size-2 coset steps by the order-2 element, so
// its points are (x,y) and (-x,-y), which share their x-coordinate exactly
// when x=0. Otherwise requires ord(initial) >= ord(step) + 2.
func NewLineDomain(coset Coset) (LineDomain, error) {
	if coset.Size() <= 2 {
		if coset.Size() == 2 {
			p := coset.At(0)
			if p.X.IsZero() {
				return LineDomain{}, starkerr.New(starkerr.CodeCosetXNotUnique,
					"line domain: size-2 coset with initial.x == 0")
			}
		}
		return LineDomain{coset: coset}, nil
	}
	if coset.Initial.LogOrder() < coset.Step.LogOrder()+2 {
		return LineDomain{}, starkerr.New(starkerr.CodeCosetXNotUnique,
			"line domain: ord(initial) must be at least ord(step)+2")
	}
	return LineDomain{coset: coset}, nil
}

// Size returns the domain's point count.
func (d LineDomain) Size() int { return d.coset.Size() }

// LogSize returns log2(Size()).
func (d LineDomain) LogSize() uint32 { return d.coset.LogSize }

// At returns the x-coordinate of the i-th coset point.
func (d LineDomain) At(i int) m31.F31 {
	return d.coset.At(i).X
}

// Coset exposes the underlying coset.
func (d LineDomain) Coset() Coset { return d.coset }

// Double returns the LineDomain over the coset's double; it is always
// valid since doubling only lowers the step's order.
func (d LineDomain) Double() LineDomain {
	return LineDomain{coset: d.coset.Double()}
}
