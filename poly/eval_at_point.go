package poly

import (
	"github.com/vybium/circle-stark-core/bitops"
	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/qm31"
)

// piQM31 returns 2x^2-1 over QM31, the secure-field instance of the
// doubling map the FFT basis is tied to.
func piQM31(x qm31.QM31) qm31.QM31 {
	return x.Square().Add(x.Square()).Sub(qm31.One)
}

func addQM31(a, b qm31.QM31) qm31.QM31 { return a.Add(b) }
func mulQM31(a, b qm31.QM31) qm31.QM31 { return a.Mul(b) }
func identityQM31(v qm31.QM31) qm31.QM31 { return v }

// EvalAtPoint evaluates poly directly at an arbitrary secure-field circle
// point, without going through a CircleEvaluation. The mapping sequence
// y, x, pi(x), pi^2(x), ... is reversed to ..., pi(x), x, y and the
// coefficient tree is folded (bitops.Fold) against it, so coefficient index
// bit 0 pairs with y, bit 1 with x and bit j with pi^(j-1)(x): the same
// layout Evaluate produces, and one that Extend's zero padding leaves
// unchanged.
func EvalAtPoint(poly CirclePoly, point circle.Point[qm31.QM31]) qm31.QM31 {
	if poly.LogSize == 0 {
		return qm31.FromBase(poly.Coeffs[0])
	}

	mappings := make([]qm31.QM31, poly.LogSize)
	mappings[0] = point.Y
	x := point.X
	for i := uint32(1); i < poly.LogSize; i++ {
		mappings[i] = x
		x = piQM31(x)
	}
	for i, j := 0, len(mappings)-1; i < j; i, j = i+1, j-1 {
		mappings[i], mappings[j] = mappings[j], mappings[i]
	}

	return bitops.Fold(poly.Coeffs, mappings, qm31.FromBase, addQM31, mulQM31)
}
