package poly

import (
	"fmt"

	"github.com/vybium/circle-stark-core/bitops"
	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/qm31"
	"github.com/vybium/circle-stark-core/starkerr"
)

// LinePoly holds the coefficients of a univariate polynomial in the basis
// {1, x, pi(x), pi(x)*x, pi^2(x), ...}, bit-reversed, with power-of-two
// length over QM31.
type LinePoly struct {
	LogSize uint32
	Coeffs  []qm31.QM31
}

// EvalAtPoint evaluates the line polynomial at x by folding (bitops.Fold)
// with the sequence x, pi(x), pi^2(x), ....
func (p LinePoly) EvalAtPoint(x qm31.QM31) qm31.QM31 {
	if p.LogSize == 0 {
		return p.Coeffs[0]
	}
	factors := make([]qm31.QM31, p.LogSize)
	cur := x
	for i := range factors {
		factors[i] = cur
		cur = piQM31(cur)
	}
	return bitops.Fold(p.Coeffs, factors, identityQM31, addQM31, mulQM31)
}

// LineEvaluation pairs a LineDomain with the polynomial's SecureColumn
// values on it.
type LineEvaluation struct {
	Domain circle.LineDomain
	Values qm31.SecureColumn
}

// NewLineEvaluation wraps domain/values without reordering.
func NewLineEvaluation(domain circle.LineDomain, values qm31.SecureColumn) (LineEvaluation, error) {
	if values.Len() != domain.Size() {
		return LineEvaluation{}, starkerr.New(starkerr.CodeLengthMismatch,
			fmt.Sprintf("line evaluation: values length %d does not match domain size %d", values.Len(), domain.Size()))
	}
	return LineEvaluation{Domain: domain, Values: values}, nil
}

// ibutterflyQM31 is ibutterfly specialized to QM31 values with an F31
// twiddle.
func ibutterflyQM31(v0, v1 qm31.QM31, itwid m31.F31) (qm31.QM31, qm31.QM31) {
	sum := v0.Add(v1)
	diff := v0.Sub(v1).MulBase(itwid)
	return sum, diff
}

// lineIFFT repeatedly halves values against the shrinking domain's
// x-coordinate inverses, in place, per spec 4.4. Callers normalize the
// result by 1/len(values).
func lineIFFT(values []qm31.QM31, domain circle.LineDomain) error {
	if len(values) != domain.Size() {
		return starkerr.New(starkerr.CodeLengthMismatch,
			fmt.Sprintf("line ifft: values length %d does not match domain size %d", len(values), domain.Size()))
	}
	current := domain
	for current.Size() > 1 {
		half := current.Size() / 2
		chunks := len(values) / current.Size()
		for c := 0; c < chunks; c++ {
			base := c * current.Size()
			for i := 0; i < half; i++ {
				x := current.At(i)
				xInv, err := x.Inverse()
				if err != nil {
					return starkerr.Wrap(starkerr.CodeZeroInverse, "line ifft", err)
				}
				values[base+i], values[base+i+half] = ibutterflyQM31(values[base+i], values[base+i+half], xInv)
			}
		}
		current = current.Double()
	}
	return nil
}

// Interpolate bit-reverses values, runs lineIFFT, and normalizes by
// 1/domain.Size(). Values are taken in bit-reversed storage order (the
// order FoldLine consumes): the returned LinePoly evaluates at
// Domain.At(i) to Values.At(BitReverseIndex(i, LogSize)).
func (e LineEvaluation) Interpolate() (LinePoly, error) {
	values := e.Values.ToSlice()
	bitops.BitReverse(values)

	if err := lineIFFT(values, e.Domain); err != nil {
		return LinePoly{}, err
	}

	nInv, err := m31.New(uint32(e.Domain.Size())).Inverse()
	if err != nil {
		return LinePoly{}, starkerr.Wrap(starkerr.CodeZeroInverse, "line evaluation interpolate normalization", err)
	}
	for i := range values {
		values[i] = values[i].MulBase(nInv)
	}

	return LinePoly{LogSize: e.Domain.LogSize(), Coeffs: values}, nil
}
