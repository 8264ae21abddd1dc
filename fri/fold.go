// Package fri implements the FRI folding primitives the polynomial core
// exposes: fold_line, fold_circle_into_line, and the coset-diff decompose
// step used to peel a lambda residue off an evaluation before folding.
package fri

import (
	"fmt"

	"github.com/vybium/circle-stark-core/bitops"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/poly"
	"github.com/vybium/circle-stark-core/qm31"
	"github.com/vybium/circle-stark-core/starkerr"
)

// FoldStep and CircleToLineFoldStep are both 1: each fold halves a
// domain's size exactly once.
const (
	FoldStep             = 1
	CircleToLineFoldStep = 1
)

// ibutterflyQM31 is the inverse radix-2 step for QM31 values with an F31
// twiddle, shared by fold_line and fold_circle_into_line.
func ibutterflyQM31(v0, v1 qm31.QM31, itwid m31.F31) (qm31.QM31, qm31.QM31) {
	sum := v0.Add(v1)
	diff := v0.Sub(v1).MulBase(itwid)
	return sum, diff
}

// FoldLine halves a bit-reversed LineEvaluation of size n>=2 under
// challenge alpha, returning a LineEvaluation over the doubled domain.
func FoldLine(eval poly.LineEvaluation, alpha qm31.QM31) (poly.LineEvaluation, error) {
	n := eval.Values.Len()
	if n < 2 {
		return poly.LineEvaluation{}, starkerr.New(starkerr.CodeLengthMismatch,
			fmt.Sprintf("fold line: domain size %d is below 2", n))
	}
	logN := uint32(0)
	for 1<<logN < n {
		logN++
	}

	out := qm31.NewSecureColumn(n / 2)
	for i := 0; i < n/2; i++ {
		x := eval.Domain.At(int(bitops.BitReverseIndex(uint32(i<<1), logN)))
		xInv, err := x.Inverse()
		if err != nil {
			return poly.LineEvaluation{}, starkerr.Wrap(starkerr.CodeZeroInverse, "fold line", err)
		}
		f0, f1 := ibutterflyQM31(eval.Values.At(2*i), eval.Values.At(2*i+1), xInv)
		out.Set(i, f0.Add(alpha.Mul(f1)))
	}

	return poly.LineEvaluation{Domain: eval.Domain.Double(), Values: out}, nil
}

// FoldCircleIntoLine accumulates a bit-reversed SecureEvaluation src (size
// 2m) into dst (a LineEvaluation of size m) under challenge alpha, scaling
// dst's existing contents by alpha^2 so repeated calls compose correctly
// across FRI rounds.
func FoldCircleIntoLine(dst *poly.LineEvaluation, src poly.SecureEvaluation[poly.BitReversedOrder], alpha qm31.QM31) error {
	m := dst.Values.Len()
	if src.Values.Len() != 2*m {
		return starkerr.New(starkerr.CodeLengthMismatch,
			fmt.Sprintf("fold circle into line: src length %d != 2*dst length %d", src.Values.Len(), m))
	}
	logSrc := uint32(0)
	for 1<<logSrc < src.Values.Len() {
		logSrc++
	}
	alpha2 := alpha.Mul(alpha)

	for i := 0; i < m; i++ {
		p := src.Domain.At(int(bitops.BitReverseIndex(uint32(i<<1), logSrc)))
		yInv, err := p.Y.Inverse()
		if err != nil {
			return starkerr.Wrap(starkerr.CodeZeroInverse, "fold circle into line", err)
		}
		f0, f1 := ibutterflyQM31(src.Values.At(2*i), src.Values.At(2*i+1), yInv)
		fPrime := alpha.Mul(f1).Add(f0)
		dst.Values.Set(i, dst.Values.At(i).Mul(alpha2).Add(fPrime))
	}
	return nil
}
