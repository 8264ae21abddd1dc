package fri

import (
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/poly"
	"github.com/vybium/circle-stark-core/qm31"
	"github.com/vybium/circle-stark-core/starkerr"
)

// Decompose splits a bit-reversed SecureEvaluation over a canonic,
// blowup-2 domain into an in-FFT-space part g and a lambda residue: the
// coefficient of the domain's highest-offset out-of-space monomial.
func Decompose(eval poly.SecureEvaluation[poly.BitReversedOrder]) (poly.SecureEvaluation[poly.BitReversedOrder], qm31.QM31, error) {
	if !eval.Domain.IsCanonic() {
		return poly.SecureEvaluation[poly.BitReversedOrder]{}, qm31.Zero,
			starkerr.New(starkerr.CodeDomainNotCanonic, "decompose: domain is not canonic")
	}

	n := eval.Values.Len()
	half := n / 2

	aSum, bSum := qm31.Zero, qm31.Zero
	for i := 0; i < half; i++ {
		aSum = aSum.Add(eval.Values.At(i))
	}
	for i := half; i < n; i++ {
		bSum = bSum.Add(eval.Values.At(i))
	}

	nInv, err := m31.New(uint32(n)).Inverse()
	if err != nil {
		return poly.SecureEvaluation[poly.BitReversedOrder]{}, qm31.Zero,
			starkerr.Wrap(starkerr.CodeZeroInverse, "decompose normalization", err)
	}
	lambda := aSum.Sub(bSum).MulBase(nInv)

	g := qm31.NewSecureColumn(n)
	for i := 0; i < half; i++ {
		g.Set(i, eval.Values.At(i).Sub(lambda))
	}
	for i := half; i < n; i++ {
		g.Set(i, eval.Values.At(i).Add(lambda))
	}

	out, err := poly.NewSecureEvaluation[poly.BitReversedOrder](eval.Domain, g)
	if err != nil {
		return poly.SecureEvaluation[poly.BitReversedOrder]{}, qm31.Zero, err
	}
	return out, lambda, nil
}
