package fri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/poly"
	"github.com/vybium/circle-stark-core/qm31"
)

func TestDecomposeReconstructsOriginal(t *testing.T) {
	logSize := uint32(3)
	domain := circle.NewCanonicCoset(logSize).CircleDomain()
	n := domain.Size()

	values := make([]qm31.QM31, n)
	for i := range values {
		values[i] = qm31.FromBase(m31.New(uint32(i*17 + 3)))
	}
	sc := qm31.FromSlice(values)
	eval, err := poly.NewSecureEvaluation[poly.BitReversedOrder](domain, sc)
	require.NoError(t, err)

	g, lambda, err := Decompose(eval)
	require.NoError(t, err)

	half := n / 2
	for i := 0; i < half; i++ {
		assert.Truef(t, g.Values.At(i).Add(lambda).Equal(eval.Values.At(i)), "index %d", i)
	}
	for i := half; i < n; i++ {
		assert.Truef(t, g.Values.At(i).Sub(lambda).Equal(eval.Values.At(i)), "index %d", i)
	}
}

// TestDecomposeRecoversKnownLambda checks Decompose against a
// hand-verified closed form rather than reusing its own aSum/bSum
// formula: for the smallest nontrivial canonic domain (n=2), Evaluate's
// L=1 case computes v0=c0+c1*y0, v1=c0-c1*y0, so the "odd in y" part is
// exactly c1*y0 and the "even" part is the constant c0. Decompose must
// recover lambda=c1*y0 and g=[c0,c0], independent of whatever internal
// formula it uses to get there.
func TestDecomposeRecoversKnownLambda(t *testing.T) {
	logSize := uint32(1)
	domain := circle.NewCanonicCoset(logSize).CircleDomain()
	twiddles, err := poly.PrecomputeTwiddles(domain.HalfCoset)
	require.NoError(t, err)

	c0, c1 := m31.New(10), m31.New(3)
	p, err := poly.NewCirclePoly([]m31.F31{c0, c1})
	require.NoError(t, err)

	evaluated, err := poly.Evaluate(p, domain, twiddles)
	require.NoError(t, err)

	values := make([]qm31.QM31, len(evaluated.Values))
	for i, v := range evaluated.Values {
		values[i] = qm31.FromBase(v)
	}
	eval, err := poly.NewSecureEvaluation[poly.BitReversedOrder](domain, qm31.FromSlice(values))
	require.NoError(t, err)

	g, lambda, err := Decompose(eval)
	require.NoError(t, err)

	y0 := domain.HalfCoset.At(0).Y
	wantLambda := qm31.FromBase(c1.Mul(y0))
	wantG := qm31.FromBase(c0)

	assert.True(t, lambda.Equal(wantLambda))
	assert.True(t, g.Values.At(0).Equal(wantG))
	assert.True(t, g.Values.At(1).Equal(wantG))
}

func TestDecomposeRejectsNonCanonicDomain(t *testing.T) {
	half := circle.Coset{Initial: circle.NewIndex(3), Step: circle.SubgroupGen(2), LogSize: 2}
	domain := circle.NewDomain(half)
	require.False(t, domain.IsCanonic())

	sc := qm31.NewSecureColumn(domain.Size())
	eval, err := poly.NewSecureEvaluation[poly.BitReversedOrder](domain, sc)
	require.NoError(t, err)

	_, _, err = Decompose(eval)
	assert.Error(t, err)
}
