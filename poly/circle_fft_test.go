package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/qm31"
)

func coeffs(vals ...uint32) []m31.F31 {
	out := make([]m31.F31, len(vals))
	for i, v := range vals {
		out[i] = m31.New(v)
	}
	return out
}

func TestFFTRoundtrip(t *testing.T) {
	for logSize := uint32(1); logSize <= 6; logSize++ {
		cc := circle.NewCanonicCoset(logSize)
		domain := cc.CircleDomain()
		twiddles, err := PrecomputeTwiddles(domain.HalfCoset)
		require.NoError(t, err)

		raw := make([]uint32, 1<<logSize)
		for i := range raw {
			raw[i] = uint32(i*7 + 3)
		}
		p, err := NewCirclePoly(coeffs(raw...))
		require.NoError(t, err)

		evalued, err := Evaluate(p, domain, twiddles)
		require.NoErrorf(t, err, "log size %d", logSize)

		back, err := Interpolate(evalued, twiddles)
		require.NoErrorf(t, err, "log size %d", logSize)

		for i := range p.Coeffs {
			assert.Truef(t, p.Coeffs[i].Equal(back.Coeffs[i]), "log size %d, coeff %d", logSize, i)
		}
	}
}

func TestExtendPreservesValues(t *testing.T) {
	logSize := uint32(3)
	cc := circle.NewCanonicCoset(logSize)
	domain := cc.CircleDomain()
	twiddles, err := PrecomputeTwiddles(domain.HalfCoset)
	require.NoError(t, err)

	raw := make([]uint32, 1<<logSize)
	for i := range raw {
		raw[i] = uint32(i*13 + 1)
	}
	p, err := NewCirclePoly(coeffs(raw...))
	require.NoError(t, err)

	extended, err := Extend(p, logSize+2)
	require.NoError(t, err)
	assert.Equal(t, 1<<(logSize+2), len(extended.Coeffs))

	bigDomain := circle.NewCanonicCoset(logSize + 2).CircleDomain()
	bigTwiddles, err := PrecomputeTwiddles(bigDomain.HalfCoset)
	require.NoError(t, err)

	smallEval, err := Evaluate(p, domain, twiddles)
	require.NoError(t, err)
	bigEval, err := Evaluate(extended, bigDomain, bigTwiddles)
	require.NoError(t, err)

	// Extend only appends zero coefficients, so p and extended agree at
	// every point: the big-domain evaluation matches p, and the small-domain
	// evaluation matches extended. Index 0's bit-reversal is 0 at any log
	// size, so Values[0] is the value at Domain.At(0).
	bp := bigDomain.At(0)
	assert.True(t, qm31.FromBase(bigEval.Values[0]).Equal(
		EvalAtPoint(p, circle.Point[qm31.QM31]{X: qm31.FromBase(bp.X), Y: qm31.FromBase(bp.Y)})))
	sp := domain.At(0)
	assert.True(t, qm31.FromBase(smallEval.Values[0]).Equal(
		EvalAtPoint(extended, circle.Point[qm31.QM31]{X: qm31.FromBase(sp.X), Y: qm31.FromBase(sp.Y)})))
}

func TestExtendRejectsShrinking(t *testing.T) {
	p, err := NewCirclePoly(coeffs(1, 2, 3, 4))
	require.NoError(t, err)
	_, err = Extend(p, 1)
	assert.Error(t, err)
}

func TestNewCirclePolyRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewCirclePoly(coeffs(1, 2, 3))
	assert.Error(t, err)
}

func TestEvaluateRejectsTwiddleMismatch(t *testing.T) {
	p, err := NewCirclePoly(coeffs(1, 2, 3, 4, 5, 6, 7, 8))
	require.NoError(t, err)
	domain := circle.NewCanonicCoset(3).CircleDomain()
	wrongTwiddles, err := PrecomputeTwiddles(circle.NewCanonicCoset(2).CircleDomain().HalfCoset)
	require.NoError(t, err)
	_, err = Evaluate(p, domain, wrongTwiddles)
	assert.Error(t, err)
}
