package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/qm31"
)

func TestEvalAtPoint2Coef(t *testing.T) {
	p, err := NewCirclePoly(coeffs(3, 5))
	require.NoError(t, err)
	x := qm31.FromBase(m31.New(11))
	y := qm31.FromBase(m31.New(13))
	point := circle.Point[qm31.QM31]{X: x, Y: y}

	got := EvalAtPoint(p, point)
	want := qm31.FromBase(m31.New(3)).Add(qm31.FromBase(m31.New(5)).Mul(y))
	assert.True(t, got.Equal(want))
}

func TestEvalAtPoint4Coef(t *testing.T) {
	p, err := NewCirclePoly(coeffs(2, 3, 5, 7))
	require.NoError(t, err)
	x := qm31.FromBase(m31.New(17))
	y := qm31.FromBase(m31.New(19))
	point := circle.Point[qm31.QM31]{X: x, Y: y}

	got := EvalAtPoint(p, point)
	c0, c1, c2, c3 := qm31.FromBase(m31.New(2)), qm31.FromBase(m31.New(3)), qm31.FromBase(m31.New(5)), qm31.FromBase(m31.New(7))
	want := c0.Add(c1.Mul(y)).Add(c2.Mul(x)).Add(c3.Mul(x).Mul(y))
	assert.True(t, got.Equal(want))
}

// TestEvalAtPointS1LiteralScenario pins the literal worked example: the
// coefficient tree [1,3,2,4] folded at (x=5,y=8) is 1 + 3*5 + 2*8 + 4*5*8 =
// 192. An earlier revision reversed the mapping sequence (y,x) into (x,y)
// before folding, which swapped the roles of the second and third
// coefficients and produced 195 instead.
func TestEvalAtPointS1LiteralScenario(t *testing.T) {
	p, err := NewCirclePoly(coeffs(1, 3, 2, 4))
	require.NoError(t, err)
	point := circle.Point[qm31.QM31]{
		X: qm31.FromBase(m31.New(5)),
		Y: qm31.FromBase(m31.New(8)),
	}

	got := EvalAtPoint(p, point)
	want := qm31.FromBase(m31.New(192))
	assert.True(t, got.Equal(want))
}

func TestEvalAtPointAgreesWithDomainEvaluation(t *testing.T) {
	logSize := uint32(4)
	cc := circle.NewCanonicCoset(logSize)
	domain := cc.CircleDomain()
	twiddles, err := PrecomputeTwiddles(domain.HalfCoset)
	require.NoError(t, err)

	raw := make([]uint32, 1<<logSize)
	for i := range raw {
		raw[i] = uint32(i*3 + 1)
	}
	p, err := NewCirclePoly(coeffs(raw...))
	require.NoError(t, err)

	evaluated, err := Evaluate(p, domain, twiddles)
	require.NoError(t, err)

	// index 0's bit-reversal is 0 regardless of log size, so this spot
	// check sidesteps needing the full bit-reversal permutation.
	dp := domain.At(0)
	qp := circle.Point[qm31.QM31]{X: qm31.FromBase(dp.X), Y: qm31.FromBase(dp.Y)}
	want := EvalAtPoint(p, qp)
	got := qm31.FromBase(evaluated.Values[0])
	assert.True(t, got.Equal(want))
}
