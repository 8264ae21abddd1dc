package qm31

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vybium/circle-stark-core/cm31"
	"github.com/vybium/circle-stark-core/m31"
)

func sample() QM31 {
	return New(cm31.New(m31.New(2), m31.New(3)), cm31.New(m31.New(5), m31.New(7)))
}

func TestMulInverseRoundtrip(t *testing.T) {
	z := sample()
	inv, err := z.Inverse()
	require.NoError(t, err)
	assert.True(t, z.Mul(inv).Equal(One))
}

func TestFrobeniusConjugateInvolution(t *testing.T) {
	z := sample()
	assert.True(t, z.FrobeniusConjugate().FrobeniusConjugate().Equal(z))
}

func TestNormLandsInBaseField(t *testing.T) {
	z := sample()
	n := z.Norm()
	w := z.Mul(z.FrobeniusConjugate())
	assert.True(t, FromBase(n).Equal(w.Mul(FromCM31(w.A.ComplexConjugate()))))
}

func TestSecureColumnPackUnpack(t *testing.T) {
	values := []QM31{sample(), One, Zero}
	sc := FromSlice(values)
	require.Equal(t, len(values), sc.Len())
	for i, v := range values {
		assert.Truef(t, sc.At(i).Equal(v), "index %d", i)
	}
	assert.Equal(t, values, sc.ToSlice())
}

func TestSecureColumnAdd(t *testing.T) {
	a := FromSlice([]QM31{One, sample()})
	b := FromSlice([]QM31{One, sample()})
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.At(0).Equal(One.Add(One)))
	assert.True(t, sum.At(1).Equal(sample().Add(sample())))
}

func TestSecureColumnAddLengthMismatch(t *testing.T) {
	a := FromSlice([]QM31{One})
	b := FromSlice([]QM31{One, sample()})
	_, err := a.Add(b)
	assert.Error(t, err)
}
