package circle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vybium/circle-stark-core/m31"
)

func TestGeneratorLiesOnCircle(t *testing.T) {
	p := Generator.ToPoint()
	lhs := p.X.Mul(p.X).Add(p.Y.Mul(p.Y))
	assert.True(t, lhs.Equal(m31.One))
}

func TestIndexAddMatchesPointAdd(t *testing.T) {
	a := NewIndex(17)
	b := NewIndex(31)
	pa := a.ToPoint()
	pb := b.ToPoint()
	assert.True(t, a.Add(b).ToPoint().Equal(pa.Add(pb)))
}

func TestIndexNegIsPointNeg(t *testing.T) {
	a := NewIndex(101)
	assert.True(t, a.Neg().ToPoint().Equal(a.ToPoint().Neg()))
}

func TestSubgroupGenHasClaimedOrder(t *testing.T) {
	g := SubgroupGen(4)
	p := g.ToPoint()
	cur := p
	for i := 1; i < 16; i++ {
		assert.Falsef(t, cur.Equal(identityPoint), "generator order too small at step %d", i)
		cur = cur.Add(p)
	}
	assert.True(t, cur.Equal(identityPoint))
}

func TestCosetAtMatchesIndexAt(t *testing.T) {
	c := NewCoset(NewIndex(7), SubgroupGen(3), 3)
	for i := 0; i < c.Size(); i++ {
		assert.True(t, c.At(i).Equal(c.IndexAt(i).ToPoint()))
	}
}

func TestCosetDoubleHalvesLogSize(t *testing.T) {
	c := Subgroup(5)
	d := c.Double()
	assert.Equal(t, c.LogSize-1, d.LogSize)
	for i := 0; i < d.Size(); i++ {
		assert.True(t, d.At(i).Equal(c.At(i).Double()))
	}
}

func TestHalfOddsSatisfiesCanonicInvariant(t *testing.T) {
	h := HalfOdds(4)
	assert.True(t, h.Initial.MulInt(4).Equal(h.Step))
}

func TestCanonicCosetCircleDomainIsCanonic(t *testing.T) {
	cc := NewCanonicCoset(6)
	d := cc.CircleDomain()
	assert.True(t, d.IsCanonic())
	assert.Equal(t, uint32(6), d.LogSize())
}

func TestDomainSplitRecoversIterationOrder(t *testing.T) {
	cc := NewCanonicCoset(4)
	d := cc.CircleDomain()
	sub, shifts := d.Split(2)
	assert.Equal(t, 1<<2, len(shifts))
	assert.Equal(t, d.HalfCoset.Size(), sub.HalfCoset.Size()*len(shifts))
	for j := 0; j < sub.HalfCoset.Size(); j++ {
		for i := range shifts {
			assert.Truef(t, d.HalfCoset.IndexAt(j*len(shifts)+i).Equal(sub.HalfCoset.IndexAt(j).Add(shifts[i])),
				"sub index %d, shift %d", j, i)
		}
	}
}

func TestLineDomainRejectsXNotUnique(t *testing.T) {
	// Odds(1)'s initial point is an order-4 element, (0, +-1): x == 0.
	_, err := NewLineDomain(Odds(1))
	assert.Error(t, err)
}

func TestLineDomainAcceptsCanonicHalfCoset(t *testing.T) {
	cc := NewCanonicCoset(5)
	_, err := NewLineDomain(cc.HalfCoset())
	assert.NoError(t, err)
}
