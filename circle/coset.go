package circle

import "github.com/vybium/circle-stark-core/m31"

// Coset represents {initial + i*step : i in [0, 2^logSize)} inside the
// order-2^31 circle group.
type Coset struct {
	Initial Index
	Step    Index
	LogSize uint32
}

// NewCoset builds a Coset from explicit initial/step indices.
func NewCoset(initial, step Index, logSize uint32) Coset {
	return Coset{Initial: initial, Step: step, LogSize: logSize}
}

// Subgroup returns the order-2^logSize subgroup itself (initial = 0).
func Subgroup(logSize uint32) Coset {
	return Coset{Initial: Zero, Step: SubgroupGen(logSize), LogSize: logSize}
}

// Odds returns the coset of "odd" multiples of the order-2^logSize step:
// initial = subgroup generator of order 2^(logSize+1), step = subgroup
// generator of order 2^logSize.
func Odds(logSize uint32) Coset {
	return Coset{Initial: SubgroupGen(logSize + 1), Step: SubgroupGen(logSize), LogSize: logSize}
}

// HalfOdds returns the half-step odd coset used as a CircleDomain's
// half_coset: initial = subgroup generator of order 2^(logSize+2), step =
// subgroup generator of order 2^logSize. Its initial index satisfies
// initial*4 == step, the canonic-domain invariant.
func HalfOdds(logSize uint32) Coset {
	return Coset{Initial: SubgroupGen(logSize + 2), Step: SubgroupGen(logSize), LogSize: logSize}
}

// Size returns 2^LogSize.
func (c Coset) Size() int { return 1 << c.LogSize }

// IndexAt returns the index of the i-th point: initial + i*step.
func (c Coset) IndexAt(i int) Index {
	return c.Initial.Add(c.Step.MulInt(uint64(i)))
}

// At returns the i-th point of the coset.
func (c Coset) At(i int) Point[m31.F31] {
	return c.IndexAt(i).ToPoint()
}

// Iter returns every point of the coset in index order.
func (c Coset) Iter() []Point[m31.F31] {
	out := make([]Point[m31.F31], c.Size())
	for i := range out {
		out[i] = c.At(i)
	}
	return out
}

// IterIndices returns every index of the coset in order.
func (c Coset) IterIndices() []Index {
	out := make([]Index, c.Size())
	for i := range out {
		out[i] = c.IndexAt(i)
	}
	return out
}

// Double returns {2*initial, 2*step, LogSize-1}.
func (c Coset) Double() Coset {
	return Coset{Initial: c.Initial.Double(), Step: c.Step.Double(), LogSize: c.LogSize - 1}
}

// Conjugate returns the coset negated: {-initial, -step, LogSize}, the set
// of conjugate points of c.
func (c Coset) Conjugate() Coset {
	return Coset{Initial: c.Initial.Neg(), Step: c.Step.Neg(), LogSize: c.LogSize}
}

// Shift returns c offset by delta: {initial+delta, step, LogSize}.
func (c Coset) Shift(delta Index) Coset {
	return Coset{Initial: c.Initial.Add(delta), Step: c.Step, LogSize: c.LogSize}
}
