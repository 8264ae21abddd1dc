package circle

import "github.com/vybium/circle-stark-core/m31"

// orderMask keeps an index reduced to Z/2^31.
const orderMask uint32 = (1 << LogOrderBits) - 1

// Index is an element of Z/2^31, the discrete-log exponent of a circle
// point relative to Generator. Addition of indices corresponds to the
// circle group operation on the corresponding points.
type Index struct {
	v uint32
}

// NewIndex reduces v modulo 2^31.
func NewIndex(v uint32) Index { return Index{v & orderMask} }

// Zero is the index of the identity point (1, 0).
var Zero = Index{0}

// generatorPoint is the fixed base point of order 2^31 on the circle
// x^2+y^2=1 over F31.
var generatorPoint = Point[m31.F31]{X: m31.New(2), Y: m31.New(1268011823)}

// identityPoint is (1, 0), the circle group's neutral element.
var identityPoint = Point[m31.F31]{X: m31.One, Y: m31.Zero}

// Generator is the index of the fixed base point (index 1).
var Generator = Index{1}

// SubgroupGen returns the index of a generator of the order-2^logSize
// subgroup: the step 2^(31-logSize).
func SubgroupGen(logSize uint32) Index {
	if logSize > LogOrderBits {
		panic("circle: subgroup log size exceeds group order")
	}
	return Index{(uint32(1) << (LogOrderBits - logSize)) & orderMask}
}

// Add returns i + j mod 2^31.
func (i Index) Add(j Index) Index { return Index{(i.v + j.v) & orderMask} }

// Sub returns i - j mod 2^31.
func (i Index) Sub(j Index) Index { return Index{(i.v - j.v) & orderMask} }

// Neg returns -i mod 2^31.
func (i Index) Neg() Index { return Index{(orderMask + 1 - i.v) & orderMask} }

// MulInt returns i scaled by the non-negative integer n, mod 2^31.
func (i Index) MulInt(n uint64) Index {
	return Index{uint32((uint64(i.v) * n) % (1 << LogOrderBits))}
}

// Double returns i scaled by 2.
func (i Index) Double() Index { return i.MulInt(2) }

// Equal reports whether i and j denote the same index.
func (i Index) Equal(j Index) bool { return i.v == j.v }

// Uint32 exposes the raw residue, mostly for tests and hashing.
func (i Index) Uint32() uint32 { return i.v }

// ToPoint realizes the index as a CirclePoint<F31> via repeated doubling of
// the fixed generator.
func (i Index) ToPoint() Point[m31.F31] {
	return generatorPoint.Mul(uint64(i.v), identityPoint)
}
