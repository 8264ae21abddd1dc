package qm31

import (
	"fmt"

	"github.com/vybium/circle-stark-core/cm31"
	"github.com/vybium/circle-stark-core/m31"
)

// SecureColumn stores a sequence of QM31 values as four parallel F31 lanes,
// so a full trace column of secure-field evaluations can be committed to
// and manipulated one base-field lane at a time. Lane i holds:
//
//	C0[i] = A.A (real part of A)
//	C1[i] = A.B (imag part of A)
//	C2[i] = B.A (real part of B)
//	C3[i] = B.B (imag part of B)
type SecureColumn struct {
	C0, C1, C2, C3 []m31.F31
}

// NewSecureColumn allocates a SecureColumn of the given length, zero-filled.
func NewSecureColumn(n int) SecureColumn {
	return SecureColumn{
		C0: make([]m31.F31, n),
		C1: make([]m31.F31, n),
		C2: make([]m31.F31, n),
		C3: make([]m31.F31, n),
	}
}

// FromSlice packs a slice of QM31 values into lane form.
func FromSlice(values []QM31) SecureColumn {
	sc := NewSecureColumn(len(values))
	for i, v := range values {
		sc.C0[i] = v.A.A
		sc.C1[i] = v.A.B
		sc.C2[i] = v.B.A
		sc.C3[i] = v.B.B
	}
	return sc
}

// Len returns the column length.
func (sc SecureColumn) Len() int { return len(sc.C0) }

// At reconstructs the QM31 value at index i.
func (sc SecureColumn) At(i int) QM31 {
	return QM31{
		A: cm31.New(sc.C0[i], sc.C1[i]),
		B: cm31.New(sc.C2[i], sc.C3[i]),
	}
}

// Set writes v at index i, decomposing it into the four lanes.
func (sc SecureColumn) Set(i int, v QM31) {
	sc.C0[i] = v.A.A
	sc.C1[i] = v.A.B
	sc.C2[i] = v.B.A
	sc.C3[i] = v.B.B
}

// ToSlice unpacks the column back into a slice of QM31 values.
func (sc SecureColumn) ToSlice() []QM31 {
	out := make([]QM31, sc.Len())
	for i := range out {
		out[i] = sc.At(i)
	}
	return out
}

// Lanes returns the four underlying F31 lanes in C0..C3 order, the shape a
// Merkle commitment or a FRI fold-by-lane operation walks over directly.
func (sc SecureColumn) Lanes() [4][]m31.F31 {
	return [4][]m31.F31{sc.C0, sc.C1, sc.C2, sc.C3}
}

// Add returns a new column holding a+b, lane by lane. Both columns must
// share a length.
func (sc SecureColumn) Add(other SecureColumn) (SecureColumn, error) {
	if sc.Len() != other.Len() {
		return SecureColumn{}, fmt.Errorf("qm31: secure column add: length mismatch %d != %d", sc.Len(), other.Len())
	}
	out := NewSecureColumn(sc.Len())
	for i := 0; i < sc.Len(); i++ {
		out.Set(i, sc.At(i).Add(other.At(i)))
	}
	return out, nil
}
