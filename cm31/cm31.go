// Package cm31 implements the quadratic extension CM31 = F31[i] / (i^2 + 1)
// of the Mersenne-31 field.
package cm31

import (
	"fmt"

	"github.com/vybium/circle-stark-core/m31"
)

// CM31 represents A + B*i with A, B in F31.
type CM31 struct {
	A, B m31.F31
}

// Zero is the additive identity.
var Zero = CM31{m31.Zero, m31.Zero}

// One is the multiplicative identity.
var One = CM31{m31.One, m31.Zero}

// New builds A + B*i.
func New(a, b m31.F31) CM31 { return CM31{a, b} }

// FromBase embeds a base-field element as A + 0*i.
func FromBase(a m31.F31) CM31 { return CM31{a, m31.Zero} }

// IsZero reports whether both components are zero.
func (z CM31) IsZero() bool { return z.A.IsZero() && z.B.IsZero() }

// Add returns z + w.
func (z CM31) Add(w CM31) CM31 { return CM31{z.A.Add(w.A), z.B.Add(w.B)} }

// Sub returns z - w.
func (z CM31) Sub(w CM31) CM31 { return CM31{z.A.Sub(w.A), z.B.Sub(w.B)} }

// Neg returns -z.
func (z CM31) Neg() CM31 { return CM31{z.A.Neg(), z.B.Neg()} }

// Mul returns z * w using (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z CM31) Mul(w CM31) CM31 {
	ac := z.A.Mul(w.A)
	bd := z.B.Mul(w.B)
	ad := z.A.Mul(w.B)
	bc := z.B.Mul(w.A)
	return CM31{ac.Sub(bd), ad.Add(bc)}
}

// MulBase returns z scaled by a base-field element.
func (z CM31) MulBase(c m31.F31) CM31 { return CM31{z.A.Mul(c), z.B.Mul(c)} }

// Square returns z * z.
func (z CM31) Square() CM31 { return z.Mul(z) }

// ComplexConjugate returns A - B*i.
func (z CM31) ComplexConjugate() CM31 { return CM31{z.A, z.B.Neg()} }

// Norm returns z * conj(z), which always lands in the base field: A^2 + B^2.
func (z CM31) Norm() m31.F31 { return z.A.Square().Add(z.B.Square()) }

// Inverse returns 1/z, computed as conj(z) / Norm(z).
func (z CM31) Inverse() (CM31, error) {
	if z.IsZero() {
		return Zero, fmt.Errorf("cm31: cannot invert zero")
	}
	nInv, err := z.Norm().Inverse()
	if err != nil {
		return Zero, fmt.Errorf("cm31: %w", err)
	}
	return z.ComplexConjugate().MulBase(nInv), nil
}

// Equal reports whether z and w denote the same element.
func (z CM31) Equal(w CM31) bool { return z.A.Equal(w.A) && z.B.Equal(w.B) }

// String renders "A+Bi".
func (z CM31) String() string { return fmt.Sprintf("%s+%si", z.A, z.B) }
