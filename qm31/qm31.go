// Package qm31 implements the quartic "secure" extension field
// QM31 = CM31[u] / (u^2 - 2 - i), used as the challenge and sampling field
// for the polynomial core.
package qm31

import (
	"fmt"

	"github.com/vybium/circle-stark-core/cm31"
	"github.com/vybium/circle-stark-core/m31"
)

// QM31 represents A + B*u with A, B in CM31, where u^2 = 2 + i.
type QM31 struct {
	A, B cm31.CM31
}

// rSquared is the constant u^2 = 2 + i that Mul multiplies the b*d term by.
var rSquared = cm31.CM31{A: m31.New(2), B: m31.One}

// Zero is the additive identity.
var Zero = QM31{cm31.Zero, cm31.Zero}

// One is the multiplicative identity.
var One = QM31{cm31.One, cm31.Zero}

// New builds A + B*u.
func New(a, b cm31.CM31) QM31 { return QM31{a, b} }

// FromBase embeds a base-field element.
func FromBase(a m31.F31) QM31 { return QM31{cm31.FromBase(a), cm31.Zero} }

// FromCM31 embeds a CM31 element.
func FromCM31(a cm31.CM31) QM31 { return QM31{a, cm31.Zero} }

// IsZero reports whether both components are zero.
func (z QM31) IsZero() bool { return z.A.IsZero() && z.B.IsZero() }

// Add returns z + w.
func (z QM31) Add(w QM31) QM31 { return QM31{z.A.Add(w.A), z.B.Add(w.B)} }

// Sub returns z - w.
func (z QM31) Sub(w QM31) QM31 { return QM31{z.A.Sub(w.A), z.B.Sub(w.B)} }

// Neg returns -z.
func (z QM31) Neg() QM31 { return QM31{z.A.Neg(), z.B.Neg()} }

// Mul returns z * w using (a+bu)(c+du) = (ac + bd*u^2) + (ad+bc)u.
func (z QM31) Mul(w QM31) QM31 {
	ac := z.A.Mul(w.A)
	bd := z.B.Mul(w.B)
	ad := z.A.Mul(w.B)
	bc := z.B.Mul(w.A)
	return QM31{ac.Add(bd.Mul(rSquared)), ad.Add(bc)}
}

// MulCM31 scales z by a CM31 coefficient.
func (z QM31) MulCM31(c cm31.CM31) QM31 { return QM31{z.A.Mul(c), z.B.Mul(c)} }

// MulBase scales z by a base-field coefficient.
func (z QM31) MulBase(c m31.F31) QM31 { return QM31{z.A.MulBase(c), z.B.MulBase(c)} }

// Square returns z * z.
func (z QM31) Square() QM31 { return z.Mul(z) }

// ComplexConjugate conjugates both inner CM31 components (i -> -i in A and
// B) while leaving u fixed. It is not a field automorphism of QM31, since it
// maps u^2 = 2+i to 2-i.
func (z QM31) ComplexConjugate() QM31 {
	return QM31{z.A.ComplexConjugate(), z.B.ComplexConjugate()}
}

// FrobeniusConjugate applies u -> -u, the order-2 automorphism of QM31
// that fixes the CM31 subfield.
func (z QM31) FrobeniusConjugate() QM31 { return QM31{z.A, z.B.Neg()} }

// Norm returns the full-tower norm down to F31: the CM31 norm of
// z*FrobeniusConjugate(z) = A^2 - (2+i)*B^2.
func (z QM31) Norm() m31.F31 {
	return z.A.Square().Sub(z.B.Square().Mul(rSquared)).Norm()
}

// Inverse returns 1/z = (A - B*u) / (A^2 - (2+i)*B^2), inverting the
// denominator in CM31.
func (z QM31) Inverse() (QM31, error) {
	if z.IsZero() {
		return Zero, fmt.Errorf("qm31: cannot invert zero")
	}
	denomInv, err := z.A.Square().Sub(z.B.Square().Mul(rSquared)).Inverse()
	if err != nil {
		return Zero, fmt.Errorf("qm31: %w", err)
	}
	return QM31{z.A.Mul(denomInv), z.B.Neg().Mul(denomInv)}, nil
}

// Equal reports whether z and w denote the same element.
func (z QM31) Equal(w QM31) bool { return z.A.Equal(w.A) && z.B.Equal(w.B) }

// String renders "(A)+(B)u".
func (z QM31) String() string { return fmt.Sprintf("(%s)+(%s)u", z.A, z.B) }
