package poly

import (
	"fmt"

	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/starkerr"
)

// CirclePoly holds the coefficients of a polynomial in the circle FFT's
// tensor-product basis {y, x, pi(x), pi^2(x), ...}, bit-reversed, with
// power-of-two length.
type CirclePoly struct {
	LogSize uint32
	Coeffs  []m31.F31
}

// NewCirclePoly validates coeffs has power-of-two length and wraps it.
func NewCirclePoly(coeffs []m31.F31) (CirclePoly, error) {
	n := len(coeffs)
	if n == 0 || n&(n-1) != 0 {
		return CirclePoly{}, starkerr.New(starkerr.CodeNonPowerOfTwo,
			fmt.Sprintf("circle poly: coefficient count %d is not a power of two", n))
	}
	logSize := 0
	for 1<<logSize < n {
		logSize++
	}
	return CirclePoly{LogSize: uint32(logSize), Coeffs: coeffs}, nil
}

// CircleEvaluation pairs a circle domain with the polynomial's values on
// it, tagged Natural or BitReversedOrder at the type level.
type CircleEvaluation[O Order] struct {
	Domain circle.Domain
	Values []m31.F31
}

// NewCircleEvaluation wraps domain/values without reordering.
func NewCircleEvaluation[O Order](domain circle.Domain, values []m31.F31) CircleEvaluation[O] {
	return CircleEvaluation[O]{Domain: domain, Values: values}
}

// piMap returns 2x^2-1, the doubling map used by the tensor FFT basis.
func piMap(x m31.F31) m31.F31 {
	return x.Square().Double().Sub(m31.One)
}

// Evaluate runs the forward circle FFT: poly coefficients -> a
// bit-reversed CircleEvaluation over domain. domain.HalfCoset must be
// twiddles.RootCoset or one of its doublings.
func Evaluate(poly CirclePoly, domain circle.Domain, twiddles *TwiddleTree) (CircleEvaluation[BitReversedOrder], error) {
	if err := matchesDomain(twiddles, domain.HalfCoset); err != nil {
		return CircleEvaluation[BitReversedOrder]{}, err
	}
	L := domain.LogSize()
	if uint32(len(poly.Coeffs)) != 1<<L {
		return CircleEvaluation[BitReversedOrder]{}, starkerr.New(starkerr.CodeLengthMismatch,
			"evaluate: poly length does not match domain size")
	}
	values := make([]m31.F31, len(poly.Coeffs))
	copy(values, poly.Coeffs)

	switch L {
	case 1:
		y0 := domain.HalfCoset.At(0).Y
		values[0], values[1] = butterfly(values[0], values[1], y0)
	case 2:
		x, y := domain.HalfCoset.At(0).X, domain.HalfCoset.At(0).Y
		values[0], values[2] = butterfly(values[0], values[2], x)
		values[1], values[3] = butterfly(values[1], values[3], x)
		values[0], values[1] = butterfly(values[0], values[1], y)
		values[2], values[3] = butterfly(values[2], values[3], y.Neg())
	default:
		lineTwiddles := domainLineTwiddlesFromTree(L, twiddles.Twiddles)
		circleTwiddles := circleTwiddlesFromLineTwiddles(lineTwiddles[0])

		for layer := int(L) - 2; layer >= 0; layer-- {
			t := lineTwiddles[layer]
			for h := range t {
				fftLayerLoop(values, layer+1, h, t[h], butterfly)
			}
		}
		for h := range circleTwiddles {
			fftLayerLoop(values, 0, h, circleTwiddles[h], butterfly)
		}
	}

	return CircleEvaluation[BitReversedOrder]{Domain: domain, Values: values}, nil
}

// Interpolate runs the inverse circle FFT: a bit-reversed CircleEvaluation
// -> its CirclePoly coefficients. eval.Domain.HalfCoset must be
// twiddles.RootCoset or one of its doublings.
func Interpolate(eval CircleEvaluation[BitReversedOrder], twiddles *TwiddleTree) (CirclePoly, error) {
	if err := matchesDomain(twiddles, eval.Domain.HalfCoset); err != nil {
		return CirclePoly{}, err
	}
	L := eval.Domain.LogSize()
	values := make([]m31.F31, len(eval.Values))
	copy(values, eval.Values)

	switch L {
	case 1:
		y := eval.Domain.HalfCoset.At(0).Y
		two := m31.New(2)
		ynInv, err := y.Mul(two).Inverse()
		if err != nil {
			return CirclePoly{}, starkerr.Wrap(starkerr.CodeZeroInverse, "interpolate L=1", err)
		}
		yInv := ynInv.Mul(two)
		nInv := ynInv.Mul(y)
		values[0], values[1] = ibutterfly(values[0], values[1], yInv)
		values[0] = values[0].Mul(nInv)
		values[1] = values[1].Mul(nInv)
	case 2:
		x, y := eval.Domain.HalfCoset.At(0).X, eval.Domain.HalfCoset.At(0).Y
		four := m31.New(4)
		xyn := x.Mul(y).Mul(four)
		xynInv, err := xyn.Inverse()
		if err != nil {
			return CirclePoly{}, starkerr.Wrap(starkerr.CodeZeroInverse, "interpolate L=2", err)
		}
		xInv := xynInv.Mul(y).Mul(four)
		yInv := xynInv.Mul(x).Mul(four)
		nInv := xynInv.Mul(x).Mul(y)
		values[0], values[1] = ibutterfly(values[0], values[1], yInv)
		values[2], values[3] = ibutterfly(values[2], values[3], yInv.Neg())
		values[0], values[2] = ibutterfly(values[0], values[2], xInv)
		values[1], values[3] = ibutterfly(values[1], values[3], xInv)
		for i := range values {
			values[i] = values[i].Mul(nInv)
		}
	default:
		lineTwiddles := domainLineTwiddlesFromTree(L, twiddles.ITwiddles)
		circleTwiddles := circleTwiddlesFromLineTwiddles(lineTwiddles[0])

		for h := range circleTwiddles {
			fftLayerLoop(values, 0, h, circleTwiddles[h], ibutterfly)
		}
		for layer := 1; layer < int(L); layer++ {
			t := lineTwiddles[layer-1]
			for h := range t {
				fftLayerLoop(values, layer, h, t[h], ibutterfly)
			}
		}
		nInv, err := m31.New(uint32(1) << L).Inverse()
		if err != nil {
			return CirclePoly{}, starkerr.Wrap(starkerr.CodeZeroInverse, "interpolate normalization", err)
		}
		for i := range values {
			values[i] = values[i].Mul(nInv)
		}
	}

	return CirclePoly{LogSize: L, Coeffs: values}, nil
}

// Extend pads poly's coefficients with zeros to reach 2^newLogSize,
// failing LogSizeTooSmall if newLogSize is below the current log size.
func Extend(poly CirclePoly, newLogSize uint32) (CirclePoly, error) {
	if newLogSize < poly.LogSize {
		return CirclePoly{}, starkerr.New(starkerr.CodeLogSizeTooSmall,
			fmt.Sprintf("extend: new log size %d is below current %d", newLogSize, poly.LogSize))
	}
	out := make([]m31.F31, 1<<newLogSize)
	copy(out, poly.Coeffs)
	return CirclePoly{LogSize: newLogSize, Coeffs: out}, nil
}
