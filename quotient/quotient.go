// Package quotient implements the PCS quotient accumulator: combining many
// column quotients, weighted by powers of a random challenge, into a
// single SecureEvaluation.
package quotient

import (
	"fmt"

	"github.com/vybium/circle-stark-core/bitops"
	"github.com/vybium/circle-stark-core/circle"
	"github.com/vybium/circle-stark-core/cm31"
	"github.com/vybium/circle-stark-core/m31"
	"github.com/vybium/circle-stark-core/poly"
	"github.com/vybium/circle-stark-core/qm31"
	"github.com/vybium/circle-stark-core/starkerr"
)

// ColumnValue pairs a committed column index with its sampled value at a
// batch's point.
type ColumnValue struct {
	ColumnIndex uint32
	Value       qm31.QM31
}

// ColumnSampleBatch groups every column sampled at a single out-of-domain
// point.
type ColumnSampleBatch struct {
	Point            circle.Point[qm31.QM31]
	ColumnsAndValues []ColumnValue
}

// lineCoeffs is (a, b, c): a column's numerator at a row with queried value
// q and y-coordinate y is c*q - (a*y + b).
type lineCoeffs struct {
	A, B, C qm31.QM31
}

// Constants holds the precomputed per-batch quantities accumulate_quotients
// needs at every row: the line coefficients for each sampled column and the
// batch's random-coefficient weight alpha^|batch|.
type Constants struct {
	LineCoeffs        [][]lineCoeffs
	BatchRandomCoeffs []qm31.QM31
}

// complexConjugateLineCoeffs fits the unique line through (point.y, value)
// and (conj(point.y), conj(value)), scaled by alphaI, where conj is the
// u -> -u conjugation (qm31.FrobeniusConjugate).
func complexConjugateLineCoeffs(point circle.Point[qm31.QM31], value, alphaI qm31.QM31) (lineCoeffs, error) {
	yConj := point.Y.FrobeniusConjugate()
	valueConj := value.FrobeniusConjugate()

	denom := point.Y.Sub(yConj)
	if denom.IsZero() {
		return lineCoeffs{}, starkerr.New(starkerr.CodeQuotientPointOnDomain,
			"complex conjugate line coeffs: sample point lies in the base field")
	}
	denomInv, err := denom.Inverse()
	if err != nil {
		return lineCoeffs{}, starkerr.Wrap(starkerr.CodeZeroInverse, "complex conjugate line coeffs", err)
	}

	a := value.Sub(valueConj).Mul(denomInv)
	b := value.Sub(a.Mul(point.Y))

	return lineCoeffs{A: a.Mul(alphaI), B: b.Mul(alphaI), C: alphaI}, nil
}

// columnLineCoeffs builds the per-column line coefficients for every
// batch, scaling each by successive powers of alpha.
func columnLineCoeffs(batches []ColumnSampleBatch, alpha qm31.QM31) ([][]lineCoeffs, error) {
	out := make([][]lineCoeffs, len(batches))
	for bi, batch := range batches {
		coeffs := make([]lineCoeffs, len(batch.ColumnsAndValues))
		alphaI := qm31.One
		for ci, cv := range batch.ColumnsAndValues {
			alphaI = alphaI.Mul(alpha)
			lc, err := complexConjugateLineCoeffs(batch.Point, cv.Value, alphaI)
			if err != nil {
				return nil, err
			}
			coeffs[ci] = lc
		}
		out[bi] = coeffs
	}
	return out, nil
}

// batchRandomCoeffs returns alpha^|batch| for every batch.
func batchRandomCoeffs(batches []ColumnSampleBatch, alpha qm31.QM31) []qm31.QM31 {
	out := make([]qm31.QM31, len(batches))
	for i, batch := range batches {
		out[i] = powQM31(alpha, uint64(len(batch.ColumnsAndValues)))
	}
	return out
}

// powQM31 is square-and-multiply exponentiation over QM31; the field
// package exposes only the ring operations, so quotient accumulation does
// its own exponentiation rather than round-tripping through qm31.
func powQM31(base qm31.QM31, e uint64) qm31.QM31 {
	result := qm31.One
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		e >>= 1
	}
	return result
}

// denominatorInverses batch-inverts the coset-diff denominator d for every
// batch at domainPoint: d = (pr.x-dp.x)*pi.y - (pr.y-dp.y)*pi.x in CM31,
// where pr/pi are the real/u-coefficient CM31 halves of the batch's QM31
// sample point.
func denominatorInverses(batches []ColumnSampleBatch, domainPoint circle.Point[m31.F31]) ([]cm31.CM31, error) {
	denoms := make([]cm31.CM31, len(batches))
	for i, batch := range batches {
		pr := circle.Point[cm31.CM31]{X: batch.Point.X.A, Y: batch.Point.Y.A}
		pi := circle.Point[cm31.CM31]{X: batch.Point.X.B, Y: batch.Point.Y.B}
		dpx := cm31.FromBase(domainPoint.X)
		dpy := cm31.FromBase(domainPoint.Y)
		d := pr.X.Sub(dpx).Mul(pi.Y).Sub(pr.Y.Sub(dpy).Mul(pi.X))
		if d.IsZero() {
			return nil, starkerr.New(starkerr.CodeQuotientPointOnDomain,
				"denominator inverses: batch point lies on the domain")
		}
		denoms[i] = d
	}
	return cm31.BatchInverse(denoms)
}

// QuotientConstants precomputes the per-batch line coefficients and random
// weights accumulate_quotients needs.
func QuotientConstants(batches []ColumnSampleBatch, alpha qm31.QM31) (*Constants, error) {
	lineCoeffs, err := columnLineCoeffs(batches, alpha)
	if err != nil {
		return nil, err
	}
	return &Constants{
		LineCoeffs:        lineCoeffs,
		BatchRandomCoeffs: batchRandomCoeffs(batches, alpha),
	}, nil
}

// AccumulateQuotients combines every sampled column's quotient across
// domain, weighted by powers of alpha, into a single bit-reversed
// SecureEvaluation.
func AccumulateQuotients(
	domain circle.Domain,
	columns [][]m31.F31,
	alpha qm31.QM31,
	batches []ColumnSampleBatch,
) (poly.SecureEvaluation[poly.BitReversedOrder], error) {
	for i, col := range columns {
		if len(col) != domain.Size() {
			return poly.SecureEvaluation[poly.BitReversedOrder]{}, starkerr.New(starkerr.CodeColumnSizeMismatch,
				fmt.Sprintf("accumulate quotients: column %d has length %d, domain size is %d", i, len(col), domain.Size()))
		}
	}

	consts, err := QuotientConstants(batches, alpha)
	if err != nil {
		return poly.SecureEvaluation[poly.BitReversedOrder]{}, err
	}

	values := qm31.NewSecureColumn(domain.Size())
	logSize := domain.LogSize()

	for row := 0; row < domain.Size(); row++ {
		dp := domain.At(int(bitops.BitReverseIndex(uint32(row), logSize)))

		denomInvs, err := denominatorInverses(batches, dp)
		if err != nil {
			return poly.SecureEvaluation[poly.BitReversedOrder]{}, err
		}

		queried := make(map[uint32]m31.F31)
		for _, batch := range batches {
			for _, cv := range batch.ColumnsAndValues {
				queried[cv.ColumnIndex] = columns[cv.ColumnIndex][row]
			}
		}

		values.Set(row, accumulateRowQuotients(batches, queried, consts, dp, denomInvs))
	}

	return poly.NewSecureEvaluation[poly.BitReversedOrder](domain, values)
}

// accumulateRowQuotients combines every batch's quotient contribution at a
// single domain row.
func accumulateRowQuotients(batches []ColumnSampleBatch, queried map[uint32]m31.F31, consts *Constants, domainPoint circle.Point[m31.F31], denomInvs []cm31.CM31) qm31.QM31 {
	row := qm31.Zero
	for bi, batch := range batches {
		numer := qm31.Zero
		for ci, cv := range batch.ColumnsAndValues {
			lc := consts.LineCoeffs[bi][ci]
			value := lc.C.Mul(qm31.FromBase(queried[cv.ColumnIndex]))
			linear := lc.A.MulBase(domainPoint.Y).Add(lc.B)
			numer = numer.Add(value.Sub(linear))
		}
		row = row.Mul(consts.BatchRandomCoeffs[bi]).Add(numer.MulCM31(denomInvs[bi]))
	}
	return row
}
