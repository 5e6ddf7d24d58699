// SPDX-License-Identifier: MIT
// Package: accuracy
//
// Purpose:
//   - Stratified-random-sampling estimators of map accuracy and class area,
//     with strata defined by map class.
//
// Exposed API:
//   - ComputeAccuracyReport(N, [][]int, unit, ...Option) -> (*Report, error)
//   - Assess(N, matrix.Matrix, unit, ...Option)          -> (*Report, error)
//
// Evaluation order:
//   - validate → strata (n_i·, W, n_ij/n_i·) → user's → overall → p̂_ij →
//     producer's → area. Overall reuses the user's variances; producer's and
//     area reuse p̂ and the row proportions.
//
// Determinism & Performance:
//   - Fixed i→j loops over O(q²) data; no allocation beyond the Report.

package accuracy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/mapaccuracy/matrix"
)

// Operation tags for error wrapping.
const (
	opCompute = "ComputeAccuracyReport"
	opAssess  = "Assess"
)

// ComputeAccuracyReport runs the full assessment for integer sample counts.
//
// Inputs:
//   - pixelCounts: N[i], mapped pixels of class i (all > 0).
//   - confusion:   n[i][j], sample points with map class i and reference class j.
//   - areaUnitConversion: area of one pixel in the reporting unit
//     (900 m² pixels reported in hectares ⇒ 0.09).
//
// Errors:
//   - ErrDimensionMismatch, ErrInvalidInput, ErrInsufficientSamples,
//     ErrUndefinedAccuracy (see Assess). Ingestion errors from the matrix
//     package are joined with the matching accuracy sentinel.
//   - An empty confusion table against non-empty pixel counts is a size
//     mismatch (ErrDimensionMismatch); with no pixel counts either, the call
//     has no classes at all (ErrInvalidInput).
func ComputeAccuracyReport(pixelCounts []float64, confusion [][]int, areaUnitConversion float64, opts ...Option) (*Report, error) {
	cm, err := matrix.NewDenseFromCounts(confusion)
	if err != nil {
		shape := errors.Is(err, matrix.ErrRaggedRows) ||
			(errors.Is(err, matrix.ErrInvalidDimensions) && len(pixelCounts) > 0)
		if shape {
			return nil, accuracyErrorf(opCompute, fmt.Errorf("%w: %w", ErrDimensionMismatch, err))
		}
		return nil, accuracyErrorf(opCompute, fmt.Errorf("%w: %w", ErrInvalidInput, err))
	}

	return Assess(pixelCounts, cm, areaUnitConversion, opts...)
}

// Assess computes user's, producer's and overall accuracy and the per-class
// area estimates from map pixel counts and a confusion matrix of sample counts.
//
// Implementation:
//   - Stage 1: validate shapes, then values, then stratum sample sizes.
//   - Stage 2: derive n_i·, W[i] and the within-stratum proportions n_ij/n_i·.
//   - Stage 3: user's accuracy and its variance U(1−U)/(n_i·−1).
//   - Stage 4: overall accuracy Σ W·U with variance Σ W²·Var(U).
//   - Stage 5: p̂_ij = W_i·n_ij/n_i·, column totals p̂_·j and N̂_·j.
//   - Stage 6: producer's accuracy with the Olofsson et al. (2013) eq. 7 variance.
//   - Stage 7: area fractions, absolute areas and their standard errors.
//
// Errors:
//   - ErrInvalidInput: nil matrix, empty or non-positive pixel counts, pixel
//     counts whose total overflows, negative, non-integral or non-finite
//     counts, non-positive area unit.
//   - ErrDimensionMismatch: non-square matrix, len(N) != q, or class names of
//     the wrong length.
//   - ErrInsufficientSamples: some n_i· < MinStratumSamples.
//   - ErrUndefinedAccuracy: some reference class has N̂_·j == 0.
//
// Complexity:
//   - Time O(q²), Space O(q²).
func Assess(pixelCounts []float64, confusion matrix.Matrix, areaUnitConversion float64, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)

	// Stage 1 (Validate).
	if err := validateInputs(pixelCounts, confusion, areaUnitConversion, o); err != nil {
		return nil, accuracyErrorf(opAssess, err)
	}

	// Stage 2 (Strata).
	s, err := newStrata(pixelCounts, confusion)
	if err != nil {
		return nil, accuracyErrorf(opAssess, err)
	}

	// Stages 3-4.
	users, userVar := s.userAccuracy()
	overall := s.overallAccuracy(users, userVar)

	// Stage 5.
	if err = s.estimateProportions(); err != nil {
		return nil, accuracyErrorf(opAssess, err)
	}

	// Stage 6.
	producers := s.producerAccuracy(users)

	// Stage 7.
	totalArea := s.total * areaUnitConversion
	fractions := s.areaFractions()
	areas := make([]Estimate, s.q)
	for j := range fractions {
		areas[j] = fractions[j].scaled(totalArea)
	}

	r := &Report{
		UserAccuracy:     make([]Estimate, s.q),
		ProducerAccuracy: producers,
		OverallAccuracy:  overall,
		AreaFraction:     fractions,
		AreaEstimate:     areas,
		Weights:          s.weights,
		RowTotals:        s.rowTotals,
		Proportions:      s.phat,
		TotalArea:        totalArea,
		ClassNames:       append([]string(nil), o.classNames...),
		AreaUnit:         o.areaUnit,
	}
	for i := range users {
		r.UserAccuracy[i] = newEstimate(users[i], userVar[i])
	}

	return r, nil
}

// validateInputs checks shapes first, then values. Stratum sizes and the
// reference totals are checked once the strata are derived.
func validateInputs(N []float64, cm matrix.Matrix, unit float64, o Options) error {
	if len(N) == 0 {
		return fmt.Errorf("pixel counts empty: %w", ErrInvalidInput)
	}
	if err := matrix.ValidateNotNil(cm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateSquare(cm); err != nil {
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	if err := matrix.ValidateVecLen(N, cm.Rows()); err != nil {
		return fmt.Errorf("%d pixel counts for %d classes: %w", len(N), cm.Rows(), ErrDimensionMismatch)
	}
	if o.classNames != nil && len(o.classNames) != len(N) {
		return fmt.Errorf("%d class names for %d classes: %w", len(o.classNames), len(N), ErrDimensionMismatch)
	}

	if math.IsNaN(unit) || math.IsInf(unit, 0) || unit <= 0 {
		return fmt.Errorf("area unit conversion %g: %w", unit, ErrInvalidInput)
	}
	for i, v := range N {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return classErrorf("pixel count", i, ErrInvalidInput)
		}
	}
	if total := floats.Sum(N); math.IsInf(total, 0) {
		return fmt.Errorf("pixel count total overflows: %w", ErrInvalidInput)
	}
	if err := matrix.ValidateFinite(cm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateNonNegative(cm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	q := cm.Rows()
	for i := 0; i < q; i++ {
		for j := 0; j < q; j++ {
			v, err := cm.At(i, j)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			if v != math.Trunc(v) {
				return fmt.Errorf("count (%d,%d)=%g not integral: %w", i, j, v, ErrInvalidInput)
			}
		}
	}

	return nil
}

// strata holds the read-only quantities shared by every estimator.
type strata struct {
	q         int
	counts    []float64     // N[i]
	total     float64       // Σ N
	weights   []float64     // W[i]
	rowTotals []float64     // n_i·
	props     *matrix.Dense // n_ij / n_i·
	diag      []float64     // n_ii / n_i·
	phat      *matrix.Dense // W_i · n_ij / n_i·
	colTotals []float64     // p̂_·j
	refPixels []float64     // N̂_·j
}

// newStrata derives n_i·, W and the row proportions, rejecting thin strata.
func newStrata(N []float64, cm matrix.Matrix) (*strata, error) {
	props, rowTotals, err := matrix.NormalizeRowsL1(cm)
	if err != nil {
		return nil, err
	}
	for i, n := range rowTotals {
		if n < MinStratumSamples {
			return nil, classErrorf("row total", i, fmt.Errorf("%g < %d: %w", n, MinStratumSamples, ErrInsufficientSamples))
		}
	}

	diag, err := matrix.Diagonal(props)
	if err != nil {
		return nil, err
	}

	s := &strata{
		q:         len(N),
		counts:    append([]float64(nil), N...),
		total:     floats.Sum(N),
		weights:   make([]float64, len(N)),
		rowTotals: rowTotals,
		props:     props,
		diag:      diag,
	}
	floats.ScaleTo(s.weights, 1/s.total, s.counts)

	return s, nil
}

// prop returns n_ij / n_i·; indices are in range by construction.
func (s *strata) prop(i, j int) float64 {
	v, _ := s.props.At(i, j)
	return v
}

// userAccuracy returns U[i] = n_ii/n_i· and Var(U[i]) = U(1−U)/(n_i·−1).
func (s *strata) userAccuracy() (u, variance []float64) {
	u = make([]float64, s.q)
	variance = make([]float64, s.q)
	for i := 0; i < s.q; i++ {
		u[i] = s.diag[i]
		variance[i] = u[i] * (1 - u[i]) / (s.rowTotals[i] - 1)
	}

	return u, variance
}

// overallAccuracy returns O = Σ W·U with Var(O) = Σ W²·Var(U).
func (s *strata) overallAccuracy(u, userVar []float64) Estimate {
	var variance float64
	for i := 0; i < s.q; i++ {
		variance += s.weights[i] * s.weights[i] * userVar[i]
	}

	return newEstimate(floats.Dot(s.weights, u), variance)
}

// estimateProportions fills p̂_ij, p̂_·j and N̂_·j and rejects reference
// classes that no sample point carries.
func (s *strata) estimateProportions() error {
	var err error
	if s.phat, err = matrix.ScaleRows(s.props, s.weights); err != nil {
		return err
	}
	if s.colTotals, err = matrix.ColSums(s.phat); err != nil {
		return err
	}
	pixels, err := matrix.ScaleRows(s.props, s.counts)
	if err != nil {
		return err
	}
	if s.refPixels, err = matrix.ColSums(pixels); err != nil {
		return err
	}
	for j, n := range s.refPixels {
		if n == 0 {
			return classErrorf("reference total", j, ErrUndefinedAccuracy)
		}
	}

	return nil
}

// producerAccuracy returns P[j] = p̂_jj / p̂_·j with
//
//	Var(P[j]) = 1/N̂_·j² · [ N_j²(1−P_j)²·U_j(1−U_j)/(n_j·−1)
//	                       + P_j² · Σ_{i≠j} N_i²·p_ij(1−p_ij)/(n_i·−1) ].
func (s *strata) producerAccuracy(u []float64) []Estimate {
	out := make([]Estimate, s.q)
	var i, j int
	for j = 0; j < s.q; j++ {
		pjj, _ := s.phat.At(j, j)
		p := pjj / s.colTotals[j]

		own := s.counts[j] * s.counts[j] * (1 - p) * (1 - p) * u[j] * (1 - u[j]) / (s.rowTotals[j] - 1)
		var others float64
		for i = 0; i < s.q; i++ {
			if i == j {
				continue
			}
			pij := s.prop(i, j)
			others += s.counts[i] * s.counts[i] * pij * (1 - pij) / (s.rowTotals[i] - 1)
		}
		nj := s.refPixels[j]
		out[j] = newEstimate(p, (own+p*p*others)/(nj*nj))
	}

	return out
}

// areaFractions returns p̂_·j with SE² = Σ_i W_i²·p_ij(1−p_ij)/(n_i·−1).
func (s *strata) areaFractions() []Estimate {
	out := make([]Estimate, s.q)
	var i, j int
	for j = 0; j < s.q; j++ {
		var variance float64
		for i = 0; i < s.q; i++ {
			pij := s.prop(i, j)
			variance += s.weights[i] * s.weights[i] * pij * (1 - pij) / (s.rowTotals[i] - 1)
		}
		out[j] = newEstimate(s.colTotals[j], variance)
	}

	return out
}
