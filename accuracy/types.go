// SPDX-License-Identifier: MIT

package accuracy

import (
	"math"
	"strconv"

	"github.com/katalvlaran/mapaccuracy/matrix"
)

// Z95 is the two-sided 95% normal quantile used for every margin of error.
const Z95 = 1.96

// MinStratumSamples is the smallest row total n_i· the variance formulas accept.
const MinStratumSamples = 2

// Estimate is a point estimate with its standard error and 95% half-width.
type Estimate struct {
	Value         float64 // point estimate
	StdError      float64 // estimated standard error (>= 0)
	MarginOfError float64 // Z95 * StdError
}

// newEstimate builds an Estimate from a value and a variance; negative
// round-off variances are clamped to zero before the square root.
func newEstimate(value, variance float64) Estimate {
	if variance < 0 {
		variance = 0
	}
	se := math.Sqrt(variance)

	return Estimate{Value: value, StdError: se, MarginOfError: Z95 * se}
}

// scaled returns the estimate multiplied by a positive constant.
func (e Estimate) scaled(k float64) Estimate {
	return Estimate{Value: e.Value * k, StdError: e.StdError * k, MarginOfError: e.MarginOfError * k}
}

// complement returns 1 − e with the same uncertainty.
func (e Estimate) complement() Estimate {
	return Estimate{Value: 1 - e.Value, StdError: e.StdError, MarginOfError: e.MarginOfError}
}

// Interval returns Value ± MarginOfError.
func (e Estimate) Interval() (lo, hi float64) {
	return e.Value - e.MarginOfError, e.Value + e.MarginOfError
}

// Report holds every statistic of one assessment. Per-class slices are
// indexed consistently with the input pixel counts and confusion matrix rows.
type Report struct {
	// UserAccuracy[i] is the fraction of pixels mapped as i that are truly i.
	UserAccuracy []Estimate
	// ProducerAccuracy[j] is the fraction of pixels truly j that are mapped as j.
	ProducerAccuracy []Estimate
	// OverallAccuracy is the area-weighted fraction of correctly mapped pixels.
	OverallAccuracy Estimate
	// AreaFraction[j] is the estimated fraction of the map whose reference class is j.
	AreaFraction []Estimate
	// AreaEstimate[j] is AreaFraction[j] expressed in the caller's area unit.
	AreaEstimate []Estimate

	// Weights are the stratum weights W[i] = N[i] / Σ N.
	Weights []float64
	// RowTotals are the per-stratum sample sizes n_i·.
	RowTotals []float64
	// Proportions is the error matrix in estimated area proportions p̂_ij.
	Proportions *matrix.Dense
	// TotalArea is Σ N multiplied by the per-pixel area.
	TotalArea float64

	// ClassNames and AreaUnit are labels supplied via options (may be empty).
	ClassNames []string
	AreaUnit   string
}

// Classes returns the number of classes q.
func (r *Report) Classes() int { return len(r.Weights) }

// CommissionError returns 1 − U[i] for map class i.
func (r *Report) CommissionError(i int) (Estimate, error) {
	if i < 0 || i >= len(r.UserAccuracy) {
		return Estimate{}, classErrorf("CommissionError", i, matrix.ErrOutOfRange)
	}

	return r.UserAccuracy[i].complement(), nil
}

// OmissionError returns 1 − P[j] for reference class j.
func (r *Report) OmissionError(j int) (Estimate, error) {
	if j < 0 || j >= len(r.ProducerAccuracy) {
		return Estimate{}, classErrorf("OmissionError", j, matrix.ErrOutOfRange)
	}

	return r.ProducerAccuracy[j].complement(), nil
}

// ClassName returns the configured label for class i, or its index.
func (r *Report) ClassName(i int) string {
	if i >= 0 && i < len(r.ClassNames) {
		return r.ClassNames[i]
	}

	return strconv.Itoa(i)
}
