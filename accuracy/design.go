// SPDX-License-Identifier: MIT
// Package: accuracy
//
// Purpose:
//   - Plan a stratified random sample before it is collected: how many points
//     in total and how many per map class.
//
// Exposed API:
//   - SampleSize(W, expectedU, targetSE)          -> n
//   - AllocateProportional(n, W)                  -> n_i ∝ W_i
//   - AllocateWithMinimum(n, minimum, W)          -> n_i ≥ minimum, rest ∝ W_i
//
// Weights may be given as proportions or as raw pixel counts; both are
// normalised internally. Allocations always sum exactly to n.

package accuracy

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

const (
	opSampleSize           = "SampleSize"
	opAllocateProportional = "AllocateProportional"
	opAllocateWithMinimum  = "AllocateWithMinimum"
)

// SampleSize returns the total sample size that yields the target standard
// error of overall accuracy under stratified random sampling:
//
//	n = ⌈ (Σ W_i·S_i / S(Ô))² ⌉,  S_i = sqrt(U_i·(1−U_i)),
//
// where U_i are the anticipated user's accuracies.
//
// Errors: ErrDimensionMismatch for unequal lengths; ErrInvalidInput for
// empty or non-positive weights, U_i outside [0,1], targetSE ≤ 0, or a
// targetSE so small that n does not fit in an int.
func SampleSize(weights, expectedUserAccuracy []float64, targetSE float64) (int, error) {
	w, err := normalizeWeights(weights)
	if err != nil {
		return 0, accuracyErrorf(opSampleSize, err)
	}
	if len(expectedUserAccuracy) != len(w) {
		return 0, accuracyErrorf(opSampleSize, ErrDimensionMismatch)
	}
	if math.IsNaN(targetSE) || math.IsInf(targetSE, 0) || targetSE <= 0 {
		return 0, accuracyErrorf(opSampleSize, fmt.Errorf("target SE %g: %w", targetSE, ErrInvalidInput))
	}

	var acc float64
	for i, u := range expectedUserAccuracy {
		if math.IsNaN(u) || u < 0 || u > 1 {
			return 0, accuracyErrorf(opSampleSize, classErrorf("expected user's accuracy", i, ErrInvalidInput))
		}
		acc += w[i] * math.Sqrt(u*(1-u))
	}
	ratio := acc / targetSE
	n := math.Ceil(ratio * ratio)
	if math.IsInf(n, 0) || n >= math.MaxInt {
		return 0, accuracyErrorf(opSampleSize, fmt.Errorf("target SE %g needs more than %d points: %w", targetSE, math.MaxInt, ErrInvalidInput))
	}

	return int(n), nil
}

// AllocateProportional splits total sample points across strata in
// proportion to their weights. Rounding uses the largest-remainder rule;
// ties go to the lower class index.
func AllocateProportional(total int, weights []float64) ([]int, error) {
	if total <= 0 {
		return nil, accuracyErrorf(opAllocateProportional, fmt.Errorf("total %d: %w", total, ErrInvalidInput))
	}
	w, err := normalizeWeights(weights)
	if err != nil {
		return nil, accuracyErrorf(opAllocateProportional, err)
	}

	return largestRemainder(total, w), nil
}

// AllocateWithMinimum guarantees every stratum at least minimum points and
// spreads the rest proportionally. Strata whose proportional share falls
// below minimum are pinned to it and the remainder is re-split among the
// others until no share falls short.
//
// Errors: ErrInsufficientSamples if minimum < MinStratumSamples or
// total < minimum·q; otherwise as AllocateProportional.
func AllocateWithMinimum(total, minimum int, weights []float64) ([]int, error) {
	if minimum < MinStratumSamples {
		return nil, accuracyErrorf(opAllocateWithMinimum, fmt.Errorf("minimum %d: %w", minimum, ErrInsufficientSamples))
	}
	w, err := normalizeWeights(weights)
	if err != nil {
		return nil, accuracyErrorf(opAllocateWithMinimum, err)
	}
	q := len(w)
	if total < minimum*q {
		return nil, accuracyErrorf(opAllocateWithMinimum, fmt.Errorf("total %d < %d×%d: %w", total, minimum, q, ErrInsufficientSamples))
	}

	// total >= minimum·q keeps at least one stratum free in every round.
	pinned := make([]bool, q)
	for {
		// Re-split what is left among the free strata.
		free := make([]float64, 0, q)
		idx := make([]int, 0, q)
		left := total
		for i := 0; i < q; i++ {
			if pinned[i] {
				left -= minimum
				continue
			}
			free = append(free, w[i])
			idx = append(idx, i)
		}
		out := make([]int, q)
		for i := range out {
			if pinned[i] {
				out[i] = minimum
			}
		}
		floats.Scale(1/floats.Sum(free), free)
		share := largestRemainder(left, free)
		short := false
		for k, i := range idx {
			out[i] = share[k]
			if share[k] < minimum {
				pinned[i] = true
				short = true
			}
		}
		if !short {
			return out, nil
		}
	}
}

// largestRemainder floors total·w[i] and hands the leftover points to the
// largest fractional parts. w must sum to 1.
func largestRemainder(total int, w []float64) []int {
	out := make([]int, len(w))
	rem := make([]float64, len(w))
	assigned := 0
	for i, wi := range w {
		exact := float64(total) * wi
		out[i] = int(math.Floor(exact))
		rem[i] = exact - float64(out[i])
		assigned += out[i]
	}

	order := make([]int, len(w))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case rem[a] > rem[b]:
			return -1
		case rem[a] < rem[b]:
			return 1
		}
		return 0
	})
	for k := 0; assigned < total; k++ {
		out[order[k%len(order)]]++
		assigned++
	}

	return out
}

// normalizeWeights validates weights (non-empty, finite, > 0) and returns a
// copy scaled to sum to 1.
func normalizeWeights(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("weights empty: %w", ErrInvalidInput)
	}
	for i, v := range weights {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, classErrorf("weight", i, ErrInvalidInput)
		}
	}
	w := append([]float64(nil), weights...)
	floats.Scale(1/floats.Sum(w), w)

	return w, nil
}
