// SPDX-License-Identifier: MIT
// Package accuracy: sentinel error set.
// All failures are input-validation failures detected before any statistic is
// computed; a failing call never returns a partial Report. Callers match the
// sentinels via errors.Is; messages carry the operation and class index.

package accuracy

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates that the pixel-count vector length differs
	// from the confusion matrix dimension, or that the matrix is not square.
	ErrDimensionMismatch = errors.New("accuracy: dimension mismatch")

	// ErrInvalidInput indicates a non-positive or non-finite pixel count, a
	// negative or non-integral confusion count, or a bad area unit.
	ErrInvalidInput = errors.New("accuracy: invalid input")

	// ErrInsufficientSamples indicates a stratum with fewer than MinStratumSamples
	// sample points; the variance formulas divide by n_i· − 1.
	ErrInsufficientSamples = errors.New("accuracy: insufficient samples in stratum")

	// ErrUndefinedAccuracy indicates that no sample point anywhere carries a given
	// reference class, so its producer's accuracy is undefined.
	ErrUndefinedAccuracy = errors.New("accuracy: producer's accuracy undefined")
)

// accuracyErrorf wraps a sentinel with the operation tag.
func accuracyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// classErrorf wraps a sentinel with the operation tag and the class index.
func classErrorf(op string, class int, err error) error {
	return fmt.Errorf("%s: class %d: %w", op, class, err)
}
