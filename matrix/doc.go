// SPDX-License-Identifier: MIT

// Package matrix offers the small dense container used to hold confusion
// matrices and area-proportion tables.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix whose At/Set return errors instead of
//     panicking on bad indices or non-finite values.
//   - Constructors from [][]int sample counts and [][]float64 rows, plus
//     conversion to and from gonum's mat package.
//   - Central validators (nil, square, vector length, finite, non-negative).
//   - Row/column reductions and row scaling used by stratified estimators.
//
// Matrices here are small (a handful to a few dozen classes), so every
// operation is a plain deterministic i→j loop over the flat buffer.
package matrix
