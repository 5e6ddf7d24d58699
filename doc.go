// SPDX-License-Identifier: MIT

// Package mapaccuracy is a small, dependency-light toolkit for assessing the
// accuracy of land-cover and land-change maps and estimating class areas
// with confidence intervals.
//
// 🚀 What is mapaccuracy?
//
//	A pure-Go implementation of the stratified estimators recommended by
//	Olofsson et al. for map accuracy assessment:
//		• User's, producer's and overall accuracy with standard errors
//		• Error matrix expressed in estimated area proportions
//		• Unbiased class-area estimates with 95% confidence intervals
//		• Sample-size planning and stratum allocation
//
// ✨ Why choose mapaccuracy?
//
//   - Closed-form, deterministic arithmetic: no iteration, no randomness
//   - Validation up front with sentinel errors (errors.Is friendly)
//   - Interoperates with gonum matrices
//
// Under the hood, everything is organized under two subpackages:
//
//	accuracy/   stratified estimators, Report, sample design helpers
//	matrix/     bounds-checked Dense container, validators, row/column reductions
//
// A runnable walkthrough lives in examples/.
//
//	go get github.com/katalvlaran/mapaccuracy/accuracy
package mapaccuracy
