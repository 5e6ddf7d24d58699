// SPDX-License-Identifier: MIT

// Package accuracy estimates the accuracy and class areas of a land-cover
// map from a stratified random sample, with strata defined by map class.
//
// 🚀 What does it compute?
//
//	Given the mapped pixel count of every class and a confusion matrix of
//	sample counts (map class × reference class), Assess returns:
//	  • user's accuracy per class        (precision of the map label)
//	  • producer's accuracy per class    (recall of the reference class)
//	  • overall accuracy                 (area-weighted)
//	  • area fraction and absolute area per reference class
//	each with a standard error and a 95% margin of error (z = 1.96).
//
// ✨ Key features:
//   - closed-form estimators of Olofsson et al. (2013, 2014); no iteration
//   - strict validation up front: no partial reports, sentinel errors only
//   - the error matrix in area proportions (p̂_ij) is part of the Report
//   - sample planning: SampleSize, AllocateProportional, AllocateWithMinimum
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mapaccuracy/accuracy"
//
//	report, err := accuracy.ComputeAccuracyReport(
//	  []float64{200000, 150000, 3200000, 6450000}, // mapped pixels per class
//	  confusion,                                   // [][]int sample counts
//	  0.09,                                        // 30 m pixel in hectares
//	  accuracy.WithAreaUnit("ha"),
//	)
//
// Performance:
//
//   - Time:   O(q²) for q classes
//   - Memory: O(q²)
//
// See example_test.go for the worked example reproduced end to end.
package accuracy
