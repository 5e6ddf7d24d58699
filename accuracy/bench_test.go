// SPDX-License-Identifier: MIT

package accuracy_test

import (
	"testing"

	"github.com/katalvlaran/mapaccuracy/accuracy"
)

// benchmarkAssess runs the estimator on a q-class synthetic sample with a
// heavy diagonal and one off-diagonal neighbour per row.
func benchmarkAssess(b *testing.B, q int) {
	N := make([]float64, q)
	n := make([][]int, q)
	for i := 0; i < q; i++ {
		N[i] = float64(1000 * (i + 1))
		n[i] = make([]int, q)
		n[i][i] = 50
		n[i][(i+1)%q] = 5
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := accuracy.ComputeAccuracyReport(N, n, 0.09); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAssess_4 benchmarks the worked-example size.
func BenchmarkAssess_4(b *testing.B) { benchmarkAssess(b, 4) }

// BenchmarkAssess_20 benchmarks the upper end of typical class counts.
func BenchmarkAssess_20(b *testing.B) { benchmarkAssess(b, 20) }
