// SPDX-License-Identifier: MIT

package accuracy_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mapaccuracy/accuracy"
)

// Worked example: deforestation map, 30 m pixels, stratified sample of 640 points.
var (
	refPixels = []float64{200000, 150000, 3200000, 6450000}
	refMatrix = [][]int{
		{66, 0, 5, 4},
		{0, 55, 8, 12},
		{1, 0, 153, 11},
		{2, 1, 9, 313},
	}
	refNames = []string{"Deforestation", "Forest gain", "Forest", "Non-forest"}
)

// hectaresPer30mPixel converts one 900 m² pixel to hectares.
const hectaresPer30mPixel = 900.0 / 10000.0

// mustReport runs ComputeAccuracyReport and fails the test on error.
func mustReport(t testing.TB, N []float64, n [][]int, unit float64, opts ...accuracy.Option) *accuracy.Report {
	t.Helper()
	r, err := accuracy.ComputeAccuracyReport(N, n, unit, opts...)
	require.NoError(t, err)
	require.NotNil(t, r)

	return r
}

// values, stdErrors and margins project a slice of estimates.
func values(es []accuracy.Estimate) []float64 {
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = e.Value
	}
	return out
}

func margins(es []accuracy.Estimate) []float64 {
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = e.MarginOfError
	}
	return out
}

func stdErrors(es []accuracy.Estimate) []float64 {
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = e.StdError
	}
	return out
}

// requireClose compares float slices within an absolute tolerance.
func requireClose(t *testing.T, want, got []float64, tol float64, msg string) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", msg, diff)
	}
}
