// SPDX-License-Identifier: MIT

package accuracy_test

import (
	"fmt"

	"github.com/katalvlaran/mapaccuracy/accuracy"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleComputeAccuracyReport
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A forest-change map with four classes is checked against 640 reference
//	points drawn by stratified random sampling (strata = map classes).
//	Pixels are 30 m × 30 m; areas are reported in hectares.
//
// Complexity: O(q²)
func ExampleComputeAccuracyReport() {
	pixels := []float64{200000, 150000, 3200000, 6450000}
	confusion := [][]int{
		{66, 0, 5, 4},
		{0, 55, 8, 12},
		{1, 0, 153, 11},
		{2, 1, 9, 313},
	}

	r, err := accuracy.ComputeAccuracyReport(pixels, confusion, 900.0/10000.0,
		accuracy.WithClassNames("Deforestation", "Forest gain", "Forest", "Non-forest"),
		accuracy.WithAreaUnit("ha"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("overall %.2f ± %.2f\n", r.OverallAccuracy.Value, r.OverallAccuracy.MarginOfError)
	for i := 0; i < r.Classes(); i++ {
		u, p, a := r.UserAccuracy[i], r.ProducerAccuracy[i], r.AreaEstimate[i]
		fmt.Printf("%-13s user %.2f ± %.2f  producer %.2f ± %.2f  area %.0f ± %.0f %s\n",
			r.ClassName(i), u.Value, u.MarginOfError, p.Value, p.MarginOfError, a.Value, a.MarginOfError, r.AreaUnit)
	}
	// Output:
	// overall 0.95 ± 0.02
	// Deforestation user 0.88 ± 0.07  producer 0.75 ± 0.21  area 21158 ± 6158 ha
	// Forest gain   user 0.73 ± 0.10  producer 0.85 ± 0.25  area 11686 ± 3756 ha
	// Forest        user 0.93 ± 0.04  producer 0.93 ± 0.03  area 285770 ± 15510 ha
	// Non-forest    user 0.96 ± 0.02  producer 0.96 ± 0.02  area 581386 ± 16282 ha
}

// ExampleAllocateWithMinimum plans a 641-point sample that keeps at least 50
// points in each rare change class.
func ExampleAllocateWithMinimum() {
	pixels := []float64{200000, 150000, 3200000, 6450000}

	n, _ := accuracy.SampleSize(pixels, []float64{0.7, 0.6, 0.9, 0.95}, 0.01)
	alloc, _ := accuracy.AllocateWithMinimum(n, 50, pixels)
	fmt.Println(n, alloc)
	// Output:
	// 641 [50 50 179 362]
}
