package acf_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autocorr/acf"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Measure lag-1 persistence of a steadily rising series.
//	  x = [1, 2, 3, 4, 5]
//
// Options:
//   - Lag = 1          (compare each point with its successor)
//   - Exact = false    (population estimator, global mean)
//   - Simple = true    (plain ratio, no divisor correction)
//
// Use case:
//
//	Quick trend/persistence check before fitting any model.
//
// Complexity: O(n) time, O(1) memory
func ExampleCompute() {
	series := []float64{1, 2, 3, 4, 5}
	opts := acf.DefaultOptions()

	r, err := acf.Compute(series, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("r=%.2f\n", r)
	// Output:
	// r=0.40
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute_exact
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Small sample, so the global-mean approximation is biased; use
//	Kendall's exact estimator with window-local means instead.
//	  x = [1, 3, 2, 4]
//
// Options:
//   - Lag = 1
//   - Exact = true     (Kendall Eq. 3.35)
//
// Use case:
//
//	Short experimental series where every observation counts.
//
// Complexity: O(n) time, O(1) memory
func ExampleCompute_exact() {
	series := []float64{1, 3, 2, 4}
	opts := acf.DefaultOptions()
	opts.Exact = true

	r, err := acf.Compute(series, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("r=%.2f\n", r)
	// Output:
	// r=-0.50
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute_circular
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Treat the series as cyclic: every element gets a lagged partner,
//	with out-of-range partners falling back to the fixed index Lag.
//	  x = [1, 2, 3, 4]
//
// Options:
//   - Lag = 2
//   - Circular = true
//
// Use case:
//
//	Periodic data where the end of the cycle meets its beginning.
//
// Complexity: O(n) time, O(1) memory
func ExampleCompute_circular() {
	series := []float64{1, 2, 3, 4}
	opts := acf.DefaultOptions()
	opts.Lag = 2
	opts.Circular = true

	r, err := acf.Compute(series, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("r=%.2f\n", r)
	// Output:
	// r=-0.10
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCoefficient
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The minimal possible input: two points. Coefficient is the
//	ergonomic alias of Compute; both names run the identical operation.
//
// Complexity: O(n) time, O(1) memory
func ExampleCoefficient() {
	r, err := acf.Coefficient([]float64{1, 2}, nil) // nil → DefaultOptions()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("r=%.1f\n", r)
	// Output:
	// r=-0.5
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute_degenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A constant series has zero variance. The coefficient is the raw
//	IEEE-754 outcome of 0/0 — NaN — and is returned as-is.
//
// Complexity: O(n) time, O(1) memory
func ExampleCompute_degenerate() {
	r, _ := acf.Compute([]float64{7, 7, 7, 7}, nil)
	fmt.Println("NaN:", math.IsNaN(r))
	// Output:
	// NaN: true
}
