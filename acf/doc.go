// Package acf computes the autocorrelation coefficient of a numeric
// series at a single lag, with a choice of estimator and optional
// circular (wrap-around) lag indexing.
//
// 🚀 What is autocorrelation?
//
//	The normalized linear association between a series and a lagged
//	copy of itself, nominally in [-1, 1].  It is the workhorse behind:
//	  • Seasonality & periodicity detection
//	  • ARIMA order selection and residual diagnostics
//	  • Randomness tests on measurement or sensor streams
//	  • Signal self-similarity checks
//
// ✨ Key features:
//   - population estimator: global mean, plain ratio (default) or
//     the (n−k)/n divisor correction (Kendall Eq. 3.36)
//   - exact estimator: Kendall Eq. 3.35 with lag-window-local means
//   - circular lag: wrap-around partner indexing for cyclic series
//   - strict up-front validation, sentinel errors, zero panics
//   - one O(n) pass per summation; no allocations on the hot path
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/autocorr/acf"
//
//	opts := acf.DefaultOptions() // Lag=1, Exact=false, Simple=true
//	opts.Lag = 4
//
//	r, err := acf.Compute(series, &opts)
//	if err != nil {
//	  // handle ErrEmptyInput, ErrInsufficientData, ErrBadLag, ErrUnsupportedCombo
//	}
//
// Quirks, by contract:
//
//   - A constant series has zero variance; the coefficient is then the
//     IEEE-754 outcome of 0/0 (NaN). It is returned as-is, never
//     coerced to 0 — detecting degeneracy is the caller's job.
//   - In circular mode every out-of-range partner falls back to the
//     fixed index k, NOT to (i+k) mod n. This matches the classical
//     formulation this package reproduces; "fixing" it would silently
//     change results for existing callers.
//   - Circular + Exact has no defined formula and is rejected with
//     ErrUnsupportedCombo.
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(1)
//
// See examples in example_test.go and the runnable programs under
// examples/ for end-to-end walkthroughs.
package acf
