// Package acf - validation and strategy resolution for Compute.
//
// This file contains the staged checks that run before any arithmetic:
//  1. Series shape (non-nil, non-empty, at least two observations).
//  2. Option combination (Circular ⟷ Exact compatibility).
//  3. Lag normalization and bounds.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - All failures surface before the first summation pass; no partial results.
package acf

// resolve validates series and opts, normalizes the lag, and picks the
// formula variant. A nil opts means DefaultOptions().
//
// Contract:
//   - series must hold at least two observations.
//   - lag 0 is substituted with DefaultLag; otherwise 1 ≤ lag ≤ n−1.
//     The bound applies to the circular path too: its fixed fallback
//     partner is series[lag], which must itself be a valid index.
//   - Circular+Exact is rejected; no formula exists for the pairing.
//
// Returns the normalized Options (lag substituted) and the resolved
// variant on success.
//
// Complexity: O(1).
func resolve(series []float64, opts *Options) (Options, variant, error) {
	// Stage 1: series shape.
	if len(series) == 0 {
		return Options{}, 0, ErrEmptyInput
	}
	if len(series) < 2 {
		return Options{}, 0, ErrInsufficientData
	}

	// Stage 2: normalize options.
	resolved := DefaultOptions()
	if opts != nil {
		resolved = *opts
	}
	if resolved.Exact && resolved.Circular {
		return Options{}, 0, ErrUnsupportedCombo
	}

	// Stage 3: lag normalization and bounds.
	if resolved.Lag == 0 {
		resolved.Lag = DefaultLag
	}
	if resolved.Lag < 0 || resolved.Lag >= len(series) {
		return Options{}, 0, ErrBadLag
	}

	// Stage 4: route flags to a single strategy.
	switch {
	case resolved.Circular:
		return resolved, variantApproxCircular, nil
	case resolved.Exact:
		return resolved, variantExact, nil
	case resolved.Simple:
		return resolved, variantApproxSimple, nil
	default:
		return resolved, variantApproxCorrected, nil
	}
}
