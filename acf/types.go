// Package acf defines options, sentinel errors and the internal
// strategy enum for the autocorrelation calculator.
package acf

import "errors"

var (
	// ErrEmptyInput indicates the input series is nil or has no elements.
	ErrEmptyInput = errors.New("acf: input series must be non-empty")

	// ErrInsufficientData indicates fewer than two observations;
	// autocorrelation is undefined for a single point.
	ErrInsufficientData = errors.New("acf: autocorrelation requires at least two observations")

	// ErrBadLag indicates a lag outside 1 ≤ lag ≤ len(series)−1.
	ErrBadLag = errors.New("acf: lag must satisfy 1 <= lag < len(series)")

	// ErrUnsupportedCombo indicates Circular and Exact were requested
	// together; no formula is defined for that pairing.
	ErrUnsupportedCombo = errors.New("acf: circular exact autocorrelation is not defined")
)

// DefaultLag is substituted when Options.Lag is left at zero.
const DefaultLag = 1

// variant identifies which of the four formula strategies runs.
// It is resolved once, during validation, so the arithmetic itself
// stays free of flag checks.
type variant int

const (
	// variantApproxSimple: population estimator, plain ratio (Kendall Eq. 3.36, simplified).
	variantApproxSimple variant = iota

	// variantApproxCorrected: population estimator with the (n−k)/n divisor correction.
	variantApproxCorrected

	// variantExact: sample estimator with lag-window-local means (Kendall Eq. 3.35).
	variantExact

	// variantApproxCircular: population estimator with wrap-around lag partners.
	variantApproxCircular
)

// Options configures a single autocorrelation computation.
//
// Fields:
//   - Lag      — offset, in index positions, between each element and its
//     lagged partner. 0 means "use DefaultLag". Must stay below len(series).
//   - Exact    — if true, use Kendall's exact sample estimator
//     (window-local means). Incompatible with Circular.
//   - Simple   — if true (default), skip the (n−k)/n divisor correction on
//     the population path. Ignored when Exact is set.
//   - Circular — if true, lag indexing wraps: partners past the end of the
//     series fall back to the fixed index Lag (see package doc for the
//     exact rule).
//
// Example:
//
//	opts := acf.DefaultOptions()
//	opts.Lag = 12        // monthly seasonality on monthly data
//	opts.Simple = false  // apply the small-sample divisor correction
//
//	r, err := acf.Compute(series, &opts)
type Options struct {
	Lag      int
	Exact    bool
	Simple   bool
	Circular bool
}

// DefaultOptions returns an Options value initialized with the
// calculator's defaults. Use it as a starting point and override
// individual fields.
//
// Defaults:
//   - Lag:      DefaultLag (1)
//   - Exact:    false (population estimator)
//   - Simple:   true (no divisor correction)
//   - Circular: false (linear lag indexing)
func DefaultOptions() Options {
	return Options{
		Lag:      DefaultLag,
		Exact:    false,
		Simple:   true,
		Circular: false,
	}
}
