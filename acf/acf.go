package acf

import "math"

// Compute returns the autocorrelation coefficient of series at the lag
// selected in opts. A nil opts is equivalent to DefaultOptions().
//
// The estimator is chosen by the option flags:
//
//	Exact=false, Simple=true   → population form, plain ratio (default)
//	Exact=false, Simple=false  → population form, (n−k)/n divisor correction
//	Exact=true                 → Kendall's sample form, window-local means
//	Circular=true              → population form with wrap-around partners
//	                             (Simple picks plain vs corrected ratio)
//
// The result is nominally in [-1, 1] but is NOT clamped: degenerate
// input (e.g. a constant series) yields whatever IEEE-754 division
// produces, typically NaN. Callers detect that with math.IsNaN.
//
// Errors: ErrEmptyInput, ErrInsufficientData, ErrBadLag,
// ErrUnsupportedCombo — all raised before any arithmetic.
//
// Example:
//
//	opts := acf.DefaultOptions()
//	r, err := acf.Compute([]float64{1, 2}, &opts)
//	// r == -0.5
//
// Complexity: O(n) time, O(1) memory.
func Compute(series []float64, opts *Options) (float64, error) {
	o, v, err := resolve(series, opts)
	if err != nil {
		return 0, err
	}

	switch v {
	case variantApproxSimple:
		return approxLinear(series, o.Lag, true), nil
	case variantApproxCorrected:
		return approxLinear(series, o.Lag, false), nil
	case variantExact:
		return exactLinear(series, o.Lag), nil
	default: // variantApproxCircular
		return approxCircular(series, o.Lag, o.Simple), nil
	}
}

// Coefficient is an ergonomic alias for Compute; both names denote the
// identical operation and return identical results for identical input.
func Coefficient(series []float64, opts *Options) (float64, error) {
	return Compute(series, opts)
}

// approxLinear computes the population autocorrelation at lag k using
// the global mean μ:
//
//	sumResid = Σ_{i<n-k} (x[i]-μ)(x[i+k]-μ)
//	sumSq    = Σ_{i<n}   (x[i]-μ)²
//
// With simple=true the result is sumResid/sumSq (Kendall Eq. 3.36,
// simplified); otherwise the (n−k)/n divisor correction is applied:
// (sumResid/(n−k)) / (sumSq/n).
//
// Complexity: O(n) time, O(1) memory.
func approxLinear(series []float64, k int, simple bool) float64 {
	n := len(series)
	mu := Mean(series)

	var sumResid, sumSq float64
	for i := 0; i < n-k; i++ {
		sumResid += (series[i] - mu) * (series[i+k] - mu)
	}
	for i := 0; i < n; i++ {
		d := series[i] - mu
		sumSq += d * d
	}

	if simple {
		return sumResid / sumSq
	}

	return (sumResid / float64(n-k)) / (sumSq / float64(n))
}

// exactLinear computes Kendall's exact sample autocorrelation at lag k
// (Kendall 1973, Eq. 3.35). Unlike the population form it centers the
// two overlapping windows on their own means:
//
//	c0       = 1/(n−k)
//	meanHead = c0 · Σ x[i]      over i < n−k
//	meanTail = c0 · Σ x[i+k]    over i < n−k
//	r        = c0·Σ(x[i]-meanHead)(x[i+k]-meanTail) /
//	           sqrt(c0·Σ(x[i]-meanHead)² · c0·Σ(x[i+k]-meanTail)²)
//
// Complexity: O(n) time, O(1) memory.
func exactLinear(series []float64, k int) float64 {
	n := len(series)
	c0 := 1 / float64(n-k)

	var sumHead, sumTail float64
	for i := 0; i < n-k; i++ {
		sumHead += series[i]
		sumTail += series[i+k]
	}
	meanHead := c0 * sumHead
	meanTail := c0 * sumTail

	var sumCross, sumHeadSq, sumTailSq float64
	for i := 0; i < n-k; i++ {
		dh := series[i] - meanHead
		dt := series[i+k] - meanTail
		sumCross += dh * dt
		sumHeadSq += dh * dh
		sumTailSq += dt * dt
	}

	return c0 * sumCross / math.Sqrt(c0*sumHeadSq*c0*sumTailSq)
}

// approxCircular computes the population autocorrelation at lag k with
// wrap-around partner indexing. For every i the lagged partner is
// x[i+k] while i+k < n; once i+k runs past the end, the partner is the
// FIXED element x[k] — not x[(i+k) mod n]. That fallback is part of
// the numeric contract of the classical formulation this package
// reproduces and is deliberately preserved (see package doc).
//
// simple selects the plain vs divisor-corrected ratio exactly as in
// approxLinear; the correction uses the same (n−k)/n divisors even
// though the residual sum here spans all n terms.
//
// Complexity: O(n) time, O(1) memory.
func approxCircular(series []float64, k int, simple bool) float64 {
	n := len(series)
	mu := Mean(series)

	var sumResid, sumSq float64
	for i := 0; i < n; i++ {
		partner := k
		if i+k < n {
			partner = i + k
		}
		sumResid += (series[i] - mu) * (series[partner] - mu)

		d := series[i] - mu
		sumSq += d * d
	}

	if simple {
		return sumResid / sumSq
	}

	return (sumResid / float64(n-k)) / (sumSq / float64(n))
}
