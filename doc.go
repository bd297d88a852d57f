// Package autocorr measures how strongly a numeric series correlates
// with a lagged copy of itself — one coefficient per call, nothing more.
//
// 🚀 What is autocorr?
//
//	A small, self-contained library that computes the serial
//	(auto)correlation coefficient of a single sequence at a given lag:
//	  • population form — global mean, plain or divisor-corrected ratio
//	  • sample form — Kendall's exact estimator with window-local means
//	  • circular form — wrap-around lag indexing for cyclic data
//
// ✨ Why choose autocorr?
//
//   - Beginner-friendly – one entry point, clear, intuitive naming
//   - Rock-solid guarantees – strict validation, sentinel errors, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – stateless, bit-identical results on repeat calls
//
// Everything lives in a single subpackage:
//
//	acf/ — the autocorrelation calculator (Compute / Coefficient)
//
// Quick taste:
//
//	opts := acf.DefaultOptions()
//	opts.Lag = 1
//	r, err := acf.Compute([]float64{1, 2, 3, 4, 5}, &opts)
//	// r == 0.4
//
// Dive into acf/doc.go for the formula catalogue and the examples/
// directory for runnable scenarios.
//
//	go get github.com/katalvlaran/autocorr/acf
package autocorr
