// Package trapfit is a toolkit for vetting transit-like signals in
// stellar photometry — from synthetic light curves to a full trapezoid
// transit fit.
//
// 🚀 What is trapfit?
//
//	A pure-numeric library that covers the core loop of transit vetting:
//		• Synthetic data: uniform time grids with Gaussian noise
//		• Trapezoid models: supersampled flat-bottom transit shapes
//		• Phase folding: stack repeated events onto [−0.5, 0.5)
//		• Fitting: Nelder–Mead with randomized restarts recovering
//		  epoch, duration, depth and ingress from noisy flux
//		• Vetting extras: SWEET sinusoid test, sigma clipping, robust
//		  scatter, transit-coverage checks
//
// ✨ Why choose trapfit?
//
//   - Deterministic — explicit seeds and owned RNG streams, no global state
//   - Contained failure — a diverged fit trial never aborts the fit
//   - Diagnostic-friendly — chi-square traces and per-trial outcomes
//     exposed for plotting
//
// Everything is organized under six subpackages:
//
//	lightcurve/ — synthetic series generation + conditioning utilities
//	trapezoid/  — the trapezoid transit model
//	phasefold/  — phase folding and transit phase coverage
//	trapfit/    — the nonlinear fit engine
//	lsfit/      — weighted linear least squares on analytic bases
//	sweet/      — the SWEET variable-star vetter
//
// Quick sketch of the round trip:
//
//	flux ──multiply──▶ trapezoid model ──fit──▶ period/epoch/duration/depth
//
// Start with lightcurve.Generate and trapfit.Fit; see each package's
// example_test.go for runnable walkthroughs.
package trapfit
