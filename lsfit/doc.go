// Package lsfit fits linear combinations of analytic basis terms to
// weighted data by least squares.
//
// 🚀 What is it for?
//
//	Many vetting metrics reduce to "fit k terms of a known function to
//	the light curve and inspect the coefficients" — most prominently the
//	SWEET test, which fits sine and cosine terms at candidate periods.
//	This package solves that weighted linear problem via the normal
//	equations and exposes the covariance of the solution.
//
// ✨ Key features:
//   - arbitrary Basis implementations; Sine (sin/cos pair) built in
//   - per-point 1-sigma weights, scalar or vector
//   - Solution with parameters, covariance, residuals, variance, and
//     model evaluation on any grid
//   - amplitude/phase extraction for the sine basis (Breger/Montgomery)
//
// ⚙️ Usage:
//
//	import "github.com/astrokit/trapfit/lsfit"
//
//	sol, err := lsfit.Fit(time, flux, errs, 2, lsfit.Sine{PeriodDays: 10.42})
//	if err != nil {
//	  // handle ErrEmptyInput / ErrDimensionMismatch / ErrSingular / ...
//	}
//	amp, unc, err := sol.Amplitude()
//
// Performance:
//
//   - Fit: O(n·k²) for the normal matrix plus O(k³) for its inverse,
//     n data points, k basis terms.
//
// See examples in example_test.go.
package lsfit
