// Package trapfit recovers trapezoid transit parameters from noisy
// photometry by nonlinear least squares with randomized restarts.
//
// 🚀 What does the engine do?
//
//	Given a light curve (time/flux/error), an initial guess for the
//	transit's period, epoch, duration, and depth, and a fit window
//	around the predicted transits, the engine minimizes chi-square
//	between the data and a supersampled trapezoid model. The period is
//	held fixed; epoch offset, depth, duration, and the ingress/duration
//	ratio float. Several trials start from randomly perturbed guesses,
//	and the lowest chi-square across converged trials wins.
//
// ✨ Key features:
//   - Nelder–Mead (gonum.org/v1/gonum/optimize) over bounded parameters
//     via a logit transform, so every candidate stays physical
//   - deterministic per-trial RNG streams derived from one seed
//   - per-trial containment: a diverged or numerically unstable trial is
//     excluded, never fatal; only all-trials-diverged returns
//     ErrFitDivergence
//   - iteration cap per trial bounds worst-case latency
//   - chi-square trace across trials exposed for diagnostic plotting
//   - optional zerolog progress logging, disabled by default
//
// ⚙️ Usage:
//
//	import "github.com/astrokit/trapfit/trapfit"
//
//	est := trapfit.Estimates{
//	  PeriodDays:    10.4203,
//	  EpochDays:     5.101,
//	  DurationHours: 4.5,
//	  DepthPPM:      330.0,
//	}
//	opts := trapfit.DefaultOptions()
//	opts.Trials = 4
//	opts.Seed = 42
//
//	res, err := trapfit.Fit(time, flux, errs, est, opts)
//	if err != nil {
//	  // handle ErrFitDivergence, ErrDimensionMismatch, ...
//	}
//	fmt.Println(res.DurationHours, res.DepthPPM)
//
// Performance: each trial costs O(iterations · region · SampleN); trials
// are independent and run sequentially.
//
// See examples in example_test.go.
package trapfit
