// Package lightcurve generates synthetic transit photometry and provides
// the light-curve conditioning utilities fits and vetters rely on.
//
// 🚀 What lives here?
//
//	Synthetic data for exercising fitters: a uniform time grid with
//	Gaussian-noise flux centered at 1.0 and a matching constant error
//	array. Plus the standard conditioning toolbox: in-transit cadence
//	masking, iterative sigma clipping, robust scatter estimation, and a
//	running-median detrend.
//
// ✨ Key features:
//   - Generate: deterministic synthetic series from an explicit seed or
//     caller-owned random source — no global RNG state is touched
//   - Series: validated time/flux/error triple shared across the module
//   - MarkTransitCadences: boolean mask of cadences inside any transit
//   - SigmaClip / EstimateScatter / MedianDetrend: conditioning helpers
//
// ⚙️ Usage:
//
//	import "github.com/astrokit/trapfit/lightcurve"
//
//	opts := lightcurve.DefaultOptions()
//	opts.SpanDays = 80.0
//	opts.NoisePPM = 40.0
//	opts.Seed = 42
//
//	s, err := lightcurve.Generate(opts)
//	if err != nil {
//	  // handle ErrBadOption
//	}
//	_ = s.Time // floor(span/cadence) points on [0, span]
//
// Performance:
//
//   - Generate:            O(n)
//   - MarkTransitCadences: O(n·transits)
//   - SigmaClip:           O(n·iterations)
//   - MedianDetrend:       O(n·window·log window)
//
// See examples in example_test.go.
package lightcurve
