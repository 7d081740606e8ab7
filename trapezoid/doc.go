// Package trapezoid evaluates trapezoid-shaped transit light-curve models.
//
// 🚀 What is a trapezoid transit model?
//
//	A transiting body carves a dip into the observed flux: a linear
//	ingress ramp, a flat bottom at 1 − depth, and a linear egress ramp
//	back to 1.0. The trapezoid is the standard cheap stand-in for a full
//	limb-darkened transit when vetting candidate signals.
//
// ✨ Key features:
//   - OneModel: build a model purely from explicit parameters — no prior
//     fit state required
//   - Derive: produce a new immutable model from an existing one with a
//     subset of parameters overridden, preserving the sampling setup
//   - per-cadence supersampling (odd SampleN sub-exposures averaged per
//     cadence) to approximate exposure-time smearing
//   - unit handling: depth in ppm, duration and ingress in hours, time
//     grid in days — converted consistently inside the package
//
// ⚙️ Usage:
//
//	import "github.com/astrokit/trapfit/trapezoid"
//
//	p := trapezoid.Params{
//	  PeriodDays:    10.4203,
//	  EpochDays:     5.1,
//	  DurationHours: 5.0,
//	  IngressHours:  0.5,
//	  DepthPPM:      300.0,
//	}
//	cfg := trapezoid.Config{CadenceDays: 1.0 / 48.0, SampleN: 15}
//
//	m, err := trapezoid.OneModel(time, p, cfg)
//	if err != nil {
//	  // handle ErrBadConfig / ErrBadParams / ErrEmptyInput
//	}
//	flux := m.LightCurve() // multiplicative: 1.0 out of transit
//
// Performance:
//
//   - OneModel / Derive: O(n·SampleN) time, O(n) space
//
// See examples in example_test.go.
package trapezoid
