// Package sweet implements the SWEET test: Sine Wave Event Evaluation
// Test, a vetting metric that flags transit candidates better explained
// by stellar variability than by a transit.
//
// 🚀 How it works
//
//	A sinusoid is fit to the light curve at half the candidate period,
//	at the period itself, and at twice the period. A strong sinusoidal
//	amplitude at any of those periods — measured as amplitude over its
//	uncertainty — marks the candidate as a likely variable star rather
//	than a planet (Thompson et al. 2018).
//
// ⚙️ Usage:
//
//	import "github.com/astrokit/trapfit/sweet"
//
//	rep, err := sweet.Run(time, flux, periodDays, epochDays, durationDays, sweet.DefaultOptions())
//	if err != nil {
//	  // handle ErrTooFewPoints or propagated lsfit errors
//	}
//	for _, msg := range rep.Messages(3.0) {
//	  fmt.Println(msg)
//	}
//
// Performance: three weighted sine fits, O(n) each.
//
// See examples in example_test.go.
package sweet
