// Package phasefold maps absolute time onto orbital phase for stacking
// repeated transit events.
//
// 🚀 What is phase folding?
//
//	A transit repeats every orbital period P. Folding maps each time t
//	onto phase = ((t − epoch) / P) mod 1, remapped to [−0.5, 0.5) so the
//	transit center lands near phase 0. Every observed transit then
//	overlays in one coordinate, which is how fitters and vetters stack
//	the signal.
//
// ✨ Key features:
//   - Phase: pure scalar fold, always in [−0.5, 0.5)
//   - Fold: vectorized fold of a whole time series
//   - Coverage: fraction of the in-transit phase range actually sampled
//     by the data (a cheap sanity check before fitting)
//
// ⚙️ Usage:
//
//	import "github.com/astrokit/trapfit/phasefold"
//
//	phi := phasefold.Phase(t, periodDays, epochDays)
//
//	phases, err := phasefold.Fold(time, periodDays, epochDays)
//	if err != nil {
//	  // handle ErrBadPeriod or ErrEmptyInput
//	}
//
// Performance:
//
//   - Phase:    O(1)
//   - Fold:     O(n)
//   - Coverage: O(n + bins)
//
// See examples in example_test.go.
package phasefold
