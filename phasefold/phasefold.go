package phasefold

import (
	"errors"
	"math"
)

var (
	// ErrBadPeriod indicates a non-positive or non-finite folding period.
	ErrBadPeriod = errors.New("phasefold: period must be positive and finite")

	// ErrEmptyInput indicates an empty time series.
	ErrEmptyInput = errors.New("phasefold: time series must be non-empty")
)

// Phase maps absolute time t onto orbital phase in [-0.5, 0.5) given a
// period and a reference epoch (transit center). The transit center maps
// to phase 0.
//
// Phase is a pure function: it keeps no state and never fails for finite
// inputs; callers must guarantee period > 0 (see Fold for a validated
// vector form).
//
// Complexity: O(1).
func Phase(t, period, epoch float64) float64 {
	phi := math.Mod((t-epoch)/period, 1.0)
	if phi < -0.5 {
		phi += 1.0
	} else if phi >= 0.5 {
		phi -= 1.0
	}
	return phi
}

// Fold maps an entire time series onto orbital phase.
// Returns a new slice; the input is never mutated.
//
// Errors:
//   - ErrEmptyInput — time is empty.
//   - ErrBadPeriod  — period is not a positive finite number.
//
// Complexity: O(n) time, O(n) space.
func Fold(time []float64, period, epoch float64) ([]float64, error) {
	if len(time) == 0 {
		return nil, ErrEmptyInput
	}
	if !(period > 0) || math.IsInf(period, 1) {
		return nil, ErrBadPeriod
	}

	phases := make([]float64, len(time))
	for i, t := range time {
		phases[i] = Phase(t, period, epoch)
	}
	return phases, nil
}
