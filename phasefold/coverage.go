package phasefold

import (
	"errors"
	"math"
)

var (
	// ErrBadBins indicates a non-positive histogram bin count.
	ErrBadBins = errors.New("phasefold: bin count must be positive")

	// ErrBadWindow indicates a non-positive transit duration or window
	// multiplier.
	ErrBadWindow = errors.New("phasefold: duration and window multiplier must be positive")
)

// hoursPerDay converts the duration argument of Coverage to days.
const hoursPerDay = 24.0

// CoverageReport summarizes how well the in-transit phase range is
// sampled by the data.
type CoverageReport struct {
	// Fraction of in-transit phase bins that contain at least one cadence.
	// 1.0 means the whole transit window is sampled; 0.0 means no cadence
	// ever falls in transit.
	Fraction float64

	// Hist holds the per-bin cadence counts across the in-transit window.
	Hist []int

	// BinEdges holds the nBins+1 phase-bin boundaries (in days from the
	// transit center) matching Hist.
	BinEdges []float64
}

// Coverage folds the time series at the candidate period/epoch and
// histograms the cadences that fall within ±(nDurations·duration/2) of
// the transit center. The returned fraction of non-empty bins is a quick
// gauge of whether a fit over the transit window is even constrained.
//
// durationHours is the transit duration in hours; nBins controls the
// resolution of the answer (10 bins ⇒ coverage known to 0.1).
//
// Errors:
//   - ErrEmptyInput — time is empty.
//   - ErrBadPeriod  — period is not a positive finite number.
//   - ErrBadBins    — nBins < 1.
//   - ErrBadWindow  — non-positive duration or window multiplier.
//
// Complexity: O(n + nBins) time, O(nBins) space.
func Coverage(time []float64, period, epoch, durationHours, nDurations float64, nBins int) (CoverageReport, error) {
	if nBins < 1 {
		return CoverageReport{}, ErrBadBins
	}
	if !(durationHours > 0) || !(nDurations > 0) {
		return CoverageReport{}, ErrBadWindow
	}
	phases, err := Fold(time, period, epoch)
	if err != nil {
		return CoverageReport{}, err
	}

	durationDays := durationHours / hoursPerDay
	halfWidth := 0.5 * nDurations * durationDays // days from transit center

	hist := make([]int, nBins)
	edges := make([]float64, nBins+1)
	binWidth := 2 * halfWidth / float64(nBins)
	for i := range edges {
		edges[i] = -halfWidth + float64(i)*binWidth
	}

	for _, phi := range phases {
		d := phi * period // phase → days from transit center
		if math.Abs(d) >= halfWidth {
			continue
		}
		bin := int((d + halfWidth) / binWidth)
		if bin == nBins { // right edge guard
			bin = nBins - 1
		}
		hist[bin]++
	}

	filled := 0
	for _, c := range hist {
		if c > 0 {
			filled++
		}
	}

	return CoverageReport{
		Fraction: float64(filled) / float64(nBins),
		Hist:     hist,
		BinEdges: edges,
	}, nil
}
