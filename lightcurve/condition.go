package lightcurve

import (
	"math"
	"sort"
)

// madToStd converts a median absolute deviation to a Gaussian-equivalent
// standard deviation.
const madToStd = 1.4826

// defaultClipIterations bounds SigmaClip when the caller passes
// maxIter <= 0.
const defaultClipIterations = 10000

// MarkTransitCadences returns a boolean mask with true at every cadence
// within ±(numDurations·duration/2) of any predicted transit center.
//
// flags, when non-nil, must match len(time); cadences flagged true are
// ignored both when bounding the transit count and in the output mask.
// Useful when some time entries are NaN.
//
// Errors:
//   - ErrEmptyInput        — time is empty.
//   - ErrDimensionMismatch — flags present with mismatched length.
//   - ErrBadOption         — non-positive period, duration or numDurations.
//   - ErrNonFinite         — transit bounds cannot be computed from time.
//   - ErrNoTransitCoverage — the mask comes out all-false.
//
// Complexity: O(n·transits) time, O(n) space.
func MarkTransitCadences(time []float64, periodDays, epoch, durationDays, numDurations float64, flags []bool) ([]bool, error) {
	n := len(time)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if flags != nil && len(flags) != n {
		return nil, ErrDimensionMismatch
	}
	if !(periodDays > 0) || !(durationDays > 0) || !(numDurations > 0) {
		return nil, ErrBadOption
	}

	// Bound the transit indices covered by the unflagged data.
	tmin, tmax := math.Inf(1), math.Inf(-1)
	for i, t := range time {
		if flags != nil && flags[i] {
			continue
		}
		tmin = math.Min(tmin, t)
		tmax = math.Max(tmax, t)
	}
	i0 := math.Floor((tmin - epoch) / periodDays)
	i1 := math.Ceil((tmax - epoch) / periodDays)
	if !isFinite(i0) || !isFinite(i1) {
		return nil, ErrNonFinite
	}

	maxDiff := 0.5 * durationDays * numDurations
	mask := make([]bool, n)
	any := false
	for k := i0; k <= i1; k++ {
		center := epoch + periodDays*k
		for i, t := range time {
			if flags != nil && flags[i] {
				continue
			}
			if math.Abs(t-center) < maxDiff {
				mask[i] = true
				any = true
			}
		}
	}
	if !any {
		return nil, ErrNoTransitCoverage
	}
	return mask, nil
}

// SigmaClip iteratively marks outliers more than nSigma standard
// deviations from the mean, recomputing mean and deviation over the
// surviving points until the mask stabilizes or maxIter passes elapse
// (maxIter <= 0 selects a high default cap).
//
// initial, when non-nil, seeds the mask: entries already true are treated
// as bad from the first iteration. The returned mask is a fresh slice.
//
// Errors: ErrEmptyInput, ErrBadThreshold, ErrDimensionMismatch (initial
// length mismatch).
//
// Complexity: O(n·iterations) time, O(n) space.
func SigmaClip(y []float64, nSigma float64, maxIter int, initial []bool) ([]bool, error) {
	n := len(y)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if !(nSigma > 0) {
		return nil, ErrBadThreshold
	}
	if initial != nil && len(initial) != n {
		return nil, ErrDimensionMismatch
	}
	if maxIter <= 0 {
		maxIter = defaultClipIterations
	}

	mask := make([]bool, n)
	if initial != nil {
		copy(mask, initial)
	}

	clipped := countTrue(mask)
	for iter := 0; iter < maxIter; iter++ {
		mean, std := meanStd(y, mask)
		for i, v := range y {
			if math.Abs(v-mean) > nSigma*std {
				mask[i] = true
			}
		}
		now := countTrue(mask)
		if now == clipped {
			break
		}
		clipped = now
	}
	return mask, nil
}

// EstimateScatter estimates the per-point scatter of a light curve from
// the first differences of its finite values, using a sigma-clipped MAD.
// The method tolerates outliers; the result shares the units of flux.
//
// Errors: ErrEmptyInput when fewer than two finite values remain.
//
// Complexity: O(n log n) time, O(n) space.
func EstimateScatter(flux []float64) (float64, error) {
	finite := make([]float64, 0, len(flux))
	for _, v := range flux {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) < 2 {
		return 0, ErrEmptyInput
	}

	diff := make([]float64, len(finite)-1)
	for i := 1; i < len(finite); i++ {
		diff[i-1] = finite[i] - finite[i-1]
	}

	// Drop egregious outliers before the robust estimate.
	mask, err := SigmaClip(diff, 5.0, 0, nil)
	if err != nil {
		return 0, err
	}
	kept := make([]float64, 0, len(diff))
	for i, v := range diff {
		if !mask[i] {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		kept = diff
	}

	mean, _ := meanStd(kept, nil)
	dev := make([]float64, len(kept))
	for i, v := range kept {
		dev[i] = math.Abs(v - mean)
	}
	std := madToStd * median(dev)

	// std measures the diff of two points; a single point carries 1/sqrt(2).
	return std / math.Sqrt2, nil
}

// MedianDetrend subtracts a running median of half-window nPoints from
// the flux, returning a new slice. Window edges clamp to the array
// bounds, keeping the window width constant.
//
// Errors: ErrEmptyInput, ErrBadOption (nPoints < 1).
//
// Complexity: O(n·w log w) for window width w = 2·nPoints.
func MedianDetrend(flux []float64, nPoints int) ([]float64, error) {
	n := len(flux)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if nPoints < 1 {
		return nil, ErrBadOption
	}

	filtered := make([]float64, n)
	width := 2 * nPoints
	buf := make([]float64, 0, width)
	for i := 0; i < n; i++ {
		lwr := maxInt(i-nPoints, 0)
		upr := minInt(lwr+width, n)
		lwr = maxInt(upr-width, 0)

		buf = append(buf[:0], flux[lwr:upr]...)
		filtered[i] = flux[i] - median(buf)
	}
	return filtered, nil
}

// meanStd computes the mean and population standard deviation of y over
// entries where mask is false (nil mask means all entries).
func meanStd(y []float64, mask []bool) (mean, std float64) {
	var sum float64
	var count int
	for i, v := range y {
		if mask != nil && mask[i] {
			continue
		}
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return math.NaN(), math.NaN()
	}
	mean = sum / float64(count)

	var sq float64
	for i, v := range y {
		if mask != nil && mask[i] {
			continue
		}
		if math.IsNaN(v) {
			continue
		}
		d := v - mean
		sq += d * d
	}
	std = math.Sqrt(sq / float64(count))
	return mean, std
}

// median returns the median of v. v is sorted in place.
func median(v []float64) float64 {
	if len(v) == 0 {
		return math.NaN()
	}
	sort.Float64s(v)
	mid := len(v) / 2
	if len(v)%2 == 1 {
		return v[mid]
	}
	return 0.5 * (v[mid-1] + v[mid])
}

// countTrue returns the number of true entries in mask.
func countTrue(mask []bool) int {
	c := 0
	for _, b := range mask {
		if b {
			c++
		}
	}
	return c
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
