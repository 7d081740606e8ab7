package phasefold_test

import (
	"math"
	"testing"

	"github.com/astrokit/trapfit/phasefold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPhase_Range verifies that Phase output always lies in [-0.5, 0.5)
// for a spread of positive and negative times.
func TestPhase_Range(t *testing.T) {
	period := 10.4203
	epoch := 5.1
	for _, tt := range []float64{-1234.5, -10.0, 0.0, 5.1, 7.77, 100.0, 9999.25} {
		phi := phasefold.Phase(tt, period, epoch)
		assert.GreaterOrEqual(t, phi, -0.5, "phase must be >= -0.5 for t=%v", tt)
		assert.Less(t, phi, 0.5, "phase must be < 0.5 for t=%v", tt)
	}
}

// TestPhase_TransitCentersFoldToZero verifies the round-trip property:
// epoch + k*period folds to phase ≈ 0 for any integer k.
func TestPhase_TransitCentersFoldToZero(t *testing.T) {
	period := 10.4203
	epoch := 5.1
	for _, k := range []int{-7, -1, 0, 1, 2, 53} {
		tt := epoch + float64(k)*period
		phi := phasefold.Phase(tt, period, epoch)
		assert.InDelta(t, 0.0, phi, 1e-9, "transit center k=%d must fold to zero", k)
	}
}

// TestPhase_HalfPeriodFoldsToEdge verifies that a point exactly half a
// period from the epoch lands at the -0.5 edge of the range.
func TestPhase_HalfPeriodFoldsToEdge(t *testing.T) {
	phi := phasefold.Phase(5.0+0.5*2.0, 2.0, 5.0)
	assert.InDelta(t, -0.5, phi, 1e-12, "half-period offset folds to the -0.5 edge")
}

// TestFold_Errors checks the sentinel errors for empty input and bad period.
func TestFold_Errors(t *testing.T) {
	_, err := phasefold.Fold(nil, 1.0, 0.0)
	assert.ErrorIs(t, err, phasefold.ErrEmptyInput, "empty time series must error")

	_, err = phasefold.Fold([]float64{1, 2, 3}, 0.0, 0.0)
	assert.ErrorIs(t, err, phasefold.ErrBadPeriod, "zero period must error")

	_, err = phasefold.Fold([]float64{1, 2, 3}, -2.5, 0.0)
	assert.ErrorIs(t, err, phasefold.ErrBadPeriod, "negative period must error")

	_, err = phasefold.Fold([]float64{1, 2, 3}, math.Inf(1), 0.0)
	assert.ErrorIs(t, err, phasefold.ErrBadPeriod, "infinite period must error")
}

// TestFold_MatchesScalarPhase verifies Fold agrees with element-wise Phase
// and does not mutate its input.
func TestFold_MatchesScalarPhase(t *testing.T) {
	time := []float64{0, 1.5, 3.25, 47.0, 80.0}
	orig := append([]float64(nil), time...)
	period, epoch := 10.4203, 5.1

	phases, err := phasefold.Fold(time, period, epoch)
	require.NoError(t, err)
	require.Len(t, phases, len(time))

	for i := range time {
		assert.Equal(t, phasefold.Phase(time[i], period, epoch), phases[i], "element %d", i)
	}
	assert.Equal(t, orig, time, "Fold must not mutate its input")
}

// TestCoverage_FullySampled verifies that dense uniform sampling across
// many transits yields full coverage.
func TestCoverage_FullySampled(t *testing.T) {
	period, epoch := 10.0, 5.0
	n := 80 * 48 // 80 days at 48 cadences/day
	time := make([]float64, n)
	for i := range time {
		time[i] = float64(i) / 48.0
	}

	rep, err := phasefold.Coverage(time, period, epoch, 5.0, 2.0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rep.Fraction, "dense uniform sampling covers every bin")
	assert.Len(t, rep.Hist, 10)
	assert.Len(t, rep.BinEdges, 11)
}

// TestCoverage_NoInTransitPoints verifies that data avoiding the transit
// window entirely yields zero coverage.
func TestCoverage_NoInTransitPoints(t *testing.T) {
	// Single sample far from the transit center in phase.
	time := []float64{2.5}
	rep, err := phasefold.Coverage(time, 10.0, 5.0, 5.0, 1.0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.Fraction, "no cadence lands in transit")
}

// TestCoverage_BadArguments checks the ErrBadBins and ErrBadWindow
// sentinels.
func TestCoverage_BadArguments(t *testing.T) {
	_, err := phasefold.Coverage([]float64{1}, 10.0, 5.0, 5.0, 1.0, 0)
	assert.ErrorIs(t, err, phasefold.ErrBadBins, "nBins < 1 must error")

	_, err = phasefold.Coverage([]float64{1}, 10.0, 5.0, 0.0, 1.0, 10)
	assert.ErrorIs(t, err, phasefold.ErrBadWindow, "zero duration must error")

	_, err = phasefold.Coverage([]float64{1}, 10.0, 5.0, 5.0, -1.0, 10)
	assert.ErrorIs(t, err, phasefold.ErrBadWindow, "negative multiplier must error")
}
