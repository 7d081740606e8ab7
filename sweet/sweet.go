package sweet

import (
	"errors"
	"fmt"

	"github.com/astrokit/trapfit/lightcurve"
	"github.com/astrokit/trapfit/lsfit"
)

// ErrTooFewPoints indicates a light curve too short to support three
// sine fits.
var ErrTooFewPoints = errors.New("sweet: too few data points for sine fits")

// minPoints is the smallest light curve the test accepts. Below this the
// amplitude uncertainties are meaningless.
const minPoints = 10

// Row labels for Report.Amplitudes, in fit order.
const (
	HalfPeriod = iota
	FullPeriod
	TwicePeriod
	numTestPeriods
)

// rowNames maps Report rows to the wording used in warning messages.
var rowNames = [numTestPeriods]string{"HALF the", "the", "TWICE the"}

// Options configures the SWEET test.
type Options struct {
	// InTransitDurations controls how wide a window around each transit
	// center is excluded from the sine fits, in units of the transit
	// duration. The transit itself must not masquerade as a sinusoid.
	InTransitDurations float64
}

// DefaultOptions returns the standard SWEET configuration: exclude one
// transit duration around each transit center.
func DefaultOptions() Options {
	return Options{InTransitDurations: 1.0}
}

// Measurement is one row of the SWEET result: the best-fit sinusoid
// amplitude at a test period, its uncertainty, and their ratio.
type Measurement struct {
	Amplitude   float64
	Uncertainty float64
	SNR         float64
}

// Report is the outcome of a SWEET run.
type Report struct {
	// Amplitudes holds one Measurement per test period, indexed by
	// HalfPeriod, FullPeriod and TwicePeriod.
	Amplitudes [numTestPeriods]Measurement
}

// Run fits sinusoids at half, one, and two times the candidate period to
// the out-of-transit light curve and reports amplitude-to-uncertainty
// ratios. Per-point weights come from the robust scatter of the data.
//
// Errors:
//   - ErrTooFewPoints — fewer than 10 out-of-transit cadences.
//   - lsfit errors propagated from the underlying sine fits.
//
// Complexity: O(n) per test period.
func Run(time, flux []float64, periodDays, epochDays, durationDays float64, opts Options) (*Report, error) {
	outT, outF, err := maskTransits(time, flux, periodDays, epochDays, durationDays, opts.InTransitDurations)
	if err != nil {
		return nil, err
	}
	if len(outT) < minPoints {
		return nil, ErrTooFewPoints
	}

	scatter, err := lightcurve.EstimateScatter(outF)
	if err != nil {
		return nil, fmt.Errorf("sweet: estimating scatter: %w", err)
	}

	// Zero-center the flux: the sine basis has no constant term, so a
	// mean offset would otherwise leak into every amplitude uncertainty.
	var mean float64
	for _, v := range outF {
		mean += v
	}
	mean /= float64(len(outF))
	centered := make([]float64, len(outF))
	for i, v := range outF {
		centered[i] = v - mean
	}

	rep := &Report{}
	for row, p := range [numTestPeriods]float64{0.5 * periodDays, periodDays, 2 * periodDays} {
		sol, err := lsfit.Fit(outT, centered, []float64{scatter}, 2, lsfit.Sine{PeriodDays: p})
		if err != nil {
			return nil, fmt.Errorf("sweet: sine fit at %.4f days: %w", p, err)
		}
		amp, unc, err := sol.Amplitude()
		if err != nil {
			return nil, err
		}
		rep.Amplitudes[row] = Measurement{
			Amplitude:   amp,
			Uncertainty: unc,
			SNR:         amp / unc,
		}
	}
	return rep, nil
}

// Messages renders the warnings for every test period whose sinusoid
// signal-to-noise exceeds thresholdSigma. An empty slice means the
// candidate passes.
func (r *Report) Messages(thresholdSigma float64) []string {
	var msgs []string
	for row, m := range r.Amplitudes {
		if m.SNR > thresholdSigma {
			msgs = append(msgs, fmt.Sprintf(
				"WARN: SWEET test finds a signal at %s transit period (%.1f sigma)",
				rowNames[row], m.SNR))
		}
	}
	return msgs
}

// maskTransits removes in-transit cadences; if the mask cannot be built
// because no cadence is in transit, the full series is used as-is.
func maskTransits(time, flux []float64, periodDays, epochDays, durationDays, nDurations float64) ([]float64, []float64, error) {
	if len(time) != len(flux) {
		return nil, nil, lightcurve.ErrDimensionMismatch
	}
	mask, err := lightcurve.MarkTransitCadences(time, periodDays, epochDays, durationDays, nDurations, nil)
	if errors.Is(err, lightcurve.ErrNoTransitCoverage) {
		return time, flux, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("sweet: masking transits: %w", err)
	}

	outT := make([]float64, 0, len(time))
	outF := make([]float64, 0, len(flux))
	for i := range time {
		if mask[i] {
			continue
		}
		outT = append(outT, time[i])
		outF = append(outF, flux[i])
	}
	return outT, outF, nil
}
