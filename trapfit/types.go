package trapfit

import (
	"errors"
	"math"

	"github.com/rs/zerolog"
)

var (
	// ErrEmptyInput indicates empty time/flux/error arrays.
	ErrEmptyInput = errors.New("trapfit: input arrays must be non-empty")

	// ErrDimensionMismatch indicates time/flux/error arrays of differing
	// lengths.
	ErrDimensionMismatch = errors.New("trapfit: time, flux and error arrays must have equal length")

	// ErrBadOption indicates an invalid fit option: non-positive fit
	// region, error scale, trial count or iteration cap, or an even or
	// non-positive SampleN.
	ErrBadOption = errors.New("trapfit: invalid fit option")

	// ErrBadEstimates indicates unusable original estimates: non-positive
	// period or duration, or negative depth.
	ErrBadEstimates = errors.New("trapfit: invalid original estimates")

	// ErrEmptyFitRegion indicates that too few cadences fall inside the
	// fit window around the predicted transits.
	ErrEmptyFitRegion = errors.New("trapfit: no usable cadences in fit region")

	// ErrFitDivergence indicates that every trial failed to converge.
	ErrFitDivergence = errors.New("trapfit: all fit trials diverged")

	// ErrNumericInstability marks a trial aborted on NaN/Inf chi-square.
	// It is recorded on the trial outcome, never returned by Fit alone:
	// total failure surfaces as ErrFitDivergence.
	ErrNumericInstability = errors.New("trapfit: NaN or Inf encountered during optimization")
)

// ppmPerUnit converts depth between parts-per-million and fraction.
const ppmPerUnit = 1.0e6

// hoursPerDay converts hour-denominated estimates to days.
const hoursPerDay = 24.0

// minRegionCadences is the smallest usable fit window: one more point
// than free parameters.
const minRegionCadences = nParams + 1

// Estimates is the initial guess seeding the fit. Values are fixed at
// construction; the engine never writes back to them.
type Estimates struct {
	// PeriodDays is the orbital period. Held fixed during the fit.
	PeriodDays float64

	// EpochDays is the estimated transit center time.
	EpochDays float64

	// DurationHours is the estimated transit duration.
	DurationHours float64

	// DepthPPM is the estimated transit depth in parts per million.
	DepthPPM float64
}

// validate reports whether e can seed a fit.
func (e Estimates) validate() error {
	for _, v := range []float64{e.PeriodDays, e.EpochDays, e.DurationHours, e.DepthPPM} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadEstimates
		}
	}
	if e.PeriodDays <= 0 || e.DurationHours <= 0 || e.DepthPPM < 0 {
		return ErrBadEstimates
	}
	return nil
}

// Options configures the fit engine.
type Options struct {
	// FitRegionDurations restricts fitting to cadences within
	// ±(FitRegionDurations·duration/2) of each predicted transit center.
	// Must be positive.
	FitRegionDurations float64

	// ErrorScale multiplies the per-point errors inside chi-square.
	// Must be positive.
	ErrorScale float64

	// SampleN is the model supersampling count per cadence. Must be odd
	// and >= 1.
	SampleN int

	// Trials is the number of random-restart optimizations. Trial 0
	// starts exactly at the initial guess; later trials perturb it.
	// Must be >= 1.
	Trials int

	// Seed selects the deterministic random stream for trial
	// perturbations. Seed==0 falls back to a fixed default.
	Seed int64

	// MaxIterations caps the optimizer iterations per trial, bounding
	// worst-case latency. A trial that exhausts the cap counts as
	// diverged. Must be >= 1.
	MaxIterations int

	// Logger receives per-trial progress at debug level. Defaults to a
	// no-op logger.
	Logger zerolog.Logger

	// LogEvery throttles evaluation-level debug logging to every N-th
	// objective evaluation; 0 disables evaluation logging entirely.
	LogEvery int
}

// DefaultOptions mirrors the reference fit setup: a ±2-duration window,
// unit error scale, 15-fold supersampling, two trials.
func DefaultOptions() Options {
	return Options{
		FitRegionDurations: 4.0,
		ErrorScale:         1.0,
		SampleN:            15,
		Trials:             2,
		MaxIterations:      5000,
		Logger:             zerolog.Nop(),
	}
}

// validate reports whether o is usable.
func (o Options) validate() error {
	if !(o.FitRegionDurations > 0) || !(o.ErrorScale > 0) {
		return ErrBadOption
	}
	if o.SampleN < 1 || o.SampleN%2 == 0 {
		return ErrBadOption
	}
	if o.Trials < 1 || o.MaxIterations < 1 || o.LogEvery < 0 {
		return ErrBadOption
	}
	return nil
}

// TracePoint is one recorded improvement of the objective: the trial it
// came from, the cumulative objective-evaluation index within that
// trial, and the chi-square reached.
type TracePoint struct {
	Trial     int
	Eval      int
	ChiSquare float64
}

// TrialOutcome summarizes one random-restart trial.
type TrialOutcome struct {
	// ChiSquare is the trial's final objective value; NaN if it never
	// produced a finite one.
	ChiSquare float64

	// Converged reports whether the optimizer terminated on its
	// convergence criterion within the iteration cap.
	Converged bool

	// Err carries the containment reason for a diverged trial:
	// ErrNumericInstability, an optimizer error, or nil.
	Err error
}

// Uncertainty holds per-parameter 1-sigma estimates from the local
// curvature of chi-square at the optimum. A NaN entry means the
// curvature was unusable for that parameter.
type Uncertainty struct {
	EpochDays     float64
	DurationHours float64
	IngressHours  float64
	DepthPPM      float64
}

// Result is the immutable outcome of a successful fit.
type Result struct {
	// PeriodDays echoes the fixed input period.
	PeriodDays float64

	// EpochDays is the recovered transit center time.
	EpochDays float64

	// DurationHours is the recovered transit duration.
	DurationHours float64

	// IngressHours is the recovered ingress/egress ramp duration.
	IngressHours float64

	// DepthPPM is the recovered depth in parts per million.
	DepthPPM float64

	// ChiSquare is the best objective value across converged trials.
	ChiSquare float64

	// Unc holds curvature-based 1-sigma uncertainties.
	Unc Uncertainty

	// Trace records every objective improvement across all trials, for
	// diagnostic plotting of the likelihood surface exploration.
	Trace []TracePoint

	// Trials reports each restart's outcome, converged or contained.
	Trials []TrialOutcome

	// BestTrial is the index into Trials of the winning restart.
	BestTrial int

	// RegionIdx lists the cadence indices that were inside the fit
	// window and entered the chi-square.
	RegionIdx []int
}
