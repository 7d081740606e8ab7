package lightcurve

import (
	"errors"
	"math"

	xrand "golang.org/x/exp/rand"
)

var (
	// ErrEmptyInput indicates an empty series or array argument.
	ErrEmptyInput = errors.New("lightcurve: input must be non-empty")

	// ErrDimensionMismatch indicates time/flux/error arrays of differing
	// lengths.
	ErrDimensionMismatch = errors.New("lightcurve: time, flux and error arrays must have equal length")

	// ErrBadOption indicates an invalid generation option: non-positive
	// span, cadence, or noise level, or a span shorter than one cadence.
	ErrBadOption = errors.New("lightcurve: invalid generation option")

	// ErrNonFinite indicates NaN or Inf values where finite input is
	// required.
	ErrNonFinite = errors.New("lightcurve: non-finite value in input")

	// ErrNoTransitCoverage indicates that no cadence falls inside any
	// predicted transit window.
	ErrNoTransitCoverage = errors.New("lightcurve: no cadences within transit windows")

	// ErrBadThreshold indicates a non-positive sigma-clip threshold.
	ErrBadThreshold = errors.New("lightcurve: clip threshold must be positive")
)

// ppmPerUnit converts a ppm-denominated noise level to fractional flux.
const ppmPerUnit = 1.0e6

// defaultSeed is the fixed seed used when Options.Seed==0 and no Source
// is supplied, keeping the zero-value path reproducible.
const defaultSeed uint64 = 1

// Series is a validated time/flux/error triple. Flux is relative
// brightness nominally centered at 1.0; Err holds per-point 1-sigma
// uncertainties.
type Series struct {
	Time []float64
	Flux []float64
	Err  []float64
}

// Validate checks the structural invariants of the series: non-empty,
// equal lengths, strictly increasing finite time, finite flux, and
// positive finite errors.
//
// Errors: ErrEmptyInput, ErrDimensionMismatch, ErrNonFinite, or
// ErrBadOption (non-increasing time or non-positive errors).
func (s Series) Validate() error {
	n := len(s.Time)
	if n == 0 {
		return ErrEmptyInput
	}
	if len(s.Flux) != n || len(s.Err) != n {
		return ErrDimensionMismatch
	}
	for i := 0; i < n; i++ {
		if !isFinite(s.Time[i]) || !isFinite(s.Flux[i]) || !isFinite(s.Err[i]) {
			return ErrNonFinite
		}
		if i > 0 && s.Time[i] <= s.Time[i-1] {
			return ErrBadOption
		}
		if s.Err[i] <= 0 {
			return ErrBadOption
		}
	}
	return nil
}

// Options configures synthetic light-curve generation.
type Options struct {
	// SpanDays is the total time span of the series. Must be positive and
	// at least one cadence long.
	SpanDays float64

	// CadenceDays is the exposure length. Must be positive.
	CadenceDays float64

	// NoisePPM is the per-point Gaussian noise level in parts per million.
	// Must be positive; it also sets the constant error array.
	NoisePPM float64

	// Seed selects the deterministic random stream when Source is nil.
	// Seed==0 falls back to a fixed default seed, so the zero value is
	// still reproducible.
	Seed uint64

	// Source, when non-nil, supplies randomness and takes priority over
	// Seed. Pass a caller-owned source to compose draws with other
	// generation steps without global state.
	Source xrand.Source
}

// DefaultOptions mirrors the reference synthetic setup: 80 days at 48
// cadences per day with 40 ppm noise.
func DefaultOptions() Options {
	return Options{
		SpanDays:    80.0,
		CadenceDays: 1.0 / 48.0,
		NoisePPM:    40.0,
	}
}

// validate reports whether o can produce a non-empty series.
func (o Options) validate() error {
	if !(o.SpanDays > 0) || !(o.CadenceDays > 0) || !(o.NoisePPM > 0) {
		return ErrBadOption
	}
	if math.IsInf(o.SpanDays, 1) || math.IsInf(o.CadenceDays, 1) || math.IsInf(o.NoisePPM, 1) {
		return ErrBadOption
	}
	if o.SpanDays < o.CadenceDays {
		return ErrBadOption
	}
	return nil
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
