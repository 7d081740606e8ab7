package trapezoid

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates an empty time grid.
	ErrEmptyInput = errors.New("trapezoid: time grid must be non-empty")

	// ErrBadConfig indicates an invalid sampling configuration:
	// non-positive cadence, or SampleN that is even or below 1.
	ErrBadConfig = errors.New("trapezoid: cadence must be positive and SampleN odd and >= 1")

	// ErrBadParams indicates invalid transit parameters: non-positive
	// period or duration, negative ingress or depth, depth >= 1e6 ppm,
	// or any non-finite value.
	ErrBadParams = errors.New("trapezoid: invalid transit parameters")
)

// ppmPerUnit converts depth between parts-per-million and fractional flux.
const ppmPerUnit = 1.0e6

// hoursPerDay converts the hour-denominated parameters to days, matching
// the day-denominated time grid.
const hoursPerDay = 24.0

// Params are the physical transit parameters of a trapezoid model.
//
// Units follow the conventional mixed system used for transit searches:
// period and epoch in days, duration and ingress in hours, depth in ppm.
// Conversions happen inside the package.
type Params struct {
	// PeriodDays is the orbital period. Must be positive.
	PeriodDays float64

	// EpochDays is the time of a transit center, on the same clock as the
	// time grid.
	EpochDays float64

	// DurationHours is the transit duration, mid-ingress to mid-egress.
	// Must be positive.
	DurationHours float64

	// IngressHours is the ingress (= egress) ramp duration. Zero gives a
	// box-shaped transit. Must not exceed DurationHours.
	IngressHours float64

	// DepthPPM is the flux loss at the flat bottom, in parts per million.
	// Valid range is [0, 1e6).
	DepthPPM float64
}

// validate reports whether p describes a physically meaningful trapezoid.
func (p Params) validate() error {
	vals := []float64{p.PeriodDays, p.EpochDays, p.DurationHours, p.IngressHours, p.DepthPPM}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadParams
		}
	}
	if p.PeriodDays <= 0 || p.DurationHours <= 0 {
		return ErrBadParams
	}
	if p.IngressHours < 0 || p.IngressHours > p.DurationHours {
		return ErrBadParams
	}
	if p.DepthPPM < 0 || p.DepthPPM >= ppmPerUnit {
		return ErrBadParams
	}
	return nil
}

// Config fixes the sampling setup of a model: it is preserved across
// Derive calls while transit parameters change.
type Config struct {
	// CadenceDays is the exposure length of one cadence. Must be positive.
	CadenceDays float64

	// SampleN is the number of model evaluations per cadence, averaged to
	// approximate exposure smearing. Must be odd and >= 1 so the samples
	// are symmetric about the cadence midpoint.
	SampleN int
}

// DefaultConfig returns the sampling configuration used by the reference
// test setup: 48 cadences per day with 15-fold supersampling.
func DefaultConfig() Config {
	return Config{CadenceDays: 1.0 / 48.0, SampleN: 15}
}

// validate reports whether cfg is usable.
func (c Config) validate() error {
	if !(c.CadenceDays > 0) || math.IsInf(c.CadenceDays, 1) {
		return ErrBadConfig
	}
	if c.SampleN < 1 || c.SampleN%2 == 0 {
		return ErrBadConfig
	}
	return nil
}

// Overrides selects transit parameters to replace when deriving a new
// model from an existing one. Nil fields keep the base value.
type Overrides struct {
	EpochDays     *float64
	DurationHours *float64
	IngressHours  *float64
	DepthPPM      *float64
}
