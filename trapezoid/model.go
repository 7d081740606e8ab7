package trapezoid

import (
	"math"

	"github.com/astrokit/trapfit/phasefold"
)

// Model is an immutable trapezoid light-curve model evaluated on a fixed
// time grid. Create one with OneModel; derive variants with Derive.
type Model struct {
	time   []float64 // caller's grid, copied at construction
	params Params
	cfg    Config
	lc     []float64 // evaluated multiplicative model, same length as time
}

// OneModel evaluates a trapezoid transit model on the given time grid
// purely from explicit parameters. The input slice is copied, never
// retained or mutated.
//
// The model value at each cadence is the mean of cfg.SampleN evaluations
// spread uniformly across the cadence, approximating the smearing of a
// finite exposure.
//
// Errors:
//   - ErrEmptyInput — time is empty.
//   - ErrBadConfig  — invalid cadence or SampleN (see Config).
//   - ErrBadParams  — unphysical transit parameters (see Params).
//
// Complexity: O(n·SampleN) time, O(n) space.
func OneModel(time []float64, p Params, cfg Config) (*Model, error) {
	if len(time) == 0 {
		return nil, ErrEmptyInput
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	m := &Model{
		time:   append([]float64(nil), time...),
		params: p,
		cfg:    cfg,
	}
	m.lc = evaluate(m.time, p, cfg)
	return m, nil
}

// Derive returns a new Model sharing this model's time grid and sampling
// configuration, with the transit parameters in over replacing the base
// values. The receiver is left untouched.
//
// Errors: ErrBadParams if the overridden parameter set is unphysical.
//
// Complexity: O(n·SampleN) time, O(n) space.
func (m *Model) Derive(over Overrides) (*Model, error) {
	p := m.params
	if over.EpochDays != nil {
		p.EpochDays = *over.EpochDays
	}
	if over.DurationHours != nil {
		p.DurationHours = *over.DurationHours
	}
	if over.IngressHours != nil {
		p.IngressHours = *over.IngressHours
	}
	if over.DepthPPM != nil {
		p.DepthPPM = *over.DepthPPM
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	d := &Model{
		time:   m.time, // immutable after construction, safe to share
		params: p,
		cfg:    m.cfg,
	}
	d.lc = evaluate(d.time, p, d.cfg)
	return d, nil
}

// LightCurve returns a copy of the evaluated multiplicative model:
// 1.0 outside transit, 1−depth at the flat bottom, linear ramps between.
func (m *Model) LightCurve() []float64 {
	return append([]float64(nil), m.lc...)
}

// Params returns the transit parameters the model was evaluated with.
func (m *Model) Params() Params { return m.params }

// Config returns the sampling configuration of the model.
func (m *Model) Config() Config { return m.cfg }

// evaluate computes the supersampled trapezoid over the grid.
// Inputs are pre-validated.
func evaluate(time []float64, p Params, cfg Config) []float64 {
	depth := p.DepthPPM / ppmPerUnit
	bigT := p.DurationHours / hoursPerDay   // full duration, days
	littleT := p.IngressHours / hoursPerDay // ramp duration, days

	// Sub-exposure offsets centered on the cadence midpoint:
	// for SampleN=1 this is {0}; otherwise SampleN points spanning the
	// cadence symmetrically.
	offsets := make([]float64, cfg.SampleN)
	if cfg.SampleN > 1 {
		step := cfg.CadenceDays / float64(cfg.SampleN)
		half := float64(cfg.SampleN-1) / 2.0
		for k := range offsets {
			offsets[k] = (float64(k) - half) * step
		}
	}

	lc := make([]float64, len(time))
	for i, t := range time {
		sum := 0.0
		for _, off := range offsets {
			// Days from the nearest transit center.
			d := phasefold.Phase(t+off, p.PeriodDays, p.EpochDays) * p.PeriodDays
			sum += trapezoidShape(d, depth, bigT, littleT)
		}
		lc[i] = sum / float64(cfg.SampleN)
	}
	return lc
}

// trapezoidShape evaluates the trapezoid at distance d (days) from the
// transit center: flat bottom for |d| ≤ T/2 − t/2, linear ramps out to
// |d| = T/2 + t/2, unity beyond.
func trapezoidShape(d, depth, bigT, littleT float64) float64 {
	ad := math.Abs(d)
	flatHalf := 0.5*bigT - 0.5*littleT
	outerHalf := 0.5*bigT + 0.5*littleT

	switch {
	case ad <= flatHalf:
		return 1.0 - depth
	case ad < outerHalf:
		return 1.0 - depth + depth/littleT*(ad-flatHalf)
	default:
		return 1.0
	}
}
