package trapezoid_test

import (
	"math"
	"testing"

	"github.com/astrokit/trapfit/trapezoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uniformGrid returns n cadences spanning [0, span] days inclusive.
func uniformGrid(span float64, n int) []float64 {
	grid := make([]float64, n)
	step := span / float64(n-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	return grid
}

// refParams is the synthetic signal used across this package's tests:
// period 10.4203 d, epoch 5.1 d, duration 5 h, depth 300 ppm.
func refParams() trapezoid.Params {
	return trapezoid.Params{
		PeriodDays:    10.4203,
		EpochDays:     5.1,
		DurationHours: 5.0,
		IngressHours:  0.5,
		DepthPPM:      300.0,
	}
}

// TestOneModel_MinEqualsDepth verifies that for a range of valid depths,
// the model minimum equals 1 - depth/1e6 within floating tolerance.
func TestOneModel_MinEqualsDepth(t *testing.T) {
	grid := uniformGrid(80.0, 80*48)
	cfg := trapezoid.DefaultConfig()

	for _, depth := range []float64{1.0, 300.0, 5000.0, 250000.0, 999999.0} {
		p := refParams()
		p.DepthPPM = depth

		m, err := trapezoid.OneModel(grid, p, cfg)
		require.NoError(t, err, "depth=%v ppm must be valid", depth)

		minFlux := math.Inf(1)
		for _, v := range m.LightCurve() {
			if v < minFlux {
				minFlux = v
			}
		}
		assert.InDelta(t, 1.0-depth/1e6, minFlux, 1e-12,
			"model floor must equal 1 - depth/1e6 for depth=%v", depth)
	}
}

// TestOneModel_ZeroDepthIsFlat verifies a zero-depth model is uniformly 1.0.
func TestOneModel_ZeroDepthIsFlat(t *testing.T) {
	grid := uniformGrid(80.0, 80*48)
	p := refParams()
	p.DepthPPM = 0.0

	m, err := trapezoid.OneModel(grid, p, trapezoid.DefaultConfig())
	require.NoError(t, err)

	for i, v := range m.LightCurve() {
		require.Equal(t, 1.0, v, "zero-depth model must be 1.0 everywhere (cadence %d)", i)
	}
}

// TestOneModel_UnityOutsideTransit verifies the model is exactly 1.0 well
// away from any transit window.
func TestOneModel_UnityOutsideTransit(t *testing.T) {
	p := refParams()
	// Quarter-period from the epoch: far outside the few-hour transit.
	grid := []float64{p.EpochDays + p.PeriodDays/4}

	m, err := trapezoid.OneModel(grid, p, trapezoid.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.LightCurve()[0], "flux must be unity out of transit")
}

// TestOneModel_RampIsMonotonic verifies the ingress ramp decreases
// monotonically from 1.0 down to the flat bottom.
func TestOneModel_RampIsMonotonic(t *testing.T) {
	p := refParams()
	p.IngressHours = 1.0
	cfg := trapezoid.Config{CadenceDays: 1.0 / 480.0, SampleN: 1}

	// Sample the half-transit leading into the bottom.
	start := p.EpochDays - (p.DurationHours/2+p.IngressHours)/24.0
	grid := make([]float64, 200)
	for i := range grid {
		grid[i] = start + float64(i)*cfg.CadenceDays/4
	}

	m, err := trapezoid.OneModel(grid, p, cfg)
	require.NoError(t, err)

	lc := m.LightCurve()
	for i := 1; i < len(lc); i++ {
		assert.LessOrEqual(t, lc[i], lc[i-1]+1e-12, "ingress must be non-increasing at sample %d", i)
	}
}

// TestOneModel_SupersamplingSoftensEdges verifies that supersampling
// lifts the model value at the flat-bottom edge relative to instantaneous
// sampling, as expected from exposure smearing across the ramp.
func TestOneModel_SupersamplingSoftensEdges(t *testing.T) {
	p := refParams()
	p.IngressHours = 0.25
	// Cadence midpoint exactly at the bottom end of the ingress ramp.
	flatHalfDays := (p.DurationHours/2 - p.IngressHours/2) / 24.0
	grid := []float64{p.EpochDays - flatHalfDays}

	sharp, err := trapezoid.OneModel(grid, p, trapezoid.Config{CadenceDays: 1.0 / 48.0, SampleN: 1})
	require.NoError(t, err)
	smooth, err := trapezoid.OneModel(grid, p, trapezoid.Config{CadenceDays: 1.0 / 48.0, SampleN: 15})
	require.NoError(t, err)

	// The instantaneous value sits on the floor; smearing mixes in ramp
	// samples and must lift the mean above it.
	assert.InDelta(t, 1.0-300e-6, sharp.LightCurve()[0], 1e-12)
	assert.Greater(t, smooth.LightCurve()[0], sharp.LightCurve()[0],
		"supersampling must lift the value at the bottom edge of the ramp")
}

// TestOneModel_BoxTransit verifies IngressHours=0 produces a pure box.
func TestOneModel_BoxTransit(t *testing.T) {
	p := refParams()
	p.IngressHours = 0.0
	cfg := trapezoid.Config{CadenceDays: 1.0 / 48.0, SampleN: 1}

	inTransit := []float64{p.EpochDays}
	outTransit := []float64{p.EpochDays + p.DurationHours/24.0}

	mIn, err := trapezoid.OneModel(inTransit, p, cfg)
	require.NoError(t, err)
	mOut, err := trapezoid.OneModel(outTransit, p, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 1.0-300e-6, mIn.LightCurve()[0], 1e-12, "box bottom")
	assert.Equal(t, 1.0, mOut.LightCurve()[0], "box exterior")
}

// TestOneModel_InputNotRetained verifies the caller's arrays are copied.
func TestOneModel_InputNotRetained(t *testing.T) {
	grid := uniformGrid(20.0, 100)
	m, err := trapezoid.OneModel(grid, refParams(), trapezoid.DefaultConfig())
	require.NoError(t, err)

	before := m.LightCurve()
	grid[0] = 9999.0 // clobber the caller's slice
	assert.Equal(t, before, m.LightCurve(), "model must not alias caller input")

	lc := m.LightCurve()
	lc[0] = -1.0 // clobber a returned copy
	assert.Equal(t, before, m.LightCurve(), "LightCurve must return a fresh copy")
}

// TestOneModel_ConfigErrors checks the ErrBadConfig sentinel.
func TestOneModel_ConfigErrors(t *testing.T) {
	grid := uniformGrid(10.0, 10)

	for name, cfg := range map[string]trapezoid.Config{
		"zero cadence":     {CadenceDays: 0, SampleN: 15},
		"negative cadence": {CadenceDays: -1, SampleN: 15},
		"even SampleN":     {CadenceDays: 1.0 / 48.0, SampleN: 4},
		"zero SampleN":     {CadenceDays: 1.0 / 48.0, SampleN: 0},
	} {
		_, err := trapezoid.OneModel(grid, refParams(), cfg)
		assert.ErrorIs(t, err, trapezoid.ErrBadConfig, "%s must error", name)
	}
}

// TestOneModel_ParamErrors checks the ErrBadParams sentinel.
func TestOneModel_ParamErrors(t *testing.T) {
	grid := uniformGrid(10.0, 10)
	cfg := trapezoid.DefaultConfig()

	mutations := map[string]func(*trapezoid.Params){
		"zero period":            func(p *trapezoid.Params) { p.PeriodDays = 0 },
		"zero duration":          func(p *trapezoid.Params) { p.DurationHours = 0 },
		"negative ingress":       func(p *trapezoid.Params) { p.IngressHours = -0.1 },
		"ingress over duration":  func(p *trapezoid.Params) { p.IngressHours = p.DurationHours + 1 },
		"negative depth":         func(p *trapezoid.Params) { p.DepthPPM = -1 },
		"total eclipse depth":    func(p *trapezoid.Params) { p.DepthPPM = 1e6 },
		"NaN epoch":              func(p *trapezoid.Params) { p.EpochDays = math.NaN() },
		"infinite duration":      func(p *trapezoid.Params) { p.DurationHours = math.Inf(1) },
	}
	for name, mutate := range mutations {
		p := refParams()
		mutate(&p)
		_, err := trapezoid.OneModel(grid, p, cfg)
		assert.ErrorIs(t, err, trapezoid.ErrBadParams, "%s must error", name)
	}

	_, err := trapezoid.OneModel(nil, refParams(), cfg)
	assert.ErrorIs(t, err, trapezoid.ErrEmptyInput, "empty grid must error")
}

// TestDerive_OverridesSubset verifies Derive swaps only the named
// parameters and leaves the receiver untouched.
func TestDerive_OverridesSubset(t *testing.T) {
	grid := uniformGrid(80.0, 80*48)
	base, err := trapezoid.OneModel(grid, refParams(), trapezoid.DefaultConfig())
	require.NoError(t, err)
	baseLC := base.LightCurve()

	newDepth := 450.0
	newDuration := 10.0
	derived, err := base.Derive(trapezoid.Overrides{
		DepthPPM:      &newDepth,
		DurationHours: &newDuration,
	})
	require.NoError(t, err)

	assert.Equal(t, newDepth, derived.Params().DepthPPM)
	assert.Equal(t, newDuration, derived.Params().DurationHours)
	assert.Equal(t, refParams().EpochDays, derived.Params().EpochDays, "epoch must carry over")
	assert.Equal(t, base.Config(), derived.Config(), "sampling config must carry over")

	assert.Equal(t, baseLC, base.LightCurve(), "Derive must not mutate the base model")

	minFlux := math.Inf(1)
	for _, v := range derived.LightCurve() {
		if v < minFlux {
			minFlux = v
		}
	}
	assert.InDelta(t, 1.0-newDepth/1e6, minFlux, 1e-12, "derived model floor follows the new depth")
}

// TestDerive_RejectsUnphysicalOverride verifies validation applies to the
// merged parameter set.
func TestDerive_RejectsUnphysicalOverride(t *testing.T) {
	grid := uniformGrid(20.0, 100)
	base, err := trapezoid.OneModel(grid, refParams(), trapezoid.DefaultConfig())
	require.NoError(t, err)

	bad := -5.0
	_, err = base.Derive(trapezoid.Overrides{DurationHours: &bad})
	assert.ErrorIs(t, err, trapezoid.ErrBadParams, "negative duration override must error")
}
