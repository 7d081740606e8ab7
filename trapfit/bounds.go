package trapfit

import "math"

// The engine optimizes four physical parameters; period stays fixed.
const (
	idxEpochOffset  = iota // transit center offset from the estimate, days
	idxDepthFrac           // fractional depth
	idxDurationDays        // full transit duration, days
	idxIngressRatio        // ingress duration / transit duration
	nParams
)

// defaultIngressRatio seeds the ramp shape when the caller's estimates
// carry no ingress information.
const defaultIngressRatio = 0.1

// Strict-interior margins keeping starting values away from the bound
// asymptotes of the logit transform.
const (
	depthFloor   = 1.0e-9
	depthCeil    = 0.99
	ratioFloor   = 1.0e-6
	ratioCeil    = 0.999
	interiorFrac = 1.0e-3 // clamp margin as a fraction of the bound range
)

// bounds holds per-parameter lower/upper limits for the logit transform.
type bounds struct {
	lo [nParams]float64
	hi [nParams]float64
}

// newBounds derives parameter limits from the estimates and fit window:
// the epoch offset stays inside the window half-width, the duration
// between one cadence and the window width (capped below the period),
// depth and ingress ratio inside fixed physical ranges.
func newBounds(est Estimates, cadenceDays float64, opts Options) bounds {
	durDays := est.DurationHours / hoursPerDay
	halfWin := 0.5 * opts.FitRegionDurations * durDays

	var b bounds
	b.lo[idxEpochOffset] = -halfWin
	b.hi[idxEpochOffset] = halfWin

	b.lo[idxDepthFrac] = depthFloor
	b.hi[idxDepthFrac] = depthCeil

	b.lo[idxDurationDays] = cadenceDays
	b.hi[idxDurationDays] = math.Min(opts.FitRegionDurations*durDays, 0.95*est.PeriodDays)

	b.lo[idxIngressRatio] = ratioFloor
	b.hi[idxIngressRatio] = ratioCeil
	return b
}

// toBounded maps physical values into unconstrained space via the logit
// transform b = ln((p−lo)/(hi−p)). Values are clamped strictly inside
// the bounds first so the transform stays finite.
func (b bounds) toBounded(phys [nParams]float64) [nParams]float64 {
	var out [nParams]float64
	for i := 0; i < nParams; i++ {
		margin := interiorFrac * (b.hi[i] - b.lo[i])
		p := math.Max(b.lo[i]+margin, math.Min(b.hi[i]-margin, phys[i]))
		out[i] = math.Log((p - b.lo[i]) / (b.hi[i] - p))
	}
	return out
}

// toPhys is the inverse sigmoid map back to physical values; any finite
// unconstrained point lands strictly inside the bounds.
func (b bounds) toPhys(bounded []float64) [nParams]float64 {
	var out [nParams]float64
	for i := 0; i < nParams; i++ {
		out[i] = b.lo[i] + (b.hi[i]-b.lo[i])/(1.0+math.Exp(-bounded[i]))
	}
	return out
}
