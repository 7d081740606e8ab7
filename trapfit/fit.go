package trapfit

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/optimize"

	"github.com/astrokit/trapfit/phasefold"
	"github.com/astrokit/trapfit/trapezoid"
)

// Convergence criterion of a trial: the best objective value must move
// by less than convergeTol over convergeSpan consecutive iterations.
const (
	convergeTol  = 1.0e-8
	convergeSpan = 30
)

// relCurvatureStep sizes the central-difference step for the curvature
// based uncertainty estimate, relative to each parameter's scale.
const relCurvatureStep = 1.0e-3

// Fit recovers trapezoid transit parameters from a light curve.
//
// The cadence length is inferred from the median spacing of the time
// grid. Fitting is restricted to cadences within
// ±(opts.FitRegionDurations·duration/2) in folded time around the
// predicted transit centers. The period is held fixed at
// est.PeriodDays; epoch offset, depth, duration and ingress ratio are
// optimized by Nelder–Mead over logit-bounded parameters, minimizing
//
//	chi² = Σ ((flux − model) / (err·ErrorScale))².
//
// opts.Trials restarts run from deterministically perturbed starting
// points; the lowest converged chi-square wins. A trial that errors,
// exhausts its iteration cap, or goes non-finite is contained and
// excluded from the comparison.
//
// Errors:
//   - ErrEmptyInput / ErrDimensionMismatch — malformed input arrays.
//   - ErrBadEstimates / ErrBadOption       — invalid configuration,
//     surfaced before any optimization starts.
//   - ErrEmptyFitRegion                    — too few in-window cadences.
//   - ErrFitDivergence                     — every trial diverged.
//
// Complexity: O(Trials · iterations · region · SampleN).
func Fit(time, flux, errs []float64, est Estimates, opts Options) (*Result, error) {
	n := len(time)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(flux) != n || len(errs) != n {
		return nil, ErrDimensionMismatch
	}
	if err := est.validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	cadence := medianSpacing(time)
	if !(cadence > 0) {
		return nil, ErrBadOption
	}

	// Restrict to the fit window in folded time.
	durDays := est.DurationHours / hoursPerDay
	halfWin := 0.5 * opts.FitRegionDurations * durDays
	idx := make([]int, 0, n)
	for i, t := range time {
		d := phasefold.Phase(t, est.PeriodDays, est.EpochDays) * est.PeriodDays
		if math.Abs(d) < halfWin {
			idx = append(idx, i)
		}
	}
	if len(idx) < minRegionCadences {
		return nil, ErrEmptyFitRegion
	}

	rt := make([]float64, len(idx))
	rf := make([]float64, len(idx))
	re := make([]float64, len(idx))
	for k, i := range idx {
		rt[k] = time[i]
		rf[k] = flux[i]
		re[k] = errs[i] * opts.ErrorScale
	}

	b := newBounds(est, cadence, opts)
	for i := 0; i < nParams; i++ {
		if !(b.hi[i] > b.lo[i]) {
			return nil, ErrBadOption
		}
	}
	cfg := trapezoid.Config{CadenceDays: cadence, SampleN: opts.SampleN}

	chi2Phys := func(phys [nParams]float64) float64 {
		p := trapezoid.Params{
			PeriodDays:    est.PeriodDays,
			EpochDays:     est.EpochDays + phys[idxEpochOffset],
			DurationHours: phys[idxDurationDays] * hoursPerDay,
			IngressHours:  phys[idxIngressRatio] * phys[idxDurationDays] * hoursPerDay,
			DepthPPM:      phys[idxDepthFrac] * ppmPerUnit,
		}
		m, err := trapezoid.OneModel(rt, p, cfg)
		if err != nil {
			return math.Inf(1)
		}
		var chi2 float64
		for k, mv := range m.LightCurve() {
			r := (rf[k] - mv) / re[k]
			chi2 += r * r
		}
		if math.IsNaN(chi2) {
			return math.Inf(1)
		}
		return chi2
	}

	start := b.toBounded([nParams]float64{
		0.0,
		est.DepthPPM / ppmPerUnit,
		durDays,
		defaultIngressRatio,
	})

	eng := &engine{
		opts:     opts,
		bounds:   b,
		chi2Phys: chi2Phys,
	}
	best, trials, trace := eng.runTrials(start[:])
	if best < 0 {
		return nil, ErrFitDivergence
	}

	phys := b.toPhys(trials[best].bounded)
	res := &Result{
		PeriodDays:    est.PeriodDays,
		EpochDays:     est.EpochDays + phys[idxEpochOffset],
		DurationHours: phys[idxDurationDays] * hoursPerDay,
		IngressHours:  phys[idxIngressRatio] * phys[idxDurationDays] * hoursPerDay,
		DepthPPM:      phys[idxDepthFrac] * ppmPerUnit,
		ChiSquare:     trials[best].outcome.ChiSquare,
		Trace:         trace,
		BestTrial:     best,
		RegionIdx:     idx,
	}
	res.Trials = make([]TrialOutcome, len(trials))
	for i, tr := range trials {
		res.Trials[i] = tr.outcome
	}
	res.Unc = estimateUncertainty(chi2Phys, phys)
	return res, nil
}

// trialResult pairs a trial's outcome with its final bounded position.
type trialResult struct {
	outcome TrialOutcome
	bounded []float64
}

// engine carries the pieces shared by every trial of one Fit call.
type engine struct {
	opts     Options
	bounds   bounds
	chi2Phys func([nParams]float64) float64
}

// runTrials executes the restart loop: trial 0 starts at the unperturbed
// guess, later trials at Gaussian-perturbed copies from per-trial RNG
// streams. Returns the index of the best converged trial (-1 if none),
// per-trial results, and the improvement trace.
func (e *engine) runTrials(start []float64) (best int, trials []trialResult, trace []TracePoint) {
	log := e.opts.Logger
	best = -1
	bestChi2 := math.Inf(1)
	trials = make([]trialResult, e.opts.Trials)

	for trial := 0; trial < e.opts.Trials; trial++ {
		x0 := append([]float64(nil), start...)
		if trial > 0 {
			x0 = perturb(start, trialRNG(e.opts.Seed, trial))
		}

		tr := e.runOne(trial, x0, &trace)
		trials[trial] = tr

		log.Debug().
			Int("trial", trial).
			Bool("converged", tr.outcome.Converged).
			Float64("chi2", tr.outcome.ChiSquare).
			Msg("trapfit: trial finished")

		if tr.outcome.Converged && tr.outcome.ChiSquare < bestChi2 {
			best = trial
			bestChi2 = tr.outcome.ChiSquare
		}
	}
	return best, trials, trace
}

// runOne optimizes a single trial, containing every failure mode in the
// returned outcome.
func (e *engine) runOne(trial int, x0 []float64, trace *[]TracePoint) trialResult {
	log := e.opts.Logger
	evals := 0
	bestSeen := math.Inf(1)
	unstable := false

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			evals++
			chi2 := e.chi2Phys(e.bounds.toPhys(x))
			if math.IsInf(chi2, 1) {
				unstable = true
			}
			if chi2 < bestSeen {
				bestSeen = chi2
				*trace = append(*trace, TracePoint{Trial: trial, Eval: evals, ChiSquare: chi2})
			}
			if e.opts.LogEvery > 0 && evals%e.opts.LogEvery == 0 {
				log.Debug().
					Int("trial", trial).
					Int("eval", evals).
					Float64("chi2", chi2).
					Msg("trapfit: optimizing")
			}
			return chi2
		},
	}
	settings := &optimize.Settings{
		MajorIterations: e.opts.MaxIterations,
		Converger: &optimize.FunctionConverge{
			Absolute:   convergeTol,
			Iterations: convergeSpan,
		},
	}

	res, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	out := trialResult{bounded: x0}
	switch {
	case err != nil:
		out.outcome = TrialOutcome{ChiSquare: math.NaN(), Err: err}
	case res.Status.Err() != nil || !isFinite(res.F):
		// Iteration cap, runtime limits, or a non-finite objective: the
		// trial is excluded, with the instability recorded when seen.
		cause := res.Status.Err()
		if !isFinite(res.F) && unstable || cause == nil {
			cause = ErrNumericInstability
		}
		out.outcome = TrialOutcome{ChiSquare: math.NaN(), Err: cause}
	default:
		out.bounded = append([]float64(nil), res.X...)
		out.outcome = TrialOutcome{ChiSquare: res.F, Converged: true}
	}
	return out
}

// estimateUncertainty derives 1-sigma uncertainties from the diagonal
// curvature of chi-square at the optimum: sigma = sqrt(2 / d²chi²/dp²)
// by central differences, the Δchi²=1 rule. Parameters whose curvature
// comes out non-positive or non-finite get NaN.
func estimateUncertainty(chi2Phys func([nParams]float64) float64, phys [nParams]float64) Uncertainty {
	c0 := chi2Phys(phys)
	var sigma [nParams]float64
	for i := 0; i < nParams; i++ {
		h := relCurvatureStep * math.Max(math.Abs(phys[i]), relCurvatureStep)
		up, dn := phys, phys
		up[i] += h
		dn[i] -= h
		curv := (chi2Phys(up) - 2*c0 + chi2Phys(dn)) / (h * h)
		if curv > 0 && !math.IsInf(curv, 0) {
			sigma[i] = math.Sqrt(2.0 / curv)
		} else {
			sigma[i] = math.NaN()
		}
	}
	return Uncertainty{
		EpochDays:     sigma[idxEpochOffset],
		DurationHours: sigma[idxDurationDays] * hoursPerDay,
		IngressHours:  sigma[idxIngressRatio] * phys[idxDurationDays] * hoursPerDay,
		DepthPPM:      sigma[idxDepthFrac] * ppmPerUnit,
	}
}

// medianSpacing returns the median gap of an ordered time grid.
func medianSpacing(time []float64) float64 {
	if len(time) < 2 {
		return 0
	}
	gaps := make([]float64, len(time)-1)
	for i := 1; i < len(time); i++ {
		gaps[i-1] = time[i] - time[i-1]
	}
	sort.Float64s(gaps)
	mid := len(gaps) / 2
	if len(gaps)%2 == 1 {
		return gaps[mid]
	}
	return 0.5 * (gaps[mid-1] + gaps[mid])
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
