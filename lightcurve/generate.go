package lightcurve

import (
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generate produces a synthetic light curve: a uniform grid of
// floor(span/cadence) time points spanning [0, span], flux drawn from
// N(1.0, noise/1e6), and a constant error array equal to noise/1e6.
//
// Randomness comes from opts.Source when set, otherwise from a private
// source seeded by opts.Seed; the process-wide generator is never
// touched, so unrelated draws elsewhere stay unaffected.
//
// Errors: ErrBadOption for invalid span/cadence/noise.
//
// Complexity: O(n) time, O(n) space.
func Generate(opts Options) (Series, error) {
	if err := opts.validate(); err != nil {
		return Series{}, err
	}

	n := int(opts.SpanDays / opts.CadenceDays)
	if n < 2 {
		return Series{}, ErrBadOption
	}
	sigma := opts.NoisePPM / ppmPerUnit

	src := opts.Source
	if src == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = defaultSeed
		}
		src = xrand.NewSource(seed)
	}
	noise := distuv.Normal{Mu: 1.0, Sigma: sigma, Src: src}

	s := Series{
		Time: make([]float64, n),
		Flux: make([]float64, n),
		Err:  make([]float64, n),
	}
	step := opts.SpanDays / float64(n-1) // inclusive endpoints, like linspace
	for i := 0; i < n; i++ {
		s.Time[i] = float64(i) * step
		s.Flux[i] = noise.Rand()
		s.Err[i] = sigma
	}
	return s, nil
}
