// Package trapfit - RNG utilities for randomized fit restarts.
//
// This file centralizes deterministic random generation for the trial
// loop.
//
// Goals:
//   - Determinism: same seed ⇒ identical trial starts across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Independence: each trial gets its own derived stream, so trial k
//     produces the same start whether or not trial k-1 ran.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each trial owns its stream;
//     derive one per worker before fanning out.
package trapfit

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// perturbSigma is the Gaussian sigma, in bounded-parameter space, applied
// to the starting point of every trial after the first.
const perturbSigma = 0.4

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed via a SplitMix64-style avalanche mix, eliminating
// correlations between per-trial streams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer constants; see Vigna 2014.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// trialRNG creates the independent deterministic stream for one trial.
//
// Complexity: O(1).
func trialRNG(seed int64, trial int) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(s, uint64(trial))))
}

// perturb adds N(0, perturbSigma) noise to each bounded coordinate,
// returning a fresh slice. base is never mutated.
//
// Complexity: O(len(base)).
func perturb(base []float64, rng *rand.Rand) []float64 {
	out := make([]float64, len(base))
	for i, v := range base {
		out[i] = v + perturbSigma*rng.NormFloat64()
	}
	return out
}
