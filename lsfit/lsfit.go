package lsfit

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solution holds a completed weighted least-squares fit. It is immutable
// after Fit returns.
type Solution struct {
	x, y, s []float64
	order   int
	basis   Basis
	params  []float64
	cov     *mat.SymDense
}

// Fit solves the weighted linear least-squares problem
//
//	y ≈ Σ_k params[k]·basis.Term(x, k),  weighted by 1/s per point,
//
// via the normal equations, following the classic Bevington & Robinson
// design-matrix formulation.
//
// s supplies per-point 1-sigma uncertainties; pass nil for unit weights
// or a single-element slice to broadcast one value to every point.
//
// Errors:
//   - ErrEmptyInput        — x is empty.
//   - ErrDimensionMismatch — y (or a multi-element s) differs in length.
//   - ErrBadOrder          — order outside [1, basis.Terms()] or ≥ len(x).
//   - ErrNonFinite         — NaN/Inf in x, y or s.
//   - ErrBadWeight         — non-positive uncertainty.
//   - ErrSingular          — degenerate basis on this abscissa.
//
// Complexity: O(n·order²) + O(order³).
func Fit(x, y, s []float64, order int, basis Basis) (*Solution, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if len(y) != n {
		return nil, ErrDimensionMismatch
	}
	if order < 1 || order > basis.Terms() || order >= n {
		return nil, ErrBadOrder
	}

	weights, err := expandWeights(s, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if !finite(x[i]) || !finite(y[i]) || !finite(weights[i]) {
			return nil, ErrNonFinite
		}
		if weights[i] <= 0 {
			return nil, ErrBadWeight
		}
	}

	// Weighted design matrix: df[i][k] = basis(x_i, k) / s_i.
	df := mat.NewDense(n, order, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < order; k++ {
			df.Set(i, k, basis.Term(x[i], k)/weights[i])
		}
	}

	// Normal matrix A = dfᵀ·df and its inverse (the covariance).
	var a mat.Dense
	a.Mul(df.T(), df)

	var inv mat.Dense
	if err := inv.Inverse(&a); err != nil {
		return nil, ErrSingular
	}

	// beta = dfᵀ·(y/s); params = covar·beta.
	wy := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		wy.SetVec(i, y[i]/weights[i])
	}
	var beta mat.VecDense
	beta.MulVec(df.T(), wy)

	var p mat.VecDense
	p.MulVec(&inv, &beta)

	params := make([]float64, order)
	cov := mat.NewSymDense(order, nil)
	for k := 0; k < order; k++ {
		params[k] = p.AtVec(k)
		for j := k; j < order; j++ {
			cov.SetSym(k, j, inv.At(k, j))
		}
	}

	return &Solution{
		x:      append([]float64(nil), x...),
		y:      append([]float64(nil), y...),
		s:      weights,
		order:  order,
		basis:  basis,
		params: params,
		cov:    cov,
	}, nil
}

// expandWeights normalizes the s argument of Fit to a length-n slice.
func expandWeights(s []float64, n int) ([]float64, error) {
	w := make([]float64, n)
	switch len(s) {
	case 0:
		for i := range w {
			w[i] = 1.0
		}
	case 1:
		for i := range w {
			w[i] = s[0]
		}
	case n:
		copy(w, s)
	default:
		return nil, ErrDimensionMismatch
	}
	return w, nil
}

// Params returns the best-fit coefficients, one per basis term.
func (sol *Solution) Params() []float64 {
	return append([]float64(nil), sol.params...)
}

// Covariance returns the covariance matrix of the coefficients.
func (sol *Solution) Covariance() *mat.SymDense {
	out := mat.NewSymDense(sol.order, nil)
	out.CopySym(sol.cov)
	return out
}

// Model evaluates the best-fit model on x; pass nil to reuse the fit
// abscissa.
func (sol *Solution) Model(x []float64) []float64 {
	if x == nil {
		x = sol.x
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		var v float64
		for k := 0; k < sol.order; k++ {
			v += sol.params[k] * sol.basis.Term(xi, k)
		}
		out[i] = v
	}
	return out
}

// Residuals returns y − model on the fit abscissa.
func (sol *Solution) Residuals() []float64 {
	model := sol.Model(nil)
	out := make([]float64, len(sol.y))
	for i := range out {
		out[i] = sol.y[i] - model[i]
	}
	return out
}

// Variance returns the reduced sum of squared residuals,
// Σr²/(n − order).
func (sol *Solution) Variance() float64 {
	var sum float64
	for _, r := range sol.Residuals() {
		sum += r * r
	}
	return sum / float64(len(sol.y)-sol.order)
}

// Amplitude returns the sinusoid amplitude and its uncertainty for a
// two-term sine fit, per Breger (1999) Appendix 1.
//
// Errors: ErrNotSine for any other basis or order.
func (sol *Solution) Amplitude() (amp, unc float64, err error) {
	if _, ok := sol.basis.(Sine); !ok || sol.order != 2 {
		return 0, 0, ErrNotSine
	}
	amp = math.Hypot(sol.params[0], sol.params[1])
	unc = math.Sqrt(2 * sol.Variance() / float64(len(sol.y)))
	return amp, unc, nil
}

// Phase returns the sinusoid phase in [0, 2π) and its relative
// uncertainty for a two-term sine fit, per Breger (1999) Appendix 1.
//
// Errors: ErrNotSine for any other basis or order.
func (sol *Solution) Phase() (phase, unc float64, err error) {
	amp, ampUnc, err := sol.Amplitude()
	if err != nil {
		return 0, 0, err
	}

	// r1 is cos(phase); r2 is -sin(phase), since the fit is to wx − phi.
	r1 := sol.params[0] / amp
	r2 := -sol.params[1] / amp

	invcos := math.Acos(math.Abs(r1))
	invsin := math.Asin(math.Abs(r2))

	// Restore the quadrant; the first quadrant needs no adjustment.
	switch {
	case r1 <= 0 && r2 >= 0: // second quadrant
		invcos = math.Pi - invcos
		invsin = math.Pi - invsin
	case r1 <= 0 && r2 <= 0: // third quadrant
		invcos += math.Pi
		invsin += math.Pi
	case r1 >= 0 && r2 <= 0: // fourth quadrant
		invcos = 2*math.Pi - invcos
		invsin = 2*math.Pi - invsin
	}

	// Average the two determinations to damp roundoff.
	return 0.5 * (invcos + invsin), ampUnc / amp, nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
