package lsfit

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput indicates empty abscissa or ordinate arrays.
	ErrEmptyInput = errors.New("lsfit: input arrays must be non-empty")

	// ErrDimensionMismatch indicates x, y, or s arrays of differing
	// lengths.
	ErrDimensionMismatch = errors.New("lsfit: x, y and s must have equal length")

	// ErrBadOrder indicates a term count below 1, above the basis
	// capacity, or not smaller than the number of data points.
	ErrBadOrder = errors.New("lsfit: order must be in [1, basis terms] and below the data size")

	// ErrNonFinite indicates NaN or Inf values in the input arrays.
	ErrNonFinite = errors.New("lsfit: non-finite value in input")

	// ErrBadWeight indicates non-positive 1-sigma uncertainties.
	ErrBadWeight = errors.New("lsfit: uncertainties must be positive")

	// ErrSingular indicates a normal matrix that cannot be inverted:
	// the basis terms are degenerate on this abscissa.
	ErrSingular = errors.New("lsfit: singular normal matrix")

	// ErrNotSine indicates amplitude/phase extraction on a solution that
	// was not fit with a two-term sine basis.
	ErrNotSine = errors.New("lsfit: amplitude and phase require a two-term sine basis")
)

// Basis supplies the analytic terms of a linear model.
type Basis interface {
	// Term evaluates the k-th basis function at x. k is guaranteed to be
	// in [0, Terms()).
	Term(x float64, k int) float64

	// Terms returns the number of terms the basis can supply.
	Terms() int
}

// Sine is the two-term sinusoid basis used by the SWEET vetter:
// term 0 is sin(2πx/P), term 1 is cos(2πx/P).
type Sine struct {
	// PeriodDays is the sinusoid period, in the units of the abscissa.
	// Must be positive.
	PeriodDays float64
}

// Term implements Basis.
func (s Sine) Term(x float64, k int) float64 {
	w := 2 * math.Pi / s.PeriodDays
	if k == 0 {
		return math.Sin(w * x)
	}
	return math.Cos(w * x)
}

// Terms implements Basis.
func (s Sine) Terms() int { return 2 }
