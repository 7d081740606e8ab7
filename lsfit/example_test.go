package lsfit_test

import (
	"fmt"
	"math"

	"github.com/astrokit/trapfit/lsfit"
)

// ExampleFit demonstrates recovering the amplitude of a sinusoid hiding
// in a light curve.
//
// Scenario:
//
//	A 500 ppm sinusoidal brightness variation with a 10-day period,
//	sampled for 40 days.
func ExampleFit() {
	period := 10.0
	x := make([]float64, 200)
	y := make([]float64, 200)
	for i := range x {
		x[i] = 40.0 * float64(i) / 199.0
		y[i] = 500e-6 * math.Sin(2*math.Pi*x[i]/period)
	}

	sol, err := lsfit.Fit(x, y, nil, 2, lsfit.Sine{PeriodDays: period})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	amp, _, err := sol.Amplitude()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("amplitude=%.0f ppm\n", amp*1e6)
	// Output:
	// amplitude=500 ppm
}
