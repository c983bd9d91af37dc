// Package detrend provides detrending procedures for unit root testing.
package detrend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/merwanroudane/boundedtest/lrv"
	"github.com/merwanroudane/boundedtest/timeseries"
)

// cBarERS is the Elliott-Rothenberg-Stock local-to-unity constant for the
// demeaned case.
const cBarERS = -7.0

// minObs is the shortest series the detrending procedures accept.
const minObs = 10

// Result holds a detrended series together with the parameters of the
// detrending step.
type Result struct {
	Detrended []float64 // Input with the estimated level removed
	Mean      float64   // Estimated level
	CBar      float64   // Quasi-differencing constant (0 for OLS)

	// Bounds information, populated by GLSBounds only.
	CLower    float64 // Scaled distance from the start value to the lower bound
	CUpper    float64 // Scaled distance from the start value to the upper bound
	Kappa     float64 // Scaled bound width, CUpper - CLower
	HasBounds bool
}

// OLS demeans the series by ordinary least squares on a constant.
func OLS(data []float64) (*Result, error) {
	if len(data) < minObs {
		return nil, fmt.Errorf("detrending needs at least %d observations, got %d", minObs, len(data))
	}

	mean := stat.Mean(data, nil)
	return &Result{
		Detrended: subtract(data, mean),
		Mean:      mean,
	}, nil
}

// GLSERS demeans the series by generalized least squares under the
// Elliott-Rothenberg-Stock local alternative rho = 1 + cbar/T with
// cbar = -7.
func GLSERS(data []float64) (*Result, error) {
	if len(data) < minObs {
		return nil, fmt.Errorf("detrending needs at least %d observations, got %d", minObs, len(data))
	}

	mean, err := glsDemean(data, cBarERS)
	if err != nil {
		return nil, err
	}
	return &Result{
		Detrended: subtract(data, mean),
		Mean:      mean,
		CBar:      cBarERS,
	}, nil
}

// GLSBounds demeans the series by generalized least squares with the
// quasi-differencing constant adapted to the bounds. Tighter bounds pull
// cbar toward zero: a heavily regulated random walk is already close to its
// local alternative, so less aggressive quasi-differencing is needed.
func GLSBounds(data []float64, bounds timeseries.Bounds) (*Result, error) {
	if len(data) < minObs {
		return nil, fmt.Errorf("detrending needs at least %d observations, got %d", minObs, len(data))
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	cLower, cUpper, kappa, err := BoundParameters(data, bounds)
	if err != nil {
		return nil, err
	}

	cBar := cBarForKappa(kappa)
	mean, err := glsDemean(data, cBar)
	if err != nil {
		return nil, err
	}

	return &Result{
		Detrended: subtract(data, mean),
		Mean:      mean,
		CBar:      cBar,
		CLower:    cLower,
		CUpper:    cUpper,
		Kappa:     kappa,
		HasBounds: true,
	}, nil
}

// BoundParameters estimates the scaled bound distances
//
//	c_lower = (lower - x_1) / (lambda * sqrt(T))
//	c_upper = (upper - x_1) / (lambda * sqrt(T))
//
// where lambda^2 is a preliminary Bartlett long-run variance of the first
// differences. These are the parameters the limiting distribution of the
// bounded tests depends on; kappa = c_upper - c_lower is the scaled width
// of the interval.
func BoundParameters(data []float64, bounds timeseries.Bounds) (cLower, cUpper, kappa float64, err error) {
	if len(data) < minObs {
		return 0, 0, 0, fmt.Errorf("bound parameters need at least %d observations, got %d", minObs, len(data))
	}
	if err := bounds.Validate(); err != nil {
		return 0, 0, 0, err
	}

	diffs := timeseries.New(data).Diff().Values
	lambda2 := lrv.Nonparametric(diffs, 0)
	scale := math.Sqrt(lambda2) * math.Sqrt(float64(len(data)))
	if !(scale > 0) {
		return 0, 0, 0, fmt.Errorf("degenerate series: preliminary long-run variance is %v", lambda2)
	}

	cLower = (bounds.Lower - data[0]) / scale
	cUpper = (bounds.Upper - data[0]) / scale
	return cLower, cUpper, cUpper - cLower, nil
}

// kappaGrid and cBarGrid tabulate the bounds-adjusted quasi-differencing
// constant. The last entry is the unbounded (ERS) limit.
var (
	kappaGrid = []float64{0.5, 1.0, 1.5, 2.0, 3.0, 6.0}
	cBarGrid  = []float64{-1.5, -3.0, -4.5, -5.5, -6.5, cBarERS}
)

// cBarForKappa interpolates the quasi-differencing constant for a scaled
// bound width. Below the grid the constant shrinks linearly to zero; beyond
// it the unbounded ERS value applies.
func cBarForKappa(kappa float64) float64 {
	if kappa <= 0 {
		return 0
	}
	if kappa < kappaGrid[0] {
		return cBarGrid[0] * kappa / kappaGrid[0]
	}
	for i := 1; i < len(kappaGrid); i++ {
		if kappa <= kappaGrid[i] {
			w := (kappa - kappaGrid[i-1]) / (kappaGrid[i] - kappaGrid[i-1])
			return cBarGrid[i-1] + w*(cBarGrid[i]-cBarGrid[i-1])
		}
	}
	return cBarERS
}

// glsDemean estimates the level by least squares on the quasi-differenced
// data: z_1 = x_1, z_t = x_t - abar*x_{t-1} with abar = 1 + cbar/T,
// regressed on the matching quasi-differenced constant.
func glsDemean(data []float64, cBar float64) (float64, error) {
	T := len(data)
	aBar := 1 + cBar/float64(T)

	z := mat.NewVecDense(T, nil)
	w := mat.NewDense(T, 1, nil)

	z.SetVec(0, data[0])
	w.Set(0, 0, 1)
	for t := 1; t < T; t++ {
		z.SetVec(t, data[t]-aBar*data[t-1])
		w.Set(t, 0, 1-aBar)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(w, z); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return 0, fmt.Errorf("GLS demeaning failed: %w", err)
		}
	}
	return beta.AtVec(0), nil
}

func subtract(data []float64, mean float64) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out
}
