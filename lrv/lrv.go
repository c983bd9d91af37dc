// Package lrv provides long-run variance estimators for unit root testing.
package lrv

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// minLRV floors the estimators away from zero to keep test statistics finite.
const minLRV = 1e-10

// Nonparametric estimates the long-run variance of u with a Bartlett-kernel
// (Newey-West) estimator. u is typically the first difference of a detrended
// series. If bandwidth <= 0 the rule floor(4*(T/100)^(1/4)) is used.
func Nonparametric(u []float64, bandwidth int) float64 {
	n := len(u)
	if n == 0 {
		return minLRV
	}

	if bandwidth <= 0 {
		bandwidth = int(math.Floor(4 * math.Pow(float64(n)/100, 0.25)))
	}
	if bandwidth >= n {
		bandwidth = n - 1
	}

	s2 := 0.0
	for _, v := range u {
		s2 += v * v
	}
	s2 /= float64(n)

	for l := 1; l <= bandwidth; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += u[i] * u[i-l]
		}
		cov /= float64(n)
		weight := 1.0 - float64(l)/float64(bandwidth+1)
		s2 += 2 * weight * cov
	}

	if s2 < minLRV {
		s2 = minLRV
	}
	return s2
}

// ARResult holds the autoregressive spectral estimate of the long-run
// variance.
type ARResult struct {
	LRV     float64 // Long-run variance estimate
	Lag     int     // Selected autoregressive lag order
	SigmaE2 float64 // Innovation variance of the selected regression
}

// AR estimates the long-run variance of a detrended series with the
// autoregressive spectral density estimator:
//
//	dx_t = b0*x_{t-1} + b1*dx_{t-1} + ... + bp*dx_{t-p} + e_t
//	lrv  = sigma_e^2 / (1 - b1 - ... - bp)^2
//
// The lag order p is selected by the MAIC criterion over 0..maxLag; if
// maxLag <= 0 the rule floor(12*(T/100)^(1/4)) is used. All candidate
// regressions share the same estimation sample so the criteria are
// comparable.
func AR(detrended []float64, maxLag int) (*ARResult, error) {
	T := len(detrended)
	if T < 16 {
		return nil, fmt.Errorf("AR spectral estimator needs at least 16 observations, got %d", T)
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(12 * math.Pow(float64(T)/100, 0.25)))
	}
	if maxLag > T/4 {
		maxLag = T / 4
	}

	dx := make([]float64, T-1)
	for i := 1; i < T; i++ {
		dx[i-1] = detrended[i] - detrended[i-1]
	}

	// Common sample: dx_t for t = maxLag..len(dx)-1.
	nObs := len(dx) - maxLag
	if nObs < maxLag+6 {
		maxLag = (len(dx) - 6) / 2
		if maxLag < 0 {
			maxLag = 0
		}
		nObs = len(dx) - maxLag
	}

	bestLag := -1
	bestMAIC := math.Inf(1)
	var best *ARResult

	for p := 0; p <= maxLag; p++ {
		res, maic, err := fitARSpectral(detrended, dx, p, maxLag, nObs)
		if err != nil {
			continue
		}
		if maic < bestMAIC {
			bestMAIC = maic
			bestLag = p
			best = res
		}
	}

	if bestLag < 0 || best == nil {
		return nil, errors.New("AR spectral estimator: no candidate regression could be fit")
	}
	return best, nil
}

// fitARSpectral fits the ADF-type regression with p lagged differences and
// returns the spectral estimate together with its MAIC value.
func fitARSpectral(x, dx []float64, p, maxLag, nObs int) (*ARResult, float64, error) {
	k := 1 + p
	if nObs <= k+2 {
		return nil, 0, fmt.Errorf("not enough observations for %d regressors", k)
	}

	X := mat.NewDense(nObs, k, nil)
	y := mat.NewVecDense(nObs, nil)

	sumLagSq := 0.0
	for i := 0; i < nObs; i++ {
		t := i + maxLag // index into dx; dx[t] = x[t+1]-x[t]
		y.SetVec(i, dx[t])
		X.Set(i, 0, x[t])
		sumLagSq += x[t] * x[t]
		for j := 1; j <= p; j++ {
			X.Set(i, j, dx[t-j])
		}
	}

	var beta mat.VecDense
	if err := beta.SolveVec(X, y); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return nil, 0, fmt.Errorf("least squares failed: %w", err)
		}
	}

	var fitted mat.VecDense
	fitted.MulVec(X, &beta)

	ssr := 0.0
	for i := 0; i < nObs; i++ {
		r := y.AtVec(i) - fitted.AtVec(i)
		ssr += r * r
	}

	sigma2MAIC := ssr / float64(nObs)
	if sigma2MAIC < minLRV {
		sigma2MAIC = minLRV
	}

	b0 := beta.AtVec(0)
	tau := b0 * b0 * sumLagSq / sigma2MAIC
	maic := math.Log(sigma2MAIC) + 2*(tau+float64(p))/float64(nObs)

	sigmaE2 := ssr / float64(nObs-k)

	bSum := 0.0
	for j := 1; j <= p; j++ {
		bSum += beta.AtVec(j)
	}
	denom := 1 - bSum
	// Guard against the spectral pole when the lag polynomial sums near one.
	if math.Abs(denom) < 0.05 {
		denom = math.Copysign(0.05, denom)
	}

	estimate := sigmaE2 / (denom * denom)
	if estimate < minLRV {
		estimate = minLRV
	}

	return &ARResult{LRV: estimate, Lag: p, SigmaE2: sigmaE2}, maic, nil
}
