package urtest

import (
	"errors"
	"math"
)

// computeStatistics evaluates the M statistics on a detrended series given
// the long-run variance lambda2 and the quasi-differencing constant of the
// detrending step (used by MP-T; zero selects the ERS default).
//
//	S    = T^-2 * sum x_{t-1}^2
//	MZa  = (T^-1 * x_T^2 - lambda2) / (2S)
//	MSB  = sqrt(S / lambda2)
//	MZt  = MZa * MSB
//	MPT  = (cbar^2 * S + (1-cbar) * T^-1 * x_T^2) / lambda2
func computeStatistics(detrended []float64, lambda2, cBar float64) (map[string]float64, error) {
	T := len(detrended)
	if T < 2 {
		return nil, errors.New("statistics need at least 2 observations")
	}
	if !(lambda2 > 0) {
		return nil, errors.New("long-run variance must be positive")
	}

	tf := float64(T)
	sumLagSq := 0.0
	for t := 0; t < T-1; t++ {
		sumLagSq += detrended[t] * detrended[t]
	}
	s := sumLagSq / (tf * tf)
	if !(s > 0) {
		return nil, errors.New("degenerate detrended series: zero lagged sum of squares")
	}

	xT2 := detrended[T-1] * detrended[T-1] / tf

	mza := (xT2 - lambda2) / (2 * s)
	msb := math.Sqrt(s / lambda2)
	mzt := mza * msb

	cb := cBar
	if cb == 0 {
		cb = -7.0
	}
	mpt := (cb*cb*s + (1-cb)*xT2) / lambda2

	return map[string]float64{
		StatMZAlpha: mza,
		StatMZt:     mzt,
		StatMSB:     msb,
		StatMPT:     mpt,
	}, nil
}
