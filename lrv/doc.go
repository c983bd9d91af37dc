// Package lrv provides long-run variance estimators.
//
// The long-run variance (LRV) is the normalization term of the M-class unit
// root statistics. Two estimators are provided:
//
//   - Nonparametric: Bartlett-kernel (Newey-West) estimator applied to the
//     first differences of a detrended series.
//   - AR: autoregressive spectral density estimator with MAIC lag selection,
//     applied to the detrended series itself.
//
// # Usage
//
//	diffs := detrendedSeries.Diff().Values
//	omega2 := lrv.Nonparametric(diffs, 0) // automatic bandwidth
//
//	arRes, err := lrv.AR(detrendedSeries.Values, 0) // automatic lag order
//	omega2 = arRes.LRV
package lrv
