// Package urtest implements M-class unit root tests for bounded time
// series.
//
// The null hypothesis is that the series follows a unit root process
// regulated by its bounds; the alternative is stationarity. Because a
// bounded random walk spends time pressed against its limits, the usual
// asymptotics do not apply: the limiting distributions depend on the scaled
// distances from the sample start to each bound (the c-parameters) and on
// the scaled bound width kappa. The critical values used here account for
// that dependence.
//
// # Running a Test
//
//	result, err := urtest.Run(data, urtest.Config{
//	    Bounds:     timeseries.Bounds{Lower: -5, Upper: 5},
//	    Statistic:  urtest.StatMZAlpha,
//	    Detrending: urtest.DetrendGLSBounds,
//	    LRVMethod:  urtest.LRVNonparametric,
//	})
//	fmt.Printf("MZa=%.4f reject=%v\n", result.Statistic, result.Reject5Pct)
//
// # Statistics
//
// Four statistics are available, all rejecting for small values:
//
//   - mz_alpha: modified Phillips-Perron Z-alpha
//   - mz_t: modified Z-t
//   - msb: modified Sargan-Bhargava statistic
//   - mp_t: modified point-optimal statistic
//
// RunAll computes all of them on a single shared detrending and long-run
// variance estimate.
//
// # Configuration Axes
//
// Detrending: ols (least squares demeaning), gls_ers
// (Elliott-Rothenberg-Stock GLS), gls_bounds (GLS with the
// quasi-differencing constant adapted to the bounds). Long-run variance:
// np (Bartlett kernel) or ar (autoregressive spectral with MAIC lag
// selection).
package urtest
