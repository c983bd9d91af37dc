// Package boundedtest provides unit root testing for bounded time series.
//
// Boundedtest implements M-class unit root tests (MZ-alpha, MZ-t, MSB, MP-T)
// adapted to series that are constrained to a fixed interval, such as
// target-zone exchange rates, interest rates near a floor, or percentage
// series. Standard unit root tests over-reject when the series is bounded;
// the tests here adjust both the detrending step and the critical values for
// the position of the bounds.
//
// # Features
//
//   - Bounded AR(1) / regulated Ornstein-Uhlenbeck process simulation
//   - OLS, GLS-ERS, and bounds-adjusted GLS detrending
//   - Long-run variance estimation: nonparametric (Bartlett kernel) and
//     autoregressive spectral with MAIC lag selection
//   - MZ-alpha, MZ-t, MSB, and MP-T statistics with bounds-dependent
//     critical values
//   - CSV loading utilities for measured bounded series
//
// # Quick Start
//
// Simulate a bounded random walk and test it for a unit root:
//
//	bounds := timeseries.Bounds{Lower: -5, Upper: 5}
//	data, _ := regulatedou.GenerateBoundedAR1(100, bounds, 1.0, 1.0, 50, 42)
//
//	result, _ := urtest.Run(data, urtest.Config{
//	    Bounds:     bounds,
//	    Statistic:  urtest.StatMZAlpha,
//	    Detrending: urtest.DetrendGLSBounds,
//	    LRVMethod:  urtest.LRVNonparametric,
//	})
//	fmt.Printf("MZa = %.4f, reject: %v\n", result.Statistic, result.Reject5Pct)
//
// Compute every supported statistic at once:
//
//	all, _ := urtest.RunAll(data, cfg)
//	for name, r := range all {
//	    fmt.Printf("%s: %.4f\n", name, r.Statistic)
//	}
//
// # Packages
//
// The library is organized into the following packages:
//
//   - regulatedou: bounded AR(1) data generation
//   - detrend: OLS and GLS detrending procedures
//   - lrv: long-run variance estimators
//   - urtest: test statistics, critical values, and the test entry points
//   - timeseries: series container, summary statistics, and CSV loading
//
// # References
//
//   - Cavaliere, G. (2005). Limited time series with a unit root
//   - Cavaliere, G., & Xu, F. (2014). Testing for unit roots in bounded
//     time series
//   - Ng, S., & Perron, P. (2001). Lag length selection and the construction
//     of unit root tests with good size and power
package boundedtest
