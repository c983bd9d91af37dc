// Package regulatedou simulates bounded autoregressive processes.
//
// The generator produces a regulated (reflecting) AR(1) process, the
// discrete-time analogue of an Ornstein-Uhlenbeck process confined to a
// fixed interval. With Rho = 1 the underlying process is a random walk and
// the bounds are the only force keeping it inside the interval, which is
// the null model of the bounded unit root tests in package urtest.
//
// # Usage
//
//	bounds := timeseries.Bounds{Lower: -5, Upper: 5}
//	data, err := regulatedou.Generate(regulatedou.Config{
//	    T:      100,
//	    Bounds: bounds,
//	    Rho:    1.0,
//	    Sigma:  1.0,
//	    Burnin: 50,
//	    Seed:   42,
//	})
//
// The same seed always reproduces the same series.
package regulatedou
