// Package regulatedou simulates bounded autoregressive processes.
package regulatedou

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/merwanroudane/boundedtest/timeseries"
)

// Config holds the parameters of a bounded AR(1) simulation.
type Config struct {
	T      int               // Number of observations to return
	Bounds timeseries.Bounds // Reflecting interval
	Rho    float64           // Persistence parameter (1.0 = unit root)
	Sigma  float64           // Innovation standard deviation
	Burnin int               // Warm-up observations to discard
	Seed   uint64            // RNG seed; the same seed reproduces the series
}

// Validate checks the simulation parameters.
func (c Config) Validate() error {
	if c.T <= 0 {
		return fmt.Errorf("T must be positive, got %d", c.T)
	}
	if c.Burnin < 0 {
		return fmt.Errorf("burnin must be non-negative, got %d", c.Burnin)
	}
	if !(c.Sigma > 0) || math.IsInf(c.Sigma, 0) {
		return fmt.Errorf("sigma must be a positive finite number, got %v", c.Sigma)
	}
	if math.IsNaN(c.Rho) || math.IsInf(c.Rho, 0) {
		return fmt.Errorf("rho must be finite, got %v", c.Rho)
	}
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	return nil
}

// Generate simulates a bounded AR(1) process
//
//	x_t = rho * x_{t-1} + e_t,  e_t ~ N(0, sigma^2)
//
// regulated to stay inside the bounds: whenever an increment would push the
// process outside the interval, the exceedance is reflected back across the
// violated bound. The process starts at the midpoint of the bounds, the
// first Burnin observations are discarded, and exactly T observations are
// returned.
func Generate(cfg Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator configuration: %w", err)
	}

	normal := distuv.Normal{
		Mu:    0,
		Sigma: cfg.Sigma,
		Src:   rand.NewPCG(cfg.Seed, cfg.Seed),
	}

	x := cfg.Bounds.Mid()
	out := make([]float64, 0, cfg.T)

	total := cfg.Burnin + cfg.T
	for t := 0; t < total; t++ {
		x = reflect(cfg.Rho*x+normal.Rand(), cfg.Bounds)
		if t >= cfg.Burnin {
			out = append(out, x)
		}
	}

	return out, nil
}

// GenerateBoundedAR1 is a convenience wrapper around Generate with
// positional parameters matching the usual textbook signature.
func GenerateBoundedAR1(T int, bounds timeseries.Bounds, rho, sigma float64, burnin int, seed uint64) ([]float64, error) {
	return Generate(Config{
		T:      T,
		Bounds: bounds,
		Rho:    rho,
		Sigma:  sigma,
		Burnin: burnin,
		Seed:   seed,
	})
}

// reflect folds a value back into the interval. A single fold handles any
// increment smaller than the interval width; larger excursions are folded
// repeatedly and finally clamped.
func reflect(x float64, b timeseries.Bounds) float64 {
	for i := 0; i < 8; i++ {
		switch {
		case x > b.Upper:
			x = 2*b.Upper - x
		case x < b.Lower:
			x = 2*b.Lower - x
		default:
			return x
		}
	}
	return math.Min(b.Upper, math.Max(b.Lower, x))
}
