// Package urtest implements unit root tests for bounded time series.
package urtest

import (
	"fmt"
	"math"

	"github.com/merwanroudane/boundedtest/detrend"
	"github.com/merwanroudane/boundedtest/lrv"
	"github.com/merwanroudane/boundedtest/timeseries"
)

// Supported statistic names.
const (
	StatMZAlpha = "mz_alpha"
	StatMZt     = "mz_t"
	StatMSB     = "msb"
	StatMPT     = "mp_t"
	StatAll     = "all"
)

// Supported detrending methods.
const (
	DetrendOLS       = "ols"
	DetrendGLSERS    = "gls_ers"
	DetrendGLSBounds = "gls_bounds"
)

// Supported long-run variance methods.
const (
	LRVNonparametric  = "np"
	LRVAutoregressive = "ar"
)

// minObs is the shortest series the tests accept.
const minObs = 20

// SupportedStatistics lists the statistic names RunAll computes, in
// canonical order.
func SupportedStatistics() []string {
	return []string{StatMZAlpha, StatMZt, StatMSB, StatMPT}
}

// Config selects the variant of the bounded unit root test.
type Config struct {
	Bounds     timeseries.Bounds // Interval the series is constrained to
	Statistic  string            // Statistic name; default mz_alpha
	Detrending string            // ols, gls_ers or gls_bounds; default ols
	LRVMethod  string            // np or ar; default np
}

// Result holds the outcome of a bounded unit root test. The null
// hypothesis is that the series has a unit root (is non-stationary inside
// its bounds); all statistics reject for small values.
type Result struct {
	Statistic    float64            // Value of the test statistic
	StatName     string             // Statistic name
	Reject5Pct   bool               // Whether H0 is rejected at the 5% level
	CriticalVals map[string]float64 // Critical values at 1%, 5%, 10%
	CParameters  [2]float64         // Scaled bound distances (lower, upper)
	Kappa        float64            // Scaled bound width
	LRVEstimate  float64            // Long-run variance used
	ARLag        int                // Selected lag order (ar method only)
	Detrending   string
	LRVMethod    string
	NObs         int
}

// Run performs the bounded unit root test for a single statistic.
func Run(data []float64, cfg Config) (*Result, error) {
	statName := cfg.Statistic
	if statName == "" {
		statName = StatMZAlpha
	}
	if statName == StatAll {
		return nil, fmt.Errorf("statistic %q returns multiple results, use RunAll", StatAll)
	}
	if !validStatistic(statName) {
		return nil, fmt.Errorf("unknown statistic %q", cfg.Statistic)
	}

	prep, err := prepare(data, cfg)
	if err != nil {
		return nil, err
	}
	return prep.result(statName), nil
}

// RunAll performs the bounded unit root test for every supported statistic
// on a single shared detrending and long-run variance estimate. It is the
// statistic="all" mode of the test.
func RunAll(data []float64, cfg Config) (map[string]*Result, error) {
	prep, err := prepare(data, cfg)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*Result, len(prep.stats))
	for _, name := range SupportedStatistics() {
		out[name] = prep.result(name)
	}
	return out, nil
}

// prepared carries the shared pipeline output: the detrended series, its
// long-run variance, the bound parameters and every statistic value.
type prepared struct {
	detrending string
	lrvMethod  string
	stats      map[string]float64
	lambda2    float64
	arLag      int
	cLower     float64
	cUpper     float64
	kappa      float64
	nObs       int
}

func (p *prepared) result(statName string) *Result {
	value := p.stats[statName]
	cvs := criticalValues(statName, p.detrending, p.kappa)
	return &Result{
		Statistic:    value,
		StatName:     statName,
		Reject5Pct:   value < cvs["5%"],
		CriticalVals: cvs,
		CParameters:  [2]float64{p.cLower, p.cUpper},
		Kappa:        p.kappa,
		LRVEstimate:  p.lambda2,
		ARLag:        p.arLag,
		Detrending:   p.detrending,
		LRVMethod:    p.lrvMethod,
		NObs:         p.nObs,
	}
}

// prepare validates the input and runs the shared pipeline:
// detrend -> long-run variance -> statistics.
func prepare(data []float64, cfg Config) (*prepared, error) {
	if len(data) < minObs {
		return nil, fmt.Errorf("bounded unit root test needs at least %d observations, got %d", minObs, len(data))
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("observation %d is not finite: %v", i, v)
		}
	}
	if err := cfg.Bounds.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Bounds.ContainsAll(data) {
		return nil, fmt.Errorf("data leaves the stated bounds [%v, %v]", cfg.Bounds.Lower, cfg.Bounds.Upper)
	}

	detrending := cfg.Detrending
	if detrending == "" {
		detrending = DetrendOLS
	}
	lrvMethod := cfg.LRVMethod
	if lrvMethod == "" {
		lrvMethod = LRVNonparametric
	}

	var (
		dres *detrend.Result
		err  error
	)
	switch detrending {
	case DetrendOLS:
		dres, err = detrend.OLS(data)
	case DetrendGLSERS:
		dres, err = detrend.GLSERS(data)
	case DetrendGLSBounds:
		dres, err = detrend.GLSBounds(data, cfg.Bounds)
	default:
		return nil, fmt.Errorf("unknown detrending method %q", cfg.Detrending)
	}
	if err != nil {
		return nil, fmt.Errorf("detrending (%s): %w", detrending, err)
	}

	// The limiting distribution depends on the bound parameters under every
	// detrending, so estimate them even when the detrending step did not.
	cLower, cUpper, kappa := dres.CLower, dres.CUpper, dres.Kappa
	if !dres.HasBounds {
		cLower, cUpper, kappa, err = detrend.BoundParameters(data, cfg.Bounds)
		if err != nil {
			return nil, err
		}
	}

	var (
		lambda2 float64
		arLag   int
	)
	switch lrvMethod {
	case LRVNonparametric:
		diffs := timeseries.New(dres.Detrended).Diff().Values
		lambda2 = lrv.Nonparametric(diffs, 0)
	case LRVAutoregressive:
		ar, err := lrv.AR(dres.Detrended, 0)
		if err != nil {
			return nil, fmt.Errorf("AR long-run variance: %w", err)
		}
		lambda2 = ar.LRV
		arLag = ar.Lag
	default:
		return nil, fmt.Errorf("unknown LRV method %q", cfg.LRVMethod)
	}

	stats, err := computeStatistics(dres.Detrended, lambda2, dres.CBar)
	if err != nil {
		return nil, err
	}

	return &prepared{
		detrending: detrending,
		lrvMethod:  lrvMethod,
		stats:      stats,
		lambda2:    lambda2,
		arLag:      arLag,
		cLower:     cLower,
		cUpper:     cUpper,
		kappa:      kappa,
		nObs:       len(data),
	}, nil
}

func validStatistic(name string) bool {
	for _, s := range SupportedStatistics() {
		if s == name {
			return true
		}
	}
	return false
}
