package detrend

import (
	"math"
	"testing"

	"github.com/merwanroudane/boundedtest/timeseries"
)

// simulateBounded produces a deterministic bounded near-unit-root series
// for testing.
func simulateBounded(n int, bounds timeseries.Bounds) []float64 {
	values := make([]float64, n)
	x := bounds.Mid()
	for i := 0; i < n; i++ {
		x = 0.98*x + (float64((i*7)%10)-4.5)/5
		if x > bounds.Upper {
			x = 2*bounds.Upper - x
		}
		if x < bounds.Lower {
			x = 2*bounds.Lower - x
		}
		values[i] = x
	}
	return values
}

func TestOLSDemeans(t *testing.T) {
	bounds := timeseries.Bounds{Lower: -5, Upper: 5}
	data := simulateBounded(100, bounds)

	res, err := OLS(data)
	if err != nil {
		t.Fatalf("OLS failed: %v", err)
	}

	if len(res.Detrended) != len(data) {
		t.Errorf("Expected %d detrended values, got %d", len(data), len(res.Detrended))
	}

	sum := 0.0
	for _, v := range res.Detrended {
		sum += v
	}
	if math.Abs(sum/float64(len(data))) > 1e-10 {
		t.Errorf("OLS residuals should have zero mean, got %e", sum/float64(len(data)))
	}
	if res.CBar != 0 {
		t.Errorf("OLS has no quasi-differencing constant, got %f", res.CBar)
	}
}

func TestOLSShortSeries(t *testing.T) {
	if _, err := OLS([]float64{1, 2, 3}); err == nil {
		t.Error("Expected error for short series")
	}
}

func TestGLSERS(t *testing.T) {
	bounds := timeseries.Bounds{Lower: -5, Upper: 5}
	data := simulateBounded(100, bounds)

	res, err := GLSERS(data)
	if err != nil {
		t.Fatalf("GLSERS failed: %v", err)
	}

	if res.CBar != -7.0 {
		t.Errorf("Expected ERS constant -7, got %f", res.CBar)
	}
	if len(res.Detrended) != len(data) {
		t.Errorf("Expected %d detrended values, got %d", len(data), len(res.Detrended))
	}

	// GLS demeaning weights the start of the sample heavily, so the
	// estimated level should sit near the first observations rather than
	// far outside the data range.
	if res.Mean < bounds.Lower || res.Mean > bounds.Upper {
		t.Errorf("GLS level estimate %f outside the data bounds", res.Mean)
	}
}

func TestGLSBounds(t *testing.T) {
	bounds := timeseries.Bounds{Lower: -5, Upper: 5}
	data := simulateBounded(100, bounds)

	res, err := GLSBounds(data, bounds)
	if err != nil {
		t.Fatalf("GLSBounds failed: %v", err)
	}

	if !res.HasBounds {
		t.Error("GLSBounds result should carry bound parameters")
	}
	if res.CLower >= res.CUpper {
		t.Errorf("Expected cLower < cUpper, got %f >= %f", res.CLower, res.CUpper)
	}
	if res.Kappa <= 0 {
		t.Errorf("Expected positive kappa, got %f", res.Kappa)
	}
	if math.Abs(res.Kappa-(res.CUpper-res.CLower)) > 1e-12 {
		t.Error("Kappa should equal the width of the c-parameter interval")
	}
	if res.CBar > 0 || res.CBar < -7.0 {
		t.Errorf("Bounds-adjusted cbar should lie in [-7, 0], got %f", res.CBar)
	}
	if len(res.Detrended) != len(data) {
		t.Errorf("Expected %d detrended values, got %d", len(data), len(res.Detrended))
	}
}

func TestGLSBoundsInvalidBounds(t *testing.T) {
	data := simulateBounded(50, timeseries.Bounds{Lower: -5, Upper: 5})
	if _, err := GLSBounds(data, timeseries.Bounds{Lower: 5, Upper: -5}); err == nil {
		t.Error("Expected error for inverted bounds")
	}
}

func TestBoundParametersScaling(t *testing.T) {
	bounds := timeseries.Bounds{Lower: -5, Upper: 5}
	data := simulateBounded(100, bounds)

	_, _, kappa, err := BoundParameters(data, bounds)
	if err != nil {
		t.Fatalf("BoundParameters failed: %v", err)
	}

	wide := timeseries.Bounds{Lower: -10, Upper: 10}
	_, _, kappaWide, err := BoundParameters(data, wide)
	if err != nil {
		t.Fatalf("BoundParameters failed: %v", err)
	}

	// Kappa is the bound width over lambda*sqrt(T); doubling the width
	// doubles kappa.
	if math.Abs(kappaWide-2*kappa) > 1e-10 {
		t.Errorf("Expected kappa to scale with bound width: %f vs %f", kappaWide, 2*kappa)
	}
}

func TestCBarForKappa(t *testing.T) {
	if got := cBarForKappa(0); got != 0 {
		t.Errorf("Expected cbar 0 at kappa 0, got %f", got)
	}
	if got := cBarForKappa(100); got != -7.0 {
		t.Errorf("Expected ERS limit -7 for wide bounds, got %f", got)
	}
	for i, k := range kappaGrid {
		if got := cBarForKappa(k); math.Abs(got-cBarGrid[i]) > 1e-12 {
			t.Errorf("At grid point %f: expected %f, got %f", k, cBarGrid[i], got)
		}
	}

	// Monotone nonincreasing in kappa.
	prev := 0.0
	for k := 0.1; k <= 8; k += 0.1 {
		got := cBarForKappa(k)
		if got > prev+1e-12 {
			t.Fatalf("cbar not monotone at kappa %f: %f > %f", k, got, prev)
		}
		prev = got
	}
}
