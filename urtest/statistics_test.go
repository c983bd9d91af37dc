package urtest

import (
	"math"
	"testing"
)

func TestComputeStatisticsIdentity(t *testing.T) {
	detrended := []float64{0.4, -0.2, 0.9, 1.3, 0.7, -0.5, -1.1, 0.2, 0.6, 1.0}

	stats, err := computeStatistics(detrended, 0.8, -7)
	if err != nil {
		t.Fatalf("computeStatistics failed: %v", err)
	}

	mza := stats[StatMZAlpha]
	msb := stats[StatMSB]
	mzt := stats[StatMZt]

	if math.Abs(mzt-mza*msb) > 1e-12 {
		t.Errorf("Expected MZt = MZa*MSB, got %f vs %f", mzt, mza*msb)
	}
	if msb <= 0 {
		t.Errorf("MSB must be positive, got %f", msb)
	}
	if stats[StatMPT] <= 0 {
		t.Errorf("MPT must be positive, got %f", stats[StatMPT])
	}
}

func TestComputeStatisticsDefaultsCBar(t *testing.T) {
	detrended := []float64{0.4, -0.2, 0.9, 1.3, 0.7, -0.5, -1.1, 0.2, 0.6, 1.0}

	withZero, err := computeStatistics(detrended, 0.8, 0)
	if err != nil {
		t.Fatalf("computeStatistics failed: %v", err)
	}
	withERS, err := computeStatistics(detrended, 0.8, -7)
	if err != nil {
		t.Fatalf("computeStatistics failed: %v", err)
	}

	// A zero cbar (OLS detrending) falls back to the ERS constant for MPT.
	if withZero[StatMPT] != withERS[StatMPT] {
		t.Errorf("Expected MPT fallback to cbar=-7, got %f vs %f",
			withZero[StatMPT], withERS[StatMPT])
	}
}

func TestComputeStatisticsErrors(t *testing.T) {
	if _, err := computeStatistics([]float64{1}, 1, -7); err == nil {
		t.Error("Expected error for a single observation")
	}
	if _, err := computeStatistics([]float64{1, 2, 3}, 0, -7); err == nil {
		t.Error("Expected error for non-positive long-run variance")
	}
	if _, err := computeStatistics([]float64{0, 0, 0, 1}, 1, -7); err == nil {
		t.Error("Expected error for zero lagged sum of squares")
	}
}
