package timeseries

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	result := s.Variance()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, result)
	}
}

func TestStd(t *testing.T) {
	s := New([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := math.Sqrt(4.571428571428571)

	result := s.Std()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected std %f, got %f", expected, result)
	}
}

func TestMinMax(t *testing.T) {
	s := New([]float64{3, -1, 4, 1, 5, -9, 2, 6})

	if s.Min() != -9 {
		t.Errorf("Expected min -9, got %f", s.Min())
	}
	if s.Max() != 6 {
		t.Errorf("Expected max 6, got %f", s.Max())
	}

	empty := New([]float64{})
	if !math.IsNaN(empty.Min()) || !math.IsNaN(empty.Max()) {
		t.Error("Min/Max of empty series should be NaN")
	}
}

func TestMedian(t *testing.T) {
	odd := New([]float64{5, 1, 3})
	if math.Abs(odd.Median()-3) > 1e-10 {
		t.Errorf("Expected median 3, got %f", odd.Median())
	}

	if !math.IsNaN(New([]float64{}).Median()) {
		t.Error("Median of empty series should be NaN")
	}
}

func TestDiff(t *testing.T) {
	s := New([]float64{1, 3, 6, 10, 15})
	diff := s.Diff()

	expected := []float64{2, 3, 4, 5}
	if diff.Len() != len(expected) {
		t.Fatalf("Expected diff length %d, got %d", len(expected), diff.Len())
	}
	for i, v := range expected {
		if math.Abs(diff.Values[i]-v) > 1e-10 {
			t.Errorf("Diff at index %d: expected %f, got %f", i, v, diff.Values[i])
		}
	}
}

func TestDiffN(t *testing.T) {
	s := New([]float64{1, 3, 6, 10, 15})
	diff2 := s.DiffN(2)

	// x_t - x_{t-2}
	expected := []float64{5, 7, 9}
	if diff2.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), diff2.Len())
	}
	for i, v := range expected {
		if math.Abs(diff2.Values[i]-v) > 1e-10 {
			t.Errorf("DiffN(2) at index %d: expected %f, got %f", i, v, diff2.Values[i])
		}
	}

	if New([]float64{1, 2}).DiffN(5).Len() != 0 {
		t.Error("DiffN beyond series length should return empty series")
	}
}

func TestLag(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	lagged := s.Lag(2)

	expected := []float64{1, 2, 3}
	if lagged.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), lagged.Len())
	}
	for i, v := range expected {
		if lagged.Values[i] != v {
			t.Errorf("Lag at index %d: expected %f, got %f", i, v, lagged.Values[i])
		}
	}
}

func TestSlice(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5})
	sub := s.Slice(1, 4)

	expected := []float64{2, 3, 4}
	if sub.Len() != len(expected) {
		t.Fatalf("Expected length %d, got %d", len(expected), sub.Len())
	}

	// Slice must copy, not alias.
	sub.Values[0] = 99
	if s.Values[1] == 99 {
		t.Error("Slice should copy values, not alias the original")
	}

	if s.Slice(4, 2).Len() != 0 {
		t.Error("Inverted slice range should return empty series")
	}
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	c := s.Copy()

	c.Values[0] = 42
	if s.Values[0] == 42 {
		t.Error("Copy should not share the underlying slice")
	}
}
