package timeseries

import (
	"fmt"
	"math"
)

// Bounds describes the closed interval [Lower, Upper] a bounded series
// lives in.
type Bounds struct {
	Lower float64
	Upper float64
}

// Validate checks that the bounds describe a non-degenerate finite interval.
func (b Bounds) Validate() error {
	if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) {
		return fmt.Errorf("bounds must be finite, got [%v, %v]", b.Lower, b.Upper)
	}
	if math.IsInf(b.Lower, 0) || math.IsInf(b.Upper, 0) {
		return fmt.Errorf("bounds must be finite, got [%v, %v]", b.Lower, b.Upper)
	}
	if b.Lower >= b.Upper {
		return fmt.Errorf("lower bound %v must be below upper bound %v", b.Lower, b.Upper)
	}
	return nil
}

// Width returns the width of the interval.
func (b Bounds) Width() float64 {
	return b.Upper - b.Lower
}

// Mid returns the midpoint of the interval.
func (b Bounds) Mid() float64 {
	return (b.Lower + b.Upper) / 2
}

// Contains reports whether x lies inside the interval.
func (b Bounds) Contains(x float64) bool {
	return x >= b.Lower && x <= b.Upper
}

// ContainsAll reports whether every value lies inside the interval.
func (b Bounds) ContainsAll(values []float64) bool {
	for _, v := range values {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}
