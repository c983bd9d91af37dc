// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data
// and the Bounds type describing the interval a bounded series lives in,
// along with functions for data loading and transformation.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{0.1, -0.4, 0.3, 1.2, 0.8}
//	series := timeseries.New(values)
//
// # Bounds
//
// Bounded series are constrained to a fixed interval:
//
//	bounds := timeseries.Bounds{Lower: -5, Upper: 5}
//	if !bounds.ContainsAll(series.Values) {
//	    // data violates the stated bounds
//	}
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	series, err := timeseries.LoadCSVColumn("rates.csv", "rate")
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//
// # Transformations
//
// Transform the time series:
//
//	diff := series.Diff()    // First difference
//	lagged := series.Lag(1)  // Lagged by one period
//	subset := series.Slice(10, 50)
package timeseries
