package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: "y")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}
	return series, nil
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx := 0
	name := opts.ValueColumn

	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}

		valueIdx = -1
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			if h == opts.ValueColumn || (opts.ValueColumn == "" && (h == "y" || h == "value" || h == "Value")) {
				valueIdx = i
				name = h
				break
			}
		}
		if valueIdx == -1 {
			return nil, fmt.Errorf("column %q not found in header %v", opts.ValueColumn, header)
		}
	}

	var values []float64
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row++

		if valueIdx >= len(record) {
			return nil, fmt.Errorf("row %d has %d fields, need column %d", row, len(record), valueIdx+1)
		}
		cell := strings.TrimSpace(strings.Trim(record[valueIdx], "\""))
		if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
			continue
		}
		val, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: cannot parse %q as a number", row, cell)
		}
		values = append(values, val)
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	return &Series{Values: values, Name: name}, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}
