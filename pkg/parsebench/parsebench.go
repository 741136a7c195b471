// Package parsebench benchmarks hand-rolled delimited-text and structured-text
// parsers against synthetic payloads of a configurable size.
package parsebench

import (
	"errors"
	"strconv"
	"time"
)

// ErrInvalidSize is returned when a requested payload size is not positive.
var ErrInvalidSize = errors.New("parsebench: payload size must be positive")

// Result is the terminal artifact of one parser benchmark run.
type Result struct {
	RecordCount int     `json:"record_count" yaml:"record_count"`
	ByteSize    int     `json:"byte_size" yaml:"byte_size"`
	AvgValue    float64 `json:"avg_value" yaml:"avg_value"`
	ParseTimeMs float64 `json:"parse_time_ms" yaml:"parse_time_ms"`
}

// RunCSV generates ~sizeMB megabytes of CSV, parses it, and reports record
// count, payload size, the mean of the three value columns, and parse time.
func RunCSV(sizeMB int) (Result, error) {
	data, err := GenerateCSV(sizeMB)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	records := ParseCSV(data)
	elapsed := time.Since(start)

	total := 0.0
	for _, r := range records {
		total += r.Value1 + r.Value2 + r.Value3
	}

	avg := 0.0
	if len(records) > 0 {
		avg = total / float64(len(records)*3)
	}

	return Result{
		RecordCount: len(records),
		ByteSize:    len(data),
		AvgValue:    avg,
		ParseTimeMs: float64(elapsed.Microseconds()) / 1000.0,
	}, nil
}

// RunJSON generates ~sizeMB megabytes of JSON, parses it, and reports record
// count, payload size, the mean record value, and parse time.
func RunJSON(sizeMB int) (Result, error) {
	data, err := GenerateJSON(sizeMB)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	records := ParseJSON(data)
	elapsed := time.Since(start)

	total := 0.0
	for _, r := range records {
		total += r.Value
	}

	avg := 0.0
	if len(records) > 0 {
		avg = total / float64(len(records))
	}

	return Result{
		RecordCount: len(records),
		ByteSize:    len(data),
		AvgValue:    avg,
		ParseTimeMs: float64(elapsed.Microseconds()) / 1000.0,
	}, nil
}

// parseInt and parseFloat match C atoi/atof semantics: malformed input
// yields zero instead of an error.
func parseInt(field []byte) int {
	v, err := strconv.Atoi(string(field))
	if err != nil {
		return 0
	}
	return v
}

func parseFloat(field []byte) float64 {
	v, err := strconv.ParseFloat(string(field), 64)
	if err != nil {
		return 0
	}
	return v
}
