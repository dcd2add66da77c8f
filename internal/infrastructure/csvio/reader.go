// Package csvio parses station measurement CSV files into readings and
// serializes readings back to CSV. Parsing is tolerant: malformed rows are
// counted and skipped rather than failing the whole file.
package csvio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"

	"github.com/google/uuid"
)

// Accepted timestamp layouts, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

const timestampColumn = "timestamp"

// ParseResult holds the outcome of parsing one CSV file.
type ParseResult struct {
	Readings    []*measurements.Reading
	Columns     []string
	SkippedRows int64
}

// ParseReadings reads a measurement CSV from r and converts each row into a
// Reading bound to the given dataset and station. The header must contain a
// timestamp column and at least one known metric column; matching is
// case-insensitive and unknown columns are ignored. Empty, NA and NaN cells
// become missing values.
func ParseReadings(r io.Reader, datasetID, station string) (*ParseResult, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	timestampIdx := -1
	metricIdx := make(map[string]int)
	for i, name := range header {
		trimmed := strings.TrimSpace(name)
		if strings.EqualFold(trimmed, timestampColumn) {
			timestampIdx = i
			continue
		}
		for _, metric := range measurements.Metrics() {
			if strings.EqualFold(trimmed, metric) {
				metricIdx[metric] = i
			}
		}
	}

	if timestampIdx < 0 {
		return nil, fmt.Errorf("CSV header has no timestamp column")
	}
	if len(metricIdx) == 0 {
		return nil, fmt.Errorf("CSV header has no known metric column")
	}

	result := &ParseResult{}
	for _, metric := range measurements.Metrics() {
		if _, ok := metricIdx[metric]; ok {
			result.Columns = append(result.Columns, metric)
		}
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.SkippedRows++
			continue
		}

		if timestampIdx >= len(record) {
			result.SkippedRows++
			continue
		}

		ts, err := parseTimestamp(record[timestampIdx])
		if err != nil {
			result.SkippedRows++
			continue
		}

		reading := &measurements.Reading{
			ID:        uuid.New().String(),
			DatasetID: datasetID,
			Station:   station,
			Timestamp: ts,
		}

		valid := true
		for metric, idx := range metricIdx {
			if idx >= len(record) {
				continue
			}
			value, ok, err := parseCell(record[idx])
			if err != nil {
				valid = false
				break
			}
			if ok {
				reading.SetMetric(metric, &value)
			}
		}
		if !valid {
			result.SkippedRows++
			continue
		}

		result.Readings = append(result.Readings, reading)
	}

	return result, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", s)
}

// parseCell returns (value, present, error). Missing markers report
// present=false with no error; anything else must parse as a float.
func parseCell(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "nan") || strings.EqualFold(s, "null") {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
