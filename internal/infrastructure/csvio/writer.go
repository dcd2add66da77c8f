package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"
)

const exportTimestampLayout = "2006-01-02 15:04:05"

// WriteReadings serializes readings as CSV with a timestamp column followed
// by the canonical metric columns. Missing cells are written empty.
func WriteReadings(w io.Writer, readings []*measurements.Reading) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Timestamp"}, measurements.Metrics()...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(header))
	for _, reading := range readings {
		record[0] = reading.Timestamp.UTC().Format(exportTimestampLayout)
		for i, metric := range measurements.Metrics() {
			if value := reading.Metric(metric); value != nil {
				record[i+1] = strconv.FormatFloat(*value, 'f', -1, 64)
			} else {
				record[i+1] = ""
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
