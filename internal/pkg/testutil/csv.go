package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// MeasurementCSV renders a measurement CSV document with the given header
// columns and rows. Rows are written verbatim; use an empty cell for a
// missing value.
func MeasurementCSV(header []string, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}
	return sb.String()
}

// HourlyMeasurementCSV builds a CSV with one row per hour starting at start,
// filling every metric column with the provided per-row values.
func HourlyMeasurementCSV(header []string, start time.Time, values [][]string) string {
	rows := make([][]string, len(values))
	for i, cells := range values {
		ts := start.Add(time.Duration(i) * time.Hour).UTC().Format("2006-01-02 15:04")
		rows[i] = append([]string{ts}, cells...)
	}
	return MeasurementCSV(header, rows)
}

// WriteTempCSV writes content to a temporary CSV file and returns its path.
// The file is removed when the test finishes.
func WriteTempCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), fmt.Sprintf("measurements-%d.csv", time.Now().UnixNano()))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// CreateCSVForm builds a multipart form holding one or more CSV files under
// the "files" field, mirroring what the REST upload endpoint receives.
func CreateCSVForm(t *testing.T, files map[string]string) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for filename, content := range files {
		part, err := writer.CreateFormFile("files", filename)
		require.NoError(t, err)

		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := form.RemoveAll(); err != nil {
			t.Logf("failed to remove multipart form temp files: %v", err)
		}
	})

	return form
}
