//go:build unit
// +build unit

package plotting

import (
	"testing"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.Greater(t, len(data), len(pngSignature))
	assert.Equal(t, pngSignature, data[:len(pngSignature)])
}

func TestComparisonBoxPlot(t *testing.T) {
	distributions := map[string][]float64{
		"Benin": {700, 710, 720, 730},
		"Togo":  {600, 610, 620},
	}

	data, err := ComparisonBoxPlot(measurements.MetricGHI, distributions)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestComparisonBoxPlotEmpty(t *testing.T) {
	_, err := ComparisonBoxPlot(measurements.MetricGHI, nil)
	assert.Error(t, err)
}

func TestComparisonBarChart(t *testing.T) {
	summaries := []*analysis.MetricSummary{
		{Station: "Benin", Metric: measurements.MetricGHI, Mean: 715, Count: 4},
		{Station: "Togo", Metric: measurements.MetricGHI, Mean: 610, Count: 3},
	}

	data, err := ComparisonBarChart(summaries)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestComparisonBarChartEmpty(t *testing.T) {
	_, err := ComparisonBarChart(nil)
	assert.Error(t, err)
}

func TestScatterPlot(t *testing.T) {
	byStation := map[string][]analysis.Pair{
		"Benin": {{X: 700, Y: 25}, {X: 710, Y: 26}},
		"Togo":  {{X: 600, Y: 24}},
	}

	data, err := ScatterPlot(measurements.MetricGHI, measurements.MetricTamb, byStation)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestScatterPlotEmpty(t *testing.T) {
	_, err := ScatterPlot(measurements.MetricGHI, measurements.MetricTamb, nil)
	assert.Error(t, err)
}

func TestCorrelationHeatMap(t *testing.T) {
	matrix := &analysis.CorrelationMatrix{
		Station: "Benin",
		Metrics: []string{measurements.MetricGHI, measurements.MetricDNI},
		Values:  [][]float64{{1, 0.9}, {0.9, 1}},
	}

	data, err := CorrelationHeatMap(matrix)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestCorrelationHeatMapEmpty(t *testing.T) {
	_, err := CorrelationHeatMap(nil)
	assert.Error(t, err)
}

func TestTimeSeriesLine(t *testing.T) {
	start := time.Date(2021, 8, 9, 0, 0, 0, 0, time.UTC)
	points := []analysis.TimeSeriesPoint{
		{Timestamp: start, Value: 700, Count: 24},
		{Timestamp: start.AddDate(0, 0, 1), Value: 710, Count: 24},
		{Timestamp: start.AddDate(0, 0, 2), Value: 705, Count: 24},
	}

	data, err := TimeSeriesLine("Benin", measurements.MetricGHI, points)
	require.NoError(t, err)
	assertPNG(t, data)
}

func TestTimeSeriesLineEmpty(t *testing.T) {
	_, err := TimeSeriesLine("Benin", measurements.MetricGHI, nil)
	assert.Error(t, err)
}
