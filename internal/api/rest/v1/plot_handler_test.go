//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPlotHandlerWithMocks() (PlotHandler, *MockSummaryService, *MockCorrelationService, *MockTimeSeriesService) {
	mockSummary := new(MockSummaryService)
	mockCorrelation := new(MockCorrelationService)
	mockTimeSeries := new(MockTimeSeriesService)

	handler := NewPlotHandler(mockSummary, mockCorrelation, mockTimeSeries)
	return handler, mockSummary, mockCorrelation, mockTimeSeries
}

func TestPlotHandler_Comparison_Box(t *testing.T) {
	handler, mockSummary, _, _ := newPlotHandlerWithMocks()

	distributions := map[string][]float64{
		"Benin": {700, 710, 720},
		"Togo":  {600, 610},
	}
	mockSummary.On("Distributions", mock.Anything, "GHI").Return(distributions, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/comparison", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Comparison(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	mockSummary.AssertExpectations(t)
}

func TestPlotHandler_Comparison_Bar(t *testing.T) {
	handler, mockSummary, _, _ := newPlotHandlerWithMocks()

	summaries := []*analysis.MetricSummary{
		{Station: "Benin", Metric: "GHI", Mean: 715},
		{Station: "Togo", Metric: "GHI", Mean: 605},
	}
	mockSummary.On("Summaries", mock.Anything, "GHI", []string(nil)).Return(summaries, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/comparison?kind=bar", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Comparison(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	mockSummary.AssertExpectations(t)
}

func TestPlotHandler_Comparison_UnknownKind_Error(t *testing.T) {
	handler, _, _, _ := newPlotHandlerWithMocks()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/comparison?kind=pie", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Comparison(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unsupported chart kind")
}

func TestPlotHandler_Scatter_ExplicitStations(t *testing.T) {
	handler, _, mockCorrelation, _ := newPlotHandlerWithMocks()

	pairs := []analysis.Pair{{X: 700, Y: 25}, {X: 710, Y: 26}}
	mockCorrelation.On("Pairs", mock.Anything, "Benin", "GHI", "Tamb").Return(pairs, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/scatter?stations=Benin", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Scatter(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	mockCorrelation.AssertExpectations(t)
}

func TestPlotHandler_Scatter_ResolvesStations(t *testing.T) {
	handler, mockSummary, mockCorrelation, _ := newPlotHandlerWithMocks()

	distributions := map[string][]float64{"Benin": {700}}
	mockSummary.On("Distributions", mock.Anything, "GHI").Return(distributions, nil)
	mockCorrelation.On("Pairs", mock.Anything, "Benin", "GHI", "Tamb").
		Return([]analysis.Pair{{X: 700, Y: 25}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/scatter", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Scatter(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSummary.AssertExpectations(t)
	mockCorrelation.AssertExpectations(t)
}

func TestPlotHandler_Heatmap_Success(t *testing.T) {
	handler, _, mockCorrelation, _ := newPlotHandlerWithMocks()

	matrix := &analysis.CorrelationMatrix{
		Station: "Benin",
		Metrics: []string{"GHI", "DNI"},
		Values:  [][]float64{{1, 0.9}, {0.9, 1}},
	}
	mockCorrelation.On("Matrix", mock.Anything, "Benin").Return(matrix, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/heatmap?station=Benin", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Heatmap(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	mockCorrelation.AssertExpectations(t)
}

func TestPlotHandler_Heatmap_MissingStation_Error(t *testing.T) {
	handler, _, _, _ := newPlotHandlerWithMocks()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/heatmap", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Heatmap(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlotHandler_TimeSeries_Success(t *testing.T) {
	handler, _, _, mockTimeSeries := newPlotHandlerWithMocks()

	points := []analysis.TimeSeriesPoint{
		{Timestamp: time.Date(2021, 8, 9, 0, 0, 0, 0, time.UTC), Value: 700, Count: 24},
		{Timestamp: time.Date(2021, 8, 10, 0, 0, 0, 0, time.UTC), Value: 710, Count: 24},
	}
	mockTimeSeries.On("Series", mock.Anything, "Benin", "GHI", analysis.ResolutionDaily).Return(points, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/timeseries?station=Benin", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.TimeSeries(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	mockTimeSeries.AssertExpectations(t)
}

func TestPlotHandler_TimeSeries_NoData_Error(t *testing.T) {
	handler, _, _, mockTimeSeries := newPlotHandlerWithMocks()

	mockTimeSeries.On("Series", mock.Anything, "Benin", "GHI", analysis.ResolutionDaily).
		Return([]analysis.TimeSeriesPoint{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/plots/timeseries?station=Benin", nil)
	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.TimeSeries(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no points to plot")
}
