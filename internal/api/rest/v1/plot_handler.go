package v1

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/plotting"

	"github.com/gin-gonic/gin"
)

// PlotHandler defines the interface for handling chart rendering endpoints
type PlotHandler interface {
	Comparison(ctx *gin.Context)
	Scatter(ctx *gin.Context)
	Heatmap(ctx *gin.Context)
	TimeSeries(ctx *gin.Context)
}

// plotHandler struct holds the services
type plotHandler struct {
	summaryService     analysis.SummaryService
	correlationService analysis.CorrelationService
	timeSeriesService  analysis.TimeSeriesService
}

// NewPlotHandler creates a new PlotHandler
func NewPlotHandler(
	summaryService analysis.SummaryService,
	correlationService analysis.CorrelationService,
	timeSeriesService analysis.TimeSeriesService,
) PlotHandler {
	return &plotHandler{
		summaryService:     summaryService,
		correlationService: correlationService,
		timeSeriesService:  timeSeriesService,
	}
}

func servePNG(ctx *gin.Context, data []byte) {
	ctx.Data(http.StatusOK, "image/png", data)
}

// Comparison renders a station comparison chart of one metric, either a box
// plot over the value distributions or a bar chart of the means
func (handler *plotHandler) Comparison(ctx *gin.Context) {
	metric := metricParam(ctx)
	kind := ctx.DefaultQuery("kind", "box")

	var data []byte
	var err error
	switch kind {
	case "box":
		var distributions map[string][]float64
		distributions, err = handler.summaryService.Distributions(ctx, metric)
		if err == nil {
			data, err = plotting.ComparisonBoxPlot(metric, distributions)
		}
	case "bar":
		var summaries []*analysis.MetricSummary
		summaries, err = handler.summaryService.Summaries(ctx, metric, nil)
		if err == nil {
			data, err = plotting.ComparisonBarChart(summaries)
		}
	default:
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("unsupported chart kind: %s", kind)})
		return
	}

	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not render comparison chart: %v", err)})
		return
	}
	servePNG(ctx, data)
}

// Scatter renders a scatter of two metrics colored per station
func (handler *plotHandler) Scatter(ctx *gin.Context) {
	xMetric := ctx.DefaultQuery("x", "GHI")
	yMetric := ctx.DefaultQuery("y", "Tamb")

	stations := ctx.QueryArray("stations")
	if len(stations) == 0 {
		distributions, err := handler.summaryService.Distributions(ctx, xMetric)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not resolve stations: %v", err)})
			return
		}
		for station := range distributions {
			stations = append(stations, station)
		}
		sort.Strings(stations)
	}

	byStation := make(map[string][]analysis.Pair, len(stations))
	for _, station := range stations {
		pairs, err := handler.correlationService.Pairs(ctx, station, xMetric, yMetric)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not load observations for %s: %v", station, err)})
			return
		}
		if len(pairs) > 0 {
			byStation[station] = pairs
		}
	}

	data, err := plotting.ScatterPlot(xMetric, yMetric, byStation)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not render scatter: %v", err)})
		return
	}
	servePNG(ctx, data)
}

// Heatmap renders the correlation matrix of one station
func (handler *plotHandler) Heatmap(ctx *gin.Context) {
	station := ctx.Query("station")
	if station == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "missing query parameter 'station'"})
		return
	}

	matrix, err := handler.correlationService.Matrix(ctx, station)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("correlation query failed: %v", err)})
		return
	}

	data, err := plotting.CorrelationHeatMap(matrix)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not render heat map: %v", err)})
		return
	}
	servePNG(ctx, data)
}

// TimeSeries renders the resampled series of one metric at one station
func (handler *plotHandler) TimeSeries(ctx *gin.Context) {
	station := ctx.Query("station")
	if station == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "missing query parameter 'station'"})
		return
	}
	metric := metricParam(ctx)

	resolution, err := analysis.ParseResolution(ctx.Query("resolution"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	points, err := handler.timeSeriesService.Series(ctx, station, metric, resolution)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("time series query failed: %v", err)})
		return
	}

	data, err := plotting.TimeSeriesLine(station, metric, points)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not render time series: %v", err)})
		return
	}
	servePNG(ctx, data)
}
