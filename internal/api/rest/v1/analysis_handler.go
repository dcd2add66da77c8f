package v1

import (
	"fmt"
	"net/http"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler defines the interface for handling analysis queries
type AnalysisHandler interface {
	Summary(ctx *gin.Context)
	Rankings(ctx *gin.Context)
	Correlations(ctx *gin.Context)
	TimeSeries(ctx *gin.Context)
}

// analysisHandler struct holds the services
type analysisHandler struct {
	summaryService     analysis.SummaryService
	rankingService     analysis.RankingService
	correlationService analysis.CorrelationService
	timeSeriesService  analysis.TimeSeriesService
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(
	summaryService analysis.SummaryService,
	rankingService analysis.RankingService,
	correlationService analysis.CorrelationService,
	timeSeriesService analysis.TimeSeriesService,
) AnalysisHandler {
	return &analysisHandler{
		summaryService:     summaryService,
		rankingService:     rankingService,
		correlationService: correlationService,
		timeSeriesService:  timeSeriesService,
	}
}

// metricParam reads the metric query parameter, defaulting to GHI.
func metricParam(ctx *gin.Context) string {
	if metric := ctx.Query("metric"); len(metric) > 0 {
		return metric
	}
	return measurements.MetricGHI
}

// Summary returns descriptive statistics of one metric per station
func (handler *analysisHandler) Summary(ctx *gin.Context) {
	metric := metricParam(ctx)
	stations := ctx.QueryArray("stations")

	summaries, err := handler.summaryService.Summaries(ctx, metric, stations)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("summary query failed: %v", err)})
		return
	}

	responses := make([]MetricSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = toMetricSummaryResponse(summary)
	}
	ctx.JSON(http.StatusOK, responses)
}

// Rankings returns the station ranking report for one metric
func (handler *analysisHandler) Rankings(ctx *gin.Context) {
	metric := metricParam(ctx)

	report, err := handler.rankingService.Rank(ctx, metric)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("ranking query failed: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, toRankingReportResponse(report))
}

// Correlations returns the pairwise correlation matrix of one station
func (handler *analysisHandler) Correlations(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, toCorrelationMatrixResponse(matrix))
}

// TimeSeries returns the resampled series of one metric at one station
func (handler *analysisHandler) TimeSeries(ctx *gin.Context) {
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

	ctx.JSON(http.StatusOK, toTimeSeriesResponse(station, metric, resolution, points))
}
