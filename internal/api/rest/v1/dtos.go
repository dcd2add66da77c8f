// Package v1 exposes the REST API: dataset upload, cleaning and export,
// analysis queries and rendered chart endpoints.
package v1

import (
	"fmt"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the error payload of every failing endpoint.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse carries a human-readable confirmation message.
type InfoResponse struct {
	Message string `json:"message"`
}

// CleanRequest parameterizes a cleaning run. All fields are optional and
// default to the server's cleaning settings.
type CleanRequest struct {
	MissingThreshold *float64 `json:"missingThreshold" validate:"omitempty,gte=0,lte=1"`
	ClipOutliers     *bool    `json:"clipOutliers"`
	LowerPercentile  *float64 `json:"lowerPercentile" validate:"omitempty,gte=0,lte=100"`
	UpperPercentile  *float64 `json:"upperPercentile" validate:"omitempty,gte=0,lte=100"`
}

// Validate for validating CleanRequest struct
func (r *CleanRequest) Validate() error {
	validate := validator.New()

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("validation failed for CleanRequest: %w", err)
	}

	return nil
}

// DatasetResponse is the REST representation of a dataset.
type DatasetResponse struct {
	ID              string    `json:"id"`
	Station         string    `json:"station"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	RowCount        int64     `json:"rowCount"`
	SkippedRows     int64     `json:"skippedRows"`
	DroppedColumns  []string  `json:"droppedColumns,omitempty"`
	SourceDatasetID *string   `json:"sourceDatasetId,omitempty"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
}

func toDatasetResponse(dataset *datasets.Dataset) DatasetResponse {
	return DatasetResponse{
		ID:              dataset.ID,
		Station:         dataset.Station,
		Name:            dataset.Name,
		Status:          dataset.Status,
		RowCount:        dataset.RowCount,
		SkippedRows:     dataset.SkippedRows,
		DroppedColumns:  dataset.DroppedColumns,
		SourceDatasetID: dataset.SourceDatasetID,
		DateTimeCreated: dataset.DateTimeCreated,
	}
}

// MetricSummaryResponse is the REST representation of one station summary.
type MetricSummaryResponse struct {
	Station string  `json:"station"`
	Metric  string  `json:"metric"`
	Mean    float64 `json:"mean"`
	Median  float64 `json:"median"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
}

func toMetricSummaryResponse(summary *analysis.MetricSummary) MetricSummaryResponse {
	return MetricSummaryResponse{
		Station: summary.Station,
		Metric:  summary.Metric,
		Mean:    summary.Mean,
		Median:  summary.Median,
		Std:     summary.Std,
		Min:     summary.Min,
		Max:     summary.Max,
		Count:   summary.Count,
	}
}

// StationRankingResponse is one row of a ranking report.
type StationRankingResponse struct {
	Station       string  `json:"station"`
	Average       float64 `json:"average"`
	Median        float64 `json:"median"`
	Stability     float64 `json:"stability"`
	Records       int     `json:"records"`
	PotentialRank int     `json:"potentialRank"`
	StabilityRank int     `json:"stabilityRank"`
	OverallScore  float64 `json:"overallScore"`
}

// RankingReportResponse is the full ranking over all stations for one metric.
type RankingReportResponse struct {
	Metric      string                   `json:"metric"`
	Rankings    []StationRankingResponse `json:"rankings"`
	Recommended string                   `json:"recommended"`
}

func toRankingReportResponse(report *analysis.RankingReport) RankingReportResponse {
	rankings := make([]StationRankingResponse, len(report.Rankings))
	for i, ranking := range report.Rankings {
		rankings[i] = StationRankingResponse{
			Station:       ranking.Station,
			Average:       ranking.Average,
			Median:        ranking.Median,
			Stability:     ranking.Stability,
			Records:       ranking.Records,
			PotentialRank: ranking.PotentialRank,
			StabilityRank: ranking.StabilityRank,
			OverallScore:  ranking.OverallScore,
		}
	}
	return RankingReportResponse{
		Metric:      report.Metric,
		Rankings:    rankings,
		Recommended: report.Recommended,
	}
}

// CorrelationMatrixResponse holds pairwise correlation coefficients.
// Values[i][j] correlates Metrics[i] with Metrics[j].
type CorrelationMatrixResponse struct {
	Station string      `json:"station"`
	Metrics []string    `json:"metrics"`
	Values  [][]float64 `json:"values"`
}

func toCorrelationMatrixResponse(matrix *analysis.CorrelationMatrix) CorrelationMatrixResponse {
	return CorrelationMatrixResponse{
		Station: matrix.Station,
		Metrics: matrix.Metrics,
		Values:  matrix.Values,
	}
}

// TimeSeriesPointResponse is one resampled bucket of a time series.
type TimeSeriesPointResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
	Count     int       `json:"count"`
}

// TimeSeriesResponse is a resampled series of one metric at one station.
type TimeSeriesResponse struct {
	Station    string                    `json:"station"`
	Metric     string                    `json:"metric"`
	Resolution string                    `json:"resolution"`
	Points     []TimeSeriesPointResponse `json:"points"`
}

func toTimeSeriesResponse(station, metric string, resolution analysis.Resolution, points []analysis.TimeSeriesPoint) TimeSeriesResponse {
	response := TimeSeriesResponse{
		Station:    station,
		Metric:     metric,
		Resolution: string(resolution),
		Points:     make([]TimeSeriesPointResponse, len(points)),
	}
	for i, point := range points {
		response.Points[i] = TimeSeriesPointResponse{
			Timestamp: point.Timestamp,
			Value:     point.Value,
			Count:     point.Count,
		}
	}
	return response
}
