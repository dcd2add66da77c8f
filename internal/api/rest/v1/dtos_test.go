//go:build unit
// +build unit

package v1

import (
	"testing"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestCleanRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   CleanRequest
		shouldErr bool
	}{
		{"Empty fields (valid)", CleanRequest{}, false},
		{"Valid threshold", CleanRequest{MissingThreshold: floatPtr(0.1)}, false},
		{"Threshold above one", CleanRequest{MissingThreshold: floatPtr(1.5)}, true},
		{"Negative threshold", CleanRequest{MissingThreshold: floatPtr(-0.1)}, true},
		{"Valid percentiles", CleanRequest{LowerPercentile: floatPtr(1), UpperPercentile: floatPtr(99)}, false},
		{"Percentile above hundred", CleanRequest{UpperPercentile: floatPtr(101)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestToDatasetResponse(t *testing.T) {
	source := "8b7e2b40-3f63-4f0a-a2ea-1f39d4e0a111"
	dataset := &datasets.Dataset{
		ID:              "123",
		Station:         "Benin",
		Name:            "benin_raw.csv",
		Status:          datasets.StatusClean,
		RowCount:        100,
		DroppedColumns:  []string{"WS"},
		SourceDatasetID: &source,
	}

	response := toDatasetResponse(dataset)

	require.Equal(t, "123", response.ID)
	require.Equal(t, "Benin", response.Station)
	require.Equal(t, datasets.StatusClean, response.Status)
	require.Equal(t, []string{"WS"}, response.DroppedColumns)
	require.NotNil(t, response.SourceDatasetID)
	require.Equal(t, source, *response.SourceDatasetID)
}

func TestToRankingReportResponse(t *testing.T) {
	report := &analysis.RankingReport{
		Metric: "GHI",
		Rankings: []analysis.StationRanking{
			{Station: "Benin", Average: 715, PotentialRank: 1, StabilityRank: 2, OverallScore: 1.5},
			{Station: "Togo", Average: 605, PotentialRank: 2, StabilityRank: 1, OverallScore: 1.5},
		},
		Recommended: "Benin",
	}

	response := toRankingReportResponse(report)

	require.Equal(t, "GHI", response.Metric)
	require.Len(t, response.Rankings, 2)
	require.Equal(t, "Benin", response.Recommended)
	require.Equal(t, 1, response.Rankings[0].PotentialRank)
}

func TestErrorResponse_Creation(t *testing.T) {
	errResp := ErrorResponse{
		Message: "Test error",
	}

	require.Equal(t, "Test error", errResp.Message)
}

func TestInfoResponse_Creation(t *testing.T) {
	infoResp := InfoResponse{
		Message: "Operation successful",
	}

	require.Equal(t, "Operation successful", infoResp.Message)
}
