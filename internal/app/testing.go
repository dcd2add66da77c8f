//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/persistence"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices bundles the full application service graph over an in-memory
// database, with the underlying repositories for direct inspection.
type TestServices struct {
	Ingestion   datasets.IngestionService
	Cleaning    datasets.CleaningService
	Metadata    datasets.MetadataService
	Export      datasets.ExportService
	Summary     analysis.SummaryService
	Ranking     analysis.RankingService
	Correlation analysis.CorrelationService
	TimeSeries  analysis.TimeSeriesService

	DatasetRepo datasets.DatasetRepository
	ReadingRepo measurements.ReadingRepository
}

// SetupAppServices wires every application service against a fresh test
// database.
func SetupAppServices(t *testing.T) *TestServices {
	t.Helper()

	tc := persistence.SetupTestDB(t)
	log := testutil.SetupTestLogger(t)

	ingestion, err := NewIngestionService(tc.DatasetRepo, tc.ReadingRepo, log)
	require.NoError(t, err)

	cleaning, err := NewCleaningService(tc.DatasetRepo, tc.ReadingRepo, log)
	require.NoError(t, err)

	metadata, err := NewMetadataService(tc.DatasetRepo, tc.ReadingRepo, log)
	require.NoError(t, err)

	export, err := NewExportService(tc.DatasetRepo, tc.ReadingRepo, log)
	require.NoError(t, err)

	summary, err := NewSummaryService(tc.DatasetRepo, tc.ReadingRepo, log)
	require.NoError(t, err)

	ranking, err := NewRankingService(tc.DatasetRepo, tc.ReadingRepo, log)
	require.NoError(t, err)

	correlation, err := NewCorrelationService(tc.DatasetRepo, tc.ReadingRepo, log)
	require.NoError(t, err)

	timeSeries, err := NewTimeSeriesService(tc.DatasetRepo, tc.ReadingRepo, log)
	require.NoError(t, err)

	return &TestServices{
		Ingestion:   ingestion,
		Cleaning:    cleaning,
		Metadata:    metadata,
		Export:      export,
		Summary:     summary,
		Ranking:     ranking,
		Correlation: correlation,
		TimeSeries:  timeSeries,
		DatasetRepo: tc.DatasetRepo,
		ReadingRepo: tc.ReadingRepo,
	}
}
