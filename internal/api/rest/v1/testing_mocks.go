//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"

	"github.com/stretchr/testify/mock"
)

// MockIngestionService is a mock implementation of IngestionService
type MockIngestionService struct {
	mock.Mock
}

func (m *MockIngestionService) Ingest(ctx context.Context, form *multipart.Form, station string) ([]*datasets.Dataset, error) {
	args := m.Called(ctx, form, station)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*datasets.Dataset), args.Error(1)
}

func (m *MockIngestionService) IngestFile(ctx context.Context, path string, station string) (*datasets.Dataset, error) {
	args := m.Called(ctx, path, station)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.Dataset), args.Error(1)
}

// MockCleaningService is a mock implementation of CleaningService
type MockCleaningService struct {
	mock.Mock
}

func (m *MockCleaningService) Clean(ctx context.Context, datasetID string, opts datasets.CleaningOptions) (*datasets.Dataset, error) {
	args := m.Called(ctx, datasetID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.Dataset), args.Error(1)
}

// MockMetadataService is a mock implementation of MetadataService
type MockMetadataService struct {
	mock.Mock
}

func (m *MockMetadataService) List(ctx context.Context, query *datasets.DatasetQuery) ([]*datasets.Dataset, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*datasets.Dataset), args.Error(1)
}

func (m *MockMetadataService) GetByID(ctx context.Context, datasetID string) (*datasets.Dataset, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*datasets.Dataset), args.Error(1)
}

func (m *MockMetadataService) DeleteByID(ctx context.Context, datasetID string) error {
	args := m.Called(ctx, datasetID)
	return args.Error(0)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportCSV(ctx context.Context, datasetID string) ([]byte, error) {
	args := m.Called(ctx, datasetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	mock.Mock
}

func (m *MockSummaryService) Summaries(ctx context.Context, metric string, stations []string) ([]*analysis.MetricSummary, error) {
	args := m.Called(ctx, metric, stations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*analysis.MetricSummary), args.Error(1)
}

func (m *MockSummaryService) Distributions(ctx context.Context, metric string) (map[string][]float64, error) {
	args := m.Called(ctx, metric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]float64), args.Error(1)
}

// MockRankingService is a mock implementation of RankingService
type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) Rank(ctx context.Context, metric string) (*analysis.RankingReport, error) {
	args := m.Called(ctx, metric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.RankingReport), args.Error(1)
}

// MockCorrelationService is a mock implementation of CorrelationService
type MockCorrelationService struct {
	mock.Mock
}

func (m *MockCorrelationService) Matrix(ctx context.Context, station string) (*analysis.CorrelationMatrix, error) {
	args := m.Called(ctx, station)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysis.CorrelationMatrix), args.Error(1)
}

func (m *MockCorrelationService) Pairs(ctx context.Context, station, xMetric, yMetric string) ([]analysis.Pair, error) {
	args := m.Called(ctx, station, xMetric, yMetric)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analysis.Pair), args.Error(1)
}

// MockTimeSeriesService is a mock implementation of TimeSeriesService
type MockTimeSeriesService struct {
	mock.Mock
}

func (m *MockTimeSeriesService) Series(ctx context.Context, station, metric string, resolution analysis.Resolution) ([]analysis.TimeSeriesPoint, error) {
	args := m.Called(ctx, station, metric, resolution)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]analysis.TimeSeriesPoint), args.Error(1)
}
