// Package app implements the application services: dataset ingestion,
// cleaning, export and metadata management, plus the analysis services
// computing summaries, rankings, correlations and time series.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/csvio"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/logger"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/stats"

	"github.com/google/uuid"
)

// ingestionService implements the IngestionService interface for loading
// station CSV files
type ingestionService struct {
	datasetRepo datasets.DatasetRepository
	readingRepo measurements.ReadingRepository
	logger      logger.Logger
}

// NewIngestionService creates a new instance of IngestionService
func NewIngestionService(
	datasetRepo datasets.DatasetRepository,
	readingRepo measurements.ReadingRepository,
	logger logger.Logger,
) (datasets.IngestionService, error) {
	return &ingestionService{
		datasetRepo: datasetRepo,
		readingRepo: readingRepo,
		logger:      logger,
	}, nil
}

// Ingest parses every CSV file of a multipart form and persists one raw
// dataset per file for the given station.
func (s *ingestionService) Ingest(ctx context.Context, form *multipart.Form, station string) ([]*datasets.Dataset, error) {
	if form == nil || len(form.File["files"]) == 0 {
		return nil, fmt.Errorf("no files provided in upload request")
	}

	var created []*datasets.Dataset
	for _, fileHeader := range form.File["files"] {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file '%s': %w", fileHeader.Filename, err)
		}

		dataset, err := s.ingestReader(ctx, file, fileHeader.Filename, station)
		if closeErr := file.Close(); closeErr != nil {
			s.logger.Warn("failed to close uploaded file ", fileHeader.Filename)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to ingest '%s': %w", fileHeader.Filename, err)
		}

		created = append(created, dataset)
	}

	return created, nil
}

// IngestFile parses a CSV file from the local filesystem and persists a raw
// dataset for the given station.
func (s *ingestionService) IngestFile(ctx context.Context, path string, station string) (*datasets.Dataset, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Warn("failed to close file ", path)
		}
	}()

	return s.ingestReader(ctx, file, filepath.Base(path), station)
}

func (s *ingestionService) ingestReader(ctx context.Context, r io.Reader, name, station string) (*datasets.Dataset, error) {
	datasetID := uuid.New().String()

	result, err := csvio.ParseReadings(r, datasetID, station)
	if err != nil {
		return nil, err
	}
	if len(result.Readings) == 0 {
		return nil, fmt.Errorf("no parseable rows in '%s'", name)
	}

	dataset := &datasets.Dataset{
		ID:              datasetID,
		Station:         station,
		Name:            name,
		Status:          datasets.StatusRaw,
		RowCount:        int64(len(result.Readings)),
		SkippedRows:     result.SkippedRows,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.datasetRepo.Create(ctx, dataset); err != nil {
		return nil, fmt.Errorf("failed to save dataset metadata: %w", err)
	}
	if err := s.readingRepo.CreateBatch(ctx, result.Readings); err != nil {
		return nil, fmt.Errorf("failed to save readings: %w", err)
	}

	s.logger.Info("Ingested dataset ", datasetID, " for station ", station,
		" with ", dataset.RowCount, " rows (", dataset.SkippedRows, " skipped)")
	return dataset, nil
}

// cleaningService implements the CleaningService interface
type cleaningService struct {
	datasetRepo datasets.DatasetRepository
	readingRepo measurements.ReadingRepository
	logger      logger.Logger
}

// NewCleaningService creates a new instance of CleaningService
func NewCleaningService(
	datasetRepo datasets.DatasetRepository,
	readingRepo measurements.ReadingRepository,
	logger logger.Logger,
) (datasets.CleaningService, error) {
	return &cleaningService{
		datasetRepo: datasetRepo,
		readingRepo: readingRepo,
		logger:      logger,
	}, nil
}

// Clean derives a clean dataset from a raw one: metric columns whose missing
// fraction exceeds the threshold are dropped, remaining gaps are imputed with
// the column mean (or median when the distribution is skewed) and outliers
// are optionally clipped to percentile bounds.
func (s *cleaningService) Clean(ctx context.Context, datasetID string, opts datasets.CleaningOptions) (*datasets.Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	source, err := s.datasetRepo.GetByID(ctx, datasetID)
	if err != nil {
		return nil, err
	}
	if source.Status != datasets.StatusRaw {
		return nil, fmt.Errorf("dataset %s is not a raw dataset", datasetID)
	}

	query := measurements.NewReadingQuery()
	query.DatasetID = datasetID
	readings, err := s.readingRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(readings) == 0 {
		return nil, fmt.Errorf("dataset %s has no readings", datasetID)
	}

	cleanID := uuid.New().String()
	cleaned := make([]*measurements.Reading, len(readings))
	for i, reading := range readings {
		cleaned[i] = &measurements.Reading{
			ID:        uuid.New().String(),
			DatasetID: cleanID,
			Station:   reading.Station,
			Timestamp: reading.Timestamp,
		}
	}

	var dropped []string
	total := float64(len(readings))
	for _, metric := range measurements.Metrics() {
		values := make([]float64, 0, len(readings))
		for _, reading := range readings {
			if v := reading.Metric(metric); v != nil {
				values = append(values, *v)
			}
		}

		missingFrac := (total - float64(len(values))) / total
		if missingFrac > opts.MissingThreshold {
			if len(values) > 0 {
				// Columns absent from the source file are 100% missing and
				// dropped silently; partially filled ones are worth noting.
				dropped = append(dropped, metric)
				s.logger.Info("Dropping column ", metric, " of dataset ", datasetID,
					" (missing fraction ", fmt.Sprintf("%.3f", missingFrac), ")")
			}
			continue
		}

		fill := stats.Mean(values)
		if stats.SkewScore(values) > 1.0 {
			fill = stats.Median(values)
		}

		low, high := 0.0, 0.0
		if opts.ClipOutliers {
			low = stats.Percentile(values, opts.LowerPercentile)
			high = stats.Percentile(values, opts.UpperPercentile)
		}

		for i, reading := range readings {
			value := fill
			if v := reading.Metric(metric); v != nil {
				value = *v
			}
			if opts.ClipOutliers {
				if value < low {
					value = low
				} else if value > high {
					value = high
				}
			}
			cell := value
			cleaned[i].SetMetric(metric, &cell)
		}
	}

	dataset := &datasets.Dataset{
		ID:              cleanID,
		Station:         source.Station,
		Name:            source.Name,
		Status:          datasets.StatusClean,
		RowCount:        int64(len(cleaned)),
		DroppedColumns:  dropped,
		SourceDatasetID: &source.ID,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.datasetRepo.Create(ctx, dataset); err != nil {
		return nil, fmt.Errorf("failed to save clean dataset metadata: %w", err)
	}
	if err := s.readingRepo.CreateBatch(ctx, cleaned); err != nil {
		return nil, fmt.Errorf("failed to save cleaned readings: %w", err)
	}

	s.logger.Info("Cleaned dataset ", datasetID, " into ", cleanID,
		" dropping ", len(dropped), " columns")
	return dataset, nil
}

// metadataService implements the MetadataService interface
type metadataService struct {
	datasetRepo datasets.DatasetRepository
	readingRepo measurements.ReadingRepository
	logger      logger.Logger
}

// NewMetadataService creates a new instance of MetadataService
func NewMetadataService(
	datasetRepo datasets.DatasetRepository,
	readingRepo measurements.ReadingRepository,
	logger logger.Logger,
) (datasets.MetadataService, error) {
	return &metadataService{
		datasetRepo: datasetRepo,
		readingRepo: readingRepo,
		logger:      logger,
	}, nil
}

// List retrieves all datasets' metadata considering a query filter when set.
func (s *metadataService) List(ctx context.Context, query *datasets.DatasetQuery) ([]*datasets.Dataset, error) {
	return s.datasetRepo.List(ctx, query)
}

// GetByID retrieves the dataset metadata by ID.
func (s *metadataService) GetByID(ctx context.Context, datasetID string) (*datasets.Dataset, error) {
	return s.datasetRepo.GetByID(ctx, datasetID)
}

// DeleteByID deletes a dataset and all of its readings by ID.
func (s *metadataService) DeleteByID(ctx context.Context, datasetID string) error {
	if _, err := s.datasetRepo.GetByID(ctx, datasetID); err != nil {
		return err
	}

	if err := s.readingRepo.DeleteByDatasetID(ctx, datasetID); err != nil {
		return err
	}
	if err := s.datasetRepo.DeleteByID(ctx, datasetID); err != nil {
		return err
	}

	s.logger.Info("Deleted dataset ", datasetID, " and its readings")
	return nil
}

// exportService implements the ExportService interface
type exportService struct {
	datasetRepo datasets.DatasetRepository
	readingRepo measurements.ReadingRepository
	logger      logger.Logger
}

// NewExportService creates a new instance of ExportService
func NewExportService(
	datasetRepo datasets.DatasetRepository,
	readingRepo measurements.ReadingRepository,
	logger logger.Logger,
) (datasets.ExportService, error) {
	return &exportService{
		datasetRepo: datasetRepo,
		readingRepo: readingRepo,
		logger:      logger,
	}, nil
}

// ExportCSV renders all readings of a dataset as a CSV document.
func (s *exportService) ExportCSV(ctx context.Context, datasetID string) ([]byte, error) {
	if _, err := s.datasetRepo.GetByID(ctx, datasetID); err != nil {
		return nil, err
	}

	query := measurements.NewReadingQuery()
	query.DatasetID = datasetID
	readings, err := s.readingRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := csvio.WriteReadings(&buf, readings); err != nil {
		return nil, err
	}

	s.logger.Info("Exported dataset ", datasetID, " with ", len(readings), " rows")
	return buf.Bytes(), nil
}
