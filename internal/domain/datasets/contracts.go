package datasets

import (
	"context"
	"mime/multipart"
)

// IngestionService defines methods for loading station CSV files into the store.
type IngestionService interface {
	// Ingest parses every CSV file of a multipart form and persists one raw
	// dataset per file for the given station. It returns the created dataset
	// metadata and any error encountered during parsing or persistence.
	Ingest(ctx context.Context, form *multipart.Form, station string) ([]*Dataset, error)

	// IngestFile parses a CSV file from the local filesystem and persists a
	// raw dataset for the given station.
	IngestFile(ctx context.Context, path string, station string) (*Dataset, error)
}

// CleaningService derives a clean dataset from a raw one.
type CleaningService interface {
	// Clean drops metric columns whose missing fraction exceeds the
	// threshold, imputes the remaining gaps and optionally clips outliers.
	// It persists and returns a new dataset with Status clean; the source
	// dataset is never modified.
	Clean(ctx context.Context, datasetID string, opts CleaningOptions) (*Dataset, error)
}

// MetadataService defines methods for retrieving and deleting dataset metadata.
type MetadataService interface {
	// List retrieves all datasets' metadata considering a query filter when set.
	List(ctx context.Context, query *DatasetQuery) ([]*Dataset, error)

	// GetByID retrieves the dataset metadata by ID.
	GetByID(ctx context.Context, datasetID string) (*Dataset, error)

	// DeleteByID deletes a dataset and all of its readings by ID.
	DeleteByID(ctx context.Context, datasetID string) error
}

// ExportService serializes a dataset back to CSV.
type ExportService interface {
	// ExportCSV renders all readings of a dataset as a CSV document.
	ExportCSV(ctx context.Context, datasetID string) ([]byte, error)
}

// DatasetRepository defines the interface for Dataset-related operations
type DatasetRepository interface {
	// Create adds a new Dataset to the database
	Create(ctx context.Context, dataset *Dataset) error
	// List lists Datasets in the database with optional filter
	List(ctx context.Context, query *DatasetQuery) ([]*Dataset, error)
	// GetByID retrieves a Dataset from the database by ID
	GetByID(ctx context.Context, datasetID string) (*Dataset, error)
	// UpdateByID updates a Dataset in the database by ID
	UpdateByID(ctx context.Context, dataset *Dataset) error
	// DeleteByID deletes a Dataset in the database by ID
	DeleteByID(ctx context.Context, datasetID string) error
}
