package measurements

import "context"

// ReadingRepository defines the interface for Reading-related operations
type ReadingRepository interface {
	// CreateBatch adds a batch of Readings to the database
	CreateBatch(ctx context.Context, readings []*Reading) error
	// List lists Readings in the database with optional filter
	List(ctx context.Context, query *ReadingQuery) ([]*Reading, error)
	// CountByDatasetID returns the number of Readings of a dataset
	CountByDatasetID(ctx context.Context, datasetID string) (int64, error)
	// DeleteByDatasetID deletes all Readings of a dataset
	DeleteByDatasetID(ctx context.Context, datasetID string) error
}
