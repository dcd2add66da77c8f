package persistence

import (
	"context"
	"fmt"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/persistence/models"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/logger"

	"gorm.io/gorm"
)

// readingInsertBatchSize bounds the size of a single INSERT when persisting
// a parsed CSV file; station files run to hundreds of thousands of rows.
const readingInsertBatchSize = 500

type gormReadingRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReadingRepository creates a new GORM-based ReadingRepository implementation
func NewGormReadingRepository(db *gorm.DB, logger logger.Logger) (measurements.ReadingRepository, error) {
	return &gormReadingRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReadingRepository) CreateBatch(ctx context.Context, readings []*measurements.Reading) error {
	if len(readings) == 0 {
		return nil
	}

	modelList := make([]*models.ReadingModel, len(readings))
	for i, reading := range readings {
		if err := reading.Validate(); err != nil {
			return fmt.Errorf("validation error at row %d: %w", i, err)
		}
		model := &models.ReadingModel{}
		model.FromDomain(reading)
		modelList[i] = model
	}

	if err := r.db.WithContext(ctx).CreateInBatches(modelList, readingInsertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create readings: %w", err)
	}

	r.logger.Info("Persisted ", len(readings), " readings for dataset ", readings[0].DatasetID)
	return nil
}

func (r *gormReadingRepository) List(ctx context.Context, query *measurements.ReadingQuery) ([]*measurements.Reading, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ReadingModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ReadingModel{})

	// Apply filters
	if query.DatasetID != "" {
		dbQuery = dbQuery.Where("dataset_id = ?", query.DatasetID)
	}
	if query.Station != "" {
		dbQuery = dbQuery.Where("station = ?", query.Station)
	}
	if !query.From.IsZero() {
		dbQuery = dbQuery.Where("timestamp >= ?", query.From)
	}
	if !query.To.IsZero() {
		dbQuery = dbQuery.Where("timestamp <= ?", query.To)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch readings: %w", err)
	}

	domainList := make([]*measurements.Reading, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormReadingRepository) CountByDatasetID(ctx context.Context, datasetID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ReadingModel{}).Where("dataset_id = ?", datasetID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count readings: %w", err)
	}
	return count, nil
}

func (r *gormReadingRepository) DeleteByDatasetID(ctx context.Context, datasetID string) error {
	if err := r.db.WithContext(ctx).Where("dataset_id = ?", datasetID).Delete(&models.ReadingModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete readings: %w", err)
	}

	r.logger.Info("Deleted readings of dataset ", datasetID)
	return nil
}
