package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/persistence/models"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormDatasetRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormDatasetRepository creates a new GORM-based DatasetRepository implementation
func NewGormDatasetRepository(db *gorm.DB, logger logger.Logger) (datasets.DatasetRepository, error) {
	return &gormDatasetRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormDatasetRepository) Create(ctx context.Context, dataset *datasets.Dataset) error {
	// Validate domain entity (business rules)
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DatasetModel{}
	model.FromDomain(dataset)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}

	r.logger.Info("Created dataset metadata with id ", dataset.ID)
	return nil
}

func (r *gormDatasetRepository) List(ctx context.Context, query *datasets.DatasetQuery) ([]*datasets.Dataset, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.DatasetModel
	dbQuery := r.db.WithContext(ctx).Model(&models.DatasetModel{})

	// Apply filters
	if query.Station != "" {
		dbQuery = dbQuery.Where("station = ?", query.Station)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
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
		return nil, fmt.Errorf("failed to fetch datasets: %w", err)
	}

	domainList := make([]*datasets.Dataset, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormDatasetRepository) GetByID(ctx context.Context, datasetID string) (*datasets.Dataset, error) {
	var model models.DatasetModel
	if err := r.db.WithContext(ctx).Where("id = ?", datasetID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("dataset with ID %s not found", datasetID)
		}
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormDatasetRepository) UpdateByID(ctx context.Context, dataset *datasets.Dataset) error {
	if err := dataset.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.DatasetModel{}
	model.FromDomain(dataset)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update dataset: %w", err)
	}

	r.logger.Info("Updated dataset metadata with id ", dataset.ID)
	return nil
}

func (r *gormDatasetRepository) DeleteByID(ctx context.Context, datasetID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", datasetID).Delete(&models.DatasetModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}

	r.logger.Info("Deleted dataset metadata with id ", datasetID)
	return nil
}
