// Package datasets defines the dataset entity describing one ingested CSV
// file per station, plus the contracts for ingestion, cleaning, export and
// metadata management.
package datasets

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Dataset status constants
const (
	StatusRaw   = "raw"
	StatusClean = "clean"
)

// Dataset entity. A raw dataset is created by ingestion; cleaning derives a
// new dataset with Status clean and leaves the raw one untouched.
type Dataset struct {
	ID              string    `validate:"required,uuid4"`
	Station         string    `validate:"required,min=1,max=100"`
	Name            string    `validate:"required,min=1,max=255"`
	Status          string    `validate:"required,oneof=raw clean"`
	RowCount        int64     `validate:"gte=0"`
	SkippedRows     int64     `validate:"gte=0"`
	DroppedColumns  []string  `validate:"-"`
	SourceDatasetID *string   `validate:"omitempty,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Dataset struct
func (d *Dataset) Validate() error {
	validate := validator.New()

	err := validate.Struct(d)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	if d.Status == StatusClean && d.SourceDatasetID == nil {
		return fmt.Errorf("clean dataset requires a source dataset id")
	}

	return nil
}

// DatasetQuery carries filter, sort and pagination options for listing
// datasets.
type DatasetQuery struct {
	Station   string `validate:"omitempty,min=1,max=100"`
	Status    string `validate:"omitempty,oneof=raw clean"`
	Limit     int    `validate:"gte=0"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created station name row_count"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewDatasetQuery creates a query sorted by creation time, newest first.
func NewDatasetQuery() *DatasetQuery {
	return &DatasetQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating DatasetQuery struct
func (q *DatasetQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for DatasetQuery: %w", err)
	}

	return nil
}

// CleaningOptions parameterizes one cleaning run.
type CleaningOptions struct {
	// MissingThreshold is the maximum tolerated fraction of missing cells
	// per metric column; columns above it are dropped entirely.
	MissingThreshold float64 `validate:"gte=0,lte=1"`
	ClipOutliers     bool
	LowerPercentile  float64 `validate:"gte=0,lte=100"`
	UpperPercentile  float64 `validate:"gte=0,lte=100"`
}

// Validate for validating CleaningOptions struct
func (o *CleaningOptions) Validate() error {
	validate := validator.New()

	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("validation failed for CleaningOptions: %w", err)
	}
	if o.ClipOutliers && o.LowerPercentile >= o.UpperPercentile {
		return fmt.Errorf("lower percentile must be below upper percentile")
	}

	return nil
}
