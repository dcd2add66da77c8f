//go:build unit
// +build unit

package datasets

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDataset() *Dataset {
	return &Dataset{
		ID:              uuid.New().String(),
		Station:         "Togo",
		Name:            "togo_raw.csv",
		Status:          StatusRaw,
		RowCount:        525600,
		DateTimeCreated: time.Now().UTC(),
	}
}

func TestDatasetValidation(t *testing.T) {
	t.Run("ValidRaw", func(t *testing.T) {
		require.NoError(t, validDataset().Validate())
	})

	t.Run("ValidClean", func(t *testing.T) {
		d := validDataset()
		source := uuid.New().String()
		d.Status = StatusClean
		d.SourceDatasetID = &source
		d.DroppedColumns = []string{"DHI"}
		require.NoError(t, d.Validate())
	})

	t.Run("CleanWithoutSource", func(t *testing.T) {
		d := validDataset()
		d.Status = StatusClean
		assert.Error(t, d.Validate())
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		d := validDataset()
		d.Status = "dirty"
		assert.Error(t, d.Validate())
	})

	t.Run("MissingStation", func(t *testing.T) {
		d := validDataset()
		d.Station = ""
		assert.Error(t, d.Validate())
	})

	t.Run("NegativeRowCount", func(t *testing.T) {
		d := validDataset()
		d.RowCount = -1
		assert.Error(t, d.Validate())
	})
}

func TestDatasetQueryValidation(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		q := NewDatasetQuery()
		assert.NoError(t, q.Validate())
		assert.Equal(t, "date_time_created", q.SortBy)
		assert.Equal(t, "desc", q.SortOrder)
	})

	t.Run("UnknownStatusFilter", func(t *testing.T) {
		q := NewDatasetQuery()
		q.Status = "archived"
		assert.Error(t, q.Validate())
	})
}

func TestCleaningOptionsValidation(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		opts := &CleaningOptions{MissingThreshold: 0.05, ClipOutliers: true, LowerPercentile: 1, UpperPercentile: 99}
		assert.NoError(t, opts.Validate())
	})

	t.Run("ThresholdAboveOne", func(t *testing.T) {
		opts := &CleaningOptions{MissingThreshold: 1.3}
		assert.Error(t, opts.Validate())
	})

	t.Run("InvertedPercentiles", func(t *testing.T) {
		opts := &CleaningOptions{MissingThreshold: 0.05, ClipOutliers: true, LowerPercentile: 99, UpperPercentile: 1}
		assert.Error(t, opts.Validate())
	})

	t.Run("PercentilesIgnoredWithoutClipping", func(t *testing.T) {
		opts := &CleaningOptions{MissingThreshold: 0.05, LowerPercentile: 99, UpperPercentile: 1}
		assert.NoError(t, opts.Validate())
	})
}
