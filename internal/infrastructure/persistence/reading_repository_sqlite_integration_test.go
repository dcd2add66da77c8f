//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReadings(datasetID, station string, n int) []*measurements.Reading {
	start := time.Date(2021, 8, 9, 0, 0, 0, 0, time.UTC)
	readings := make([]*measurements.Reading, n)
	for i := range readings {
		ghi := float64(700 + 10*i)
		readings[i] = &measurements.Reading{
			ID:        uuid.New().String(),
			DatasetID: datasetID,
			Station:   station,
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			GHI:       &ghi,
		}
	}
	return readings
}

func TestReadingSqliteRepository_CreateBatchAndCount(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()
	datasetID := uuid.New().String()

	require.NoError(t, tc.ReadingRepo.CreateBatch(ctx, newTestReadings(datasetID, "Benin", 24)))

	count, err := tc.ReadingRepo.CountByDatasetID(ctx, datasetID)
	require.NoError(t, err)
	assert.Equal(t, int64(24), count)
}

func TestReadingSqliteRepository_CreateBatchEmpty(t *testing.T) {
	tc := SetupTestDB(t)

	assert.NoError(t, tc.ReadingRepo.CreateBatch(context.Background(), nil))
}

func TestReadingSqliteRepository_CreateBatchInvalidRow(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	readings := newTestReadings(uuid.New().String(), "Benin", 2)
	readings[1].Station = ""
	assert.Error(t, tc.ReadingRepo.CreateBatch(ctx, readings))
}

func TestReadingSqliteRepository_List(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	beninID := uuid.New().String()
	togoID := uuid.New().String()
	require.NoError(t, tc.ReadingRepo.CreateBatch(ctx, newTestReadings(beninID, "Benin", 12)))
	require.NoError(t, tc.ReadingRepo.CreateBatch(ctx, newTestReadings(togoID, "Togo", 6)))

	t.Run("FilterByDataset", func(t *testing.T) {
		query := measurements.NewReadingQuery()
		query.DatasetID = beninID
		readings, err := tc.ReadingRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, readings, 12)
	})

	t.Run("FilterByStation", func(t *testing.T) {
		query := measurements.NewReadingQuery()
		query.Station = "Togo"
		readings, err := tc.ReadingRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, readings, 6)
	})

	t.Run("TimeWindow", func(t *testing.T) {
		query := measurements.NewReadingQuery()
		query.DatasetID = beninID
		query.From = time.Date(2021, 8, 9, 3, 0, 0, 0, time.UTC)
		query.To = time.Date(2021, 8, 9, 6, 0, 0, 0, time.UTC)
		readings, err := tc.ReadingRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, readings, 4)
	})

	t.Run("SortedByTimestamp", func(t *testing.T) {
		query := measurements.NewReadingQuery()
		query.DatasetID = beninID
		readings, err := tc.ReadingRepo.List(ctx, query)
		require.NoError(t, err)
		for i := 1; i < len(readings); i++ {
			assert.True(t, !readings[i].Timestamp.Before(readings[i-1].Timestamp))
		}
	})

	t.Run("LimitAndOffset", func(t *testing.T) {
		query := measurements.NewReadingQuery()
		query.DatasetID = beninID
		query.Limit = 5
		query.Offset = 10
		readings, err := tc.ReadingRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, readings, 2)
	})
}

func TestReadingSqliteRepository_DeleteByDatasetID(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()
	datasetID := uuid.New().String()

	require.NoError(t, tc.ReadingRepo.CreateBatch(ctx, newTestReadings(datasetID, "Benin", 5)))
	require.NoError(t, tc.ReadingRepo.DeleteByDatasetID(ctx, datasetID))

	count, err := tc.ReadingRepo.CountByDatasetID(ctx, datasetID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
