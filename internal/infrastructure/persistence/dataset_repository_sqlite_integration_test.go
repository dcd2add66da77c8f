//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDataset(station, status string) *datasets.Dataset {
	d := &datasets.Dataset{
		ID:              uuid.New().String(),
		Station:         station,
		Name:            station + "_raw.csv",
		Status:          status,
		RowCount:        100,
		DateTimeCreated: time.Now().UTC(),
	}
	if status == datasets.StatusClean {
		source := uuid.New().String()
		d.SourceDatasetID = &source
	}
	return d
}

func TestDatasetSqliteRepository_Create(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	dataset := newTestDataset("Benin", datasets.StatusRaw)
	require.NoError(t, tc.DatasetRepo.Create(ctx, dataset))

	fetched, err := tc.DatasetRepo.GetByID(ctx, dataset.ID)
	require.NoError(t, err)
	assert.Equal(t, dataset.Station, fetched.Station)
	assert.Equal(t, dataset.Status, fetched.Status)
}

func TestDatasetSqliteRepository_CreateInvalid(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	dataset := newTestDataset("Benin", datasets.StatusRaw)
	dataset.ID = "not-a-uuid"
	assert.Error(t, tc.DatasetRepo.Create(ctx, dataset))
}

func TestDatasetSqliteRepository_List(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	require.NoError(t, tc.DatasetRepo.Create(ctx, newTestDataset("Benin", datasets.StatusRaw)))
	require.NoError(t, tc.DatasetRepo.Create(ctx, newTestDataset("Togo", datasets.StatusRaw)))
	require.NoError(t, tc.DatasetRepo.Create(ctx, newTestDataset("Togo", datasets.StatusClean)))

	t.Run("NoFilter", func(t *testing.T) {
		all, err := tc.DatasetRepo.List(ctx, datasets.NewDatasetQuery())
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("FilterByStation", func(t *testing.T) {
		query := datasets.NewDatasetQuery()
		query.Station = "Togo"
		togo, err := tc.DatasetRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, togo, 2)
	})

	t.Run("FilterByStatus", func(t *testing.T) {
		query := datasets.NewDatasetQuery()
		query.Status = datasets.StatusClean
		clean, err := tc.DatasetRepo.List(ctx, query)
		require.NoError(t, err)
		require.Len(t, clean, 1)
		assert.Equal(t, "Togo", clean[0].Station)
	})

	t.Run("Pagination", func(t *testing.T) {
		query := datasets.NewDatasetQuery()
		query.Limit = 2
		page, err := tc.DatasetRepo.List(ctx, query)
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})
}

func TestDatasetSqliteRepository_Update(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	dataset := newTestDataset("Sierra Leone", datasets.StatusRaw)
	require.NoError(t, tc.DatasetRepo.Create(ctx, dataset))

	dataset.RowCount = 200
	require.NoError(t, tc.DatasetRepo.UpdateByID(ctx, dataset))

	fetched, err := tc.DatasetRepo.GetByID(ctx, dataset.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(200), fetched.RowCount)
}

func TestDatasetSqliteRepository_Delete(t *testing.T) {
	tc := SetupTestDB(t)
	ctx := context.Background()

	dataset := newTestDataset("Benin", datasets.StatusRaw)
	require.NoError(t, tc.DatasetRepo.Create(ctx, dataset))
	require.NoError(t, tc.DatasetRepo.DeleteByID(ctx, dataset.ID))

	_, err := tc.DatasetRepo.GetByID(ctx, dataset.ID)
	assert.Error(t, err)
}
