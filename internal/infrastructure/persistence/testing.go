//go:build integration
// +build integration

package persistence

import (
	"testing"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/measurements"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/persistence/models"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/config"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	DatasetRepo datasets.DatasetRepository
	ReadingRepo measurements.ReadingRepository
}

// SetupTestDB initializes an in-memory test database with migrated schema
// and both repositories.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	settings := config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  ":memory:",
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err)

	err = db.AutoMigrate(&models.DatasetModel{}, &models.ReadingModel{})
	require.NoError(t, err)

	log := testutil.SetupTestLogger(t)

	datasetRepo, err := NewGormDatasetRepository(db, log)
	require.NoError(t, err)

	readingRepo, err := NewGormReadingRepository(db, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := CloseDB(db); err != nil {
			t.Logf("failed to close test database: %v", err)
		}
	})

	return &TestContext{
		DB:          db,
		DatasetRepo: datasetRepo,
		ReadingRepo: readingRepo,
	}
}
