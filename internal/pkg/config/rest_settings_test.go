//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
cleaning:
  missing_threshold: 0.05
  clip_outliers: true
  lower_percentile: 1
  upper_percentile: 99
`)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, SqliteDbType, cfg.Database.Type)
		assert.True(t, cfg.Cleaning.ClipOutliers)
		assert.Equal(t, 0.05, cfg.Cleaning.MissingThreshold)
	})

	t.Run("CleaningDefaultsApply", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
`)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DefaultCleaningSettings(), cfg.Cleaning)
	})

	t.Run("InvalidPort", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "not-a-port"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("InvertedPercentiles", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: ":memory:"
cleaning:
  missing_threshold: 0.1
  lower_percentile: 99
  upper_percentile: 1
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
