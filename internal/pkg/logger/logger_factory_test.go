//go:build unit
// +build unit

package logger

import (
	"path/filepath"
	"testing"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("ConsoleLogger", func(t *testing.T) {
		settings := &config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			LogType:  config.LogTypeConsole,
		}

		log, err := newLogger(settings)
		require.NoError(t, err)
		assert.IsType(t, &ConsoleLogger{}, log)
	})

	t.Run("FileLogger", func(t *testing.T) {
		settings := &config.LoggerSettings{
			LogLevel:   config.LogLevelDebug,
			LogType:    config.LogTypeFile,
			FilePath:   filepath.Join(t.TempDir(), "solar-data.log"),
			MaxSize:    5,
			MaxBackups: 2,
			MaxAge:     7,
		}

		log, err := newLogger(settings)
		require.NoError(t, err)
		assert.IsType(t, &FileLogger{}, log)
	})

	t.Run("InvalidSettings", func(t *testing.T) {
		settings := &config.LoggerSettings{
			LogLevel: "verbose",
			LogType:  config.LogTypeConsole,
		}

		_, err := newLogger(settings)
		assert.Error(t, err)
	})
}

func TestInitAndGetLogger(t *testing.T) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	require.NoError(t, InitLogger(settings))

	log, err := GetLogger()
	require.NoError(t, err)
	assert.NotNil(t, log)

	// Logging must not panic.
	log.Info("solar data service logger ready")
	log.Warn("sample warning")
	log.Error("sample error")
}
