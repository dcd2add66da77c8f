package commands

import (
	"fmt"
	"os"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/app"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/persistence"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/persistence/models"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/config"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// databaseSettingsFromEnv resolves the sqlite database the CLI works against.
// SOLAR_DB overrides the default file in the working directory.
func databaseSettingsFromEnv() config.DatabaseSettings {
	dsn := os.Getenv("SOLAR_DB")
	if dsn == "" {
		dsn = "solar.db"
	}
	return config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  dsn,
	}
}

// serviceSet bundles the application services the CLI commands operate on.
type serviceSet struct {
	ingestion   datasets.IngestionService
	cleaning    datasets.CleaningService
	metadata    datasets.MetadataService
	export      datasets.ExportService
	summary     analysis.SummaryService
	ranking     analysis.RankingService
	correlation analysis.CorrelationService
	timeSeries  analysis.TimeSeriesService
	logger      logger.Logger
}

// setupServices opens the database, runs migrations and wires all
// application services.
func setupServices() (*serviceSet, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := persistence.NewDBConnection(databaseSettingsFromEnv())
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := db.AutoMigrate(&models.DatasetModel{}, &models.ReadingModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	datasetRepo, err := persistence.NewGormDatasetRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset repository: %w", err)
	}

	readingRepo, err := persistence.NewGormReadingRepository(db, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create reading repository: %w", err)
	}

	ingestionService, err := app.NewIngestionService(datasetRepo, readingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingestion service: %w", err)
	}

	cleaningService, err := app.NewCleaningService(datasetRepo, readingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create cleaning service: %w", err)
	}

	metadataService, err := app.NewMetadataService(datasetRepo, readingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata service: %w", err)
	}

	exportService, err := app.NewExportService(datasetRepo, readingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %w", err)
	}

	summaryService, err := app.NewSummaryService(datasetRepo, readingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %w", err)
	}

	rankingService, err := app.NewRankingService(datasetRepo, readingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create ranking service: %w", err)
	}

	correlationService, err := app.NewCorrelationService(datasetRepo, readingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create correlation service: %w", err)
	}

	timeSeriesService, err := app.NewTimeSeriesService(datasetRepo, readingRepo, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create time series service: %w", err)
	}

	return &serviceSet{
		ingestion:   ingestionService,
		cleaning:    cleaningService,
		metadata:    metadataService,
		export:      exportService,
		summary:     summaryService,
		ranking:     rankingService,
		correlation: correlationService,
		timeSeries:  timeSeriesService,
		logger:      loggerInstance,
	}, nil
}
