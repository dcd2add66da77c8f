// cmd/solar-data-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Mihret-Akalu/solar-challenge-week0/internal/api/rest/v1"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/app"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/persistence"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/infrastructure/persistence/models"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/config"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-api.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application services
	services, err := initializeServices(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application services
type appServices struct {
	ingestion   datasets.IngestionService
	cleaning    datasets.CleaningService
	metadata    datasets.MetadataService
	export      datasets.ExportService
	summary     analysis.SummaryService
	ranking     analysis.RankingService
	correlation analysis.CorrelationService
	timeSeries  analysis.TimeSeriesService
}

// initializeServices sets up the database, repositories and application services
func initializeServices(cfg *config.RestConfig, log logger.Logger) (*appServices, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.DatasetModel{}, &models.ReadingModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	datasetRepo, err := persistence.NewGormDatasetRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset repository: %w", err)
	}

	readingRepo, err := persistence.NewGormReadingRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create reading repository: %w", err)
	}

	// Initialize services
	ingestionService, err := app.NewIngestionService(datasetRepo, readingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ingestion service: %w", err)
	}

	cleaningService, err := app.NewCleaningService(datasetRepo, readingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cleaning service: %w", err)
	}

	metadataService, err := app.NewMetadataService(datasetRepo, readingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata service: %w", err)
	}

	exportService, err := app.NewExportService(datasetRepo, readingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %w", err)
	}

	summaryService, err := app.NewSummaryService(datasetRepo, readingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %w", err)
	}

	rankingService, err := app.NewRankingService(datasetRepo, readingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create ranking service: %w", err)
	}

	correlationService, err := app.NewCorrelationService(datasetRepo, readingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create correlation service: %w", err)
	}

	timeSeriesService, err := app.NewTimeSeriesService(datasetRepo, readingRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create time series service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		ingestion:   ingestionService,
		cleaning:    cleaningService,
		metadata:    metadataService,
		export:      exportService,
		summary:     summaryService,
		ranking:     rankingService,
		correlation: correlationService,
		timeSeries:  timeSeriesService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	v1.SetupRoutes(r,
		services.ingestion,
		services.cleaning,
		services.metadata,
		services.export,
		services.summary,
		services.ranking,
		services.correlation,
		services.timeSeries,
		cfg.Cleaning,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
