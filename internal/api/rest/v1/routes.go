package v1

import (
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	ingestionService datasets.IngestionService,
	cleaningService datasets.CleaningService,
	metadataService datasets.MetadataService,
	exportService datasets.ExportService,
	summaryService analysis.SummaryService,
	rankingService analysis.RankingService,
	correlationService analysis.CorrelationService,
	timeSeriesService analysis.TimeSeriesService,
	cleaningDefaults config.CleaningSettings) {

	v1 := r.Group(BasePath) // lookup in version file

	// Dataset Routes
	datasetHandler := NewDatasetHandler(ingestionService, cleaningService, metadataService, exportService, cleaningDefaults)
	v1.POST("/datasets", datasetHandler.Upload)
	v1.GET("/datasets", datasetHandler.List)
	v1.GET("/datasets/:id", datasetHandler.GetByID)
	v1.DELETE("/datasets/:id", datasetHandler.DeleteByID)
	v1.POST("/datasets/:id/clean", datasetHandler.Clean)
	v1.GET("/datasets/:id/export", datasetHandler.Export)

	// Analysis Routes
	analysisHandler := NewAnalysisHandler(summaryService, rankingService, correlationService, timeSeriesService)
	v1.GET("/analysis/summary", analysisHandler.Summary)
	v1.GET("/analysis/rankings", analysisHandler.Rankings)
	v1.GET("/analysis/correlations", analysisHandler.Correlations)
	v1.GET("/analysis/timeseries", analysisHandler.TimeSeries)

	// Plot Routes
	plotHandler := NewPlotHandler(summaryService, correlationService, timeSeriesService)
	v1.GET("/plots/comparison", plotHandler.Comparison)
	v1.GET("/plots/scatter", plotHandler.Scatter)
	v1.GET("/plots/heatmap", plotHandler.Heatmap)
	v1.GET("/plots/timeseries", plotHandler.TimeSeries)
}
