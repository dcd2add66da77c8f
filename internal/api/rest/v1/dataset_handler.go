package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/config"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// DatasetHandler defines the interface for handling dataset-related operations
type DatasetHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Clean(ctx *gin.Context)
	Export(ctx *gin.Context)
}

// datasetHandler struct holds the services
type datasetHandler struct {
	ingestionService datasets.IngestionService
	cleaningService  datasets.CleaningService
	metadataService  datasets.MetadataService
	exportService    datasets.ExportService
	cleaningDefaults config.CleaningSettings
}

// NewDatasetHandler creates a new DatasetHandler
func NewDatasetHandler(
	ingestionService datasets.IngestionService,
	cleaningService datasets.CleaningService,
	metadataService datasets.MetadataService,
	exportService datasets.ExportService,
	cleaningDefaults config.CleaningSettings,
) DatasetHandler {
	return &datasetHandler{
		ingestionService: ingestionService,
		cleaningService:  cleaningService,
		metadataService:  metadataService,
		exportService:    exportService,
		cleaningDefaults: cleaningDefaults,
	}
}

// Upload ingests one or more station CSV files as raw datasets
func (handler *datasetHandler) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid form data"})
		return
	}

	var station string
	if stations := form.Value["station"]; len(stations) > 0 {
		station = stations[0]
	}
	if station == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "missing form field 'station'"})
		return
	}

	created, err := handler.ingestionService.Ingest(ctx, form, station)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error ingesting datasets: %v", err)})
		return
	}

	responses := make([]DatasetResponse, len(created))
	for i, dataset := range created {
		responses[i] = toDatasetResponse(dataset)
	}
	ctx.JSON(http.StatusCreated, responses)
}

// List fetches dataset metadata optionally with query parameters
func (handler *datasetHandler) List(ctx *gin.Context) {
	query := datasets.NewDatasetQuery()

	if station := ctx.Query("station"); len(station) > 0 {
		query.Station = station
	}

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	all, err := handler.metadataService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("list query failed: %v", err)})
		return
	}

	responses := []DatasetResponse{}
	for _, dataset := range all {
		responses = append(responses, toDatasetResponse(dataset))
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetByID fetches dataset metadata by ID
func (handler *datasetHandler) GetByID(ctx *gin.Context) {
	datasetID := ctx.Param("id")

	dataset, err := handler.metadataService.GetByID(ctx, datasetID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("dataset with id %s not found", datasetID)})
		return
	}

	ctx.JSON(http.StatusOK, toDatasetResponse(dataset))
}

// DeleteByID deletes a dataset and its readings by ID
func (handler *datasetHandler) DeleteByID(ctx *gin.Context) {
	datasetID := ctx.Param("id")

	if err := handler.metadataService.DeleteByID(ctx, datasetID); err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("dataset with id %s not found", datasetID)})
		return
	}

	ctx.JSON(http.StatusNoContent, InfoResponse{Message: fmt.Sprintf("deleted dataset with id %s", datasetID)})
}

// Clean derives a clean dataset from a raw one
func (handler *datasetHandler) Clean(ctx *gin.Context) {
	datasetID := ctx.Param("id")

	var request CleanRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body"})
			return
		}
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err)})
		return
	}

	opts := datasets.CleaningOptions{
		MissingThreshold: handler.cleaningDefaults.MissingThreshold,
		ClipOutliers:     handler.cleaningDefaults.ClipOutliers,
		LowerPercentile:  handler.cleaningDefaults.LowerPercentile,
		UpperPercentile:  handler.cleaningDefaults.UpperPercentile,
	}
	if request.MissingThreshold != nil {
		opts.MissingThreshold = *request.MissingThreshold
	}
	if request.ClipOutliers != nil {
		opts.ClipOutliers = *request.ClipOutliers
	}
	if request.LowerPercentile != nil {
		opts.LowerPercentile = *request.LowerPercentile
	}
	if request.UpperPercentile != nil {
		opts.UpperPercentile = *request.UpperPercentile
	}

	dataset, err := handler.cleaningService.Clean(ctx, datasetID, opts)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error cleaning dataset %s: %v", datasetID, err)})
		return
	}

	ctx.JSON(http.StatusCreated, toDatasetResponse(dataset))
}

// Export downloads all readings of a dataset as a CSV file
func (handler *datasetHandler) Export(ctx *gin.Context) {
	datasetID := ctx.Param("id")

	dataset, err := handler.metadataService.GetByID(ctx, datasetID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("dataset with id %s not found", datasetID)})
		return
	}

	data, err := handler.exportService.ExportCSV(ctx, datasetID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("could not export dataset %s: %v", datasetID, err)})
		return
	}

	filename := fmt.Sprintf("%s_%s_%s.csv", dataset.Station, dataset.Status, time.Now().UTC().Format("20060102"))
	ctx.Writer.Header().Set("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
