package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/datasets"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/config"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DatasetCommandHandler encapsulates logic for handling dataset operations via CLI.
type DatasetCommandHandler struct {
	services *serviceSet
	logger   logger.Logger
}

// NewDatasetCommandHandler initializes and returns a DatasetCommandHandler instance
// with configured logger and application services.
func NewDatasetCommandHandler() (*DatasetCommandHandler, error) {
	services, err := setupServices()
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &DatasetCommandHandler{
		services: services,
		logger:   services.logger,
	}, nil
}

// IngestCmd loads a station CSV file into the measurement store
func (commandHandler *DatasetCommandHandler) IngestCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag ", err)
		return
	}
	station, err := cmd.Flags().GetString("station")
	if err != nil {
		commandHandler.logger.Error("invalid station flag ", err)
		return
	}

	dataset, err := commandHandler.services.ingestion.IngestFile(cmd.Context(), inputFilePath, station)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Ingested %s as dataset %s (%d rows, %d skipped)\n",
		inputFilePath, dataset.ID, dataset.RowCount, dataset.SkippedRows)
}

// CleanCmd derives a clean dataset from a raw one
func (commandHandler *DatasetCommandHandler) CleanCmd(cmd *cobra.Command, _ []string) {
	datasetID, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}
	missingThreshold, err := cmd.Flags().GetFloat64("missing-threshold")
	if err != nil {
		commandHandler.logger.Error("invalid missing-threshold flag ", err)
		return
	}
	clipOutliers, err := cmd.Flags().GetBool("clip-outliers")
	if err != nil {
		commandHandler.logger.Error("invalid clip-outliers flag ", err)
		return
	}

	defaults := config.DefaultCleaningSettings()
	opts := datasets.CleaningOptions{
		MissingThreshold: missingThreshold,
		ClipOutliers:     clipOutliers,
		LowerPercentile:  defaults.LowerPercentile,
		UpperPercentile:  defaults.UpperPercentile,
	}

	dataset, err := commandHandler.services.cleaning.Clean(cmd.Context(), datasetID, opts)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Cleaned dataset %s into %s\n", datasetID, dataset.ID)
	if len(dataset.DroppedColumns) > 0 {
		fmt.Printf("Dropped columns: %s\n", strings.Join(dataset.DroppedColumns, ", "))
	}
}

// ListCmd prints the dataset metadata of the measurement store
func (commandHandler *DatasetCommandHandler) ListCmd(cmd *cobra.Command, _ []string) {
	station, err := cmd.Flags().GetString("station")
	if err != nil {
		commandHandler.logger.Error("invalid station flag ", err)
		return
	}
	status, err := cmd.Flags().GetString("status")
	if err != nil {
		commandHandler.logger.Error("invalid status flag ", err)
		return
	}

	query := datasets.NewDatasetQuery()
	query.Station = station
	query.Status = status
	if err := query.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	all, err := commandHandler.services.metadata.List(cmd.Context(), query)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("%-36s  %-14s  %-6s  %8s  %s\n", "ID", "STATION", "STATUS", "ROWS", "CREATED")
	for _, dataset := range all {
		fmt.Printf("%-36s  %-14s  %-6s  %8d  %s\n",
			dataset.ID, dataset.Station, dataset.Status, dataset.RowCount,
			dataset.DateTimeCreated.Format("2006-01-02 15:04:05"))
	}
}

// ExportCmd writes all readings of a dataset to a CSV file
func (commandHandler *DatasetCommandHandler) ExportCmd(cmd *cobra.Command, _ []string) {
	datasetID, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}

	data, err := commandHandler.services.export.ExportCSV(cmd.Context(), datasetID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, data, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Exported dataset %s to %s\n", datasetID, outputFilePath)
}

// DeleteCmd deletes a dataset and all of its readings
func (commandHandler *DatasetCommandHandler) DeleteCmd(cmd *cobra.Command, _ []string) {
	datasetID, err := cmd.Flags().GetString("id")
	if err != nil {
		commandHandler.logger.Error("invalid id flag ", err)
		return
	}

	if err := commandHandler.services.metadata.DeleteByID(cmd.Context(), datasetID); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("Deleted dataset %s\n", datasetID)
}

// InitDatasetCommands registers dataset-related commands
func InitDatasetCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatasetCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create dataset command handler %w", err)
	}

	var ingestCmd = &cobra.Command{
		Use:   "ingest",
		Short: "Ingest a station CSV file as a raw dataset",
		Run:   handler.IngestCmd,
	}
	ingestCmd.Flags().StringP("input-file", "", "", "Path to the station CSV file")
	ingestCmd.Flags().StringP("station", "", "", "Station name, e.g. Benin")
	rootCmd.AddCommand(ingestCmd)

	var cleanCmd = &cobra.Command{
		Use:   "clean",
		Short: "Derive a clean dataset from a raw one",
		Run:   handler.CleanCmd,
	}
	cleanCmd.Flags().StringP("id", "", "", "Raw dataset ID")
	cleanCmd.Flags().Float64P("missing-threshold", "", config.DefaultCleaningSettings().MissingThreshold,
		"Maximum tolerated fraction of missing cells per column")
	cleanCmd.Flags().BoolP("clip-outliers", "", false, "Clip values to percentile bounds")
	rootCmd.AddCommand(cleanCmd)

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List dataset metadata",
		Run:   handler.ListCmd,
	}
	listCmd.Flags().StringP("station", "", "", "Filter by station name")
	listCmd.Flags().StringP("status", "", "", "Filter by status (raw or clean)")
	rootCmd.AddCommand(listCmd)

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export a dataset to a CSV file",
		Run:   handler.ExportCmd,
	}
	exportCmd.Flags().StringP("id", "", "", "Dataset ID")
	exportCmd.Flags().StringP("output-file", "", "", "Path to the output CSV file")
	rootCmd.AddCommand(exportCmd)

	var deleteCmd = &cobra.Command{
		Use:   "delete",
		Short: "Delete a dataset and its readings",
		Run:   handler.DeleteCmd,
	}
	deleteCmd.Flags().StringP("id", "", "", "Dataset ID")
	rootCmd.AddCommand(deleteCmd)

	return nil
}
