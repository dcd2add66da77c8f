package commands

import (
	"fmt"

	"github.com/Mihret-Akalu/solar-challenge-week0/internal/domain/analysis"
	"github.com/Mihret-Akalu/solar-challenge-week0/internal/pkg/logger"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

// AnalysisCommandHandler encapsulates logic for handling analysis queries via CLI.
type AnalysisCommandHandler struct {
	services *serviceSet
	logger   logger.Logger
}

// NewAnalysisCommandHandler initializes and returns an AnalysisCommandHandler instance
// with configured logger and application services.
func NewAnalysisCommandHandler() (*AnalysisCommandHandler, error) {
	services, err := setupServices()
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &AnalysisCommandHandler{
		services: services,
		logger:   services.logger,
	}, nil
}

// SummaryCmd prints descriptive statistics of one metric per station
func (commandHandler *AnalysisCommandHandler) SummaryCmd(cmd *cobra.Command, _ []string) {
	metric, err := cmd.Flags().GetString("metric")
	if err != nil {
		commandHandler.logger.Error("invalid metric flag ", err)
		return
	}
	stations, err := cmd.Flags().GetStringSlice("stations")
	if err != nil {
		commandHandler.logger.Error("invalid stations flag ", err)
		return
	}

	summaries, err := commandHandler.services.summary.Summaries(cmd.Context(), metric, stations)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("%-14s  %10s  %10s  %10s  %10s  %10s  %8s\n",
		"STATION", "MEAN", "MEDIAN", "STD", "MIN", "MAX", "COUNT")
	for _, summary := range summaries {
		fmt.Printf("%-14s  %10.2f  %10.2f  %10.2f  %10.2f  %10.2f  %8d\n",
			summary.Station, summary.Mean, summary.Median, summary.Std,
			summary.Min, summary.Max, summary.Count)
	}
}

// RankCmd prints the station ranking report for one metric
func (commandHandler *AnalysisCommandHandler) RankCmd(cmd *cobra.Command, _ []string) {
	metric, err := cmd.Flags().GetString("metric")
	if err != nil {
		commandHandler.logger.Error("invalid metric flag ", err)
		return
	}

	report, err := commandHandler.services.ranking.Rank(cmd.Context(), metric)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("%-14s  %10s  %10s  %9s  %9s  %7s\n",
		"STATION", "AVERAGE", "MEDIAN", "POT.RANK", "STB.RANK", "SCORE")
	for _, ranking := range report.Rankings {
		fmt.Printf("%-14s  %10.2f  %10.2f  %9d  %9d  %7.1f\n",
			ranking.Station, ranking.Average, ranking.Median,
			ranking.PotentialRank, ranking.StabilityRank, ranking.OverallScore)
	}
	fmt.Printf("\nRecommended station for %s: %s\n", report.Metric, report.Recommended)
}

// CorrelateCmd prints the pairwise correlation matrix of one station
func (commandHandler *AnalysisCommandHandler) CorrelateCmd(cmd *cobra.Command, _ []string) {
	station, err := cmd.Flags().GetString("station")
	if err != nil {
		commandHandler.logger.Error("invalid station flag ", err)
		return
	}

	matrix, err := commandHandler.services.correlation.Matrix(cmd.Context(), station)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("%-6s", "")
	for _, metric := range matrix.Metrics {
		fmt.Printf("  %6s", metric)
	}
	fmt.Println()
	for i, metric := range matrix.Metrics {
		fmt.Printf("%-6s", metric)
		for j := range matrix.Metrics {
			fmt.Printf("  %6.2f", matrix.Values[i][j])
		}
		fmt.Println()
	}
}

// ChartCmd draws a terminal line chart of a resampled series
func (commandHandler *AnalysisCommandHandler) ChartCmd(cmd *cobra.Command, _ []string) {
	station, err := cmd.Flags().GetString("station")
	if err != nil {
		commandHandler.logger.Error("invalid station flag ", err)
		return
	}
	metric, err := cmd.Flags().GetString("metric")
	if err != nil {
		commandHandler.logger.Error("invalid metric flag ", err)
		return
	}
	resolutionFlag, err := cmd.Flags().GetString("resolution")
	if err != nil {
		commandHandler.logger.Error("invalid resolution flag ", err)
		return
	}

	resolution, err := analysis.ParseResolution(resolutionFlag)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	points, err := commandHandler.services.timeSeries.Series(cmd.Context(), station, metric, resolution)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if len(points) == 0 {
		commandHandler.logger.Warn("no data for ", metric, " at ", station)
		return
	}

	values := make([]float64, len(points))
	for i, point := range points {
		values[i] = point.Value
	}

	caption := fmt.Sprintf("%s at %s (%s, %s to %s)",
		metric, station, resolution,
		points[0].Timestamp.Format("2006-01-02"),
		points[len(points)-1].Timestamp.Format("2006-01-02"))
	graph := asciigraph.Plot(values,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(caption))
	fmt.Println(graph)
}

// InitAnalysisCommands registers analysis-related commands
func InitAnalysisCommands(rootCmd *cobra.Command) error {
	handler, err := NewAnalysisCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create analysis command handler %w", err)
	}

	var summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Print summary statistics of a metric per station",
		Run:   handler.SummaryCmd,
	}
	summaryCmd.Flags().StringP("metric", "", "GHI", "Metric name (GHI, DNI, DHI, Tamb, RH, WS)")
	summaryCmd.Flags().StringSliceP("stations", "", nil, "Stations to include (default all)")
	rootCmd.AddCommand(summaryCmd)

	var rankCmd = &cobra.Command{
		Use:   "rank",
		Short: "Rank stations by potential and stability of a metric",
		Run:   handler.RankCmd,
	}
	rankCmd.Flags().StringP("metric", "", "GHI", "Metric name (GHI, DNI, DHI, Tamb, RH, WS)")
	rootCmd.AddCommand(rankCmd)

	var correlateCmd = &cobra.Command{
		Use:   "correlate",
		Short: "Print the metric correlation matrix of a station",
		Run:   handler.CorrelateCmd,
	}
	correlateCmd.Flags().StringP("station", "", "", "Station name")
	rootCmd.AddCommand(correlateCmd)

	var chartCmd = &cobra.Command{
		Use:   "chart",
		Short: "Draw a terminal chart of a resampled metric series",
		Run:   handler.ChartCmd,
	}
	chartCmd.Flags().StringP("station", "", "", "Station name")
	chartCmd.Flags().StringP("metric", "", "GHI", "Metric name (GHI, DNI, DHI, Tamb, RH, WS)")
	chartCmd.Flags().StringP("resolution", "", "daily", "Resampling resolution (raw, hourly, daily, monthly)")
	rootCmd.AddCommand(chartCmd)

	return nil
}
