// Package main is the entry point for the solar-data-cli application.
// It initializes the root command and registers the dataset and analysis
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Mihret-Akalu/solar-challenge-week0/cmd/solar-data-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "solar-data-cli",
		Short: "Solar measurement data CLI tool",
		Long: `solar-data-cli is a command-line tool for working with solar measurement data.
Supports ingesting station CSV files, deriving cleaned datasets, exporting to CSV,
and exploring the data with summaries, rankings, correlations and terminal charts.

The sqlite database file defaults to ./solar.db; set SOLAR_DB to override it.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register dataset commands
	if err := commands.InitDatasetCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize dataset commands: %w", err)
	}

	// Register analysis commands
	if err := commands.InitAnalysisCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize analysis commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
