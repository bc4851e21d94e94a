// Package main provides the entry point for the test-management reporting CLI (tmreport).
//
// This package implements the main executable for submitting automated test
// results to test-management backends and for quantifying the protocol cost
// of doing so. TestRail exposes a REST/JSON API with a native bulk endpoint;
// TestLink exposes an XML-RPC API that accepts one result per call. tmreport
// batches a CI results file for either backend and can print the measured
// difference between the two.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system including:
//   - Command Structure: compare and submit commands under one root
//   - Handler Integration: Command execution with backend client communication
//   - Flag Management: Global and command-specific configuration options
//   - Configuration Binding: CLI state management and validation pipeline
//
// INITIALIZATION FLOW:
// 1. Command structure setup
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to backend operations
// 4. Configuration validation and CLI state management
// 5. Command execution with proper error handling and exit codes
package main

import (
	"os"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/commands"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/config"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/handlers"
)

func init() {
	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Verbose, &config.Global.Output)

	// Setup compare command flags
	compareCmd := commands.GetCompareCommand()
	commands.SetupCompareFlags(compareCmd,
		&config.Compare.Results, &config.Compare.BatchSize, &config.Compare.LatencyMS)

	// Setup submit command flags
	submitCmd := commands.GetSubmitCommand()
	commands.SetupSubmitFlags(submitCmd,
		&config.Submit.Provider, &config.Submit.Input, &config.Submit.BatchSize,
		&config.Submit.RunID, &config.Submit.BaseURL, &config.Submit.Email, &config.Submit.APIKey,
		&config.Submit.PlanID, &config.Submit.BuildID, &config.Submit.Endpoint, &config.Submit.DevKey)

	// Setup command handlers
	compareCmd.RunE = handlers.HandleCompare
	submitCmd.RunE = handlers.HandleSubmit
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
