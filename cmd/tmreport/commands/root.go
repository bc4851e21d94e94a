// Package commands provides the complete command tree implementation for tmreport.
//
// This package defines the command structure for the test-management reporting
// CLI. Commands map one-to-one onto the tool's two jobs: generating the
// REST-vs-XML-RPC comparison metrics and submitting result files to a backend.
//
// COMMAND STRUCTURE:
//   - compare: Protocol comparison metrics (payload sizes, request counts, latency)
//   - submit: Batched submission of a results file to TestRail or TestLink
//
// All commands follow consistent patterns with standardized flag handling, error
// messages, and output formatting.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "tmreport",
	Short: "CLI tool for batched test-result reporting to TestRail and TestLink",
	Long: `tmreport submits automated test results to test-management backends
and quantifies the protocol cost of doing so.

TestRail speaks REST/JSON with a native bulk endpoint; TestLink speaks
XML-RPC with one call per result. tmreport batches a results file for
either backend and can print the measured difference between the two.`,
	SilenceUsage: true,
	Example: `  # Print the protocol comparison with default parameters
  tmreport compare

  # Compare a 5000-test suite at batch size 250 over a 30ms link
  tmreport compare --results=5000 --batch-size=250 --latency-ms=30

  # Submit results to a TestRail run in batches of 50
  tmreport submit --provider=testrail --input=test-results.json \
    --batch-size=50 --run-id=42

  # Submit results to a TestLink plan and build
  tmreport submit --provider=testlink --input=test-results.json \
    --batch-size=50 --plan-id=12 --build-id=3

  # Output in JSON format
  tmreport --output=json compare
  tmreport -o json compare

  # Show verbose output
  tmreport --verbose submit --provider=testrail --input=test-results.json \
    --batch-size=50 --run-id=42`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	RootCmd.AddCommand(compareCmd)
	RootCmd.AddCommand(submitCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, logLevelPtr *string, timeoutPtr *int,
	verbosePtr *bool, outputPtr *string) {
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 8,
		"Request timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(verbosePtr, "verbose", "v", false,
		"Show verbose output")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
