// Package commands provides the compare command definition for tmreport.
//
// This file implements the protocol comparison command that quantifies the
// cost difference between TestRail's REST/JSON API and TestLink's XML-RPC
// API for a parameterized CI suite. The metrics are computed, never fetched,
// so the command needs no credentials and no network.
package commands

import (
	"github.com/spf13/cobra"
)

// Compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare REST/JSON and XML-RPC reporting costs",
	Long: `Compare the cost of reporting test results via TestRail's REST/JSON
API against TestLink's XML-RPC API.

The comparison measures real payload sizes for a single result, derives
request counts for the given suite size and batch size, simulates total
pipeline reporting time at a fixed round-trip latency, and includes a
qualitative developer experience matrix.`,
	Example: `  # Compare with defaults (1000 results, batch size 100, 50ms RTT)
  tmreport compare

  # Larger suite over a slower link
  tmreport compare --results=5000 --batch-size=250 --latency-ms=120

  # Machine-readable output
  tmreport -o json compare`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetCompareCommand returns the compare command for flag and handler setup
func GetCompareCommand() *cobra.Command {
	return compareCmd
}

// SetupCompareFlags configures flags for the compare command
func SetupCompareFlags(cmd *cobra.Command, resultsPtr, batchSizePtr, latencyPtr *int) {
	cmd.Flags().IntVar(resultsPtr, "results", 1000,
		"Number of test results in the simulated suite")
	cmd.Flags().IntVar(batchSizePtr, "batch-size", 100,
		"Results per bulk request")
	cmd.Flags().IntVar(latencyPtr, "latency-ms", 50,
		"Round-trip time per request in milliseconds")
}
