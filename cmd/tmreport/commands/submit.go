// Package commands provides the submit command definition for tmreport.
//
// This file implements batched submission of a CI results file to either
// backend. Provider-specific targets (run for TestRail, plan and build for
// TestLink) are flags; credentials come from flags or the environment so CI
// secrets never appear in pipeline command lines.
package commands

import (
	"github.com/spf13/cobra"
)

// Submit command
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a results file to TestRail or TestLink in batches",
	Long: `Submit automated test results from a JSON file to a test-management
backend in fixed-size batches.

TestRail receives one bulk add_results request per batch. TestLink has no
bulk endpoint, so each batch is reported with one tl.reportTCResult call
per record. A failing batch is recorded and does not stop the remaining
batches; the command exits non-zero if any batch failed.

Credentials are read from flags or from the environment:
  TESTRAIL_BASE_URL, TESTRAIL_EMAIL, TESTRAIL_API_KEY
  TESTLINK_ENDPOINT, TESTLINK_DEV_KEY`,
	Example: `  # Submit to a TestRail run in batches of 50
  export TESTRAIL_BASE_URL=https://acme.testrail.io
  export TESTRAIL_EMAIL=ci@acme.example
  export TESTRAIL_API_KEY=...
  tmreport submit --provider=testrail --input=test-results.json \
    --batch-size=50 --run-id=42

  # Submit to a TestLink plan and build
  export TESTLINK_ENDPOINT=https://testlink.acme.example/lib/api/xmlrpc/v1/xmlrpc.php
  export TESTLINK_DEV_KEY=...
  tmreport submit --provider=testlink --input=test-results.json \
    --batch-size=50 --plan-id=12 --build-id=3

  # Per-batch outcomes as JSON
  tmreport -o json submit --provider=testrail --input=test-results.json \
    --batch-size=50 --run-id=42`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// GetSubmitCommand returns the submit command for flag and handler setup
func GetSubmitCommand() *cobra.Command {
	return submitCmd
}

// SetupSubmitFlags configures flags for the submit command
func SetupSubmitFlags(cmd *cobra.Command, providerPtr, inputPtr *string, batchSizePtr *int,
	runIDPtr *int, baseURLPtr, emailPtr, apiKeyPtr *string,
	planIDPtr, buildIDPtr *int, endpointPtr, devKeyPtr *string) {
	cmd.Flags().StringVar(providerPtr, "provider", "",
		"Backend to submit to: testrail, testlink")
	cmd.Flags().StringVar(inputPtr, "input", "",
		"Path to the results JSON file")
	cmd.Flags().IntVar(batchSizePtr, "batch-size", 50,
		"Results per batch")

	cmd.Flags().IntVar(runIDPtr, "run-id", 0,
		"TestRail run ID (provider testrail)")
	cmd.Flags().StringVar(baseURLPtr, "base-url", "",
		"TestRail base URL (or TESTRAIL_BASE_URL)")
	cmd.Flags().StringVar(emailPtr, "email", "",
		"TestRail account email (or TESTRAIL_EMAIL)")
	cmd.Flags().StringVar(apiKeyPtr, "api-key", "",
		"TestRail API key (or TESTRAIL_API_KEY)")

	cmd.Flags().IntVar(planIDPtr, "plan-id", 0,
		"TestLink test plan ID (provider testlink)")
	cmd.Flags().IntVar(buildIDPtr, "build-id", 0,
		"TestLink build ID (provider testlink)")
	cmd.Flags().StringVar(endpointPtr, "endpoint", "",
		"TestLink XML-RPC endpoint URL (or TESTLINK_ENDPOINT)")
	cmd.Flags().StringVar(devKeyPtr, "dev-key", "",
		"TestLink developer key (or TESTLINK_DEV_KEY)")

	cmd.MarkFlagRequired("provider")
	cmd.MarkFlagRequired("input")
}
