// Package handlers provides the submit command handler for tmreport.
//
// This file implements batched submission of a CI results file to either
// backend. The handler wires the loaded records through the batch submission
// core with the provider's batch submitter, displays the per-batch summary,
// and exits non-zero when any batch failed so CI pipelines catch partial
// reporting.
package handlers

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/config"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/display"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/utils"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/batch"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/logging"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/results"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/testlink"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/testrail"
)

// HandleSubmit handles the submit subcommand for reporting a results file
// to the selected backend in fixed-size batches. Batch failures are
// recorded and displayed rather than aborting the run; the command returns
// an error only for setup problems or after all batches ran with at least
// one failure.
func HandleSubmit(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	config.ResolveSubmitCredentials()
	if err := config.ValidateSubmitFlags(); err != nil {
		return err
	}

	records, err := results.LoadFile(config.Submit.Input)
	if err != nil {
		logging.Error("Failed to load results file: %v", err)
		return err
	}
	logging.Info("Loaded %d results from %s", len(records), config.Submit.Input)

	submit, cleanup, err := buildSubmitter()
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := batch.SubmitAll(records, config.Submit.BatchSize, submit)
	if err != nil {
		logging.Error("Submission aborted: %v", err)
		return err
	}

	display.DisplaySummary(summary)

	if !summary.Ok() {
		return fmt.Errorf("%d of %d batches failed", summary.Failed(), len(summary))
	}
	logging.Success("Submitted %d results in %d batches to %s",
		len(records), len(summary), config.Submit.Provider)
	return nil
}

// buildSubmitter constructs the provider's batch submitter from the
// resolved configuration. The cleanup function releases any connection the
// provider client holds.
func buildSubmitter() (batch.SubmitFunc[results.TestResult], func(), error) {
	timeout := time.Duration(config.Global.Timeout) * time.Second

	switch config.Submit.Provider {
	case config.ProviderTestRail:
		client, err := testrail.NewClient(testrail.Config{
			BaseURL: config.Submit.BaseURL,
			Email:   config.Submit.Email,
			APIKey:  config.Submit.APIKey,
			Timeout: timeout,
		})
		if err != nil {
			logging.Error("Failed to create TestRail client: %v", err)
			return nil, nil, err
		}
		return client.BatchSubmitter(config.Submit.RunID), func() {}, nil

	case config.ProviderTestLink:
		client, err := testlink.NewClient(testlink.Config{
			Endpoint: config.Submit.Endpoint,
			DevKey:   config.Submit.DevKey,
			Timeout:  timeout,
		})
		if err != nil {
			logging.Error("Failed to create TestLink client: %v", err)
			return nil, nil, err
		}
		cleanup := func() { client.Close() }
		return client.BatchSubmitter(config.Submit.PlanID, config.Submit.BuildID), cleanup, nil
	}

	return nil, nil, fmt.Errorf("invalid provider '%s'", config.Submit.Provider)
}
