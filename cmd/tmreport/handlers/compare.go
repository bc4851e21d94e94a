// Package handlers provides the compare command handler for tmreport.
package handlers

import (
	"github.com/spf13/cobra"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/config"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/display"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/utils"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/logging"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/report"
)

// HandleCompare handles the compare subcommand for generating the protocol
// comparison between TestRail's REST/JSON API and TestLink's XML-RPC API.
// The metrics are computed locally from the command parameters, so the
// handler needs no backend connectivity or credentials.
func HandleCompare(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	params := report.Params{
		ResultCount: config.Compare.Results,
		BatchSize:   config.Compare.BatchSize,
		LatencyMS:   config.Compare.LatencyMS,
	}

	logging.Info("Building protocol comparison: %d results, batch size %d, %dms RTT",
		params.ResultCount, params.BatchSize, params.LatencyMS)

	comparison, err := report.Build(params)
	if err != nil {
		logging.Error("Failed to build comparison: %v", err)
		return err
	}

	display.DisplayComparison(comparison)
	logging.Success("Comparison generated for %d results", params.ResultCount)
	return nil
}
