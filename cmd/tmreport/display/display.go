// Package display provides output formatting and display functions for tmreport.
//
// This package handles all user-facing output including table and JSON
// rendering of the protocol comparison and of batch submission summaries.
// Table output uses text/tabwriter for alignment and go-humanize for byte
// counts; JSON output is indented for direct use in pipelines.
//
// All display functions respect the global configuration for output format
// and verbosity while keeping presentation separate from business logic.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/config"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/utils"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/batch"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/logging"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/report"
)

// encodeJSON writes v to stdout as indented JSON.
func encodeJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Println("Error encoding JSON output")
	}
}

// DisplayComparison renders the full protocol comparison in tabular or JSON
// format. Table mode prints one section per metric group so the output reads
// top to bottom like the underlying argument: smaller payloads, fewer
// requests, shorter pipelines.
func DisplayComparison(c *report.Comparison) {
	if config.Global.Output == "json" {
		encodeJSON(c)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "PAYLOAD (one result)\tTESTRAIL (JSON)\tTESTLINK (XML-RPC)")
	fmt.Fprintf(w, "Body size\t%s\t%s\n",
		humanize.Bytes(uint64(c.Payload.JSONBytes)),
		humanize.Bytes(uint64(c.Payload.XMLBytes)))
	fmt.Fprintf(w, "Relative size\t1.0x\t%.1fx\n", c.Payload.Ratio)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "REQUESTS (%d results, batch %d)\tTESTRAIL\tTESTLINK\n",
		c.Requests.ResultCount, c.Requests.BatchSize)
	fmt.Fprintf(w, "API calls\t%d\t%d\n",
		c.Requests.TestRailRequests, c.Requests.TestLinkRequests)
	fmt.Fprintf(w, "Extra calls\t-\t%d\n", c.Requests.ExtraRequests)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "PIPELINE (%dms RTT)\tTESTRAIL\tTESTLINK\n", c.Pipeline.LatencyMS)
	fmt.Fprintf(w, "Reporting time\t%s\t%s\n",
		utils.FormatDuration(c.Pipeline.TestRailTime),
		utils.FormatDuration(c.Pipeline.TestLinkTime))
	fmt.Fprintf(w, "Time saved\t%s\t-\n", utils.FormatDuration(c.Pipeline.TimeSaved))
	fmt.Fprintf(w, "Speedup\t%.0fx\t1x\n", c.Pipeline.Speedup)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ASPECT\tTESTRAIL\tTESTLINK")
	for _, row := range c.DXMatrix {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Aspect, row.TestRail, row.TestLink)
	}
}

// errorDisplayLimit caps batch error text in compact table output. Transport
// errors carry full server response bodies, which would wreck the column
// layout for every batch after the failed one.
const errorDisplayLimit = 60

// summaryErrorText formats a batch error for table output. Compact mode
// truncates long transport errors to keep the table scannable; verbose mode
// shows the full text. JSON output always carries the full error.
func summaryErrorText(err error, verbose bool) string {
	if err == nil {
		return "-"
	}
	text := err.Error()
	if !verbose && len(text) > errorDisplayLimit {
		return text[:errorDisplayLimit] + "..."
	}
	return text
}

// batchRow is the JSON shape for one batch outcome.
type batchRow struct {
	Batch int    `json:"batch"`
	Size  int    `json:"size"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// DisplaySummary renders per-batch submission outcomes in tabular or JSON
// format. Table mode truncates long error text unless verbose output is
// enabled. Handles the empty-input case gracefully since an empty results
// file produces an empty summary with no requests sent.
func DisplaySummary(summary batch.Summary) {
	if len(summary) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No results to submit")
		}
		return
	}

	if config.Global.Output == "json" {
		rows := make([]batchRow, 0, len(summary))
		for _, o := range summary {
			row := batchRow{Batch: o.Index + 1, Size: o.Size, OK: !o.Failed()}
			if o.Failed() {
				row.Error = o.Err.Error()
			}
			rows = append(rows, row)
		}
		encodeJSON(rows)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "BATCH\tSIZE\tSTATUS\tERROR")
	for _, o := range summary {
		status := "ok"
		if o.Failed() {
			status = "failed"
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", o.Index+1, o.Size, status,
			summaryErrorText(o.Err, config.Global.Verbose))
	}
}
