// Package utils provides utility functions for the tmreport CLI.
package utils

import (
	"fmt"
	"time"
)

// FormatDuration converts Go time.Duration values into human-readable string
// representations for CLI output display. Uses progressive time unit scaling
// to present durations in the most appropriate unit based on magnitude.
//
// Pipeline simulations regularly produce sub-second totals on the REST side
// and minute-scale totals on the XML-RPC side, so the scale runs from
// milliseconds up to hours.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else if d < time.Hour {
		return fmt.Sprintf("%.1fm", d.Minutes())
	}
	return fmt.Sprintf("%.1fh", d.Hours())
}
