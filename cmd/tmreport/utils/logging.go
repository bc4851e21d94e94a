// Package utils provides utility functions for the tmreport CLI.
// This file contains logging setup utilities.
package utils

import (
	"os"
	"strings"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/cmd/tmreport/config"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/logging"
)

// effectiveLogLevel resolves the level SetupLogging applies. The DEBUG
// environment variable overrides the flag so a pipeline can turn on full
// diagnostics without editing its command lines; otherwise the --log-level
// flag is honored as given, defaulting to ERROR for quiet CLI output.
func effectiveLogLevel(debugEnv, flagLevel string) string {
	if debugEnv == "true" {
		return "DEBUG"
	}
	if flagLevel == "" {
		return "ERROR"
	}
	return strings.ToUpper(flagLevel)
}

// SetupLogging configures CLI logging from the environment and the global
// flags. Called at the top of every command handler so the resolved level
// applies before any client or display code logs.
func SetupLogging() {
	level := effectiveLogLevel(os.Getenv("DEBUG"), config.Global.LogLevel)
	switch level {
	case "DEBUG":
		// Recreate the loggers in case an earlier command suppressed them
		logging.RestoreOutput()
		logging.SetLevel(level)
	case "ERROR":
		logging.SuppressOutput()
	default:
		logging.SetLevel(level)
	}
}
