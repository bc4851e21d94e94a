// Package logging provides structured, colorful logging for the reporting
// toolkit, ensuring consistent log formatting across the CLI, the API
// clients, and integrated third-party libraries.
//
// LOGGING FEATURES:
//   - Color-coded levels: DEBUG (purple), INFO (blue), WARN (yellow), ERROR (red), SUCCESS (green)
//   - Flexible output: Configurable log levels and output suppression for CLI use
//   - Library integration: io.Writer adapter for third-party code that logs through writers
//
// INFO and SUCCESS go to stdout, WARN/ERROR/DEBUG to stderr following Unix
// conventions, so report output piped to a file is never polluted by
// diagnostics. CLI commands suppress everything below ERROR by default and
// restore full output when DEBUG is requested.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	// Logger for INFO/SUCCESS messages (stdout, follows Unix conventions)
	stdoutLogger = log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	// Logger for WARN/ERROR/DEBUG messages (stderr, follows Unix conventions)
	stderrLogger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
)

// setupCustomStyles configures distinct colors for each log level to improve
// visual parsing of log output during development and CI troubleshooting.
// Colors are chosen to stay readable in both light and dark terminals.
func setupCustomStyles() *log.Styles {
	styles := log.DefaultStyles()

	// DEBUG: light purple
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	// INFO: light blue
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	// WARN: light yellow
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	// ERROR: light red/pink
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

func init() {
	styles := setupCustomStyles()
	stdoutLogger.SetStyles(styles)
	stderrLogger.SetStyles(styles)
}

// Info logs informational messages for submission progress and status updates.
func Info(format string, v ...any) {
	stdoutLogger.Info(fmt.Sprintf(format, v...))
}

// Warn logs warning messages for non-critical issues requiring attention.
func Warn(format string, v ...any) {
	stderrLogger.Warn(fmt.Sprintf(format, v...))
}

// Error logs error messages for submission failures and critical issues.
func Error(format string, v ...any) {
	stderrLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs detailed request/response information for troubleshooting
// backend API interactions.
func Debug(format string, v ...any) {
	stderrLogger.Debug(fmt.Sprintf(format, v...))
}

// Success logs successful operations in green using INFO level with custom
// styling. Respects INFO level filtering so suppressed CLIs stay quiet.
func Success(format string, v ...any) {
	if stdoutLogger.GetLevel() > log.InfoLevel {
		return
	}

	styles := setupCustomStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281")) // Light green

	tempLogger := log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	tempLogger.SetStyles(styles)
	tempLogger.Info(fmt.Sprintf(format, v...))
}

// SetLevel configures the minimum logging level for filtering log output.
// Accepts standard level strings (DEBUG, INFO, WARN, ERROR); anything else
// falls back to INFO.
func SetLevel(level string) {
	var logLevel log.Level
	switch level {
	case "DEBUG":
		logLevel = log.DebugLevel
	case "INFO":
		logLevel = log.InfoLevel
	case "WARN":
		logLevel = log.WarnLevel
	case "ERROR":
		logLevel = log.ErrorLevel
	default:
		logLevel = log.InfoLevel
	}

	stdoutLogger.SetLevel(logLevel)
	stderrLogger.SetLevel(logLevel)
}

// SuppressOutput disables INFO/WARN/DEBUG logs while keeping ERROR visible.
// Used by the CLI to keep report output clean during normal operation.
func SuppressOutput() {
	stdoutLogger.SetLevel(log.ErrorLevel)
	stderrLogger.SetLevel(log.ErrorLevel)
}

// RestoreOutput restores normal logging at INFO level with Unix conventions.
// Recreates both loggers with default destinations and custom color styling.
func RestoreOutput() {
	stdoutLogger = log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})
	stderrLogger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
	})

	styles := setupCustomStyles()
	stdoutLogger.SetStyles(styles)
	stderrLogger.SetStyles(styles)

	stdoutLogger.SetLevel(log.InfoLevel)
	stderrLogger.SetLevel(log.InfoLevel)
}

// LevelWriter forwards log lines to a specific log level with optional prefix.
// Useful for integrating third-party libraries that expect io.Writer interfaces.
type LevelWriter struct {
	level  string
	prefix string
}

// NewLevelWriter creates a writer that logs each line at the specified level
// with the given prefix. Valid levels: DEBUG, INFO, WARN, ERROR.
func NewLevelWriter(level, prefix string) io.Writer {
	return &LevelWriter{level: strings.ToUpper(level), prefix: prefix}
}

// Write implements io.Writer by splitting input into lines and logging each
// at the configured level.
func (w *LevelWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		msg := line
		if w.prefix != "" {
			msg = w.prefix + ": " + line
		}
		switch w.level {
		case "DEBUG":
			Debug("%s", msg)
		case "WARN":
			Warn("%s", msg)
		case "ERROR":
			Error("%s", msg)
		default:
			Info("%s", msg)
		}
	}
	return len(p), nil
}
