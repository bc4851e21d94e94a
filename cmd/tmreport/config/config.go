// Package config provides configuration management for the tmreport CLI.
package config

import "github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/version"

const (
	ProviderTestRail = "testrail"
	ProviderTestLink = "testlink"
)

// Version returns the current tmreport CLI version from the centralized version package
var Version = version.Version

// Global holds the global CLI configuration
var Global struct {
	LogLevel string // Log level for CLI operations
	Timeout  int    // Request timeout in seconds
	Verbose  bool   // Show verbose output
	Output   string // Output format: table, json
}

// Compare holds the compare command configuration
var Compare struct {
	Results   int // Number of results in the simulated suite
	BatchSize int // Results per bulk request
	LatencyMS int // Round-trip time per request in milliseconds
}

// Submit holds the submit command configuration
var Submit struct {
	Provider  string // Backend to submit to: testrail, testlink
	Input     string // Path to the results JSON file
	BatchSize int    // Results per batch

	// TestRail target and credentials (flags override environment)
	RunID   int    // TestRail run receiving the results
	BaseURL string // TestRail instance base URL
	Email   string // TestRail account email
	APIKey  string // TestRail API key

	// TestLink target and credentials (flags override environment)
	PlanID   int    // TestLink test plan receiving the results
	BuildID  int    // TestLink build within the plan
	Endpoint string // TestLink XML-RPC endpoint URL
	DevKey   string // TestLink developer key
}
