// Package handlers provides command handler functions for tmreport.
//
// This package contains all the command execution logic for tmreport
// commands, organized by command for maintainability and clean separation
// of concerns.
//
// The package is organized as follows:
// - compare.go: Protocol comparison metric generation
// - submit.go: Batched result submission to TestRail and TestLink
//
// All handlers follow consistent patterns:
// - cobra.Command RunE function signature for CLI integration
// - Standardized error handling and logging using the logging package
// - Consistent output formatting through the display package
// - Clean separation between backend communication and presentation logic
//
// The handlers coordinate between API clients, display functions, and user
// input while keeping credential resolution and validation in the config
// package.
package handlers
