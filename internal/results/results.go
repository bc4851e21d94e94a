// Package results defines the protocol-agnostic test result record submitted
// to test-management backends, plus loading of result files produced by CI
// pipelines.
//
// The record deliberately carries no backend-specific fields: TestRail status
// IDs, TestLink status letters, plan and build identifiers all belong to the
// transport clients that translate these records into wire payloads. This
// keeps one results file usable against either backend.
package results

import (
	"encoding/json"
	"fmt"
	"os"
)

// Status is the outcome of a single automated test in neutral vocabulary.
// Transport clients map it onto their backend's encoding (TestRail numeric
// status IDs, TestLink single-letter codes).
type Status string

const (
	StatusPassed   Status = "passed"
	StatusFailed   Status = "failed"
	StatusBlocked  Status = "blocked"
	StatusUntested Status = "untested"
	StatusRetest   Status = "retest"
)

// Valid reports whether s is one of the recognized outcome values.
func (s Status) Valid() bool {
	switch s {
	case StatusPassed, StatusFailed, StatusBlocked, StatusUntested, StatusRetest:
		return true
	}
	return false
}

// TestResult is one test outcome to be reported to a backend. CaseID is the
// backend's test or test-case identifier; Elapsed uses the free-form
// duration notation test-management tools accept (e.g. "1m 30s").
type TestResult struct {
	CaseID  int    `json:"case_id"`
	Status  Status `json:"status"`
	Comment string `json:"comment,omitempty"`
	Elapsed string `json:"elapsed,omitempty"`
}

// Validate checks that the record identifies a test case and carries a
// recognized status. Run before submission so malformed records fail the
// whole run up front instead of one batch deep.
func (r TestResult) Validate() error {
	if r.CaseID <= 0 {
		return fmt.Errorf("case_id must be positive, got %d", r.CaseID)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("unknown status %q for case %d", r.Status, r.CaseID)
	}
	return nil
}

// LoadFile reads a JSON array of test results from path, the hand-off format
// CI pipelines write after a test run. Every record is validated; the first
// invalid record fails the load with its position in the file.
func LoadFile(path string) ([]TestResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var records []TestResult
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}

	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid record %d in %s: %w", i, path, err)
		}
	}

	return records, nil
}
