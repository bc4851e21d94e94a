package results

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeResultsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-results.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeResultsFile(t, `[
		{"case_id": 101, "status": "passed", "comment": "Login test passed", "elapsed": "2s"},
		{"case_id": 102, "status": "passed", "comment": "Registration test passed", "elapsed": "3s"},
		{"case_id": 103, "status": "failed", "comment": "Payment test failed: timeout", "elapsed": "30s"},
		{"case_id": 104, "status": "blocked"}
	]`)

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("expected no error but got: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	if records[0].CaseID != 101 || records[0].Status != StatusPassed {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[2].Status != StatusFailed {
		t.Errorf("expected failed status, got %q", records[2].Status)
	}
	if records[3].Comment != "" {
		t.Errorf("expected empty comment, got %q", records[3].Comment)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		errorContains string
	}{
		{
			name:          "malformed_json",
			content:       `{"not": "an array"`,
			errorContains: "failed to parse",
		},
		{
			name:          "unknown_status",
			content:       `[{"case_id": 1, "status": "maybe"}]`,
			errorContains: "unknown status",
		},
		{
			name:          "missing_case_id",
			content:       `[{"status": "passed"}]`,
			errorContains: "case_id must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeResultsFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.errorContains) {
				t.Errorf("expected error containing %q, got %q", tt.errorContains, err.Error())
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStatusValid(t *testing.T) {
	valid := []Status{StatusPassed, StatusFailed, StatusBlocked, StatusUntested, StatusRetest}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if Status("skipped").Valid() {
		t.Error("expected 'skipped' to be invalid")
	}
}
