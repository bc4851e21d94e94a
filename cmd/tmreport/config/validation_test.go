// Package config provides configuration validation tests for the tmreport CLI.
//
// This test suite validates global flag checking and the submit command's
// provider-dependent flag combinations, including credential resolution from
// environment variables with flag precedence.
package config

import (
	"strings"
	"testing"
)

func resetSubmit() {
	Submit.Provider = ""
	Submit.Input = ""
	Submit.BatchSize = 0
	Submit.RunID = 0
	Submit.BaseURL = ""
	Submit.Email = ""
	Submit.APIKey = ""
	Submit.PlanID = 0
	Submit.BuildID = 0
	Submit.Endpoint = ""
	Submit.DevKey = ""
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		expectError bool
	}{
		{name: "table_ok", output: "table", expectError: false},
		{name: "json_ok", output: "json", expectError: false},
		{name: "yaml_error", output: "yaml", expectError: true},
		{name: "empty_error", output: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.Output = tt.output
			err := ValidateOutputFormat()
			if tt.expectError && err == nil {
				t.Errorf("expected error for output %q", tt.output)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateTimeout(t *testing.T) {
	tests := []struct {
		name        string
		timeout     int
		expectError bool
	}{
		{name: "default_ok", timeout: 8, expectError: false},
		{name: "max_ok", timeout: 300, expectError: false},
		{name: "zero_error", timeout: 0, expectError: true},
		{name: "negative_error", timeout: -5, expectError: true},
		{name: "too_large_error", timeout: 301, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Global.Timeout = tt.timeout
			err := ValidateTimeout()
			if tt.expectError && err == nil {
				t.Errorf("expected error for timeout %d", tt.timeout)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSubmitFlags(t *testing.T) {
	tests := []struct {
		name          string
		setup         func()
		expectError   bool
		errorContains string
	}{
		{
			name: "testrail_ok",
			setup: func() {
				Submit.Provider = ProviderTestRail
				Submit.Input = "results.json"
				Submit.BatchSize = 50
				Submit.RunID = 42
			},
			expectError: false,
		},
		{
			name: "testlink_ok",
			setup: func() {
				Submit.Provider = ProviderTestLink
				Submit.Input = "results.json"
				Submit.BatchSize = 50
				Submit.PlanID = 12
				Submit.BuildID = 3
			},
			expectError: false,
		},
		{
			name: "missing_input",
			setup: func() {
				Submit.Provider = ProviderTestRail
				Submit.BatchSize = 50
				Submit.RunID = 42
			},
			expectError:   true,
			errorContains: "--input",
		},
		{
			name: "zero_batch_size",
			setup: func() {
				Submit.Provider = ProviderTestRail
				Submit.Input = "results.json"
				Submit.RunID = 42
			},
			expectError:   true,
			errorContains: "--batch-size",
		},
		{
			name: "testrail_missing_run_id",
			setup: func() {
				Submit.Provider = ProviderTestRail
				Submit.Input = "results.json"
				Submit.BatchSize = 50
			},
			expectError:   true,
			errorContains: "--run-id",
		},
		{
			name: "testlink_missing_plan_id",
			setup: func() {
				Submit.Provider = ProviderTestLink
				Submit.Input = "results.json"
				Submit.BatchSize = 50
				Submit.BuildID = 3
			},
			expectError:   true,
			errorContains: "--plan-id",
		},
		{
			name: "testlink_missing_build_id",
			setup: func() {
				Submit.Provider = ProviderTestLink
				Submit.Input = "results.json"
				Submit.BatchSize = 50
				Submit.PlanID = 12
			},
			expectError:   true,
			errorContains: "--build-id",
		},
		{
			name: "unknown_provider",
			setup: func() {
				Submit.Provider = "jira"
				Submit.Input = "results.json"
				Submit.BatchSize = 50
			},
			expectError:   true,
			errorContains: "invalid provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetSubmit()
			tt.setup()

			err := ValidateSubmitFlags()
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorContains != "" && !strings.Contains(err.Error(), tt.errorContains) {
					t.Errorf("expected error containing %q, got: %v", tt.errorContains, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveSubmitCredentials(t *testing.T) {
	resetSubmit()
	t.Setenv("TESTRAIL_BASE_URL", "https://acme.testrail.io")
	t.Setenv("TESTRAIL_EMAIL", "ci@acme.example")
	t.Setenv("TESTRAIL_API_KEY", "env-key")
	t.Setenv("TESTLINK_ENDPOINT", "https://testlink.acme.example/xmlrpc.php")
	t.Setenv("TESTLINK_DEV_KEY", "env-dev-key")

	// Flag overrides the environment
	Submit.APIKey = "flag-key"

	ResolveSubmitCredentials()

	if Submit.BaseURL != "https://acme.testrail.io" {
		t.Errorf("BaseURL not resolved from environment: %q", Submit.BaseURL)
	}
	if Submit.Email != "ci@acme.example" {
		t.Errorf("Email not resolved from environment: %q", Submit.Email)
	}
	if Submit.APIKey != "flag-key" {
		t.Errorf("flag value should take precedence, got %q", Submit.APIKey)
	}
	if Submit.Endpoint != "https://testlink.acme.example/xmlrpc.php" {
		t.Errorf("Endpoint not resolved from environment: %q", Submit.Endpoint)
	}
	if Submit.DevKey != "env-dev-key" {
		t.Errorf("DevKey not resolved from environment: %q", Submit.DevKey)
	}
}
