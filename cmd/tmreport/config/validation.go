// Package config provides configuration management for the tmreport CLI.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/logging"
	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/validate"
)

// ValidateGlobalFlags validates all global flags before running any command
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := ValidateTimeout(); err != nil {
		return err
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

// ValidateTimeout validates the --timeout flag
func ValidateTimeout() error {
	if err := validate.ValidateField(Global.Timeout, "required,min=1,max=300"); err != nil {
		logging.Error("Invalid timeout %d: %v", Global.Timeout, err)
		return fmt.Errorf("timeout must be between 1-300 seconds")
	}
	return nil
}

// ResolveSubmitCredentials fills unset credential flags from the environment.
// Flags take precedence so one-off overrides work without unsetting variables.
func ResolveSubmitCredentials() {
	if Submit.BaseURL == "" {
		Submit.BaseURL = os.Getenv("TESTRAIL_BASE_URL")
	}
	if Submit.Email == "" {
		Submit.Email = os.Getenv("TESTRAIL_EMAIL")
	}
	if Submit.APIKey == "" {
		Submit.APIKey = os.Getenv("TESTRAIL_API_KEY")
	}
	if Submit.Endpoint == "" {
		Submit.Endpoint = os.Getenv("TESTLINK_ENDPOINT")
	}
	if Submit.DevKey == "" {
		Submit.DevKey = os.Getenv("TESTLINK_DEV_KEY")
	}
}

// ValidateSubmitFlags validates the submit command's flag combination for the
// selected provider. Credential completeness is checked later by the client
// Config so error messages name the exact missing field.
func ValidateSubmitFlags() error {
	if err := validate.ValidateRequiredString(Submit.Input, "input file"); err != nil {
		return fmt.Errorf("--input is required")
	}
	if Submit.BatchSize <= 0 {
		return fmt.Errorf("--batch-size must be positive, got %d", Submit.BatchSize)
	}

	switch Submit.Provider {
	case ProviderTestRail:
		if Submit.RunID <= 0 {
			return fmt.Errorf("--run-id is required for provider %s", ProviderTestRail)
		}
	case ProviderTestLink:
		if Submit.PlanID <= 0 {
			return fmt.Errorf("--plan-id is required for provider %s", ProviderTestLink)
		}
		if Submit.BuildID <= 0 {
			return fmt.Errorf("--build-id is required for provider %s", ProviderTestLink)
		}
	default:
		return fmt.Errorf("invalid provider '%s' - valid: %s, %s",
			Submit.Provider, ProviderTestRail, ProviderTestLink)
	}

	return nil
}
