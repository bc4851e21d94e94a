// Package testrail implements the REST/JSON client for the TestRail API.
package testrail

import (
	"fmt"
	"strings"
	"time"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/validate"
)

// DefaultTimeout is the connection timeout applied when the config leaves
// Timeout unset.
const DefaultTimeout = 8 * time.Second

// Config holds the connection settings for a TestRail instance. It is
// constructed explicitly by the caller and passed in at client construction;
// no ambient global credential state exists.
type Config struct {
	BaseURL string        // Instance base URL, e.g. https://example.testrail.io
	Email   string        // Account email for HTTP basic auth
	APIKey  string        // API key generated in TestRail account settings
	Timeout time.Duration // Per-request timeout; DefaultTimeout when zero
}

// Validate checks that the configuration can produce working API requests.
// Called by NewClient before any network setup so misconfiguration fails
// fast with a field-specific message.
func (c *Config) Validate() error {
	if err := validate.ValidateURL(c.BaseURL, "TestRail base URL"); err != nil {
		return err
	}
	if err := validate.ValidateEmail(c.Email, "TestRail email"); err != nil {
		return err
	}
	if err := validate.ValidateRequiredString(c.APIKey, "TestRail API key"); err != nil {
		return err
	}
	if c.Timeout != 0 {
		if err := validate.ValidatePositiveTimeout(c.Timeout, "TestRail timeout"); err != nil {
			return err
		}
	}
	return nil
}

// normalizedBaseURL returns the base URL without a trailing slash so
// endpoint paths concatenate cleanly.
func (c *Config) normalizedBaseURL() string {
	return strings.TrimRight(c.BaseURL, "/")
}

// effectiveTimeout returns the configured timeout or the default.
func (c *Config) effectiveTimeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// String implements fmt.Stringer without leaking the API key into logs.
func (c *Config) String() string {
	return fmt.Sprintf("testrail.Config{BaseURL: %s, Email: %s}", c.BaseURL, c.Email)
}
