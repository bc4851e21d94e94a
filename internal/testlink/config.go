// Package testlink implements the XML-RPC client for the TestLink API.
package testlink

import (
	"fmt"
	"time"

	"github.com/KrCrimson/TestRail-vs-TestLink-A-Performance-and-Cost-Analysis/internal/validate"
)

// DefaultTimeout is the connection timeout applied when the config leaves
// Timeout unset.
const DefaultTimeout = 8 * time.Second

// Config holds the connection settings for a TestLink instance. TestLink
// authenticates with a developer key carried inside every request payload
// rather than an HTTP-level mechanism, so the key travels with the client
// and is injected into each call.
type Config struct {
	Endpoint string        // Full XML-RPC endpoint, e.g. http://example.com/lib/api/xmlrpc/v1/xmlrpc.php
	DevKey   string        // Developer key generated in TestLink
	Timeout  time.Duration // Per-request timeout; DefaultTimeout when zero
}

// Validate checks that the configuration can produce working API requests.
// Called by NewClient so misconfiguration fails fast with a field-specific
// message before any call is attempted.
func (c *Config) Validate() error {
	if err := validate.ValidateURL(c.Endpoint, "TestLink endpoint"); err != nil {
		return err
	}
	if err := validate.ValidateRequiredString(c.DevKey, "TestLink dev key"); err != nil {
		return err
	}
	if c.Timeout != 0 {
		if err := validate.ValidatePositiveTimeout(c.Timeout, "TestLink timeout"); err != nil {
			return err
		}
	}
	return nil
}

// effectiveTimeout returns the configured timeout or the default.
func (c *Config) effectiveTimeout() time.Duration {
	if c.Timeout == 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// String implements fmt.Stringer without leaking the dev key into logs.
func (c *Config) String() string {
	return fmt.Sprintf("testlink.Config{Endpoint: %s}", c.Endpoint)
}
