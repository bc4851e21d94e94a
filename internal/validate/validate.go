// Package validate provides input validation utilities shared by the API
// client configurations and CLI flag handling.
//
// Implements common validation patterns on top of the go-playground/validator
// library so config packages get consistent error behavior without repeating
// manual checks.
//
// VALIDATION COVERAGE:
//   - Required strings: credentials, identifiers, and endpoints
//   - URLs: backend base URLs and XML-RPC endpoints
//   - Email addresses: TestRail account identification
//   - Timeouts: positive duration checking for client configuration
package validate

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; validator instances cache struct metadata and
// are safe for concurrent use.
var validate = validator.New()

// ValidateField validates a single value against a validator tag expression.
// Central entry point so all helpers share one validator instance.
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateRequiredString validates that a string field is not empty.
//
// Critical for ensuring required configuration fields like API keys and
// endpoints are specified before a client is constructed. Prevents runtime
// failures from requests sent with missing credentials.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidateURL validates that a string is a well-formed absolute URL.
// Used for backend base URLs and XML-RPC endpoints so malformed addresses
// fail at configuration time rather than on the first request.
func ValidateURL(value, fieldName string) error {
	if err := ValidateField(value, "required,url"); err != nil {
		return fmt.Errorf("%s must be a valid URL, got %q", fieldName, value)
	}
	return nil
}

// ValidateEmail validates that a string is a well-formed email address.
// TestRail identifies accounts by email for HTTP basic auth.
func ValidateEmail(value, fieldName string) error {
	if err := ValidateField(value, "required,email"); err != nil {
		return fmt.Errorf("%s must be a valid email address, got %q", fieldName, value)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// Ensures timeout configurations don't cause infinite waits or immediate
// failures on backend API calls.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
