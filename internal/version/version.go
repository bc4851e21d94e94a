// Package version provides centralized version information for the
// test-management reporting toolkit. The CLI binary and the API clients
// share one version so User-Agent headers and --version output stay
// consistent. Versions follow semantic versioning (semver) conventions.

package version

// Version holds the current tmreport toolkit version.
// Format: major.minor.patch[-prerelease][+build]
const Version = "0.1.0-dev"
