// Package version provides version information for the application.
package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version  = "dev"
	Revision = "unknown"
)

// GetVersionString returns the full version string reported by the CLI.
func GetVersionString() string {
	return fmt.Sprintf("%s (%s)", Version, Revision)
}
