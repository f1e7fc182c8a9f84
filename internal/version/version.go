// Package version holds build metadata injected at link time.
package version

import "fmt"

// Build information set by ldflags:
//
//	-X github.com/arthur-debert/gitig/internal/version.Version={{.Version}}
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version with its commit and build date
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
