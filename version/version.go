package version

import "fmt"

// These variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/philipparndt/gobox3d/version.Version=1.0.0" ./cmd/gobox
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date for
// release builds, and "dev" otherwise
func GetFullVersion() string {
	if Version == "dev" {
		return "dev"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
