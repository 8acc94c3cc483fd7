package version

import (
	"fmt"
	"runtime"
)

// Version information - using semantic versioning
const (
	Major      = 1
	Minor      = 0
	Patch      = 0
	PreRelease = "" // e.g., "alpha", "beta", "rc1"
)

// SDKName identifies this agent in logs and User-Agent headers.
const SDKName = "Pendle Agent SDK"

// Version returns the semantic version string
func Version() string {
	version := fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)

	if PreRelease != "" {
		version += "-" + PreRelease
	}

	return version
}

// UserAgent returns the header value the hosted API client sends.
func UserAgent() string {
	return fmt.Sprintf("pendle-agent-sdk/%s (%s/%s)", Version(), runtime.GOOS, runtime.GOARCH)
}
