// ============================================================================
// toolctl - Foundry Lab Tool Control CLI
// ============================================================================
//
// Package:     version
// Description: Build version information for the client binary
// Author:      Foundry Automation
// Created:     2026-08-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags "-X .../pkg/core/version.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info holds resolved build information.
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the info in a single line for logs.
func (i Info) String() string {
	return fmt.Sprintf("toolctl v%s (%s, %s, %s)", i.Version, i.GitCommit, i.GoVersion, i.Platform)
}
