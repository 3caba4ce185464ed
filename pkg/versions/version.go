// Package versions provides version information for the tly CLI.
package versions

import (
	"fmt"
	"runtime"
	"time"
)

const unknownStr = "unknown"

var (
	// Version is the current version of tly-cli, set at build time via ldflags.
	Version = "dev"
	// Commit is the git commit the binary was built from, set at build time via ldflags.
	Commit = unknownStr
	// BuildDate is the date the binary was built, set at build time via ldflags.
	BuildDate = unknownStr
)

// VersionInfo represents the version information of the binary.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo returns the version information of the binary.
func GetVersionInfo() VersionInfo {
	version := Version
	if version == "dev" {
		// Local builds get a synthetic version derived from the commit.
		if Commit != unknownStr && len(Commit) >= 8 {
			version = fmt.Sprintf("build-%s", Commit[:8])
		} else if Commit != unknownStr {
			version = fmt.Sprintf("build-%s", Commit)
		} else {
			version = "build-unknown"
		}
	}

	buildDate := BuildDate
	if t, err := time.Parse(time.RFC3339, buildDate); err == nil {
		buildDate = t.UTC().Format("2006-01-02 15:04:05 UTC")
	}

	return VersionInfo{
		Version:   version,
		Commit:    Commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
