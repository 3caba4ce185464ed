// Package updates contains logic for checking if an update is available for tly-cli.
package updates

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"golang.org/x/mod/semver"

	"github.com/tlyhq/tly-cli/pkg/versions"
)

// UpdateChecker is an interface for checking if a new version of tly-cli is available.
type UpdateChecker interface {
	// CheckLatestVersion checks if a new version of tly-cli is available
	// and prints the result to stderr.
	CheckLatestVersion(ctx context.Context) error
}

const (
	updateFilePathSuffix = "tly/updates.json"
	updateInterval       = 4 * time.Hour
)

// updateFile represents the structure of the update state file.
type updateFile struct {
	LatestVersion string    `json:"latest_version"`
	LastCheck     time.Time `json:"last_check"`
}

// NewUpdateChecker creates a new instance of UpdateChecker.
func NewUpdateChecker(versionClient VersionClient) (UpdateChecker, error) {
	path, err := xdg.DataFile(updateFilePathSuffix)
	if err != nil {
		return nil, fmt.Errorf("unable to access update file path %w", err)
	}

	return &defaultUpdateChecker{
		currentVersion: versions.GetVersionInfo().Version,
		updateFilePath: path,
		versionClient:  versionClient,
	}, nil
}

type defaultUpdateChecker struct {
	currentVersion string
	updateFilePath string
	versionClient  VersionClient
}

func (d *defaultUpdateChecker) CheckLatestVersion(ctx context.Context) error {
	var currentFile updateFile
	// #nosec G304: File path is not configurable at this time.
	rawContents, err := os.ReadFile(d.updateFilePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read update file: %w", err)
	}

	if err == nil && len(rawContents) > 0 {
		if err := json.Unmarshal(rawContents, &currentFile); err != nil {
			return fmt.Errorf("failed to deserialize update file: %w", err)
		}
	}

	if time.Since(currentFile.LastCheck) < updateInterval {
		// If it is too soon - notify the user if we already know there is
		// an update, then exit.
		notifyIfUpdateAvailable(d.currentVersion, currentFile.LatestVersion)
		return nil
	}

	// The recorded state is stale or does not exist - get the latest
	// version from the API.
	latestVersion, err := d.versionClient.GetLatestVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	notifyIfUpdateAvailable(d.currentVersion, latestVersion)

	currentFile.LatestVersion = latestVersion
	currentFile.LastCheck = time.Now().UTC()

	updatedData, err := json.Marshal(currentFile)
	if err != nil {
		return fmt.Errorf("failed to marshal updated data: %w", err)
	}

	if err := os.WriteFile(d.updateFilePath, updatedData, 0600); err != nil {
		return fmt.Errorf("failed to write updated file: %w", err)
	}

	return nil
}

func notifyIfUpdateAvailable(current, latest string) {
	if latest == "" {
		return
	}
	// Local builds are already known not to be on the latest release.
	if strings.HasPrefix(current, "build-") {
		return
	}
	// Ensure both versions have the 'v' prefix for proper semantic version comparison
	if !semver.IsValid(current) {
		current = fmt.Sprintf("v%s", current)
	}
	if !semver.IsValid(latest) {
		latest = fmt.Sprintf("v%s", latest)
	}
	// Compare the versions ensuring their canonical forms
	if semver.Compare(semver.Canonical(current), semver.Canonical(latest)) < 0 {
		fmt.Fprintf(os.Stderr, "A new version of tly is available: %s\nCurrently running: %s\n", latest, current)
	}
}
