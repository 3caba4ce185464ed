package updates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tlyhq/tly-cli/pkg/networking"
	"github.com/tlyhq/tly-cli/pkg/versions"
)

// VersionClient is an interface for looking up the latest released version.
type VersionClient interface {
	GetLatestVersion(ctx context.Context) (string, error)
}

const defaultReleaseAPI = "https://api.github.com/repos/tlyhq/tly-cli/releases/latest"

// NewVersionClient creates a new instance of VersionClient backed by the
// GitHub releases API.
func NewVersionClient() VersionClient {
	return &defaultVersionClient{
		releaseEndpoint: defaultReleaseAPI,
	}
}

type defaultVersionClient struct {
	releaseEndpoint string
	httpClient      *http.Client
}

// GetLatestVersion fetches the latest release tag. It returns an error if the
// request fails or if the response status code is not 200.
func (d *defaultVersionClient) GetLatestVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.releaseEndpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", fmt.Sprintf("tly-cli/%s", versions.GetVersionInfo().Version))

	client := d.httpClient
	if client == nil {
		client, err = networking.NewHttpClientBuilder().Build()
		if err != nil {
			return "", fmt.Errorf("failed to build HTTP client: %w", err)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to release API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release API returned non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var response struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return response.TagName, nil
}
