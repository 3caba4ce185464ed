package tly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListUTMPresets returns all UTM presets on the account.
func (c *Client) ListUTMPresets(ctx context.Context) ([]UTMPreset, error) {
	return doJSON[[]UTMPreset](ctx, c, http.MethodGet, "/api/v1/link/utm-preset")
}

// CreateUTMPreset creates a new UTM preset.
func (c *Client) CreateUTMPreset(ctx context.Context, params UTMPresetParams) (*UTMPreset, error) {
	if params.Name == "" || params.Source == "" || params.Medium == "" || params.Campaign == "" {
		return nil, fmt.Errorf("name, source, medium and campaign are required")
	}
	preset, err := doJSON[UTMPreset](ctx, c, http.MethodPost, "/api/v1/link/utm-preset", WithJSONBody(params))
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

// GetUTMPreset fetches a UTM preset by ID.
func (c *Client) GetUTMPreset(ctx context.Context, presetID string) (*UTMPreset, error) {
	preset, err := doJSON[UTMPreset](ctx, c, http.MethodGet, "/api/v1/link/utm-preset/"+url.PathEscape(presetID))
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

// UpdateUTMPreset updates a UTM preset by ID.
func (c *Client) UpdateUTMPreset(ctx context.Context, presetID string, params UTMPresetParams) (*UTMPreset, error) {
	preset, err := doJSON[UTMPreset](ctx, c, http.MethodPut, "/api/v1/link/utm-preset/"+url.PathEscape(presetID), WithJSONBody(params))
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

// DeleteUTMPreset deletes a UTM preset by ID.
func (c *Client) DeleteUTMPreset(ctx context.Context, presetID string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, http.MethodDelete, "/api/v1/link/utm-preset/"+url.PathEscape(presetID))
}
