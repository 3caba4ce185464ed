package tly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListPixels returns all tracking pixels on the account.
func (c *Client) ListPixels(ctx context.Context) ([]Pixel, error) {
	return doJSON[[]Pixel](ctx, c, http.MethodGet, "/api/v1/link/pixel")
}

// CreatePixel registers a new tracking pixel.
func (c *Client) CreatePixel(ctx context.Context, params PixelParams) (*Pixel, error) {
	if params.Name == "" || params.PixelID == "" || params.PixelType == "" {
		return nil, fmt.Errorf("name, pixel_id and pixel_type are required")
	}
	pixel, err := doJSON[Pixel](ctx, c, http.MethodPost, "/api/v1/link/pixel", WithJSONBody(params))
	if err != nil {
		return nil, err
	}
	return &pixel, nil
}

// GetPixel fetches a pixel by its record ID.
func (c *Client) GetPixel(ctx context.Context, pixelID string) (*Pixel, error) {
	pixel, err := doJSON[Pixel](ctx, c, http.MethodGet, "/api/v1/link/pixel/"+url.PathEscape(pixelID))
	if err != nil {
		return nil, err
	}
	return &pixel, nil
}

// UpdatePixel updates a pixel. The record ID travels both in the path and in
// the body, matching what the API expects.
func (c *Client) UpdatePixel(ctx context.Context, pixelID string, params PixelParams) (*Pixel, error) {
	payload := map[string]string{
		"id":         pixelID,
		"name":       params.Name,
		"pixel_id":   params.PixelID,
		"pixel_type": params.PixelType,
	}
	pixel, err := doJSON[Pixel](ctx, c, http.MethodPut, "/api/v1/link/pixel/"+url.PathEscape(pixelID), WithJSONBody(payload))
	if err != nil {
		return nil, err
	}
	return &pixel, nil
}

// DeletePixel deletes a pixel by its record ID.
func (c *Client) DeletePixel(ctx context.Context, pixelID string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, http.MethodDelete, "/api/v1/link/pixel/"+url.PathEscape(pixelID))
}
