package tly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// CreateShortLink creates a new short link for the given long URL.
func (c *Client) CreateShortLink(ctx context.Context, params CreateShortLinkParams) (*ShortLink, error) {
	if params.LongURL == "" {
		return nil, fmt.Errorf("long_url is required")
	}
	link, err := doJSON[ShortLink](ctx, c, http.MethodPost, "/api/v1/link/shorten", WithJSONBody(params))
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// GetShortLink fetches a short link record by its short URL.
func (c *Client) GetShortLink(ctx context.Context, shortURL string) (*ShortLink, error) {
	link, err := doJSON[ShortLink](ctx, c, http.MethodGet, "/api/v1/link",
		WithQueryParam("short_url", shortURL))
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// UpdateShortLink updates an existing short link.
func (c *Client) UpdateShortLink(ctx context.Context, params UpdateShortLinkParams) (*ShortLink, error) {
	if params.ShortURL == "" {
		return nil, fmt.Errorf("short_url is required")
	}
	link, err := doJSON[ShortLink](ctx, c, http.MethodPut, "/api/v1/link", WithJSONBody(params))
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteShortLink deletes a short link. The server response is returned
// unmodified.
func (c *Client) DeleteShortLink(ctx context.Context, shortURL string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, http.MethodDelete, "/api/v1/link",
		WithJSONBody(map[string]string{"short_url": shortURL}))
}

// ExpandShortLink resolves a short link back to its destination URL.
// Password-protected links require the password.
func (c *Client) ExpandShortLink(ctx context.Context, shortURL, password string) (*ExpandedLink, error) {
	payload := map[string]string{"short_url": shortURL}
	if password != "" {
		payload["password"] = password
	}
	expanded, err := doJSON[ExpandedLink](ctx, c, http.MethodPost, "/api/v1/link/expand", WithJSONBody(payload))
	if err != nil {
		return nil, err
	}
	return &expanded, nil
}

// ListShortLinks returns a page of short links matching the given filters.
func (c *Client) ListShortLinks(ctx context.Context, params ListShortLinksParams) (*ShortLinkPage, error) {
	query := make(url.Values)
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	addIndexedParams(query, "tag_ids", params.TagIDs)
	addIndexedParams(query, "pixel_ids", params.PixelIDs)
	addIndexedParams(query, "domains", params.Domains)
	if params.StartDate != "" {
		query.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("end_date", params.EndDate)
	}

	page, err := doJSON[ShortLinkPage](ctx, c, http.MethodGet, "/api/v1/link/list", WithQuery(query))
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// BulkShortenLinks shortens a batch of long URLs in one request. The batch is
// forwarded as-is; the server decides per-entry success.
func (c *Client) BulkShortenLinks(ctx context.Context, params BulkShortenParams) (json.RawMessage, error) {
	if len(params.Links) == 0 {
		return nil, fmt.Errorf("links is required")
	}
	return doJSON[json.RawMessage](ctx, c, http.MethodPost, "/api/v1/link/bulk", WithJSONBody(params))
}

// BulkUpdateLinks updates a batch of short links in one request.
func (c *Client) BulkUpdateLinks(ctx context.Context, params BulkUpdateParams) (json.RawMessage, error) {
	if len(params.Links) == 0 {
		return nil, fmt.Errorf("links is required")
	}
	return doJSON[json.RawMessage](ctx, c, http.MethodPost, "/api/v1/link/bulk/update", WithJSONBody(params))
}

// GetLinkStats returns click statistics for a short link. The aggregation is
// entirely server-defined, so the JSON is returned unmodified.
func (c *Client) GetLinkStats(ctx context.Context, shortURL string, params StatsParams) (json.RawMessage, error) {
	query := make(url.Values)
	query.Set("short_url", shortURL)
	if params.StartDate != "" {
		query.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("end_date", params.EndDate)
	}
	return doJSON[json.RawMessage](ctx, c, http.MethodGet, "/api/v1/link/stats", WithQuery(query))
}
