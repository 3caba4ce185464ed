package tly

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// ListOneLinks returns a page of the account's OneLinks. Pages start at 1;
// zero means let the server pick.
func (c *Client) ListOneLinks(ctx context.Context, page int) (json.RawMessage, error) {
	query := make(url.Values)
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	return doJSON[json.RawMessage](ctx, c, http.MethodGet, "/api/v1/onelink/list", WithQuery(query))
}

// GetOneLinkStats returns click statistics for a OneLink.
func (c *Client) GetOneLinkStats(ctx context.Context, shortURL string, params StatsParams) (json.RawMessage, error) {
	query := make(url.Values)
	query.Set("short_url", shortURL)
	if params.StartDate != "" {
		query.Set("start_date", params.StartDate)
	}
	if params.EndDate != "" {
		query.Set("end_date", params.EndDate)
	}
	return doJSON[json.RawMessage](ctx, c, http.MethodGet, "/api/v1/onelink/stats", WithQuery(query))
}

// DeleteOneLinkStats clears the recorded statistics of a OneLink.
func (c *Client) DeleteOneLinkStats(ctx context.Context, shortURL string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, http.MethodDelete, "/api/v1/onelink/stat",
		WithJSONBody(map[string]string{"short_url": shortURL}))
}
