package tly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListTags returns all tags on the account.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	return doJSON[[]Tag](ctx, c, http.MethodGet, "/api/v1/link/tag")
}

// CreateTag creates a new tag.
func (c *Client) CreateTag(ctx context.Context, tag string) (*Tag, error) {
	if tag == "" {
		return nil, fmt.Errorf("tag is required")
	}
	created, err := doJSON[Tag](ctx, c, http.MethodPost, "/api/v1/link/tag",
		WithJSONBody(map[string]string{"tag": tag}))
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTag fetches a tag by ID.
func (c *Client) GetTag(ctx context.Context, tagID string) (*Tag, error) {
	tag, err := doJSON[Tag](ctx, c, http.MethodGet, "/api/v1/link/tag/"+url.PathEscape(tagID))
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// UpdateTag renames a tag.
func (c *Client) UpdateTag(ctx context.Context, tagID, tag string) (*Tag, error) {
	updated, err := doJSON[Tag](ctx, c, http.MethodPut, "/api/v1/link/tag/"+url.PathEscape(tagID),
		WithJSONBody(map[string]string{"tag": tag}))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTag deletes a tag by ID.
func (c *Client) DeleteTag(ctx context.Context, tagID string) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, http.MethodDelete, "/api/v1/link/tag/"+url.PathEscape(tagID))
}
