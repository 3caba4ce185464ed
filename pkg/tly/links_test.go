package tly

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShortLink(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/link/shorten", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "https://example.com/very/long", payload["long_url"])
		assert.Equal(t, "a description", payload["description"])
		// Unset optionals must not be forwarded.
		assert.NotContains(t, payload, "domain")
		assert.NotContains(t, payload, "public_stats")
		assert.NotContains(t, payload, "meta")

		writeJSON(t, w, ShortLink{
			ShortURL: "https://t.ly/abc",
			LongURL:  "https://example.com/very/long",
		})
	}))

	link, err := client.CreateShortLink(context.Background(), CreateShortLinkParams{
		LongURL:     "https://example.com/very/long",
		Description: "a description",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://t.ly/abc", link.ShortURL)
	assert.Equal(t, "https://example.com/very/long", link.LongURL)
}

func TestCreateShortLink_RequiresLongURL(t *testing.T) {
	t.Parallel()

	client, err := New("test-token")
	require.NoError(t, err)

	_, err = client.CreateShortLink(context.Background(), CreateShortLinkParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "long_url is required")
}

func TestGetShortLink(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/link", r.URL.Path)
		assert.Equal(t, "https://t.ly/abc", r.URL.Query().Get("short_url"))

		writeJSON(t, w, ShortLink{ShortURL: "https://t.ly/abc", LongURL: "https://example.com"})
	}))

	link, err := client.GetShortLink(context.Background(), "https://t.ly/abc")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", link.LongURL)
}

func TestUpdateShortLink(t *testing.T) {
	t.Parallel()

	publicStats := true
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/link", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "https://t.ly/abc", payload["short_url"])
		assert.Equal(t, true, payload["public_stats"])

		writeJSON(t, w, ShortLink{ShortURL: "https://t.ly/abc", PublicStats: &publicStats})
	}))

	link, err := client.UpdateShortLink(context.Background(), UpdateShortLinkParams{
		ShortURL:    "https://t.ly/abc",
		PublicStats: &publicStats,
	})
	require.NoError(t, err)
	require.NotNil(t, link.PublicStats)
	assert.True(t, *link.PublicStats)
}

func TestDeleteShortLink_SendsBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/link", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "https://t.ly/abc", payload["short_url"])

		writeJSON(t, w, map[string]string{"message": "OK"})
	}))

	result, err := client.DeleteShortLink(context.Background(), "https://t.ly/abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"OK"}`, string(result))
}

func TestExpandShortLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		password     string
		wantPassword bool
	}{
		{name: "without password", password: "", wantPassword: false},
		{name: "with password", password: "hunter2", wantPassword: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/v1/link/expand", r.URL.Path)

				var payload map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				assert.Equal(t, "https://t.ly/abc", payload["short_url"])
				if tt.wantPassword {
					assert.Equal(t, tt.password, payload["password"])
				} else {
					assert.NotContains(t, payload, "password")
				}

				writeJSON(t, w, ExpandedLink{LongURL: "https://example.com", Expired: false})
			}))

			expanded, err := client.ExpandShortLink(context.Background(), "https://t.ly/abc", tt.password)
			require.NoError(t, err)
			assert.Equal(t, "https://example.com", expanded.LongURL)
			assert.False(t, expanded.Expired)
		})
	}
}

func TestListShortLinks_IndexedQueryParams(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/link/list", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "campaign", query.Get("search"))
		assert.Equal(t, "1", query.Get("tag_ids[0]"))
		assert.Equal(t, "2", query.Get("tag_ids[1]"))
		assert.Equal(t, "7", query.Get("pixel_ids[0]"))
		assert.Equal(t, "2026-01-01", query.Get("start_date"))
		assert.Equal(t, "2026-02-01", query.Get("end_date"))

		writeJSON(t, w, ShortLinkPage{
			CurrentPage: 1,
			Data:        []ShortLink{{ShortURL: "https://t.ly/abc"}},
			Total:       1,
		})
	}))

	page, err := client.ListShortLinks(context.Background(), ListShortLinksParams{
		Search:    "campaign",
		TagIDs:    []string{"1", "2"},
		PixelIDs:  []string{"7"},
		StartDate: "2026-01-01",
		EndDate:   "2026-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "https://t.ly/abc", page.Data[0].ShortURL)
}

func TestBulkShortenLinks(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/link/bulk", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		links, ok := payload["links"].([]any)
		require.True(t, ok)
		assert.Len(t, links, 2)
		assert.Equal(t, "t.ly", payload["domain"])

		writeJSON(t, w, map[string]any{"created": 2})
	}))

	result, err := client.BulkShortenLinks(context.Background(), BulkShortenParams{
		Links: []BulkLink{
			{LongURL: "https://example.com/1"},
			{LongURL: "https://example.com/2"},
		},
		Domain: "t.ly",
		Tags:   []int64{3},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"created":2}`, string(result))
}

func TestBulkShortenLinks_RequiresLinks(t *testing.T) {
	t.Parallel()

	client, err := New("test-token")
	require.NoError(t, err)

	_, err = client.BulkShortenLinks(context.Background(), BulkShortenParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "links is required")
}

func TestGetLinkStats(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/link/stats", r.URL.Path)

		query := r.URL.Query()
		assert.Equal(t, "https://t.ly/abc", query.Get("short_url"))
		assert.Equal(t, "2026-01-01", query.Get("start_date"))
		assert.Empty(t, query.Get("end_date"))

		writeJSON(t, w, map[string]any{"clicks": 42, "unique_clicks": 7})
	}))

	stats, err := client.GetLinkStats(context.Background(), "https://t.ly/abc", StatsParams{
		StartDate: "2026-01-01",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"clicks":42,"unique_clicks":7}`, string(stats))
}
