package tly

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTags(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/link/tag", r.URL.Path)

		writeJSON(t, w, []Tag{{ID: 1, Tag: "fall2026"}, {ID: 2, Tag: "promo"}})
	}))

	tags, err := client.ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "fall2026", tags[0].Tag)
}

func TestCreateTag_RequiresTag(t *testing.T) {
	t.Parallel()

	client, err := New("test-token")
	require.NoError(t, err)

	_, err = client.CreateTag(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag is required")
}

func TestTagCRUDPaths(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			assert.Equal(t, "/api/v1/link/tag", r.URL.Path)
		case r.Method == http.MethodGet, r.Method == http.MethodDelete:
			assert.Equal(t, "/api/v1/link/tag/5", r.URL.Path)
		case r.Method == http.MethodPut:
			assert.Equal(t, "/api/v1/link/tag/5", r.URL.Path)
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "renamed", payload["tag"])
		}
		writeJSON(t, w, Tag{ID: 5, Tag: "renamed"})
	}))

	ctx := context.Background()

	created, err := client.CreateTag(ctx, "renamed")
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)

	got, err := client.GetTag(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)

	updated, err := client.UpdateTag(ctx, "5", "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Tag)

	_, err = client.DeleteTag(ctx, "5")
	require.NoError(t, err)
}

func TestGetTag_EscapesID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/link/tag/5%2F..%2Fadmin", r.URL.EscapedPath())

		writeJSON(t, w, Tag{ID: 5, Tag: "promo"})
	}))

	_, err := client.GetTag(context.Background(), "5/../admin")
	require.NoError(t, err)
}
