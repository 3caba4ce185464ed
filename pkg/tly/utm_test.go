package tly

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUTMPreset_RequiresFields(t *testing.T) {
	t.Parallel()

	client, err := New("test-token")
	require.NoError(t, err)

	_, err = client.CreateUTMPreset(context.Background(), UTMPresetParams{Name: "spring"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source, medium and campaign are required")
}

func TestCreateUTMPreset_OmitsUnsetOptionals(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/link/utm-preset", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "newsletter", payload["name"])
		assert.NotContains(t, payload, "content")
		assert.NotContains(t, payload, "term")

		writeJSON(t, w, UTMPreset{ID: 3, Name: "newsletter", Source: "mail", Medium: "email", Campaign: "weekly"})
	}))

	preset, err := client.CreateUTMPreset(context.Background(), UTMPresetParams{
		Name:     "newsletter",
		Source:   "mail",
		Medium:   "email",
		Campaign: "weekly",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), preset.ID)
}

func TestUTMPresetPathsCarryID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/link/utm-preset/3", r.URL.Path)
		writeJSON(t, w, UTMPreset{ID: 3, Name: "newsletter"})
	}))

	ctx := context.Background()

	_, err := client.GetUTMPreset(ctx, "3")
	require.NoError(t, err)

	_, err = client.UpdateUTMPreset(ctx, "3", UTMPresetParams{
		Name: "newsletter", Source: "mail", Medium: "email", Campaign: "weekly",
	})
	require.NoError(t, err)

	_, err = client.DeleteUTMPreset(ctx, "3")
	require.NoError(t, err)
}

func TestGetUTMPreset_EscapesID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/link/utm-preset/3%2Fextra", r.URL.EscapedPath())

		writeJSON(t, w, UTMPreset{ID: 3})
	}))

	_, err := client.GetUTMPreset(context.Background(), "3/extra")
	require.NoError(t, err)
}
