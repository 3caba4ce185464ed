package tly

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQRCodeImage(t *testing.T) {
	t.Parallel()

	pngBytes := []byte{0x89, 'P', 'N', 'G', '\r', '\n'}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/link/qr-code", r.URL.Path)
		assert.Equal(t, "image/png,*/*", r.Header.Get("Accept"))

		query := r.URL.Query()
		assert.Equal(t, "https://t.ly/abc", query.Get("short_url"))
		assert.Equal(t, "image", query.Get("output"))
		assert.Equal(t, "png", query.Get("format"))

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))

	// Empty format defaults to png.
	image, err := client.GetQRCodeImage(context.Background(), "https://t.ly/abc", "")
	require.NoError(t, err)
	assert.Equal(t, pngBytes, image)
}

func TestGetQRCodeBase64(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "base64", query.Get("output"))
		assert.Equal(t, "eps", query.Get("format"))

		writeJSON(t, w, map[string]string{"data": "aGVsbG8="})
	}))

	result, err := client.GetQRCodeBase64(context.Background(), "https://t.ly/abc", QRFormatEPS)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":"aGVsbG8="}`, string(result))
}

func TestUpdateQRCode_OmitsUnsetStyling(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/link/qr-code", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "https://t.ly/abc", payload["short_url"])
		assert.Equal(t, "#ffffff", payload["background_color"])
		assert.NotContains(t, payload, "dots_color")
		assert.NotContains(t, payload, "image")

		writeJSON(t, w, map[string]string{"message": "OK"})
	}))

	result, err := client.UpdateQRCode(context.Background(), UpdateQRCodeParams{
		ShortURL:        "https://t.ly/abc",
		BackgroundColor: "#ffffff",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"OK"}`, string(result))
}
