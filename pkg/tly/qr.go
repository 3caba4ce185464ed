package tly

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// GetQRCodeImage fetches the QR code of a short link as a raw image.
// Format is png or eps; empty means png.
func (c *Client) GetQRCodeImage(ctx context.Context, shortURL, format string) ([]byte, error) {
	if format == "" {
		format = QRFormatPNG
	}
	query := make(url.Values)
	query.Set("short_url", shortURL)
	query.Set("output", QROutputImage)
	query.Set("format", format)

	body, _, err := c.Do(ctx, http.MethodGet, "/api/v1/link/qr-code",
		WithQuery(query),
		WithHeader("Accept", "image/png,*/*"))
	return body, err
}

// GetQRCodeBase64 fetches the QR code of a short link as a JSON document
// carrying a base64-encoded image.
func (c *Client) GetQRCodeBase64(ctx context.Context, shortURL, format string) (json.RawMessage, error) {
	if format == "" {
		format = QRFormatPNG
	}
	query := make(url.Values)
	query.Set("short_url", shortURL)
	query.Set("output", QROutputBase64)
	query.Set("format", format)

	return doJSON[json.RawMessage](ctx, c, http.MethodGet, "/api/v1/link/qr-code", WithQuery(query))
}

// UpdateQRCode updates the styling of a short link's QR code.
func (c *Client) UpdateQRCode(ctx context.Context, params UpdateQRCodeParams) (json.RawMessage, error) {
	return doJSON[json.RawMessage](ctx, c, http.MethodPut, "/api/v1/link/qr-code", WithJSONBody(params))
}
