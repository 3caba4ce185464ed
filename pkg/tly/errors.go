package tly

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// APIError represents a non-2xx response from the T.LY API.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Message is a description of the error, extracted from the response body
	// when possible.
	Message string

	// Body is the raw response body.
	Body string

	// URL is the requested URL.
	URL string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("t.ly API error (%d): %s", e.StatusCode, e.Message)
}

// IsAPIError checks if an error is an APIError with the specified status code.
// If statusCode is 0, it matches any APIError.
func IsAPIError(err error, statusCode int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if statusCode == 0 {
		return true
	}
	return apiErr.StatusCode == statusCode
}

// extractErrorMessage pulls a human-readable message out of an API error body.
// The API is not consistent about its error shape, so try the known keys in
// order before falling back to the raw body.
func extractErrorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "message"); msg.Type == gjson.String {
		return msg.String()
	}
	if msg := gjson.GetBytes(body, "error"); msg.Type == gjson.String {
		return msg.String()
	}
	if errs := gjson.GetBytes(body, "errors"); errs.IsObject() || errs.IsArray() {
		return errs.Raw
	}

	text := strings.TrimSpace(string(body))
	if text == "" {
		return "Request failed"
	}
	return text
}
