package tly

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// Endpoint describes one remote API operation.
type Endpoint struct {
	// Method is the HTTP verb.
	Method string

	// Path is the endpoint path. A literal {id} segment is filled from the
	// caller's "id" parameter.
	Path string

	// Group is the vendor's endpoint grouping, as documented.
	Group string

	// Label is the vendor's display name for the endpoint.
	Label string
}

// Endpoints maps operation names to their remote endpoints. The names match
// the vendor's endpoint catalog and are the operations accepted by
// [Client.Call].
var Endpoints = map[string]Endpoint{
	"create_short_link": {
		Method: http.MethodPost,
		Path:   "/api/v1/link/shorten",
		Group:  "ShortLink Management",
		Label:  "Create Short Link",
	},
	"get_short_link": {
		Method: http.MethodGet,
		Path:   "/api/v1/link",
		Group:  "ShortLink Management",
		Label:  "Get Short Link",
	},
	"update_short_link": {
		Method: http.MethodPut,
		Path:   "/api/v1/link",
		Group:  "ShortLink Management",
		Label:  "Update Short Link",
	},
	"delete_short_link": {
		Method: http.MethodDelete,
		Path:   "/api/v1/link",
		Group:  "ShortLink Management",
		Label:  "Delete Short Link",
	},
	"expand_short_link": {
		Method: http.MethodPost,
		Path:   "/api/v1/link/expand",
		Group:  "ShortLink Management",
		Label:  "Expand Short Link",
	},
	"list_short_links": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/list",
		Group:  "ShortLink Management",
		Label:  "List Short Links",
	},
	"bulk_shorten_links": {
		Method: http.MethodPost,
		Path:   "/api/v1/link/bulk",
		Group:  "ShortLink Management",
		Label:  "Bulk Shorten Links",
	},
	"bulk_update_links": {
		Method: http.MethodPost,
		Path:   "/api/v1/link/bulk/update",
		Group:  "ShortLink Management",
		Label:  "Bulk Update Links",
	},
	"get_link_stats": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/stats",
		Group:  "ShortLink Stats",
		Label:  "Stats",
	},
	"get_onelink_stats": {
		Method: http.MethodGet,
		Path:   "/api/v1/onelink/stats",
		Group:  "OneLink Stats Management",
		Label:  "api/v1/onelink/stats",
	},
	"delete_onelink_stats": {
		Method: http.MethodDelete,
		Path:   "/api/v1/onelink/stat",
		Group:  "OneLink Stats Management",
		Label:  "Delete OneLink Stats",
	},
	"list_onelinks": {
		Method: http.MethodGet,
		Path:   "/api/v1/onelink/list",
		Group:  "OneLink Management",
		Label:  "List OneLinks",
	},
	"create_utm_preset": {
		Method: http.MethodPost,
		Path:   "/api/v1/link/utm-preset",
		Group:  "UTM Preset Management",
		Label:  "Create UTM Preset",
	},
	"list_utm_presets": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/utm-preset",
		Group:  "UTM Preset Management",
		Label:  "List UTM Presets",
	},
	"get_utm_preset": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/utm-preset/{id}",
		Group:  "UTM Preset Management",
		Label:  "Get UTM Preset",
	},
	"update_utm_preset": {
		Method: http.MethodPut,
		Path:   "/api/v1/link/utm-preset/{id}",
		Group:  "UTM Preset Management",
		Label:  "Update UTM Preset",
	},
	"delete_utm_preset": {
		Method: http.MethodDelete,
		Path:   "/api/v1/link/utm-preset/{id}",
		Group:  "UTM Preset Management",
		Label:  "Delete UTM Preset",
	},
	"create_pixel": {
		Method: http.MethodPost,
		Path:   "/api/v1/link/pixel",
		Group:  "Pixel Management",
		Label:  "Create Pixel",
	},
	"list_pixels": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/pixel",
		Group:  "Pixel Management",
		Label:  "List Pixel",
	},
	"get_pixel": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/pixel/{id}",
		Group:  "Pixel Management",
		Label:  "Get Pixel",
	},
	"update_pixel": {
		Method: http.MethodPut,
		Path:   "/api/v1/link/pixel/{id}",
		Group:  "Pixel Management",
		Label:  "Update Pixel",
	},
	"delete_pixel": {
		Method: http.MethodDelete,
		Path:   "/api/v1/link/pixel/{id}",
		Group:  "Pixel Management",
		Label:  "Delete Pixel",
	},
	"get_qr_code": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/qr-code",
		Group:  "QR Code Management",
		Label:  "Get QR Code",
	},
	"update_qr_code": {
		Method: http.MethodPut,
		Path:   "/api/v1/link/qr-code",
		Group:  "QR Code Management",
		Label:  "Update QR Code",
	},
	"list_tags": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/tag",
		Group:  "Tag Management",
		Label:  "List Tag",
	},
	"create_tag": {
		Method: http.MethodPost,
		Path:   "/api/v1/link/tag",
		Group:  "Tag Management",
		Label:  "Create Tag",
	},
	"get_tag": {
		Method: http.MethodGet,
		Path:   "/api/v1/link/tag/{id}",
		Group:  "Tag Management",
		Label:  "Get Tag",
	},
	"update_tag": {
		Method: http.MethodPut,
		Path:   "/api/v1/link/tag/{id}",
		Group:  "Tag Management",
		Label:  "Update Tag",
	},
	"delete_tag": {
		Method: http.MethodDelete,
		Path:   "/api/v1/link/tag/{id}",
		Group:  "Tag Management",
		Label:  "Delete Tag",
	},
}

// SupportedOperations returns the operation names accepted by [Client.Call],
// sorted alphabetically.
func SupportedOperations() []string {
	names := make([]string, 0, len(Endpoints))
	for name := range Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CallResult is the response of a generic [Client.Call].
type CallResult struct {
	// Body is the raw response body.
	Body []byte

	// ContentType is the response Content-Type header.
	ContentType string

	// Binary reports whether the body is a raw image rather than JSON.
	Binary bool
}

// Call dispatches an operation through the endpoint table. The {id} path
// segment is filled from params["id"]; remaining parameters become the query
// string for GET requests and the JSON body otherwise. The response is
// returned as-is so callers can forward it unmodified.
func (c *Client) Call(ctx context.Context, operation string, params map[string]any) (*CallResult, error) {
	endpoint, ok := Endpoints[operation]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q (see SupportedOperations)", operation)
	}

	// Work on a copy so the caller's map is not mutated.
	remaining := make(map[string]any, len(params))
	for key, value := range params {
		remaining[key] = value
	}

	path := endpoint.Path
	if strings.Contains(path, "{id}") {
		id, ok := remaining["id"]
		if !ok {
			return nil, fmt.Errorf("operation %q requires an \"id\" parameter", operation)
		}
		path = strings.Replace(path, "{id}", url.PathEscape(fmt.Sprint(id)), 1)
		delete(remaining, "id")
	}

	var opts []RequestOption
	if endpoint.Method == http.MethodGet {
		opts = append(opts, WithQuery(queryFromParams(remaining)))
	} else if len(remaining) > 0 {
		opts = append(opts, WithJSONBody(remaining))
	}

	binary := operation == "get_qr_code" && fmt.Sprint(remaining["output"]) != QROutputBase64
	if binary {
		opts = append(opts, WithHeader("Accept", "image/png,*/*"))
	}

	body, headers, err := c.Do(ctx, endpoint.Method, path, opts...)
	if err != nil {
		return nil, err
	}

	return &CallResult{
		Body:        body,
		ContentType: headers.Get("Content-Type"),
		Binary:      binary,
	}, nil
}

// queryFromParams converts a parameter map to a query string. Slice values
// use the API's indexed array convention.
func queryFromParams(params map[string]any) url.Values {
	query := make(url.Values)
	for key, value := range params {
		switch values := value.(type) {
		case []any:
			strs := make([]string, 0, len(values))
			for _, v := range values {
				strs = append(strs, fmt.Sprint(v))
			}
			addIndexedParams(query, key, strs)
		case []string:
			addIndexedParams(query, key, values)
		default:
			query.Set(key, fmt.Sprint(value))
		}
	}
	return query
}
