package tly

// ShortLink is a shortened URL record managed by the remote service.
// Fields the server does not populate are left at their zero value.
type ShortLink struct {
	ID               int64          `json:"id,omitempty"`
	ShortURL         string         `json:"short_url"`
	LongURL          string         `json:"long_url"`
	ShortID          string         `json:"short_id,omitempty"`
	Domain           string         `json:"domain,omitempty"`
	Description      string         `json:"description,omitempty"`
	ExpireAtDatetime string         `json:"expire_at_datetime,omitempty"`
	PublicStats      *bool          `json:"public_stats,omitempty"`
	Meta             map[string]any `json:"meta,omitempty"`
	CreatedAt        string         `json:"created_at,omitempty"`
	UpdatedAt        string         `json:"updated_at,omitempty"`
}

// ShortLinkPage is one page of a short-link listing.
type ShortLinkPage struct {
	CurrentPage int         `json:"current_page"`
	Data        []ShortLink `json:"data"`
	From        int         `json:"from,omitempty"`
	To          int         `json:"to,omitempty"`
	PerPage     int         `json:"per_page,omitempty"`
	LastPage    int         `json:"last_page,omitempty"`
	Total       int         `json:"total,omitempty"`
	NextPageURL *string     `json:"next_page_url,omitempty"`
	PrevPageURL *string     `json:"prev_page_url,omitempty"`
}

// ExpandedLink is the result of expanding a short link.
type ExpandedLink struct {
	LongURL string `json:"long_url"`
	Expired bool   `json:"expired,omitempty"`
}

// Tag is a label attached to short links.
type Tag struct {
	ID  int64  `json:"id"`
	Tag string `json:"tag"`
}

// Pixel is a tracking-pixel resource attached to links.
type Pixel struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	PixelID   string `json:"pixel_id"`
	PixelType string `json:"pixel_type"`
}

// UTMPreset is a saved set of campaign-tracking query parameters.
type UTMPreset struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Content  string `json:"content,omitempty"`
	Term     string `json:"term,omitempty"`
}

// CreateShortLinkParams are the inputs for CreateShortLink. Optional fields
// are omitted from the request when unset.
type CreateShortLinkParams struct {
	LongURL          string         `json:"long_url"`
	Domain           string         `json:"domain,omitempty"`
	ExpireAtDatetime string         `json:"expire_at_datetime,omitempty"`
	Description      string         `json:"description,omitempty"`
	PublicStats      *bool          `json:"public_stats,omitempty"`
	Meta             map[string]any `json:"meta,omitempty"`
}

// UpdateShortLinkParams are the inputs for UpdateShortLink. The short URL
// identifies the link; every other field is an optional update.
type UpdateShortLinkParams struct {
	ShortURL         string         `json:"short_url"`
	LongURL          string         `json:"long_url,omitempty"`
	ExpireAtDatetime string         `json:"expire_at_datetime,omitempty"`
	Description      string         `json:"description,omitempty"`
	PublicStats      *bool          `json:"public_stats,omitempty"`
	Meta             map[string]any `json:"meta,omitempty"`
}

// ListShortLinksParams are the filters for ListShortLinks. ID slices are sent
// with the API's indexed array convention (tag_ids[0]=...).
type ListShortLinksParams struct {
	Search    string
	TagIDs    []string
	PixelIDs  []string
	Domains   []string
	StartDate string
	EndDate   string
}

// StatsParams bound the date range of a stats query.
type StatsParams struct {
	StartDate string
	EndDate   string
}

// BulkLink is one entry of a bulk shorten request.
type BulkLink struct {
	LongURL          string `json:"long_url"`
	Description      string `json:"description,omitempty"`
	ExpireAtDatetime string `json:"expire_at_datetime,omitempty"`
}

// BulkShortenParams are the inputs for BulkShortenLinks.
type BulkShortenParams struct {
	Links  []BulkLink `json:"links"`
	Domain string     `json:"domain,omitempty"`
	Tags   []int64    `json:"tags,omitempty"`
	Pixels []int64    `json:"pixels,omitempty"`
}

// BulkUpdateLink is one entry of a bulk update request.
type BulkUpdateLink struct {
	ShortURL    string `json:"short_url"`
	LongURL     string `json:"long_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// BulkUpdateParams are the inputs for BulkUpdateLinks.
type BulkUpdateParams struct {
	Links  []BulkUpdateLink `json:"links"`
	Tags   []int64          `json:"tags,omitempty"`
	Pixels []int64          `json:"pixels,omitempty"`
}

// UTMPresetParams are the inputs for creating or updating a UTM preset.
type UTMPresetParams struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Content  string `json:"content,omitempty"`
	Term     string `json:"term,omitempty"`
}

// PixelParams are the inputs for creating or updating a pixel.
type PixelParams struct {
	Name      string `json:"name"`
	PixelID   string `json:"pixel_id"`
	PixelType string `json:"pixel_type"`
}

// QR code output and format values accepted by the API.
const (
	QROutputImage  = "image"
	QROutputBase64 = "base64"
	QRFormatPNG    = "png"
	QRFormatEPS    = "eps"
)

// UpdateQRCodeParams are the styling inputs for UpdateQRCode.
type UpdateQRCodeParams struct {
	ShortURL        string `json:"short_url"`
	Image           string `json:"image,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	CornerDotsColor string `json:"corner_dots_color,omitempty"`
	DotsColor       string `json:"dots_color,omitempty"`
	DotsStyle       string `json:"dots_style,omitempty"`
	CornerStyle     string `json:"corner_style,omitempty"`
}
