package entity

import (
	"io"
	"net/url"
	"path"
	"strings"
)

// Asset is an object stored in the remote asset store.
type Asset struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ImageFile is an uploaded image ready to be pushed to the asset store.
type ImageFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AssetIDFromURL derives a legacy asset identifier: the last path segment of the URL
// with its extension removed. It returns "" when the URL has no usable segment.
func AssetIDFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	if i := strings.Index(base, "."); i >= 0 {
		base = base[:i]
	}
	return base
}
