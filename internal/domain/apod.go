package domain

import "strings"

// MediaKind classifies what an entry's primary URL points at.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
	MediaKindOther MediaKind = "other"
)

// Entry is one day's published APOD record. The date uniquely identifies an
// entry; entries are immutable once decoded from the network or reconstructed
// from a persisted favorite.
type Entry struct {
	Date           Date   `json:"date" yaml:"date"`
	Title          string `json:"title" yaml:"title"`
	Explanation    string `json:"explanation" yaml:"explanation"`
	MediaType      string `json:"media_type" yaml:"media_type"`
	URL            string `json:"url" yaml:"url"`
	HDURL          string `json:"hdurl,omitempty" yaml:"hdurl,omitempty"`
	ThumbnailURL   string `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty"`
	Copyright      string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	ServiceVersion string `json:"service_version,omitempty" yaml:"service_version,omitempty"`
}

// MediaKind derives the enumerated media kind from the raw media_type field.
func (e Entry) MediaKind() MediaKind {
	switch strings.ToLower(e.MediaType) {
	case "image":
		return MediaKindImage
	case "video":
		return MediaKindVideo
	default:
		return MediaKindOther
	}
}

// DisplayURL returns the URL a client should render as a still image: the
// thumbnail for videos when present, the primary URL otherwise.
func (e Entry) DisplayURL() string {
	if e.MediaKind() == MediaKindVideo && e.ThumbnailURL != "" {
		return e.ThumbnailURL
	}
	return e.URL
}
