package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryMediaKind(t *testing.T) {
	tests := []struct {
		raw  string
		want MediaKind
	}{
		{"image", MediaKindImage},
		{"Image", MediaKindImage},
		{"video", MediaKindVideo},
		{"VIDEO", MediaKindVideo},
		{"interactive", MediaKindOther},
		{"", MediaKindOther},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			entry := Entry{MediaType: tt.raw}
			assert.Equal(t, tt.want, entry.MediaKind())
		})
	}
}

func TestEntryDisplayURL(t *testing.T) {
	image := Entry{MediaType: "image", URL: "https://apod.nasa.gov/apod/image/x.jpg"}
	assert.Equal(t, image.URL, image.DisplayURL())

	video := Entry{
		MediaType:    "video",
		URL:          "https://www.youtube.com/embed/abc",
		ThumbnailURL: "https://img.youtube.com/vi/abc/0.jpg",
	}
	assert.Equal(t, video.ThumbnailURL, video.DisplayURL())

	videoWithoutThumb := Entry{MediaType: "video", URL: "https://www.youtube.com/embed/abc"}
	assert.Equal(t, videoWithoutThumb.URL, videoWithoutThumb.DisplayURL())
}

func TestEntryDecode(t *testing.T) {
	body := `{
		"date": "2024-03-15",
		"explanation": "A comet swings by.",
		"hdurl": "https://apod.nasa.gov/apod/image/big.jpg",
		"media_type": "image",
		"service_version": "v1",
		"title": "Comet",
		"url": "https://apod.nasa.gov/apod/image/small.jpg",
		"copyright": "J. Doe"
	}`

	var entry Entry
	require.NoError(t, json.Unmarshal([]byte(body), &entry))

	assert.Equal(t, NewDate(2024, time.March, 15), entry.Date)
	assert.Equal(t, "Comet", entry.Title)
	assert.Equal(t, "A comet swings by.", entry.Explanation)
	assert.Equal(t, MediaKindImage, entry.MediaKind())
	assert.Equal(t, "https://apod.nasa.gov/apod/image/big.jpg", entry.HDURL)
	assert.Equal(t, "J. Doe", entry.Copyright)
	assert.Empty(t, entry.ThumbnailURL)
}
