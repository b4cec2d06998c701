package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/skopia/astrodaily/internal/domain"
)

func exportEntries() []domain.Entry {
	return []domain.Entry{
		{
			Date:        domain.NewDate(2024, time.March, 15),
			Title:       "Comet",
			Explanation: "A comet swings by.",
			MediaType:   "image",
			URL:         "https://example.com/comet.jpg",
		},
		{
			Date:         domain.NewDate(2024, time.March, 14),
			Title:        "Galaxy",
			Explanation:  "A galaxy far away.",
			MediaType:    "video",
			URL:          "https://example.com/galaxy",
			ThumbnailURL: "https://example.com/galaxy.jpg",
		},
	}
}

func TestFileRepositoryStoreJSON(t *testing.T) {
	repo := NewFileRepository(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "nested", "favorites.json")

	require.NoError(t, repo.Store(context.Background(), path, exportEntries()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []domain.Entry
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, exportEntries(), decoded)
}

func TestFileRepositoryStoreYAML(t *testing.T) {
	repo := NewFileRepository(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "favorites.yaml")

	require.NoError(t, repo.Store(context.Background(), path, exportEntries()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		Entries []domain.Entry `yaml:"entries"`
	}
	require.NoError(t, yaml.Unmarshal(body, &decoded))
	assert.Equal(t, exportEntries(), decoded.Entries)
	assert.Contains(t, string(body), "2024-03-15")
}
