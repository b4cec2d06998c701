package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/skopia/astrodaily/internal/domain"
)

// FileRepository writes favorites snapshots to disk, as JSON or YAML
// depending on the file extension.
type FileRepository struct {
	log zerolog.Logger
}

func NewFileRepository(log zerolog.Logger) *FileRepository {
	return &FileRepository{
		log: log.With().Str("module", "export").Logger(),
	}
}

var _ domain.ExportRepo = (*FileRepository)(nil)

// Store marshals entries and writes them to path, creating parent
// directories as needed. ".yaml"/".yml" produce YAML, everything else
// pretty-printed JSON.
func (r *FileRepository) Store(ctx context.Context, path string, entries []domain.Entry) error {
	var (
		body []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		body, err = yaml.Marshal(exportDoc{Entries: entries})
	default:
		body, err = json.MarshalIndent(entries, "", "   ")
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal favorites")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", path)
	}
	defer f.Close()

	if _, err := f.Write(body); err != nil {
		return errors.Wrapf(err, "failed to write file %s", path)
	}

	r.log.Debug().Str("path", path).Int("count", len(entries)).Msg("stored favorites export")
	return nil
}

type exportDoc struct {
	Entries []domain.Entry `yaml:"entries"`
}
