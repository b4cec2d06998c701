package favorites

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/skopia/astrodaily/internal/domain"
)

// Service is the favorites API used by the CLI: membership checks, add,
// remove, toggle, listing and export. Persistence is behind
// domain.FavoriteRepo so tests can swap in an in-memory double.
type Service interface {
	IsFavorite(ctx context.Context, date domain.Date) (bool, error)
	Add(ctx context.Context, entry domain.Entry) error
	Remove(ctx context.Context, date domain.Date) error
	Toggle(ctx context.Context, entry domain.Entry) (bool, error)
	All(ctx context.Context) ([]domain.Entry, error)
	Count(ctx context.Context) (int, error)
	Export(ctx context.Context, path string) error
}

type service struct {
	log    zerolog.Logger
	repo   domain.FavoriteRepo
	export domain.ExportRepo
}

func NewService(log zerolog.Logger, repo domain.FavoriteRepo, export domain.ExportRepo) Service {
	return &service{
		log:    log.With().Str("module", "favorites").Logger(),
		repo:   repo,
		export: export,
	}
}

func (s *service) IsFavorite(ctx context.Context, date domain.Date) (bool, error) {
	return s.repo.Exists(ctx, date)
}

func (s *service) Add(ctx context.Context, entry domain.Entry) error {
	if err := s.repo.Add(ctx, entry); err != nil {
		return err
	}
	s.log.Debug().Str("date", entry.Date.String()).Str("title", entry.Title).Msg("favorited")
	return nil
}

func (s *service) Remove(ctx context.Context, date domain.Date) error {
	return s.repo.Remove(ctx, date)
}

// Toggle favorites entry when it isn't favorited and unfavorites it when it
// is. Returns the new state.
func (s *service) Toggle(ctx context.Context, entry domain.Entry) (bool, error) {
	favorited, err := s.repo.Exists(ctx, entry.Date)
	if err != nil {
		return false, err
	}

	if favorited {
		if err := s.repo.Remove(ctx, entry.Date); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) All(ctx context.Context) ([]domain.Entry, error) {
	return s.repo.All(ctx)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Export writes the current favorites to path via the file repository.
func (s *service) Export(ctx context.Context, path string) error {
	entries, err := s.repo.All(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load favorites")
	}

	if err := s.export.Store(ctx, path, entries); err != nil {
		return errors.Wrap(err, "failed to export favorites")
	}

	s.log.Info().Str("path", path).Int("count", len(entries)).Msg("favorites exported")
	return nil
}
