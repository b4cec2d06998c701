package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/skopia/astrodaily/internal/domain"
)

// FavoriteRepo persists favorites in SQLite. At most one favorite exists per
// date, and the collection is capped: an add past the cap is rejected, never
// evicted.
type FavoriteRepo struct {
	log   zerolog.Logger
	db    *DB
	limit int
	now   func() time.Time
}

func NewFavoriteRepo(log zerolog.Logger, db *DB, limit int) *FavoriteRepo {
	if limit <= 0 {
		limit = domain.DefaultMaxFavorites
	}
	return &FavoriteRepo{
		log:   log.With().Str("repo", "favorites").Logger(),
		db:    db,
		limit: limit,
		now:   time.Now,
	}
}

var _ domain.FavoriteRepo = (*FavoriteRepo)(nil)

// WithClock replaces the timestamp source, for deterministic saved_at values
// in tests.
func (r *FavoriteRepo) WithClock(now func() time.Time) *FavoriteRepo {
	r.now = now
	return r
}

// Add inserts entry as a favorite. Required fields must be non-empty, the cap
// must not be reached, and an already-favorited date is a no-op. The count
// check and insert run in one transaction so a failure leaves no partial
// record.
func (r *FavoriteRepo) Add(ctx context.Context, entry domain.Entry) error {
	if err := validate(entry); err != nil {
		return err
	}

	tx, err := r.db.handler.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM favorites WHERE date = ?)", entry.Date.String()).Scan(&exists)
	if err != nil {
		return errors.Wrap(err, "failed to check existing favorite")
	}
	if exists {
		return nil
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM favorites").Scan(&count); err != nil {
		return errors.Wrap(err, "failed to count favorites")
	}
	if count >= r.limit {
		return &domain.LimitError{Limit: r.limit}
	}

	query, args, err := r.db.squirrel.
		Insert("favorites").
		Columns("date", "title", "explanation", "media_type", "url", "hdurl", "thumbnail_url", "copyright", "service_version", "saved_at").
		Values(
			entry.Date.String(),
			entry.Title,
			entry.Explanation,
			entry.MediaType,
			entry.URL,
			entry.HDURL,
			entry.ThumbnailURL,
			entry.Copyright,
			entry.ServiceVersion,
			r.now().UTC().Format(time.RFC3339),
		).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Add")

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "error executing query")
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit favorite")
	}

	r.log.Debug().Str("date", entry.Date.String()).Msg("favorite added")
	return nil
}

// Remove deletes the favorite for date if present, no-op otherwise.
func (r *FavoriteRepo) Remove(ctx context.Context, date domain.Date) error {
	query, args, err := r.db.squirrel.
		Delete("favorites").
		Where(sq.Eq{"date": date.String()}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "error building delete query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Remove")

	if _, err := r.db.handler.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrap(err, "error executing delete query")
	}

	return nil
}

// Exists reports whether date is favorited.
func (r *FavoriteRepo) Exists(ctx context.Context, date domain.Date) (bool, error) {
	var exists bool
	err := r.db.handler.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM favorites WHERE date = ?)", date.String()).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite")
	}
	return exists, nil
}

// Get returns the favorited entry for date.
func (r *FavoriteRepo) Get(ctx context.Context, date domain.Date) (domain.Entry, error) {
	query, args, err := r.selectEntries().
		Where(sq.Eq{"date": date.String()}).
		ToSql()
	if err != nil {
		return domain.Entry{}, errors.Wrap(err, "error building query")
	}

	row := r.db.handler.QueryRowContext(ctx, query, args...)
	entry, err := scanEntry(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Entry{}, domain.ErrFavoriteNotFound
		}
		return domain.Entry{}, errors.Wrap(err, "error scanning favorite")
	}

	return entry, nil
}

// All returns every favorite, most recently saved first.
func (r *FavoriteRepo) All(ctx context.Context) ([]domain.Entry, error) {
	query, args, err := r.selectEntries().
		OrderBy("saved_at DESC", "date DESC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("All")

	rows, err := r.db.handler.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing query")
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, errors.Wrap(err, "error scanning row")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "error iterating rows")
	}

	return entries, nil
}

// Count returns the number of favorites.
func (r *FavoriteRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.handler.QueryRowContext(ctx, "SELECT COUNT(*) FROM favorites").Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count favorites")
	}
	return count, nil
}

func (r *FavoriteRepo) selectEntries() sq.SelectBuilder {
	return r.db.squirrel.
		Select("date", "title", "explanation", "media_type", "url", "hdurl", "thumbnail_url", "copyright", "service_version").
		From("favorites")
}

func scanEntry(scan func(dest ...interface{}) error) (domain.Entry, error) {
	var (
		entry   domain.Entry
		dateStr string
		hdurl   sql.NullString
		thumb   sql.NullString
		copyr   sql.NullString
		version sql.NullString
	)

	if err := scan(&dateStr, &entry.Title, &entry.Explanation, &entry.MediaType, &entry.URL, &hdurl, &thumb, &copyr, &version); err != nil {
		return domain.Entry{}, err
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		return domain.Entry{}, err
	}

	entry.Date = date
	entry.HDURL = hdurl.String
	entry.ThumbnailURL = thumb.String
	entry.Copyright = copyr.String
	entry.ServiceVersion = version.String
	return entry, nil
}

func validate(entry domain.Entry) error {
	switch {
	case entry.Date.IsZero():
		return &domain.ValidationError{Field: "date"}
	case entry.Title == "":
		return &domain.ValidationError{Field: "title"}
	case entry.Explanation == "":
		return &domain.ValidationError{Field: "explanation"}
	case entry.MediaType == "":
		return &domain.ValidationError{Field: "media_type"}
	}
	return nil
}
