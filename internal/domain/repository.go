package domain

import "context"

// ApodService is the remote data source: a single-attempt request/decode
// against the APOD endpoint. Retry policy lives one layer up, in the
// repository.
type ApodService interface {
	FetchEntry(ctx context.Context, date Date) (Entry, error)
	FetchRange(ctx context.Context, start, end Date) ([]Entry, error)
}

// FavoriteRepo defines durable favorite persistence, keyed by date.
type FavoriteRepo interface {
	Exists(ctx context.Context, date Date) (bool, error)
	Add(ctx context.Context, entry Entry) error
	Remove(ctx context.Context, date Date) error
	Get(ctx context.Context, date Date) (Entry, error)
	All(ctx context.Context) ([]Entry, error)
	Count(ctx context.Context) (int, error)
}

// ExportRepo writes a favorites snapshot to a file.
type ExportRepo interface {
	Store(ctx context.Context, path string, entries []Entry) error
}

// NotificationService pushes run outcomes to an external channel.
type NotificationService interface {
	SendNewEntry(ctx context.Context, entry Entry, actualDate Date) error
	SendError(ctx context.Context, err error) error
}
