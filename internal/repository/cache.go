package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/skopia/astrodaily/internal/domain"
)

// maxCurrentAttempts bounds the backward scan in GetCurrentEntry: the
// reference date plus at most four earlier days.
const maxCurrentAttempts = 5

// Repository memoizes APOD entries by date in front of the remote service.
// The cache lives for the process, never expires entries, and is only emptied
// by ResetCache.
//
// The map is shared between day navigation, range loads and favorite toggles,
// so every access goes through the mutex. GetCurrentEntry's scan is strictly
// sequential: one attempt, including its cache write, finishes before the
// next date is tried.
type Repository struct {
	log     zerolog.Logger
	service domain.ApodService

	mu    sync.Mutex
	cache map[domain.Date]domain.Entry

	// now is the clock used for reference-date computation, swappable in
	// tests.
	now func() time.Time
}

func NewRepository(log zerolog.Logger, service domain.ApodService) *Repository {
	return &Repository{
		log:     log.With().Str("module", "repository").Logger(),
		service: service,
		cache:   make(map[domain.Date]domain.Entry),
		now:     time.Now,
	}
}

// WithClock replaces the repository's clock. Returns the repository for
// chaining at construction time.
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// GetEntry returns the entry for date, hitting the network only on a cache
// miss. Remote failures propagate unchanged.
func (r *Repository) GetEntry(ctx context.Context, date domain.Date) (domain.Entry, error) {
	if entry, ok := r.cached(date); ok {
		r.log.Debug().Str("date", date.String()).Msg("cache hit")
		return entry, nil
	}

	entry, err := r.service.FetchEntry(ctx, date)
	if err != nil {
		return domain.Entry{}, err
	}

	r.store(entry)
	return entry, nil
}

// GetCurrentEntry finds the most recent published entry. It starts at the
// reference date (Eastern civil date with the publisher's safety margin) and
// steps one day backwards on every not-found, up to maxCurrentAttempts
// attempts total. Any other failure aborts the scan immediately. The returned
// date is the one that actually produced the entry, which can trail the
// reference date.
func (r *Repository) GetCurrentEntry(ctx context.Context) (domain.Entry, domain.Date, error) {
	reference := domain.ReferenceDate(r.now())
	date := reference

	r.log.Debug().Str("reference", reference.String()).Msg("looking for current entry")

	for attempt := 1; attempt <= maxCurrentAttempts; attempt++ {
		entry, err := r.GetEntry(ctx, date)
		if err == nil {
			r.log.Debug().
				Str("date", date.String()).
				Int("attempts", attempt).
				Msg("found current entry")
			return entry, date, nil
		}
		if !domain.IsNotFound(err) {
			return domain.Entry{}, domain.Date{}, err
		}

		r.log.Debug().Str("date", date.String()).Msg("not published yet, trying previous day")
		date = date.AddDays(-1)
	}

	return domain.Entry{}, domain.Date{}, &domain.ExhaustedError{
		Attempts: maxCurrentAttempts,
		Oldest:   reference.AddDays(-(maxCurrentAttempts - 1)),
		Newest:   reference,
	}
}

// GetRange returns the entries for [start, end]. When every date in the span
// is cached it serves the cached entries date-descending with no network
// call. Otherwise it issues one range request for the whole span, caches
// every returned entry, and returns exactly the upstream result: no merge
// with stale cache, and days the upstream skipped stay absent.
func (r *Repository) GetRange(ctx context.Context, start, end domain.Date) ([]domain.Entry, error) {
	dates := domain.DatesBetween(start, end)

	if cached, ok := r.cachedRange(dates); ok {
		r.log.Debug().
			Str("start", start.String()).
			Str("end", end.String()).
			Int("count", len(cached)).
			Msg("range served from cache")
		return cached, nil
	}

	entries, err := r.service.FetchRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	for _, entry := range entries {
		r.cache[entry.Date] = entry
	}
	r.mu.Unlock()

	if len(entries) < len(dates) {
		r.log.Debug().
			Int("requested_days", len(dates)).
			Int("returned", len(entries)).
			Msg("range has unpublished days")
	}

	return entries, nil
}

// ResetCache empties the cache.
func (r *Repository) ResetCache() {
	r.mu.Lock()
	r.cache = make(map[domain.Date]domain.Entry)
	r.mu.Unlock()
	r.log.Debug().Msg("cache cleared")
}

func (r *Repository) cached(date domain.Date) (domain.Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.cache[date]
	return entry, ok
}

// cachedRange returns the cached entries for dates, date-descending, but only
// when every date is present. An empty span is trivially all-cached.
func (r *Repository) cachedRange(dates []domain.Date) ([]domain.Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]domain.Entry, 0, len(dates))
	for _, d := range dates {
		entry, ok := r.cache[d]
		if !ok {
			return nil, false
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, true
}

func (r *Repository) store(entry domain.Entry) {
	r.mu.Lock()
	r.cache[entry.Date] = entry
	r.mu.Unlock()
}
