package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skopia/astrodaily/internal/domain"
)

// stubService is a scripted remote double that counts calls.
type stubService struct {
	entryCalls int
	rangeCalls int

	// entries holds the dates the stub will answer for; everything else is
	// not-found unless err is set.
	entries map[domain.Date]domain.Entry
	err     error

	rangeResult []domain.Entry
	rangeErr    error
}

func (s *stubService) FetchEntry(ctx context.Context, date domain.Date) (domain.Entry, error) {
	s.entryCalls++
	if s.err != nil {
		return domain.Entry{}, s.err
	}
	entry, ok := s.entries[date]
	if !ok {
		return domain.Entry{}, domain.ErrEntryNotFound
	}
	return entry, nil
}

func (s *stubService) FetchRange(ctx context.Context, start, end domain.Date) ([]domain.Entry, error) {
	s.rangeCalls++
	if s.rangeErr != nil {
		return nil, s.rangeErr
	}
	return s.rangeResult, nil
}

func testEntry(date domain.Date) domain.Entry {
	return domain.Entry{
		Date:        date,
		Title:       "Entry " + date.String(),
		Explanation: "explanation",
		MediaType:   "image",
		URL:         "https://apod.nasa.gov/apod/" + date.String() + ".jpg",
	}
}

// fixedClock pins the repository's reference date. 2024-03-15 12:00 UTC is
// 08:00 Eastern, past the safety margin, so the reference date is 2024-03-15.
func fixedClock() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func newTestRepository(service domain.ApodService) *Repository {
	return NewRepository(zerolog.Nop(), service).WithClock(fixedClock)
}

func TestGetEntryCachesByDate(t *testing.T) {
	date := domain.NewDate(2024, time.March, 10)
	stub := &stubService{entries: map[domain.Date]domain.Entry{date: testEntry(date)}}
	repo := newTestRepository(stub)

	first, err := repo.GetEntry(context.Background(), date)
	require.NoError(t, err)

	second, err := repo.GetEntry(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, stub.entryCalls, "second lookup must be a cache hit")
}

func TestGetEntryPropagatesFailures(t *testing.T) {
	stub := &stubService{err: &domain.StatusError{Code: 500}}
	repo := newTestRepository(stub)

	_, err := repo.GetEntry(context.Background(), domain.NewDate(2024, time.March, 10))
	var statusErr *domain.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 500, statusErr.Code)
}

func TestGetEntryDoesNotCacheFailures(t *testing.T) {
	date := domain.NewDate(2024, time.March, 10)
	stub := &stubService{entries: map[domain.Date]domain.Entry{}}
	repo := newTestRepository(stub)

	_, err := repo.GetEntry(context.Background(), date)
	require.True(t, domain.IsNotFound(err))

	stub.entries[date] = testEntry(date)
	_, err = repo.GetEntry(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.entryCalls)
}

func TestGetCurrentEntrySucceedsOnThirdDate(t *testing.T) {
	// Reference date and the day before are unpublished; two days back works.
	available := domain.NewDate(2024, time.March, 13)
	stub := &stubService{entries: map[domain.Date]domain.Entry{available: testEntry(available)}}
	repo := newTestRepository(stub)

	entry, actualDate, err := repo.GetCurrentEntry(context.Background())
	require.NoError(t, err)

	assert.Equal(t, available, actualDate)
	assert.Equal(t, testEntry(available), entry)
	assert.Equal(t, 3, stub.entryCalls, "one attempt per scanned date")
}

func TestGetCurrentEntryExhaustsAfterFiveAttempts(t *testing.T) {
	stub := &stubService{entries: map[domain.Date]domain.Entry{}}
	repo := newTestRepository(stub)

	_, _, err := repo.GetCurrentEntry(context.Background())

	var exhausted *domain.ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 5, exhausted.Attempts)
	assert.Equal(t, "2024-03-15", exhausted.Newest.String())
	assert.Equal(t, "2024-03-11", exhausted.Oldest.String())
	assert.Equal(t, 5, stub.entryCalls, "exactly five attempts, not six")
}

func TestGetCurrentEntryAbortsOnOtherFailure(t *testing.T) {
	stub := &stubService{err: &domain.StatusError{Code: 500}}
	repo := newTestRepository(stub)

	_, _, err := repo.GetCurrentEntry(context.Background())

	var statusErr *domain.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 1, stub.entryCalls, "no backward scan on non-404 failures")
}

func TestGetCurrentEntryUsesCachedReferenceDate(t *testing.T) {
	reference := domain.NewDate(2024, time.March, 15)
	stub := &stubService{entries: map[domain.Date]domain.Entry{reference: testEntry(reference)}}
	repo := newTestRepository(stub)

	_, _, err := repo.GetCurrentEntry(context.Background())
	require.NoError(t, err)

	_, actualDate, err := repo.GetCurrentEntry(context.Background())
	require.NoError(t, err)

	assert.Equal(t, reference, actualDate)
	assert.Equal(t, 1, stub.entryCalls, "second lookup served from cache")
}

func TestGetRangeFullCacheHit(t *testing.T) {
	start := domain.NewDate(2024, time.March, 10)
	end := domain.NewDate(2024, time.March, 12)

	stub := &stubService{
		rangeResult: []domain.Entry{
			testEntry(domain.NewDate(2024, time.March, 12)),
			testEntry(domain.NewDate(2024, time.March, 11)),
			testEntry(domain.NewDate(2024, time.March, 10)),
		},
	}
	repo := newTestRepository(stub)

	// First call populates the cache over the network.
	_, err := repo.GetRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Equal(t, 1, stub.rangeCalls)

	entries, err := repo.GetRange(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 1, stub.rangeCalls, "fully cached range must not hit the network")
	require.Len(t, entries, 3)
	assert.Equal(t, "2024-03-12", entries[0].Date.String())
	assert.Equal(t, "2024-03-11", entries[1].Date.String())
	assert.Equal(t, "2024-03-10", entries[2].Date.String())
}

func TestGetRangePartialCacheRefetchesWholeSpan(t *testing.T) {
	day10 := domain.NewDate(2024, time.March, 10)
	day11 := domain.NewDate(2024, time.March, 11)
	day12 := domain.NewDate(2024, time.March, 12)

	stub := &stubService{
		entries: map[domain.Date]domain.Entry{day10: testEntry(day10)},
		rangeResult: []domain.Entry{
			testEntry(day12),
			testEntry(day11),
			testEntry(day10),
		},
	}
	repo := newTestRepository(stub)

	// Prime only one date of the span.
	_, err := repo.GetEntry(context.Background(), day10)
	require.NoError(t, err)

	entries, err := repo.GetRange(context.Background(), day10, day12)
	require.NoError(t, err)

	assert.Equal(t, 1, stub.rangeCalls, "partial hit fetches the whole span once")
	assert.Len(t, entries, 3)

	// The whole span is now cached.
	_, err = repo.GetRange(context.Background(), day10, day12)
	require.NoError(t, err)
	assert.Equal(t, 1, stub.rangeCalls)
}

func TestGetRangeReturnsUpstreamResultOnGaps(t *testing.T) {
	day10 := domain.NewDate(2024, time.March, 10)
	day12 := domain.NewDate(2024, time.March, 12)

	// Upstream never published the 11th.
	stub := &stubService{
		rangeResult: []domain.Entry{
			testEntry(day12),
			testEntry(day10),
		},
	}
	repo := newTestRepository(stub)

	entries, err := repo.GetRange(context.Background(), day10, day12)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "unpublished days stay absent")

	// The gap keeps the span from ever being a full cache hit.
	_, err = repo.GetRange(context.Background(), day10, day12)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.rangeCalls)
}

func TestGetRangeEmptySpan(t *testing.T) {
	stub := &stubService{}
	repo := newTestRepository(stub)

	entries, err := repo.GetRange(context.Background(),
		domain.NewDate(2024, time.March, 12), domain.NewDate(2024, time.March, 10))
	require.NoError(t, err)

	assert.Empty(t, entries)
	assert.Equal(t, 0, stub.rangeCalls, "inverted span short-circuits without a network call")
}

func TestResetCache(t *testing.T) {
	date := domain.NewDate(2024, time.March, 10)
	stub := &stubService{entries: map[domain.Date]domain.Entry{date: testEntry(date)}}
	repo := newTestRepository(stub)

	_, err := repo.GetEntry(context.Background(), date)
	require.NoError(t, err)

	repo.ResetCache()

	_, err = repo.GetEntry(context.Background(), date)
	require.NoError(t, err)
	assert.Equal(t, 2, stub.entryCalls, "reset forces a refetch")
}
