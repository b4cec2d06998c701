package nasa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sort"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/skopia/astrodaily/internal/domain"
)

// Service fetches APOD entries from the NASA API. Every call is a single
// request/decode attempt; the repository layer owns retries.
type Service interface {
	domain.ApodService
}

type service struct {
	log     zerolog.Logger
	baseURL string
	apiKey  string
	client  *http.Client
}

// Option overrides a service default, mainly so tests can point the service
// at an httptest server.
type Option func(*service)

func WithBaseURL(baseURL string) Option {
	return func(s *service) { s.baseURL = baseURL }
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *service) { s.client = client }
}

func NewService(log zerolog.Logger, cfg *domain.Config, opts ...Option) Service {
	s := &service{
		log:     log.With().Str("module", "nasa").Logger(),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchEntry requests a single date and decodes one entry.
func (s *service) FetchEntry(ctx context.Context, date domain.Date) (domain.Entry, error) {
	target, err := s.buildURL(map[string]string{"date": date.String()})
	if err != nil {
		return domain.Entry{}, err
	}

	var entry domain.Entry
	if err := s.get(ctx, target, &entry); err != nil {
		return domain.Entry{}, err
	}

	s.log.Debug().Str("date", date.String()).Str("title", entry.Title).Msg("fetched entry")
	return entry, nil
}

// FetchRange requests every published entry in [start, end] and returns them
// sorted by date descending (most recent first). Days the upstream never
// published are simply absent from the result.
func (s *service) FetchRange(ctx context.Context, start, end domain.Date) ([]domain.Entry, error) {
	if start.After(end) {
		return nil, errors.Errorf("invalid range: start %s is after end %s", start, end)
	}

	target, err := s.buildURL(map[string]string{
		"start_date": start.String(),
		"end_date":   end.String(),
	})
	if err != nil {
		return nil, err
	}

	var entries []domain.Entry
	if err := s.get(ctx, target, &entries); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	s.log.Debug().
		Str("start", start.String()).
		Str("end", end.String()).
		Int("count", len(entries)).
		Msg("fetched range")

	return entries, nil
}

// get performs one GET and decodes the body into out, translating HTTP and
// transport outcomes into the domain error taxonomy.
func (s *service) get(ctx context.Context, target string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrEntryNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		return &domain.StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Err: err}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &domain.DecodeError{Err: err}
	}

	return nil
}

func (s *service) buildURL(params map[string]string) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid base url %q", s.baseURL)
	}

	query := u.Query()
	query.Set("api_key", s.apiKey)
	// thumbs makes the API include thumbnail_url for video entries.
	query.Set("thumbs", "true")
	for k, v := range params {
		query.Set(k, v)
	}
	u.RawQuery = query.Encode()

	return u.String(), nil
}
