package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEntryNotFound means the upstream has no entry for the requested date
// (HTTP 404). It is distinct from generic HTTP failures because the
// current-entry lookup recovers from it by scanning backwards.
var ErrEntryNotFound = errors.New("no entry published for this date")

// ErrFavoriteNotFound means a favorite lookup by date matched nothing.
var ErrFavoriteNotFound = errors.New("favorite not found")

// StatusError is any remote failure other than a missing entry, carrying the
// HTTP status code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}

// DecodeError means the response body did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "failed to decode response: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError is a connectivity or timeout level failure from the
// underlying HTTP transport.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ExhaustedError means the backward scan for the most recent entry ran out of
// attempts without finding one.
type ExhaustedError struct {
	Attempts int
	Oldest   Date
	Newest   Date
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("no entry published in the last %d days (%s to %s)", e.Attempts, e.Oldest, e.Newest)
}

// ValidationError rejects a favorite whose required field is empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "invalid favorite: missing " + e.Field
}

// LimitError rejects a favorite add that would exceed the collection cap.
type LimitError struct {
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("favorites limit of %d reached", e.Limit)
}

// IsNotFound reports whether err means the upstream has no entry for the
// requested date.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntryNotFound)
}

// IsRecoverable reports whether retrying the same operation could plausibly
// succeed, so a caller knows whether to offer a retry. Missing entries and
// validation failures are final; network-level failures are not.
func IsRecoverable(err error) bool {
	var (
		validationErr *ValidationError
		limitErr      *LimitError
	)
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrEntryNotFound):
		return false
	case errors.As(err, &validationErr), errors.As(err, &limitErr):
		return false
	}
	return true
}
