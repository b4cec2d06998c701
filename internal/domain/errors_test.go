package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrEntryNotFound))
	assert.True(t, IsNotFound(errors.Wrap(ErrEntryNotFound, "fetch failed")))
	assert.False(t, IsNotFound(&StatusError{Code: 500}))
	assert.False(t, IsNotFound(nil))
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not found is final", ErrEntryNotFound, false},
		{"wrapped not found is final", errors.Wrap(ErrEntryNotFound, "lookup"), false},
		{"validation is final", &ValidationError{Field: "title"}, false},
		{"limit is final", &LimitError{Limit: 1000}, false},
		{"http 500 can be retried", &StatusError{Code: 500}, true},
		{"transport can be retried", &TransportError{Err: errors.New("timeout")}, true},
		{"decode can be retried", &DecodeError{Err: errors.New("unexpected EOF")}, true},
		{"exhausted can be retried", &ExhaustedError{Attempts: 5}, true},
		{"unknown can be retried", errors.New("boom"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecoverable(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "unexpected status code 503", (&StatusError{Code: 503}).Error())
	assert.Equal(t, "invalid favorite: missing title", (&ValidationError{Field: "title"}).Error())
	assert.Equal(t, "favorites limit of 1000 reached", (&LimitError{Limit: 1000}).Error())

	exhausted := &ExhaustedError{
		Attempts: 5,
		Oldest:   NewDate(2024, 3, 11),
		Newest:   NewDate(2024, 3, 15),
	}
	assert.Equal(t, "no entry published in the last 5 days (2024-03-11 to 2024-03-15)", exhausted.Error())
}
