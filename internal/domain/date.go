package domain

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the wire format the APOD API uses for calendar dates.
const DateLayout = "2006-01-02"

// publisherZone is the timezone NASA publishes in. The new picture appears
// around local midnight Eastern, so "today" is only trustworthy a few hours
// into the Eastern day.
const publisherZone = "America/New_York"

// referenceSafetyMarginHours is how far into the Eastern day we wait before
// trusting that the current day's entry has been published.
const referenceSafetyMarginHours = 6

// Date is a civil calendar date at day granularity. It is comparable and
// usable as a map key; the zero value is not a valid date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date, normalizing out-of-range components the same way
// time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (or before, for negative n).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.Errorf("invalid date json %s", string(b))
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DatesBetween enumerates every calendar date in [start, end] inclusive.
// A start after end yields an empty slice.
func DatesBetween(start, end Date) []Date {
	if start.After(end) {
		return nil
	}
	dates := make([]Date, 0, 1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

// ReferenceDate computes the most recent publication day for a given instant:
// the Eastern civil date, shifted back one day when the Eastern hour is still
// inside the safety margin.
func ReferenceDate(now time.Time) Date {
	loc, err := time.LoadLocation(publisherZone)
	if err != nil {
		// tzdata missing; approximate with standard Eastern offset.
		loc = time.FixedZone("EST", -5*60*60)
	}

	eastern := now.In(loc)
	d := DateOf(eastern)
	if eastern.Hour() < referenceSafetyMarginHours {
		d = d.AddDays(-1)
	}
	return d
}
