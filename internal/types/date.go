package types

import (
	"time"

	ierr "github.com/kidulajumba254/invoice-management-system/internal/errors"
)

// DateLayout is the wire format for calendar dates (ISO 8601, date only)
const DateLayout = "2006-01-02"

// dateMediumLayout is the display format for dates, e.g. "Apr 25, 2025"
const dateMediumLayout = "Jan 2, 2006"

// Date is a calendar date without a time component. Comparisons are done on
// the underlying time value rather than on the string form so that the
// behavior is independent of formatting.
type Date struct {
	t time.Time
}

// NewDate creates a Date from year, month, day
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO 8601 date string (YYYY-MM-DD)
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ierr.WithError(err).
			WithHintf("Invalid date %q, expected format YYYY-MM-DD", s).
			Mark(ierr.ErrValidation)
	}
	return Date{t: t}, nil
}

// MustParseDate parses an ISO date and panics on failure. Only for use with
// compile-time constant inputs such as seed data.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current date in UTC
func Today() Date {
	return DateOf(time.Now().UTC())
}

// DateOf truncates a time to its calendar date
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date n days later
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// Medium renders the date in medium display form, e.g. "Apr 25, 2025"
func (d Date) Medium() string {
	return d.t.Format(dateMediumLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
