package core

import (
	"strings"
	"time"
)

// Date is a calendar day, normalized to midnight UTC so values constructed
// through this package compare with == and work as map keys. Nullable dates
// are *Date: a nil pointer is how an unparsable source date travels through
// the pipeline.
type Date time.Time

// dateLayouts is the ordered list of accepted source formats. The first
// layout that parses wins.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// NewDate builds a Date from calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate tries each accepted layout in order. The second return is false
// when no layout matches; callers convert that to a null date, never to an
// error and never to today.
func ParseDate(s string) (Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), true
		}
	}
	return Date{}, false
}

// Time returns the underlying time.Time (midnight UTC).
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After reports whether d is a later day than other.
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// String formats as ISO 8601 (2006-01-02).
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// MarshalJSON emits the ISO day string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts an ISO day string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	*d = DateOf(t)
	return nil
}
