package preferences

import (
	"context"
	"time"
)

// date layouts used in exports and documents
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// Formatter renders instants in the user's preferred timezone
type Formatter struct {
	loc *time.Location
}

// NewFormatter resolves a timezone preference, "system" and unknown zones use the local zone
func NewFormatter(tz string) Formatter {
	if tz == "" || tz == TimezoneSystem {
		return Formatter{loc: time.Local}
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Formatter{loc: time.Local}
	}
	return Formatter{loc: loc}
}

// Formatter returns the formatter for the stored timezone preference
func (s *Store) Formatter(ctx context.Context) Formatter {
	return NewFormatter(Get(ctx, s, TimezoneKey))
}

// Location of the formatter
func (f Formatter) Location() *time.Location {
	if f.loc == nil {
		return time.Local
	}
	return f.loc
}

// Date renders the calendar date, empty for the zero time
func (f Formatter) Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.Location()).Format(DateLayout)
}

// DateTime renders date and minutes, empty for the zero time
func (f Formatter) DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(f.Location()).Format(DateTimeLayout)
}

// DateTimePtr is DateTime for optional values
func (f Formatter) DateTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return f.DateTime(*t)
}
