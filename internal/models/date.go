package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date wire format.
const DateLayout = "2006-01-02"

// CalendarDate is a date without a time component. Comparisons and JSON
// rendering happen at YYYY-MM-DD granularity with no timezone arithmetic.
type CalendarDate struct {
	time.Time
}

// NewCalendarDate builds a CalendarDate from year, month and day.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseCalendarDate parses a YYYY-MM-DD string.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: must be YYYY-MM-DD", s)
	}
	return CalendarDate{Time: t}, nil
}

// String returns the YYYY-MM-DD representation.
func (d CalendarDate) String() string {
	return d.Format(DateLayout)
}

// Before reports whether d falls on an earlier calendar day than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.String() < other.String()
}

// After reports whether d falls on a later calendar day than other.
func (d CalendarDate) After(other CalendarDate) bool {
	return d.String() > other.String()
}

// Equal reports whether d and other fall on the same calendar day.
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.String() == other.String()
}

// MarshalJSON renders the date as a quoted YYYY-MM-DD string.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON parses a quoted YYYY-MM-DD string.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE columns.
func (d *CalendarDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		parsed, err := ParseCalendarDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseCalendarDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case nil:
		*d = CalendarDate{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CalendarDate", value)
	}
}

// Value implements driver.Valuer.
func (d CalendarDate) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}
