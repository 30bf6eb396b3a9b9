package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// dayFormat matches JavaScript's Date.toDateString() output, which the
// upstream service used for every rendered date: "Sun Jan 01 2023".
// The freeCodeCamp checker asserts on this exact format.
const dayFormat = "Mon Jan 02 2006"

// invalidDateString is what an unparseable date renders as. Same lenient
// posture as Duration: a bad date field never fails the request, it degrades
// to a value the client can see is wrong.
const invalidDateString = "Invalid Date"

// Date is the calendar date of an exercise entry.
//
// Valid=false is the invalid-date sentinel produced when caller-supplied text
// doesn't parse. It is stored as NULL, so it can never satisfy a >= or <=
// range bound, and it renders as "Invalid Date".
type Date struct {
	Time  time.Time
	Valid bool
}

// ParseDate converts caller-supplied text into a Date. Accepts "2006-01-02"
// (what the upstream API documents) with RFC 3339 as a fallback; anything else
// yields the invalid sentinel. Plain dates land at midnight UTC so that
// inclusive range bounds parsed from the same format compare exactly.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.UTC); err == nil {
		return Date{Time: t, Valid: true}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{Time: t.UTC(), Valid: true}
	}
	return Date{}
}

// DateNow returns the moment of creation as a Date — the default when a log
// request carries no date field.
func DateNow() Date {
	return Date{Time: time.Now().UTC(), Valid: true}
}

// DateOf returns a valid Date for the given time.
func DateOf(t time.Time) Date {
	return Date{Time: t.UTC(), Valid: true}
}

// DayString renders the date the way the upstream service did:
// "Sun Jan 01 2023", or "Invalid Date" for the sentinel.
func (d Date) DayString() string {
	if !d.Valid {
		return invalidDateString
	}
	return d.Time.UTC().Format(dayFormat)
}

// MarshalJSON renders the date as its day string. Exercise records only ever
// leave the service pre-rendered, so this is the one shape JSON needs.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.DayString() + `"`), nil
}

// UnmarshalJSON parses with the same leniency as ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

// Value implements driver.Valuer. Dates are stored as RFC 3339 text so that
// SQL range comparisons reduce to lexicographic comparisons on a single,
// fixed-width format; the invalid sentinel is stored as NULL.
func (d Date) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Time.UTC().Format(time.RFC3339), nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("date: cannot scan %q: %w", v, err)
		}
		*d = Date{Time: t.UTC(), Valid: true}
	case time.Time:
		*d = Date{Time: v.UTC(), Valid: true}
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
	return nil
}

// SQLBound formats a range bound the same way Value stores dates, so that
// "date >= ?" compares stored text against bound text consistently.
func SQLBound(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
