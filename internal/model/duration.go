package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Duration is an exercise duration count (unit-agnostic — the service stores
// whatever number the client sends, the upstream convention is minutes).
//
// Input is best-effort: the service never rejects a request because the
// duration field didn't parse. Instead of carrying a raw NaN around (which
// cannot be marshalled to JSON and compares unequal to itself), an unparseable
// or absent duration is an explicit invalid value: Valid=false, stored as NULL,
// rendered as JSON null. Downstream code checks Valid rather than tripping
// over a silent NaN.
//
// Field names follow sql.NullFloat64 — same shape, same meaning.
type Duration struct {
	Float64 float64
	Valid   bool
}

// ParseDuration converts caller-supplied text into a Duration.
// Empty or unparseable text yields the invalid sentinel, never an error.
func ParseDuration(s string) Duration {
	s = strings.TrimSpace(s)
	if s == "" {
		return Duration{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Duration{}
	}
	return Duration{Float64: v, Valid: true}
}

// DurationOf returns a valid Duration with the given value.
func DurationOf(v float64) Duration {
	return Duration{Float64: v, Valid: true}
}

// MarshalJSON renders a valid duration as a bare number and an invalid one as
// null, matching the wire shape of the upstream service.
func (d Duration) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Float64)
}

// UnmarshalJSON accepts a number, a numeric string, or null.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*d = Duration{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*d = Duration{Float64: v, Valid: true}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*d = ParseDuration(raw)
		return nil
	}
	return fmt.Errorf("duration: cannot unmarshal %s", string(data))
}

// Value implements driver.Valuer — invalid durations are stored as NULL.
func (d Duration) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Float64, nil
}

// Scan implements sql.Scanner.
func (d *Duration) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Duration{}
	case float64:
		*d = Duration{Float64: v, Valid: true}
	case int64:
		*d = Duration{Float64: float64(v), Valid: true}
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("duration: cannot scan %q", v)
		}
		*d = Duration{Float64: f, Valid: true}
	default:
		return fmt.Errorf("duration: cannot scan %T", src)
	}
	return nil
}
