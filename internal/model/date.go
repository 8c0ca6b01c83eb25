package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Accepted date layouts, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02",
	"Jan 2, 2006 3:04:05 PM",
	"Jan 2, 2006 15:04:05",
}

// Date is the calendar instant of a transaction.
//
// Stored dates decode leniently: a value that cannot be parsed is kept
// verbatim so it survives a save or backup, but reports Valid() == false
// and is skipped by aggregation.
type Date struct {
	t   time.Time
	raw json.RawMessage
}

// NewDate wraps t. The instant is normalised to UTC.
func NewDate(t time.Time) Date {
	return Date{t: t.UTC()}
}

// Day returns midnight local time for the given calendar day. month is 0-11.
func Day(year, month, day int) Date {
	return NewDate(time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.Local))
}

// ParseDate parses s using the accepted layouts. Layouts without a zone
// are interpreted in local time.
func ParseDate(s string) (Date, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return NewDate(t), true
		}
	}
	return Date{}, false
}

// Time returns the instant and whether the date is usable.
func (d Date) Time() (time.Time, bool) {
	return d.t, d.Valid()
}

// Valid reports whether the date holds a parsed instant.
func (d Date) Valid() bool {
	return !d.t.IsZero()
}

// String formats the date for display.
func (d Date) String() string {
	if !d.Valid() {
		var s string
		if err := json.Unmarshal(d.raw, &s); err == nil {
			return s
		}
		return string(d.raw)
	}
	return d.t.Local().Format("Jan 02, 2006")
}

// MarshalJSON writes RFC 3339 for valid dates and the original bytes otherwise.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Valid() {
		return json.Marshal(d.t.Format(time.RFC3339Nano))
	}
	if len(d.raw) > 0 {
		return d.raw, nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON never fails on well-formed JSON; unparsable values are retained.
func (d *Date) UnmarshalJSON(data []byte) error {
	*d = Date{}
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		if parsed, ok := ParseDate(s); ok {
			*d = parsed
			return nil
		}
	}

	d.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}
