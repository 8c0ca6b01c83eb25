package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantUTC   time.Time
	}{
		{
			name:      "rfc3339 utc",
			input:     `"2024-03-15T10:30:00Z"`,
			wantValid: true,
			wantUTC:   time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:      "rfc3339 with offset",
			input:     `"2024-03-15T10:30:00+02:00"`,
			wantValid: true,
			wantUTC:   time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:      "plain day",
			input:     `"2024-03-15"`,
			wantValid: true,
			wantUTC:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local).UTC(),
		},
		{
			name:      "legacy format",
			input:     `"Mar 15, 2024 10:30:00 AM"`,
			wantValid: true,
			wantUTC:   time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local).UTC(),
		},
		{name: "garbage string", input: `"not a date"`},
		{name: "number", input: `12345`},
		{name: "object", input: `{"year":2024}`},
		{name: "null", input: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.wantValid, d.Valid())
			if tt.wantValid {
				got, ok := d.Time()
				require.True(t, ok)
				assert.True(t, tt.wantUTC.Equal(got), "got %v, want %v", got, tt.wantUTC)
			}
		})
	}
}

func TestDate_InvalidValuesRoundTrip(t *testing.T) {
	for _, input := range []string{`"not a date"`, `12345`, `{"year":2024}`} {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(input), &d))

		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, input, string(out))
	}
}

func TestDate_ValidRoundTrip(t *testing.T) {
	original := NewDate(time.Date(2024, 2, 29, 23, 59, 59, 123456789, time.UTC))

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29T23:59:59.123456789Z"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestDate_ZeroMarshalsAsNull(t *testing.T) {
	data, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestDay(t *testing.T) {
	d := Day(2024, 2, 15)
	got, ok := d.Time()
	require.True(t, ok)

	local := got.Local()
	assert.Equal(t, 2024, local.Year())
	assert.Equal(t, time.March, local.Month())
	assert.Equal(t, 15, local.Day())
}
