package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthYearLabel(t *testing.T) {
	assert.Equal(t, "March 2024", MonthYearLabel(2, 2024))
	assert.Equal(t, "January 2025", MonthYearLabel(0, 2025))
	assert.Equal(t, "December 1999", MonthYearLabel(11, 1999))
	assert.Equal(t, MonthYearLabel(5, 2024), MonthYearLabel(5, 2024))
}

func TestPreviousAndNextMonth(t *testing.T) {
	tests := []struct {
		name              string
		month, year       int
		prevMonth, prevYr int
		nextMonth, nextYr int
	}{
		{name: "mid year", month: 5, year: 2024, prevMonth: 4, prevYr: 2024, nextMonth: 6, nextYr: 2024},
		{name: "january", month: 0, year: 2024, prevMonth: 11, prevYr: 2023, nextMonth: 1, nextYr: 2024},
		{name: "december", month: 11, year: 2024, prevMonth: 10, prevYr: 2024, nextMonth: 0, nextYr: 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, y := PreviousMonth(tt.month, tt.year)
			assert.Equal(t, tt.prevMonth, m)
			assert.Equal(t, tt.prevYr, y)

			m, y = NextMonth(tt.month, tt.year)
			assert.Equal(t, tt.nextMonth, m)
			assert.Equal(t, tt.nextYr, y)
		})
	}
}

func TestNextThenPreviousIsIdentity(t *testing.T) {
	for year := 1999; year <= 2001; year++ {
		for month := 0; month < 12; month++ {
			nm, ny := NextMonth(month, year)
			pm, py := PreviousMonth(nm, ny)
			assert.Equal(t, month, pm)
			assert.Equal(t, year, py)
		}
	}
}

func TestMonthBoundsIn(t *testing.T) {
	tests := []struct {
		name    string
		month   int
		year    int
		lastDay int
	}{
		{name: "31 day month", month: 0, year: 2024, lastDay: 31},
		{name: "30 day month", month: 3, year: 2024, lastDay: 30},
		{name: "leap february", month: 1, year: 2024, lastDay: 29},
		{name: "common february", month: 1, year: 2023, lastDay: 28},
		{name: "century non-leap", month: 1, year: 1900, lastDay: 28},
		{name: "400 year leap", month: 1, year: 2000, lastDay: 29},
		{name: "december", month: 11, year: 2024, lastDay: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBoundsIn(tt.month, tt.year, time.UTC)

			assert.Equal(t, time.Date(tt.year, time.Month(tt.month+1), 1, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, tt.lastDay, end.Day())
			assert.Equal(t, time.Month(tt.month+1), end.Month())
			assert.Equal(t, 23, end.Hour())
			assert.Equal(t, 59, end.Minute())
			assert.Equal(t, 59, end.Second())
			assert.Equal(t, 999999999, end.Nanosecond())
		})
	}
}

func TestContains(t *testing.T) {
	start, end := MonthBounds(2, 2024)

	assert.True(t, Contains(2, 2024, start))
	assert.True(t, Contains(2, 2024, end))
	assert.False(t, Contains(2, 2024, start.Add(-time.Nanosecond)))
	assert.False(t, Contains(2, 2024, end.Add(time.Nanosecond)))
}

func TestCurrentMonthAndYear(t *testing.T) {
	now := time.Now()
	month := CurrentMonth()
	year := CurrentYear()

	assert.GreaterOrEqual(t, month, 0)
	assert.LessOrEqual(t, month, 11)
	// Allow for the clock crossing a month boundary between calls.
	if month == int(now.Month())-1 {
		assert.Equal(t, now.Year(), year)
	}
}
