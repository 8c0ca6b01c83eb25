// Package calendar provides month arithmetic for the ledger.
//
// Months are zero-based (0 = January, 11 = December), matching the stored
// budget format.
package calendar

import (
	"fmt"
	"time"
)

// CurrentMonth returns the current zero-based month from the system clock.
func CurrentMonth() int {
	return MonthOf(time.Now())
}

// CurrentYear returns the current year from the system clock.
func CurrentYear() int {
	return time.Now().Year()
}

// MonthOf returns the zero-based month of t in its own location.
func MonthOf(t time.Time) int {
	return int(t.Month()) - 1
}

// MonthYearLabel returns a label such as "March 2024".
func MonthYearLabel(month, year int) string {
	month, year = normalize(month, year)
	return fmt.Sprintf("%s %d", time.Month(month+1), year)
}

// PreviousMonth returns the month before (month, year).
func PreviousMonth(month, year int) (int, int) {
	return normalize(month-1, year)
}

// NextMonth returns the month after (month, year).
func NextMonth(month, year int) (int, int) {
	return normalize(month+1, year)
}

// MonthBounds returns the first and last instant of the month in local time.
func MonthBounds(month, year int) (time.Time, time.Time) {
	return MonthBoundsIn(month, year, time.Local)
}

// MonthBoundsIn returns the first and last instant of the month in loc.
func MonthBoundsIn(month, year int, loc *time.Location) (time.Time, time.Time) {
	month, year = normalize(month, year)
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// Contains reports whether t falls within the local-time bounds of the month.
func Contains(month, year int, t time.Time) bool {
	start, end := MonthBounds(month, year)
	return !t.Before(start) && !t.After(end)
}

// normalize folds an out-of-range month into the 0-11 range, carrying years.
func normalize(month, year int) (int, int) {
	total := year*12 + month
	y := total / 12
	m := total % 12
	if m < 0 {
		m += 12
		y--
	}
	return m, y
}
