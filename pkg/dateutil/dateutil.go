package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date layout used for logs and JSON output
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// CivilDate returns date's wall-clock calendar day as midnight UTC, where
// day stepping never lands in a DST gap
func CivilDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfMonth returns the first day of the month containing date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last calendar day of the month containing date
func EndOfMonth(date time.Time) time.Time {
	// Day 0 of the next month normalizes to the last day of this one
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location())
}

// WithDay returns date with its day-of-month replaced by day.
// Panics if day does not exist in date's month.
func WithDay(date time.Time, day int) time.Time {
	if day < 1 || day > DaysInMonth(date) {
		panic(fmt.Sprintf("dateutil: day %d does not exist in %s", day, date.Format("2006-01")))
	}
	return time.Date(date.Year(), date.Month(), day, 0, 0, 0, 0, date.Location())
}

// AnchorInNextMonth returns day-of-month day in the month following date.
// Panics if day does not exist in that month.
func AnchorInNextMonth(date time.Time, day int) time.Time {
	next := time.Date(date.Year(), date.Month()+1, 1, 0, 0, 0, 0, date.Location())
	return WithDay(next, day)
}

// DaysInMonth returns the number of days in date's month
func DaysInMonth(date time.Time) int {
	return EndOfMonth(date).Day()
}

// NextDay returns the start of the following calendar day
func NextDay(date time.Time) time.Time {
	return StartOfDay(date).AddDate(0, 0, 1)
}

// PrevDay returns the start of the preceding calendar day
func PrevDay(date time.Time) time.Time {
	return StartOfDay(date).AddDate(0, 0, -1)
}

// FormatDate formats date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses date string in various formats into a local calendar date
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02.01.2006",
		"2006/01/02",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q, expected YYYY-MM-DD", dateStr)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
