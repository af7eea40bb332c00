// Package calendar holds the value types the window engine counts with:
// weekdays, months and the day-of-month policy that anchors each window.
package calendar

import "errors"

var (
	// ErrInvalidWeekday is returned when a token matches none of the seven weekday names
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidMonth is returned for month numbers outside 1..12
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDayOfMonth is returned when a token is neither "first" nor an unsigned integer
	ErrInvalidDayOfMonth = errors.New("invalid day of month")

	// ErrDayOutOfRange is returned for anchor days outside 1..MaxAnchorDay
	ErrDayOutOfRange = errors.New("day of month out of range")
)
