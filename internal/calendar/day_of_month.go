package calendar

import (
	"fmt"
	"strconv"
)

// MaxAnchorDay is the highest anchor day that exists in every month, February included
const MaxAnchorDay = 28

// FirstOfMonthToken is the textual form of FirstOfMonth
const FirstOfMonthToken = "first"

// DayOfMonth decides where month windows begin. The zero value is FirstOfMonth:
// windows follow true calendar months. NthDay(n) anchors every window on day n.
type DayOfMonth struct {
	anchored bool
	nth      int
}

// FirstOfMonth is the calendar month policy
var FirstOfMonth = DayOfMonth{}

// NthDay returns an anchor-day policy without validating n.
// Use NewNthDay or Validate before handing it to the engine.
func NthDay(n int) DayOfMonth {
	return DayOfMonth{anchored: true, nth: n}
}

// NewNthDay returns an anchor-day policy for 1 <= n <= MaxAnchorDay
func NewNthDay(n int) (DayOfMonth, error) {
	d := NthDay(n)
	if err := d.Validate(); err != nil {
		return FirstOfMonth, err
	}
	return d, nil
}

// ParseDayOfMonth parses "first" or a decimal anchor day
func ParseDayOfMonth(s string) (DayOfMonth, error) {
	if s == FirstOfMonthToken {
		return FirstOfMonth, nil
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return FirstOfMonth, fmt.Errorf("%w: %v", ErrInvalidDayOfMonth, err)
	}
	if n > MaxAnchorDay {
		return FirstOfMonth, outOfRange(int64(n))
	}

	return NewNthDay(int(n))
}

// IsFirstOfMonth reports whether d follows calendar month boundaries
func (d DayOfMonth) IsFirstOfMonth() bool {
	return !d.anchored
}

// Day returns the anchor day, or 1 for FirstOfMonth
func (d DayOfMonth) Day() int {
	if d.IsFirstOfMonth() {
		return 1
	}
	return d.nth
}

// Validate checks the anchor day exists in every month
func (d DayOfMonth) Validate() error {
	if d.IsFirstOfMonth() {
		return nil
	}
	if d.nth < 1 || d.nth > MaxAnchorDay {
		return outOfRange(int64(d.nth))
	}
	return nil
}

func outOfRange(n int64) error {
	if n < 1 {
		return fmt.Errorf("%w: day %d is before the 1st", ErrDayOutOfRange, n)
	}
	return fmt.Errorf("%w: cannot go between %d, highest date is the %dth due to February",
		ErrDayOutOfRange, n, MaxAnchorDay)
}

func (d DayOfMonth) String() string {
	if d.IsFirstOfMonth() {
		return FirstOfMonthToken
	}
	return strconv.Itoa(d.nth)
}

// Set implements pflag.Value
func (d *DayOfMonth) Set(value string) error {
	parsed, err := ParseDayOfMonth(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Type implements pflag.Value
func (d *DayOfMonth) Type() string {
	return "first|1-28"
}
