package calendar

import (
	"fmt"
	"time"
)

// Weekday is a day of the week ordered Monday first
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// AllWeekdays returns every weekday in order
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday parses an exact capitalized English weekday name
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range weekdayNames {
		if name == s {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s is not a valid day", ErrInvalidWeekday, s)
}

// WeekdayFromTime converts a time.Weekday (Sunday = 0) into a Weekday
func WeekdayFromTime(wd time.Weekday) Weekday {
	switch wd {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	case time.Sunday:
		return Sunday
	}
	panic(fmt.Sprintf("calendar: unknown time.Weekday %d", wd))
}

// Valid reports whether w is one of the seven weekdays
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// MarshalText implements encoding.TextMarshaler so weekdays work as JSON map keys
func (w Weekday) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(w))
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (w *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// WeekdaySet is a set of weekdays with value semantics
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given weekdays
func NewWeekdaySet(days ...Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With returns a copy of s that also contains w
func (s WeekdaySet) With(w Weekday) WeekdaySet {
	if !w.Valid() {
		panic(fmt.Sprintf("calendar: invalid weekday %d", int(w)))
	}
	return s | 1<<uint(w)
}

// Has reports whether w is in the set
func (s WeekdaySet) Has(w Weekday) bool {
	return w.Valid() && s&(1<<uint(w)) != 0
}

// Len returns the number of weekdays in the set
func (s WeekdaySet) Len() int {
	n := 0
	for _, w := range AllWeekdays() {
		if s.Has(w) {
			n++
		}
	}
	return n
}

// Weekdays returns the members of the set in weekday order
func (s WeekdaySet) Weekdays() []Weekday {
	days := make([]Weekday, 0, 7)
	for _, w := range AllWeekdays() {
		if s.Has(w) {
			days = append(days, w)
		}
	}
	return days
}

// Strings returns the member names in weekday order
func (s WeekdaySet) Strings() []string {
	names := make([]string, 0, 7)
	for _, w := range s.Weekdays() {
		names = append(names, w.String())
	}
	return names
}

// String implements pflag.Value
func (s WeekdaySet) String() string {
	return fmt.Sprint(s.Strings())
}

// Set implements pflag.Value; each call adds one weekday
func (s *WeekdaySet) Set(value string) error {
	w, err := ParseWeekday(value)
	if err != nil {
		return err
	}
	*s = s.With(w)
	return nil
}

// Type implements pflag.Value
func (s *WeekdaySet) Type() string {
	return "weekday"
}
