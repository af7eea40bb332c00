package calendar

import "fmt"

// Month is a calendar month, January = 1
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	January:   "January",
	February:  "February",
	March:     "March",
	April:     "April",
	May:       "May",
	June:      "June",
	July:      "July",
	August:    "August",
	September: "September",
	October:   "October",
	November:  "November",
	December:  "December",
}

// MonthFromNumber converts 1..12 into a Month
func MonthFromNumber(num int) (Month, error) {
	if num < int(January) || num > int(December) {
		return 0, fmt.Errorf("%w: %d is not a valid month number", ErrInvalidMonth, num)
	}
	return Month(num), nil
}

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m]
}
