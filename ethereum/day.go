package ethereum

import (
	"fmt"
	"strconv"
	"time"
)

// Day is a day bound of a query: either a day number counted from genesis or
// a calendar date. The zero Day is unset.
type Day struct {
	s string
}

// DayNumber returns the Day with the given number since genesis
func DayNumber(n int) Day {
	return Day{s: strconv.Itoa(n)}
}

// Date returns the Day of t's calendar date
func Date(t time.Time) Day {
	return Day{s: t.Format(time.DateOnly)}
}

// ParseDay accepts a day number or a YYYY-MM-DD date. The empty string
// yields the unset Day.
func ParseDay(s string) (Day, error) {
	if s == "" {
		return Day{}, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return Day{}, fmt.Errorf("day number %d is negative", n)
		}
		return DayNumber(n), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: expected a day number or YYYY-MM-DD", s)
	}
	return Date(t), nil
}

// IsZero reports whether d is unset
func (d Day) IsZero() bool {
	return d.s == ""
}

// String returns the form sent to the API
func (d Day) String() string {
	return d.s
}
