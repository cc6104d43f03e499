// utils/dates.go
package utils

import "time"

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DateOf formats t as an ISO calendar date.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeOfDay formats t as a zero-padded HH:mm string.
func TimeOfDay(t time.Time) string {
	return t.Format(TimeLayout)
}

// WeekdayIndex maps an ISO date to a Monday-first weekday index
// (Monday = 0, Sunday = 6). ok is false for unparseable dates.
func WeekdayIndex(date string) (int, bool) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, false
	}
	return (int(t.Weekday()) + 6) % 7, true
}
