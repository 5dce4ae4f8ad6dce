package dateutil

import (
	"fmt"
	"time"
)

// DayLayout is the day format used by production-calendar.ru in both directions
const DayLayout = "02.01.2006"

// FormatDay formats date as dd.MM.yyyy
func FormatDay(date time.Time) string {
	return date.Format(DayLayout)
}

// ParseDay parses a dd.MM.yyyy string into a UTC date.
// Any deviation from the layout (separators, padding, extra text) is an error.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: want dd.MM.yyyy", s)
	}
	return t, nil
}

// FormatMonth formats a month as MM.yyyy. The year is printed as-is.
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%02d.%d", int(month), year)
}

// Date returns the UTC midnight of the given calendar day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
