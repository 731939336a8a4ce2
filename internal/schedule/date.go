package schedule

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// DateOf returns the civil date of t (in t's own location) as midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return date, nil
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// WeekStart returns the Monday of date's week.
func WeekStart(date time.Time) time.Time {
	date = DateOf(date)
	offset := (int(date.Weekday()) + 6) % 7

	return date.AddDate(0, 0, -offset)
}

// MonthEnd returns the last day of the month that lies months after date's month.
func MonthEnd(date time.Time, months int) time.Time {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)

	return first.AddDate(0, months+1, -1)
}

// DayOfMonth returns the given day of date's month shifted by months, clamped to the month length.
func DayOfMonth(date time.Time, months, day int) time.Time {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	last := first.AddDate(0, 1, -1).Day()

	day = max(1, min(day, last))

	return first.AddDate(0, 0, day-1)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
