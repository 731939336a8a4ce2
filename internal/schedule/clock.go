package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// EndOfDay is 24:00, the end time of a slot starting at 23:00.
const EndOfDay = Clock(minutesPerDay)

var ErrInvalidClock = errors.New("invalid clock time")

// Clock is a time of day with minute precision, stored as minutes since midnight.
type Clock int

// NewClock builds a Clock from hour and minute.
func NewClock(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// ParseClock accepts "HH:MM" and "HH:MM:SS" (seconds must be zero). "24:00" is accepted as the
// end of the day so the last slot's end time reads back from storage.
func ParseClock(value string) (Clock, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	fields := make([]int, len(parts))

	for i, part := range parts {
		if len(part) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
		}

		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
		}

		fields[i] = n
	}

	if fields[0] > 24 || fields[1] > 59 || (len(fields) == 3 && fields[2] != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	clock := NewClock(fields[0], fields[1])
	if clock > EndOfDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, value)
	}

	return clock, nil
}

// ClockOf returns the time of day of t in t's location.
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute())
}

func (c Clock) Hour() int {
	return int(c) / 60
}

func (c Clock) Minute() int {
	return int(c) % 60
}

// Add returns the clock shifted by d. The result may reach 24:00 but never wraps.
func (c Clock) Add(d time.Duration) Clock {
	return c + Clock(d/time.Minute)
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On returns the instant at this clock time on the civil date in loc.
func (c Clock) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, loc)
}

// Scan implements sql.Scanner for Postgres TIME columns.
func (c *Clock) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*c = ClockOf(v)

		return nil
	case []byte:
		return c.scanString(string(v))
	case string:
		return c.scanString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidClock, src)
	}
}

func (c *Clock) scanString(value string) error {
	// Postgres may append fractional seconds.
	if idx := strings.Index(value, "."); idx > 0 {
		value = value[:idx]
	}

	parsed, err := ParseClock(value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// Value implements driver.Valuer.
func (c Clock) Value() (driver.Value, error) {
	if c < 0 || c > EndOfDay {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidClock, int(c))
	}

	return c.String() + ":00", nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidClock, string(data))
	}

	parsed, err := ParseClock(value)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
