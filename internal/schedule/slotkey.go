package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// SlotDuration is the fixed length of every bookable slot.
const SlotDuration = time.Hour

var ErrInvalidSlotKey = errors.New("invalid slot key")

// SlotKey identifies a slot by civil date and start time. Its wire form is YYYY-MM-DD-HH:MM.
type SlotKey struct {
	Date  time.Time
	Start Clock
}

func NewSlotKey(date time.Time, start Clock) SlotKey {
	return SlotKey{Date: DateOf(date), Start: start}
}

// ParseSlotKey splits on the first three hyphens: the first three fields form the date and the
// remainder is the start time.
func ParseSlotKey(value string) (SlotKey, error) {
	parts := strings.SplitN(value, "-", 4)
	if len(parts) != 4 {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlotKey, value)
	}

	date, err := ParseDate(strings.Join(parts[:3], "-"))
	if err != nil {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlotKey, value)
	}

	start, err := ParseClock(parts[3])
	if err != nil || len(parts[3]) != len("15:04") {
		return SlotKey{}, fmt.Errorf("%w: %q", ErrInvalidSlotKey, value)
	}

	return SlotKey{Date: date, Start: start}, nil
}

// ParseSlotKeys parses every key, failing on the first malformed one.
func ParseSlotKeys(values []string) ([]SlotKey, error) {
	keys := make([]SlotKey, 0, len(values))

	for _, value := range values {
		key, err := ParseSlotKey(value)
		if err != nil {
			return nil, err
		}

		keys = append(keys, key)
	}

	return keys, nil
}

func (k SlotKey) String() string {
	return FormatDate(k.Date) + "-" + k.Start.String()
}

func (k SlotKey) End() Clock {
	return k.Start.Add(SlotDuration)
}

// Interval returns the half-open [start, end) instants of the slot in loc.
func (k SlotKey) Interval(loc *time.Location) (time.Time, time.Time) {
	start := k.Start.On(k.Date, loc)

	return start, start.Add(SlotDuration)
}

// Overlaps reports whether two slots share any instant.
func (k SlotKey) Overlaps(other SlotKey) bool {
	if !k.Date.Equal(other.Date) {
		return false
	}

	return k.Start < other.End() && other.Start < k.End()
}

func (k SlotKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SlotKey) UnmarshalText(text []byte) error {
	parsed, err := ParseSlotKey(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// UniqueDates returns the distinct dates of keys in first-seen order.
func UniqueDates(keys []SlotKey) []time.Time {
	seen := map[time.Time]bool{}
	dates := []time.Time{}

	for _, key := range keys {
		if seen[key.Date] {
			continue
		}

		seen[key.Date] = true
		dates = append(dates, key.Date)
	}

	return dates
}

// UniqueKeys drops repeated keys, keeping first-seen order.
func UniqueKeys(keys []SlotKey) []SlotKey {
	seen := map[SlotKey]bool{}
	unique := make([]SlotKey, 0, len(keys))

	for _, key := range keys {
		if seen[key] {
			continue
		}

		seen[key] = true
		unique = append(unique, key)
	}

	return unique
}
