package schedule

import "time"

// Grid is the hourly slot layout shared by every court: one slot per whole hour whose start
// lies between FirstStart and LastStart inclusive.
type Grid struct {
	FirstStart Clock
	LastStart  Clock
	PeakStart  Clock
}

// Slots lists every start time of the grid in ascending order.
func (g Grid) Slots() []Clock {
	slots := []Clock{}

	for start := g.FirstStart; start <= g.LastStart; start = start.Add(SlotDuration) {
		slots = append(slots, start)
	}

	return slots
}

// Contains reports whether start is a slot start of the grid.
func (g Grid) Contains(start Clock) bool {
	return start >= g.FirstStart && start <= g.LastStart && start.Minute() == 0
}

// IsPeak reports whether the slot falls in the lighting-surcharge band.
func (g Grid) IsPeak(start Clock) bool {
	return start >= g.PeakStart
}

// Keys expands a date into every slot key of the grid.
func (g Grid) Keys(date time.Time) []SlotKey {
	slots := g.Slots()
	keys := make([]SlotKey, 0, len(slots))

	for _, start := range slots {
		keys = append(keys, NewSlotKey(date, start))
	}

	return keys
}
