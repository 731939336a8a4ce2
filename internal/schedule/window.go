package schedule

import (
	"time"
)

// BookingType classifies which registration path a date belongs to.
type BookingType string

const (
	BookingTypeFree    BookingType = "free"
	BookingTypePremium BookingType = "premium"
	BookingTypeNone    BookingType = "none"
)

// Valid reports whether t is a persistable reservation category.
func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeFree, BookingTypePremium:
		return true
	case BookingTypeNone:
		return false
	default:
		return false
	}
}

// Rules carries the tunable booking policy. Zero fields fall back to DefaultRules.
type Rules struct {
	SlotStartHour        int
	SlotEndHour          int
	PeakStartHour        int
	DailyHourCap         int
	DistinctDayCap       int
	DefaultPremiumDay    int
	FreeHorizonDays      int
	PremiumHorizonMonths int
	DefaultBookingLimit  int
}

func DefaultRules() Rules {
	return Rules{
		SlotStartHour:        6,
		SlotEndHour:          22,
		PeakStartHour:        18,
		DailyHourCap:         2,
		DistinctDayCap:       3,
		DefaultPremiumDay:    25,
		FreeHorizonDays:      7,
		PremiumHorizonMonths: 1,
		DefaultBookingLimit:  3,
	}
}

// maxSlotHour is the latest slot start; its slot ends at EndOfDay.
const maxSlotHour = 23

// Normalize replaces unset fields with their defaults and keeps the grid inside one day.
func (r Rules) Normalize() Rules {
	def := DefaultRules()

	fill := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}

	fill(&r.SlotStartHour, def.SlotStartHour)
	fill(&r.SlotEndHour, def.SlotEndHour)
	fill(&r.PeakStartHour, def.PeakStartHour)
	fill(&r.DailyHourCap, def.DailyHourCap)
	fill(&r.DistinctDayCap, def.DistinctDayCap)
	fill(&r.DefaultPremiumDay, def.DefaultPremiumDay)
	fill(&r.FreeHorizonDays, def.FreeHorizonDays)
	fill(&r.PremiumHorizonMonths, def.PremiumHorizonMonths)
	fill(&r.DefaultBookingLimit, def.DefaultBookingLimit)

	r.SlotStartHour = min(r.SlotStartHour, maxSlotHour)
	r.SlotEndHour = min(r.SlotEndHour, maxSlotHour)
	r.PeakStartHour = min(r.PeakStartHour, maxSlotHour)

	if r.SlotEndHour < r.SlotStartHour {
		r.SlotStartHour, r.SlotEndHour = def.SlotStartHour, def.SlotEndHour
	}

	return r
}

func (r Rules) Grid() Grid {
	return Grid{
		FirstStart: NewClock(r.SlotStartHour, 0),
		LastStart:  NewClock(r.SlotEndHour, 0),
		PeakStart:  NewClock(r.PeakStartHour, 0),
	}
}

// Window is an inclusive range of civil dates.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) Contains(date time.Time) bool {
	date = DateOf(date)

	return !date.Before(w.Start) && !date.After(w.End)
}

func (w Window) Empty() bool {
	return w.End.Before(w.Start)
}

// FreeWindow is next week, Monday onward, spanning FreeHorizonDays days.
func (r Rules) FreeWindow(now time.Time) Window {
	start := WeekStart(DateOf(now)).AddDate(0, 0, 7)

	return Window{Start: start, End: start.AddDate(0, 0, r.FreeHorizonDays-1)}
}

// PremiumWindow starts the day after the free window and ends on the last day of the month
// PremiumHorizonMonths after today's month.
func (r Rules) PremiumWindow(now time.Time) Window {
	free := r.FreeWindow(now)

	return Window{
		Start: free.End.AddDate(0, 0, 1),
		End:   MonthEnd(DateOf(now), r.PremiumHorizonMonths),
	}
}

// PremiumOpenDate resolves the day premium registration opens. overrides holds the admin-set
// dates in precedence order; the first one in the relevant month wins. When today is already
// past this month's date the next month's date is returned.
func (r Rules) PremiumOpenDate(now time.Time, overrides []time.Time) time.Time {
	today := DateOf(now)

	current := r.openDateFor(today, 0, overrides)
	if !today.After(current) {
		return current
	}

	return r.openDateFor(today, 1, overrides)
}

func (r Rules) openDateFor(today time.Time, months int, overrides []time.Time) time.Time {
	month := DayOfMonth(today, months, 1)

	for _, override := range overrides {
		if SameMonth(override, month) {
			return DateOf(override)
		}
	}

	return DayOfMonth(today, months, r.DefaultPremiumDay)
}

// IsPremiumOpen reports whether today is the premium registration day.
func (r Rules) IsPremiumOpen(now time.Time, overrides []time.Time) bool {
	return DateOf(now).Equal(r.PremiumOpenDate(now, overrides))
}

// CanBookFree reports whether date lies in the free window.
func (r Rules) CanBookFree(date, now time.Time) bool {
	return r.FreeWindow(now).Contains(date)
}

// CanBookPremium reports whether date lies in the premium window and registration is open today.
func (r Rules) CanBookPremium(date, now time.Time, overrides []time.Time) bool {
	return r.PremiumWindow(now).Contains(date) && r.IsPremiumOpen(now, overrides)
}

// BookingTypeOf classifies date. Free takes precedence; the windows never overlap anyway.
func (r Rules) BookingTypeOf(date, now time.Time, overrides []time.Time) BookingType {
	switch {
	case r.CanBookFree(date, now):
		return BookingTypeFree
	case r.CanBookPremium(date, now, overrides):
		return BookingTypePremium
	default:
		return BookingTypeNone
	}
}

// IsPast reports whether the slot has already started at now.
func IsPast(key SlotKey, now time.Time) bool {
	start, _ := key.Interval(now.Location())

	return !start.After(now)
}

// IsBookable reports whether the slot may be requested at now: it lies in the future and its
// date falls in an open window.
func (r Rules) IsBookable(key SlotKey, now time.Time, overrides []time.Time) bool {
	if IsPast(key, now) {
		return false
	}

	return r.BookingTypeOf(key.Date, now, overrides) != BookingTypeNone
}
