// Package schedule holds the pure calendar arithmetic of the reservation engine: clock times,
// civil dates, slot keys, the hourly slot grid and the free/premium booking windows.
//
// Nothing in this package reads the wall clock. Every function that depends on the current
// moment takes it as a parameter, so callers decide which "now" applies.
//
// Dates are represented as time.Time values at midnight UTC of the civil date; use DateOf to
// convert an instant (in any location) to its calendar date in that location.
package schedule
