// Package model holds the read models produced by the availability engine. None of them is
// persisted.
package model

import (
	"fmt"

	"courtbook/internal/schedule"

	"github.com/shopspring/decimal"
)

type ConflictType string

const (
	ConflictSlotTaken  ConflictType = "slot_taken"
	ConflictCrossCourt ConflictType = "cross_court"
)

// ConflictDetail explains why one candidate slot collides with an existing reservation.
type ConflictDetail struct {
	Type          ConflictType   `json:"type"`
	SlotKey       string         `json:"slot_key"`
	CourtID       string         `json:"court_id"`
	CourtName     string         `json:"court_name"`
	Date          string         `json:"date"`
	StartTime     schedule.Clock `json:"start_time"`
	EndTime       schedule.Clock `json:"end_time"`
	ReservationID string         `json:"reservation_id,omitempty"`
	Message       string         `json:"message"`
}

// SlotDecision is the per-slot classification computed while validating a batch.
type SlotDecision struct {
	Key            schedule.SlotKey     `json:"slot_key"`
	Category       schedule.BookingType `json:"category"`
	IsPeak         bool                 `json:"is_peak"`
	Price          decimal.Decimal      `json:"price"`
	LightSurcharge decimal.Decimal      `json:"light_surcharge"`
}

// ValidationResult is the verdict on a batch. CanBook holds only when Warnings and Conflicts
// are both empty.
type ValidationResult struct {
	CanBook         bool             `json:"can_book"`
	Warnings        []string         `json:"warnings"`
	Conflicts       []ConflictDetail `json:"conflicts"`
	SelectedDates   []string         `json:"selected_dates"`
	BookedDaysCount int              `json:"booked_days_count"`
	NewDaysCount    int              `json:"new_days_count"`
	Slots           []SlotDecision   `json:"slots"`
}

// Warn records a rule violation.
func (r *ValidationResult) Warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Conflict records a collision.
func (r *ValidationResult) Conflict(detail ConflictDetail) {
	r.Conflicts = append(r.Conflicts, detail)
}

// Settle computes CanBook from the accumulated diagnostics.
func (r *ValidationResult) Settle() {
	r.CanBook = len(r.Warnings) == 0 && len(r.Conflicts) == 0
}

// SlotView is one cell of a court's daily grid.
type SlotView struct {
	SlotKey     string               `json:"slot_key"`
	StartTime   schedule.Clock       `json:"start_time"`
	EndTime     schedule.Clock       `json:"end_time"`
	IsPeak      bool                 `json:"is_peak"`
	IsBooked    bool                 `json:"is_booked"`
	BookedBy    string               `json:"booked_by,omitempty"`
	IsPast      bool                 `json:"is_past"`
	WithinHours bool                 `json:"within_hours"`
	Category    schedule.BookingType `json:"category"`
	Price       decimal.Decimal      `json:"price"`
	IsAvailable bool                 `json:"is_available"`
}

type Usage struct {
	Limit     int `json:"limit"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

func NewUsage(limit, used int) Usage {
	return Usage{Limit: limit, Used: used, Remaining: max(0, limit-used)}
}

type QuotaInfo struct {
	TenantID         string `json:"tenant_id"`
	Combined         Usage  `json:"combined"`
	Free             Usage  `json:"free"`
	Premium          Usage  `json:"premium"`
	WeeklyRemaining  int    `json:"weekly_remaining"`
	CurrentWeekUsage int    `json:"current_week_usage"`
	WeekStart        string `json:"week_start"`
}

// WindowInfo describes the booking calendar as seen at one instant.
type WindowInfo struct {
	Today           string               `json:"today"`
	FreeWindow      schedule.Window      `json:"free_window"`
	PremiumWindow   schedule.Window      `json:"premium_window"`
	PremiumOpenDate string               `json:"premium_open_date"`
	PremiumOpen     bool                 `json:"premium_open"`
	Date            string               `json:"date,omitempty"`
	BookingType     schedule.BookingType `json:"booking_type,omitempty"`
	CanBookFree     bool                 `json:"can_book_free"`
	CanBookPremium  bool                 `json:"can_book_premium"`
}
