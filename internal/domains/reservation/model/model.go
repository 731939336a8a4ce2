package model

import (
	"errors"
	"fmt"
	"time"

	"courtbook/internal/schedule"
	"courtbook/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID             = "id"
	FieldReference      = "reference"
	FieldTenantID       = "tenant_id"
	FieldCourtID        = "court_id"
	FieldBookingDate    = "booking_date"
	FieldStartTime      = "start_time"
	FieldEndTime        = "end_time"
	FieldStatus         = "status"
	FieldCategory       = "category"
	FieldWeekStart      = "booking_week_start"
	FieldPrice          = "price"
	FieldLightSurcharge = "light_surcharge"
	FieldNotes          = "notes"
	FieldApprovedBy     = "approved_by"
	FieldApprovedAt     = "approved_at"
	FieldCancelledBy    = "cancelled_by"
	FieldCancelledAt    = "cancelled_at"
	FieldCancelReason   = "cancel_reason"

	JoinCourts  = "courts ON courts.id = reservations.court_id"
	JoinTenants = "tenants ON tenants.id = reservations.tenant_id"
)

var ErrInvalidStatus = errors.New("invalid reservation status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(value string) (Status, error) {
	switch status := Status(value); status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
}

// IsActive reports whether the reservation still holds its slot.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Cancelled is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	case StatusCancelled:
		return false
	default:
		return false
	}
}

// Reservation holds one one-hour slot on one court for one tenant.
type Reservation struct {
	ID             string               `db:"id"`
	Reference      string               `db:"reference"`
	TenantID       string               `db:"tenant_id"`
	CourtID        string               `db:"court_id"`
	BookingDate    time.Time            `db:"booking_date"`
	StartTime      schedule.Clock       `db:"start_time"`
	EndTime        schedule.Clock       `db:"end_time"`
	Status         Status               `db:"status"`
	Category       schedule.BookingType `db:"category"`
	WeekStart      time.Time            `db:"booking_week_start"`
	Price          decimal.Decimal      `db:"price"`
	LightSurcharge decimal.Decimal      `db:"light_surcharge"`
	Notes          string               `db:"notes"`
	ApprovedBy     *string              `db:"approved_by"`
	ApprovedAt     *time.Time           `db:"approved_at"`
	CancelledBy    *string              `db:"cancelled_by"`
	CancelledAt    *time.Time           `db:"cancelled_at"`
	CancelReason   *string              `db:"cancel_reason"`
	CourtName      string               `db:"court_name"  table:"courts"  column:"name"`
	TenantCode     string               `db:"tenant_code" table:"tenants" column:"code"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return " JOIN " + JoinCourts + " JOIN " + JoinTenants
}

func (r Reservation) SlotKey() schedule.SlotKey {
	return schedule.NewSlotKey(r.BookingDate, r.StartTime)
}

// Dates returns the distinct booking dates of models in first-seen order.
func Dates(models []Reservation) []time.Time {
	keys := make([]schedule.SlotKey, len(models))
	for i, mod := range models {
		keys[i] = mod.SlotKey()
	}

	return schedule.UniqueDates(keys)
}
