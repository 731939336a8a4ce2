package dto

import (
	"courtbook/internal/domains/reservation/model"
	"courtbook/internal/schedule"
	"courtbook/shared"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	TenantID string   `json:"tenant_id" validate:"omitempty,uuid"`
	CourtID  string   `json:"court_id"  validate:"required,uuid"`
	SlotKeys []string `json:"slot_keys" validate:"required,min=1,max=48,dive,slotkey"`
	Notes    string   `json:"notes"     validate:"omitempty,max=500"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type ReservationResponse struct {
	ID             string               `json:"id"`
	Reference      string               `json:"reference"`
	TenantID       string               `json:"tenant_id"`
	TenantCode     string               `json:"tenant_code,omitempty"`
	CourtID        string               `json:"court_id"`
	CourtName      string               `json:"court_name,omitempty"`
	SlotKey        string               `json:"slot_key"`
	BookingDate    string               `json:"booking_date"`
	StartTime      schedule.Clock       `json:"start_time"`
	EndTime        schedule.Clock       `json:"end_time"`
	Status         model.Status         `json:"status"`
	Category       schedule.BookingType `json:"category"`
	WeekStart      string               `json:"week_start"`
	Price          decimal.Decimal      `json:"price"`
	LightSurcharge decimal.Decimal      `json:"light_surcharge"`
	Notes          string               `json:"notes"`
	ApprovedBy     *string              `json:"approved_by,omitempty"`
	ApprovedAt     *string              `json:"approved_at,omitempty"`
	CancelledBy    *string              `json:"cancelled_by,omitempty"`
	CancelledAt    *string              `json:"cancelled_at,omitempty"`
	CancelReason   *string              `json:"cancel_reason,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Reference = model.Reference
	r.TenantID = model.TenantID
	r.TenantCode = model.TenantCode
	r.CourtID = model.CourtID
	r.CourtName = model.CourtName
	r.SlotKey = model.SlotKey().String()
	r.BookingDate = schedule.FormatDate(model.BookingDate)
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Status = model.Status
	r.Category = model.Category
	r.WeekStart = schedule.FormatDate(model.WeekStart)
	r.Price = model.Price
	r.LightSurcharge = model.LightSurcharge
	r.Notes = model.Notes
	r.ApprovedBy = model.ApprovedBy
	r.CancelledBy = model.CancelledBy
	r.CancelReason = model.CancelReason
	r.Metadata.FromModel(model.Metadata)

	if model.ApprovedAt != nil {
		at := timezone.Format(*model.ApprovedAt, constant.DateFormat)
		r.ApprovedAt = &at
	}

	if model.CancelledAt != nil {
		at := timezone.Format(*model.CancelledAt, constant.DateFormat)
		r.CancelledAt = &at
	}
}

type CreateReservationResponse struct {
	Reference    string                `json:"reference"`
	Total        decimal.Decimal       `json:"total"`
	Reservations []ReservationResponse `json:"reservations"`
}

func (r *CreateReservationResponse) FromModels(models []model.Reservation) {
	r.Total = decimal.Zero
	r.Reservations = make([]ReservationResponse, len(models))

	for i, mod := range models {
		r.Reference = mod.Reference
		r.Total = r.Total.Add(mod.Price)
		r.Reservations[i].FromModel(mod)
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
