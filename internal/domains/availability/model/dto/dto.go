package dto

type ValidateSelectionRequest struct {
	TenantID string   `json:"tenant_id" validate:"omitempty,uuid"`
	CourtID  string   `json:"court_id"  validate:"required,uuid"`
	SlotKeys []string `json:"slot_keys" validate:"required,min=1,max=48,dive,slotkey"`
}

type CrossCourtRequest struct {
	TenantID       string   `json:"tenant_id"        validate:"omitempty,uuid"`
	ExcludeCourtID string   `json:"exclude_court_id" validate:"required,uuid"`
	SlotKeys       []string `json:"slot_keys"        validate:"required,min=1,max=48,dive,slotkey"`
}

type SlotBookedResponse struct {
	CourtID  string `json:"court_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	IsBooked bool   `json:"is_booked"`
}
