package model

import "courtbook/shared/model"

const (
	TableName  = "tenants"
	EntityName = "tenant"

	FieldID           = "id"
	FieldCode         = "code"
	FieldName         = "name"
	FieldContact      = "contact"
	FieldBookingLimit = "booking_limit"
	FieldActive       = "active"
)

// Tenant is a club or group that books courts. BookingLimit is the weekly slot quota.
type Tenant struct {
	ID           string `db:"id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	Contact      string `db:"contact"`
	BookingLimit int    `db:"booking_limit"`
	Active       bool   `db:"active"`
	model.Metadata
}
