package model

import (
	"time"

	"courtbook/shared/model"
)

const (
	TableName  = "premium_dates"
	EntityName = "premium_date"

	FieldID   = "id"
	FieldDate = "premium_date"
	FieldNote = "note"
)

// PremiumDate overrides the day premium registration opens in the month of Date.
type PremiumDate struct {
	ID   string    `db:"id"`
	Date time.Time `db:"premium_date"`
	Note string    `db:"note"`
	model.Metadata
}

// Dates returns the override days in their stored order.
func Dates(models []PremiumDate) []time.Time {
	dates := make([]time.Time, len(models))
	for i, mod := range models {
		dates[i] = mod.Date
	}

	return dates
}
