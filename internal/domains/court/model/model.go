package model

import (
	"courtbook/internal/schedule"
	"courtbook/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "courts"
	EntityName = "court"

	FieldID             = "id"
	FieldName           = "name"
	FieldHourlyRate     = "hourly_rate"
	FieldLightSurcharge = "light_surcharge"
	FieldOpenTime       = "open_time"
	FieldCloseTime      = "close_time"
	FieldActive         = "active"
)

type Court struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"`
	HourlyRate     decimal.Decimal `db:"hourly_rate"`
	LightSurcharge decimal.Decimal `db:"light_surcharge"`
	OpenTime       *schedule.Clock `db:"open_time"`
	CloseTime      *schedule.Clock `db:"close_time"`
	Active         bool            `db:"active"`
	model.Metadata
}

// WithinHours reports whether a one-hour slot starting at start fits the operating window.
// A court without hours is always open.
func (c Court) WithinHours(start schedule.Clock) bool {
	if c.OpenTime != nil && start < *c.OpenTime {
		return false
	}

	if c.CloseTime != nil && start.Add(schedule.SlotDuration) > *c.CloseTime {
		return false
	}

	return true
}

// Price returns the total price of one slot and the lighting surcharge included in it.
func (c Court) Price(peak bool) (decimal.Decimal, decimal.Decimal) {
	if !peak {
		return c.HourlyRate, decimal.Zero
	}

	return c.HourlyRate.Add(c.LightSurcharge), c.LightSurcharge
}
