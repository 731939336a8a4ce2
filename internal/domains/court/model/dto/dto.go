package dto

import (
	"errors"

	"courtbook/internal/domains/court/model"
	"courtbook/internal/schedule"
	"courtbook/shared"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	gModel "courtbook/shared/model"
	"courtbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	errNegativeRate  = errors.New("hourly_rate and light_surcharge must not be negative")
	errInvalidWindow = errors.New("open_time must be before close_time")
)

type CreateCourtRequest struct {
	Name           string          `json:"name"            validate:"required,max=100"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	LightSurcharge decimal.Decimal `json:"light_surcharge"`
	OpenTime       *schedule.Clock `json:"open_time"       swaggertype:"string" example:"06:00"`
	CloseTime      *schedule.Clock `json:"close_time"      swaggertype:"string" example:"23:00"`
	Active         *bool           `json:"active"`
}

// Check enforces the rules the struct tags cannot express.
func (c *CreateCourtRequest) Check() error {
	return checkCourt(&c.HourlyRate, &c.LightSurcharge, c.OpenTime, c.CloseTime)
}

func (c *CreateCourtRequest) ToModel(user string) model.Court {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	now := timezone.Now()

	return model.Court{
		ID:             uuid.NewString(),
		Name:           c.Name,
		HourlyRate:     c.HourlyRate,
		LightSurcharge: c.LightSurcharge,
		OpenTime:       c.OpenTime,
		CloseTime:      c.CloseTime,
		Active:         active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCourtRequest struct {
	Name           string           `db:"name"            json:"name"            validate:"omitempty,max=100"`
	HourlyRate     *decimal.Decimal `db:"hourly_rate"     json:"hourly_rate"`
	LightSurcharge *decimal.Decimal `db:"light_surcharge" json:"light_surcharge"`
	OpenTime       *schedule.Clock  `db:"open_time"       json:"open_time"       swaggertype:"string"`
	CloseTime      *schedule.Clock  `db:"close_time"      json:"close_time"      swaggertype:"string"`
	Active         *bool            `db:"active"          json:"active"`
}

// Check validates the update against the court it modifies.
func (u *UpdateCourtRequest) Check(current model.Court) error {
	open, closing := current.OpenTime, current.CloseTime
	if u.OpenTime != nil {
		open = u.OpenTime
	}

	if u.CloseTime != nil {
		closing = u.CloseTime
	}

	return checkCourt(u.HourlyRate, u.LightSurcharge, open, closing)
}

func checkCourt(rate, surcharge *decimal.Decimal, open, closing *schedule.Clock) error {
	if (rate != nil && rate.IsNegative()) || (surcharge != nil && surcharge.IsNegative()) {
		return failure.BadRequest(errNegativeRate)
	}

	if open != nil && closing != nil && *open >= *closing {
		return failure.BadRequest(errInvalidWindow)
	}

	return nil
}

type CourtResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"     swaggertype:"string"`
	LightSurcharge decimal.Decimal `json:"light_surcharge" swaggertype:"string"`
	OpenTime       *schedule.Clock `json:"open_time"       swaggertype:"string"`
	CloseTime      *schedule.Clock `json:"close_time"      swaggertype:"string"`
	Active         bool            `json:"active"`
	gDto.Metadata
}

func (r *CourtResponse) FromModel(model model.Court) {
	r.ID = model.ID
	r.Name = model.Name
	r.HourlyRate = model.HourlyRate
	r.LightSurcharge = model.LightSurcharge
	r.OpenTime = model.OpenTime
	r.CloseTime = model.CloseTime
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCourtsResponse struct {
	Courts    []CourtResponse `json:"courts"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetCourtsResponse) FromModels(models []model.Court, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Courts = make([]CourtResponse, len(models))
	for i, mod := range models {
		r.Courts[i].FromModel(mod)
	}
}
