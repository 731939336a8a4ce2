package dto

import (
	"courtbook/internal/domains/premiumdate/model"
	"courtbook/internal/schedule"
	"courtbook/shared"
	gDto "courtbook/shared/dto"
	gModel "courtbook/shared/model"
	"courtbook/shared/timezone"

	"github.com/google/uuid"
)

type CreatePremiumDateRequest struct {
	Date string `json:"date" validate:"required,day"`
	Note string `json:"note" validate:"omitempty,max=255"`
}

func (c *CreatePremiumDateRequest) ToModel(user string) (model.PremiumDate, error) {
	date, err := schedule.ParseDate(c.Date)
	if err != nil {
		return model.PremiumDate{}, err //nolint:wrapcheck
	}

	now := timezone.Now()

	return model.PremiumDate{
		ID:   uuid.NewString(),
		Date: date,
		Note: c.Note,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdatePremiumDateRequest struct {
	Date string `db:"-"    json:"date" validate:"omitempty,day"`
	Note string `db:"note" json:"note" validate:"omitempty,max=255"`
}

type PremiumDateResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Note string `json:"note"`
	gDto.Metadata
}

func (r *PremiumDateResponse) FromModel(model model.PremiumDate) {
	r.ID = model.ID
	r.Date = schedule.FormatDate(model.Date)
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

type GetPremiumDatesResponse struct {
	PremiumDates []PremiumDateResponse `json:"premium_dates"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetPremiumDatesResponse) FromModels(models []model.PremiumDate, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.PremiumDates = make([]PremiumDateResponse, len(models))
	for i, mod := range models {
		r.PremiumDates[i].FromModel(mod)
	}
}
