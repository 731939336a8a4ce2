package dto

import (
	"strings"

	"courtbook/internal/domains/tenant/model"
	"courtbook/shared"
	gDto "courtbook/shared/dto"
	gModel "courtbook/shared/model"
	"courtbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateTenantRequest struct {
	Code         string `json:"code"          validate:"required,alphanum,max=20"`
	Name         string `json:"name"          validate:"required,max=100"`
	Contact      string `json:"contact"       validate:"omitempty,max=100"`
	BookingLimit *int   `json:"booking_limit" validate:"omitempty,min=0,max=50"`
	Active       *bool  `json:"active"`
}

// ToModel builds the tenant; defaultLimit applies when the request has no booking limit.
func (c *CreateTenantRequest) ToModel(user string, defaultLimit int) model.Tenant {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	limit := defaultLimit
	if c.BookingLimit != nil {
		limit = *c.BookingLimit
	}

	now := timezone.Now()

	return model.Tenant{
		ID:           uuid.NewString(),
		Code:         strings.ToUpper(c.Code),
		Name:         c.Name,
		Contact:      c.Contact,
		BookingLimit: limit,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTenantRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Contact      string `db:"contact"       json:"contact"       validate:"omitempty,max=100"`
	BookingLimit *int   `db:"booking_limit" json:"booking_limit" validate:"omitempty,min=0,max=50"`
	Active       *bool  `db:"active"        json:"active"`
}

type TenantResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	BookingLimit int    `json:"booking_limit"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *TenantResponse) FromModel(model model.Tenant) {
	r.ID = model.ID
	r.Code = model.Code
	r.Name = model.Name
	r.Contact = model.Contact
	r.BookingLimit = model.BookingLimit
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetTenantsResponse struct {
	Tenants   []TenantResponse `json:"tenants"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetTenantsResponse) FromModels(models []model.Tenant, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tenants = make([]TenantResponse, len(models))
	for i, mod := range models {
		r.Tenants[i].FromModel(mod)
	}
}
