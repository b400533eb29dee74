package dto

import (
	"github.com/google/uuid"

	"goldentower/internal/domains/catalog/model"
	"goldentower/shared"
	gDto "goldentower/shared/dto"
	gModel "goldentower/shared/model"
	"goldentower/shared/timezone"
)

type CreateServiceRequest struct {
	Name            string  `json:"name"             validate:"required,max=100"`
	Description     string  `json:"description"      validate:"omitempty,max=500"`
	Price           float64 `json:"price"            validate:"required,min=0"`
	CommissionRate  float64 `json:"commission_rate"  validate:"omitempty,min=0,max=100"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=15,max=480"`
	Active          *bool   `json:"active"           validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		Price:           c.Price,
		CommissionRate:  c.CommissionRate,
		DurationMinutes: c.DurationMinutes,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string   `db:"name"             json:"name"             validate:"omitempty,max=100"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty,max=500"`
	Price           *float64 `db:"price"            json:"price"            validate:"omitempty,min=0"`
	CommissionRate  *float64 `db:"commission_rate"  json:"commission_rate"  validate:"omitempty,min=0,max=100"`
	DurationMinutes *int     `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Active          *bool    `db:"active"           json:"active"           validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	CommissionRate  float64 `json:"commission_rate"`
	DurationMinutes int     `json:"duration_minutes"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.CommissionRate = model.CommissionRate
	r.DurationMinutes = model.DurationMinutes
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
