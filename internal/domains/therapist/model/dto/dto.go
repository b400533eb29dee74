package dto

import (
	"github.com/google/uuid"

	"goldentower/internal/domains/therapist/model"
	"goldentower/shared"
	gDto "goldentower/shared/dto"
	gModel "goldentower/shared/model"
	"goldentower/shared/timezone"
)

type CreateTherapistRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Phone  string `json:"phone"  validate:"omitempty,max=20"`
	Active *bool  `json:"active" validate:"omitempty"`
}

func (c *CreateTherapistRequest) ToModel(user string) model.Therapist {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Therapist{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Phone:  c.Phone,
		Active: active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTherapistRequest struct {
	Name   string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Phone  string `db:"phone"  json:"phone"  validate:"omitempty,max=20"`
	Active *bool  `db:"active" json:"active" validate:"omitempty"`
}

type CreateBlockoutRequest struct {
	BlockoutDate string `json:"blockout_date" validate:"required,civildate"`
}

func (c *CreateBlockoutRequest) ToModel(therapistID, user string) model.Blockout {
	return model.Blockout{
		ID:           uuid.NewString(),
		TherapistID:  therapistID,
		BlockoutDate: c.BlockoutDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BlockoutResponse struct {
	ID           string `json:"id"`
	TherapistID  string `json:"therapist_id"`
	BlockoutDate string `json:"blockout_date"`
}

func (r *BlockoutResponse) FromModel(model model.Blockout) {
	r.ID = model.ID
	r.TherapistID = model.TherapistID
	r.BlockoutDate = model.BlockoutDate
}

type TherapistResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
	gDto.Metadata
}

func (r *TherapistResponse) FromModel(model model.Therapist) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetTherapistsResponse struct {
	Therapists []TherapistResponse `json:"therapists"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetTherapistsResponse) FromModels(models []model.Therapist, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Therapists = make([]TherapistResponse, len(models))
	for i, mod := range models {
		r.Therapists[i].FromModel(mod)
	}
}
