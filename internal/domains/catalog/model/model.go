package model

import "goldentower/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldPrice           = "price"
	FieldCommissionRate  = "commission_rate"
	FieldDurationMinutes = "duration_minutes"
	FieldActive          = "active"
)

type Service struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	Price           float64 `db:"price"`
	CommissionRate  float64 `db:"commission_rate"`
	DurationMinutes int     `db:"duration_minutes"`
	Active          bool    `db:"active"`
	model.Metadata
}

// CommissionFor derives the therapist commission for one completed booking of
// this service. The rate is a percentage of the list price.
func (s Service) CommissionFor() float64 {
	return s.Price * s.CommissionRate / 100
}
