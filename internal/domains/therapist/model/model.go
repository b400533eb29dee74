package model

import (
	"goldentower/internal/domains/schedule/model"
	gModel "goldentower/shared/model"
)

const (
	TableName  = "therapists"
	EntityName = "therapist"

	FieldID     = "id"
	FieldName   = "name"
	FieldPhone  = "phone"
	FieldActive = "active"

	BlockoutTableName  = "therapist_blockouts"
	BlockoutEntityName = "therapist_blockout"

	BlockoutFieldID          = "id"
	BlockoutFieldTherapistID = "therapist_id"
	BlockoutFieldDate        = "blockout_date"
)

type Therapist struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Phone  string `db:"phone"`
	Active bool   `db:"active"`
	gModel.Metadata
}

// Blockout is a civil date on which the therapist may not take bookings.
type Blockout struct {
	ID           string `db:"id"`
	TherapistID  string `db:"therapist_id"`
	BlockoutDate string `db:"blockout_date"`
	gModel.Metadata
}

// Date parses the stored YYYY-MM-DD value.
func (b Blockout) Date() (model.CivilDate, error) {
	return model.ParseCivilDate(b.BlockoutDate)
}
