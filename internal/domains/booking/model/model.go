package model

import (
	"database/sql"
	"time"

	"goldentower/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldVisitorID        = "visitor_id"
	FieldGuestName        = "guest_name"
	FieldGuestPhone       = "guest_phone"
	FieldServiceID        = "service_id"
	FieldTherapistID      = "therapist_id"
	FieldBookingDate      = "booking_date"
	FieldBookingTime      = "booking_time"
	FieldStatus           = "status"
	FieldCompletedAt      = "completed_at"
	FieldCommissionAmount = "commission_amount"
	FieldTipAmount        = "tip_amount"
	FieldTipRecipient     = "tip_recipient"
	FieldPayoutID         = "payout_id"
	FieldDeletedAt        = "deleted_at"
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// transitions lists the legal next states. Completed is terminal, cancelled
// bookings may be restored to pending.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {StatusPending},
	StatusCompleted: {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]

	return ok
}

// CanTransitionTo reports whether next is a legal transition from s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

const (
	TipRecipientTherapist  = "therapist"
	TipRecipientManagement = "management"
)

type Booking struct {
	ID               string          `db:"id"`
	UserID           sql.NullString  `db:"user_id"`
	VisitorID        sql.NullString  `db:"visitor_id"`
	GuestName        string          `db:"guest_name"`
	GuestPhone       string          `db:"guest_phone"`
	ServiceID        string          `db:"service_id"`
	TherapistID      sql.NullString  `db:"therapist_id"`
	BookingDate      time.Time       `db:"booking_date"`
	BookingTime      string          `db:"booking_time"`
	Status           Status          `db:"status"`
	CompletedAt      sql.NullTime    `db:"completed_at"`
	CommissionAmount sql.NullFloat64 `db:"commission_amount"`
	TipAmount        float64         `db:"tip_amount"`
	TipRecipient     string          `db:"tip_recipient"`
	PayoutID         sql.NullString  `db:"payout_id"`
	DeletedAt        sql.NullTime    `db:"deleted_at"`
	model.Metadata
}

// IdentityField returns the column and value identifying the customer for
// throttle and pending-cap scoping. A registered user wins over the anonymous
// visitor token. Both may be absent; callers must tolerate that.
func (b Booking) IdentityField() (field, value string) {
	if b.UserID.Valid && b.UserID.String != "" {
		return FieldUserID, b.UserID.String
	}

	if b.VisitorID.Valid && b.VisitorID.String != "" {
		return FieldVisitorID, b.VisitorID.String
	}

	return "", ""
}

// View is the read-side projection of a booking joined with its service and
// therapist names for lists and the timeline. Never written.
type View struct {
	Booking
	ServiceName          string          `db:"service_name"           table:"services"   column:"name"`
	ServicePrice         sql.NullFloat64 `db:"service_price"          table:"services"   column:"price"`
	ServiceCommissionPct sql.NullFloat64 `db:"service_commission_pct" table:"services"   column:"commission_rate"`
	TherapistName        sql.NullString  `db:"therapist_name"         table:"therapists" column:"name"`
}

func (View) GetJoinQuery() string {
	return "LEFT JOIN services ON services.id = bookings.service_id LEFT JOIN therapists ON therapists.id = bookings.therapist_id"
}
