package dto

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"goldentower/internal/domains/booking/model"
	scheduleModel "goldentower/internal/domains/schedule/model"
	"goldentower/shared"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	gModel "goldentower/shared/model"
	"goldentower/shared/timezone"
)

type CreateBookingRequest struct {
	VisitorID    string  `json:"visitor_id"    validate:"omitempty,max=64"`
	GuestName    string  `json:"guest_name"    validate:"required,max=100"`
	GuestPhone   string  `json:"guest_phone"   validate:"omitempty,max=20"`
	ServiceID    string  `json:"service_id"    validate:"required,uuid4"`
	TherapistID  string  `json:"therapist_id"  validate:"omitempty,uuid4"`
	BookingDate  string  `json:"booking_date"  validate:"required,civildate"`
	BookingTime  string  `json:"booking_time"  validate:"required,clocktime"`
	TipAmount    float64 `json:"tip_amount"    validate:"omitempty,min=0"`
	TipRecipient string  `json:"tip_recipient" validate:"omitempty,oneof=therapist management"`

	// Website is a honeypot. Real clients never see the field; anything in it
	// marks the submission as automated.
	Website string `json:"website"`
}

func (c *CreateBookingRequest) ToModel(userID string) model.Booking {
	bookingDate, _ := time.Parse(constant.CivilDateFormat, c.BookingDate)

	bookingTime := c.BookingTime
	if len(bookingTime) == len(constant.ClockFormat) {
		bookingTime += ":00"
	}

	tipRecipient := c.TipRecipient
	if tipRecipient == "" {
		tipRecipient = model.TipRecipientManagement
	}

	return model.Booking{
		ID:           uuid.NewString(),
		UserID:       sql.NullString{String: userID, Valid: userID != ""},
		VisitorID:    sql.NullString{String: c.VisitorID, Valid: c.VisitorID != ""},
		GuestName:    c.GuestName,
		GuestPhone:   c.GuestPhone,
		ServiceID:    c.ServiceID,
		TherapistID:  sql.NullString{String: c.TherapistID, Valid: c.TherapistID != ""},
		BookingDate:  bookingDate,
		BookingTime:  bookingTime,
		Status:       model.StatusPending,
		TipAmount:    c.TipAmount,
		TipRecipient: tipRecipient,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

// UpdateStatusRequest drives a state transition. TherapistID may be supplied
// together with the confirmed status to assign and confirm in one action.
type UpdateStatusRequest struct {
	Status      string `json:"status"       validate:"required,oneof=pending confirmed completed cancelled"`
	TherapistID string `json:"therapist_id" validate:"omitempty,uuid4"`
}

type BookingResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id,omitempty"`
	VisitorID        string   `json:"visitor_id,omitempty"`
	GuestName        string   `json:"guest_name"`
	GuestPhone       string   `json:"guest_phone,omitempty"`
	ServiceID        string   `json:"service_id"`
	ServiceName      string   `json:"service_name,omitempty"`
	TherapistID      string   `json:"therapist_id,omitempty"`
	TherapistName    string   `json:"therapist_name,omitempty"`
	BookingDate      string   `json:"booking_date"`
	BookingTime      string   `json:"booking_time"`
	Status           string   `json:"status"`
	CompletedAt      string   `json:"completed_at,omitempty"`
	CommissionAmount *float64 `json:"commission_amount,omitempty"`
	TipAmount        float64  `json:"tip_amount"`
	TipRecipient     string   `json:"tip_recipient"`
	PayoutID         string   `json:"payout_id,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID.String
	r.VisitorID = model.VisitorID.String
	r.GuestName = model.GuestName
	r.GuestPhone = model.GuestPhone
	r.ServiceID = model.ServiceID
	r.TherapistID = model.TherapistID.String
	r.BookingDate = model.BookingDate.Format(constant.CivilDateFormat)
	r.BookingTime = model.BookingTime
	r.Status = string(model.Status)
	r.TipAmount = model.TipAmount
	r.TipRecipient = model.TipRecipient
	r.PayoutID = model.PayoutID.String

	if model.CompletedAt.Valid {
		r.CompletedAt = model.CompletedAt.Time.Format(time.RFC3339)
	}

	if model.CommissionAmount.Valid {
		amount := model.CommissionAmount.Float64
		r.CommissionAmount = &amount
	}

	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingResponse) FromView(view model.View) {
	r.FromModel(view.Booking)
	r.ServiceName = view.ServiceName
	r.TherapistName = view.TherapistName.String
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromViews(views []model.View, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(views))
	for i, view := range views {
		r.Bookings[i].FromView(view)
	}
}

// BookingStatusEvent is published to the booking status topic on every
// transition.
type BookingStatusEvent struct {
	BookingID   string    `json:"booking_id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	TherapistID string    `json:"therapist_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type TimelineResponse struct {
	Date  string                      `json:"date"`
	Slots []scheduleModel.TimelineSlot `json:"slots"`
	Now   *scheduleModel.NowMarker     `json:"now,omitempty"`
}

func (r *TimelineResponse) FromTimeline(timeline scheduleModel.Timeline) {
	r.Date = timeline.Date.String()
	r.Slots = timeline.Slots
	r.Now = timeline.Now
}
