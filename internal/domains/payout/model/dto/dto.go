package dto

import (
	"time"

	"goldentower/internal/domains/payout/model"
	"goldentower/shared"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
)

// UnsettledTherapistResponse is one quote line: everything currently owed to
// a therapist and the bookings behind the number. The client sends the same
// amount and booking set back on settlement.
type UnsettledTherapistResponse struct {
	TherapistID   string   `json:"therapist_id"`
	TherapistName string   `json:"therapist_name"`
	Amount        float64  `json:"amount"`
	BookingIDs    []string `json:"booking_ids"`
	PeriodStart   string   `json:"period_start"`
	PeriodEnd     string   `json:"period_end"`
}

func (r *UnsettledTherapistResponse) FromModel(row model.UnsettledRow) {
	r.TherapistID = row.TherapistID
	r.TherapistName = row.TherapistName
	r.Amount = row.Amount
	r.BookingIDs = row.BookingIDs
	r.PeriodStart = row.EarliestDate.Format(constant.CivilDateFormat)
	r.PeriodEnd = row.LatestDate.Format(constant.CivilDateFormat)
}

type SettleRequest struct {
	TherapistID string   `json:"therapist_id" validate:"required,uuid4"`
	Amount      float64  `json:"amount"       validate:"required,min=0"`
	BookingIDs  []string `json:"booking_ids"  validate:"required,min=1,dive,uuid4"`
}

type PayoutResponse struct {
	ID          string  `json:"id"`
	TherapistID string  `json:"therapist_id"`
	Amount      float64 `json:"amount"`
	PeriodStart string  `json:"period_start"`
	PeriodEnd   string  `json:"period_end"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *PayoutResponse) FromModel(model model.CommissionPayout) {
	r.ID = model.ID
	r.TherapistID = model.TherapistID
	r.Amount = model.Amount
	r.PeriodStart = model.PeriodStart.Format(constant.CivilDateFormat)
	r.PeriodEnd = model.PeriodEnd.Format(constant.CivilDateFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetPayoutsResponse struct {
	Payouts   []PayoutResponse `json:"payouts"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetPayoutsResponse) FromModels(models []model.CommissionPayout, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payouts = make([]PayoutResponse, len(models))
	for i, mod := range models {
		r.Payouts[i].FromModel(mod)
	}
}

// RevenueReportResponse covers one shift window: 16:00 on the report date
// through 15:59:59 the next day.
type RevenueReportResponse struct {
	Date           string    `json:"date"`
	WindowStart    time.Time `json:"window_start"`
	WindowEnd      time.Time `json:"window_end"`
	GrossRevenue   float64   `json:"gross_revenue"`
	ManagementTips float64   `json:"management_tips"`
	TherapistTips  float64   `json:"therapist_tips"`
	CompletedCount int       `json:"completed_count"`
}
