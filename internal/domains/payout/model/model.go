package model

import (
	"time"

	"github.com/lib/pq"

	"goldentower/shared/model"
)

const (
	TableName  = "commission_payouts"
	EntityName = "payout"

	FieldID          = "id"
	FieldTherapistID = "therapist_id"
	FieldAmount      = "amount"
	FieldPeriodStart = "period_start"
	FieldPeriodEnd   = "period_end"
	FieldStatus      = "status"

	// StatusProcessed is the only payout state. Corrections happen outside
	// this system.
	StatusProcessed = "processed"
)

type CommissionPayout struct {
	ID          string    `db:"id"`
	TherapistID string    `db:"therapist_id"`
	Amount      float64   `db:"amount"`
	PeriodStart time.Time `db:"period_start"`
	PeriodEnd   time.Time `db:"period_end"`
	Status      string    `db:"status"`
	model.Metadata
}

// UnsettledRow is one therapist's outstanding ledger: completed, unarchived
// bookings not yet linked to a payout. Amount includes commission plus tips
// addressed to the therapist.
type UnsettledRow struct {
	TherapistID   string         `db:"therapist_id"`
	TherapistName string         `db:"therapist_name"`
	Amount        float64        `db:"amount"`
	BookingIDs    pq.StringArray `db:"booking_ids"`
	EarliestDate  time.Time      `db:"earliest_date"`
	LatestDate    time.Time      `db:"latest_date"`
}

// RevenueRow aggregates a reporting window. Management tips fold into gross;
// therapist tips accrue to payouts instead and are reported separately.
type RevenueRow struct {
	GrossRevenue   float64 `db:"gross_revenue"`
	ManagementTips float64 `db:"management_tips"`
	TherapistTips  float64 `db:"therapist_tips"`
	CompletedCount int     `db:"completed_count"`
}
