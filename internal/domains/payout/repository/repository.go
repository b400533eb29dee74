package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lib/pq"

	"goldentower/infras/otel"
	"goldentower/infras/postgres"
	bookingModel "goldentower/internal/domains/booking/model"
	"goldentower/internal/domains/payout/model"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	"goldentower/shared/logger"
	gRepo "goldentower/shared/repository"
)

// ErrStaleTotal is returned when the quoted settlement amount or booking set
// no longer matches what the ledger holds at settlement time.
var ErrStaleTotal = errors.New("stale settlement total")

// amountTolerance absorbs float rounding between the quote and the recomputed
// sum. Anything beyond a cent fraction is a real mismatch.
const amountTolerance = 0.005

type Payout interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CommissionPayout, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CommissionPayout, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	UnsettledByTherapist(ctx context.Context) ([]model.UnsettledRow, error)

	// Settle recomputes the unsettled total for the given bookings inside one
	// transaction, creates the payout and links the bookings to it. Returns
	// ErrStaleTotal when the set or the amount changed since it was quoted.
	Settle(ctx context.Context, payout model.CommissionPayout, bookingIDs []string, quotedAmount float64) (model.CommissionPayout, error)

	Revenue(ctx context.Context, start, end time.Time) (model.RevenueRow, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.CommissionPayout]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payout {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CommissionPayout](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const unsettledQuery = `
SELECT
	b.therapist_id AS therapist_id,
	t.name AS therapist_name,
	COALESCE(SUM(b.commission_amount), 0)
		+ COALESCE(SUM(CASE WHEN b.tip_recipient = 'therapist' THEN b.tip_amount ELSE 0 END), 0) AS amount,
	ARRAY_AGG(b.id ORDER BY b.booking_date, b.booking_time) AS booking_ids,
	MIN(b.booking_date) AS earliest_date,
	MAX(b.booking_date) AS latest_date
FROM bookings b
JOIN therapists t ON t.id = b.therapist_id
WHERE b.status = 'completed'
	AND b.payout_id IS NULL
	AND b.deleted_at IS NULL
	AND b.therapist_id IS NOT NULL
GROUP BY b.therapist_id, t.name
ORDER BY t.name`

func (repo *repositoryImpl) UnsettledByTherapist(ctx context.Context) (rows []model.UnsettledRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payout.UnsettledByTherapist")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, unsettledQuery)

	err = repo.db.Read.SelectContext(ctx, &rows, unsettledQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to query unsettled commissions: %w", err)
	}

	return rows, nil
}

const settleRecomputeQuery = `
WITH locked AS (
	SELECT id, commission_amount, tip_amount, tip_recipient, booking_date
	FROM bookings
	WHERE id = ANY($1)
		AND therapist_id = $2
		AND status = 'completed'
		AND payout_id IS NULL
		AND deleted_at IS NULL
	FOR UPDATE
)
SELECT
	COALESCE(SUM(commission_amount), 0)
		+ COALESCE(SUM(CASE WHEN tip_recipient = 'therapist' THEN tip_amount ELSE 0 END), 0) AS amount,
	COUNT(*) AS settled_count,
	COALESCE(MIN(booking_date), NOW()) AS earliest_date
FROM locked`

func (repo *repositoryImpl) Settle(ctx context.Context, payout model.CommissionPayout, bookingIDs []string, quotedAmount float64) (created model.CommissionPayout, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payout.Settle")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return created, fmt.Errorf("failed to begin settlement transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var recomputed struct {
		Amount       float64   `db:"amount"`
		SettledCount int       `db:"settled_count"`
		EarliestDate time.Time `db:"earliest_date"`
	}

	err = tx.GetContext(ctx, &recomputed, settleRecomputeQuery, pq.Array(bookingIDs), payout.TherapistID)
	if err != nil {
		logger.ErrorWithStack(err)

		return created, fmt.Errorf("failed to recompute settlement total: %w", err)
	}

	// Every quoted booking must still be settleable and the amounts must
	// agree, otherwise the caller is working from a stale quote.
	if recomputed.SettledCount != len(bookingIDs) || math.Abs(recomputed.Amount-quotedAmount) > amountTolerance {
		return created, ErrStaleTotal
	}

	payout.Amount = recomputed.Amount
	payout.PeriodStart = recomputed.EarliestDate
	payout.Status = model.StatusProcessed

	if err = repo.Repository.InsertTx(ctx, tx, payout); err != nil {
		return created, fmt.Errorf("failed to insert payout: %w", err)
	}

	linkQuery := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = ANY($2)",
		bookingModel.TableName, bookingModel.FieldPayoutID, bookingModel.FieldID)

	result, err := tx.ExecContext(ctx, linkQuery, payout.ID, pq.Array(bookingIDs))
	if err != nil {
		logger.ErrorWithStack(err)

		return created, fmt.Errorf("failed to link bookings to payout: %w", err)
	}

	linked, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return created, fmt.Errorf("failed to read settlement result: %w", err)
	}

	if linked != int64(len(bookingIDs)) {
		err = ErrStaleTotal

		return created, err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return created, fmt.Errorf("failed to commit settlement: %w", err)
	}

	return payout, nil
}

const revenueQuery = `
SELECT
	COALESCE(SUM(s.price), 0)
		+ COALESCE(SUM(CASE WHEN b.tip_recipient = 'management' THEN b.tip_amount ELSE 0 END), 0) AS gross_revenue,
	COALESCE(SUM(CASE WHEN b.tip_recipient = 'management' THEN b.tip_amount ELSE 0 END), 0) AS management_tips,
	COALESCE(SUM(CASE WHEN b.tip_recipient = 'therapist' THEN b.tip_amount ELSE 0 END), 0) AS therapist_tips,
	COUNT(*) AS completed_count
FROM bookings b
JOIN services s ON s.id = b.service_id
WHERE b.status = 'completed'
	AND b.deleted_at IS NULL
	AND b.completed_at BETWEEN $1 AND $2`

func (repo *repositoryImpl) Revenue(ctx context.Context, start, end time.Time) (row model.RevenueRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payout.Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, revenueQuery)

	err = repo.db.Read.GetContext(ctx, &row, revenueQuery, start, end)
	if err != nil {
		logger.ErrorWithStack(err)

		return row, fmt.Errorf("failed to query revenue: %w", err)
	}

	return row, nil
}
