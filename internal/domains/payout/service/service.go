package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"goldentower/config"
	"goldentower/infras/otel"
	"goldentower/internal/domains/payout/model"
	"goldentower/internal/domains/payout/model/dto"
	"goldentower/internal/domains/payout/repository"
	scheduleModel "goldentower/internal/domains/schedule/model"
	"goldentower/shared"
	"goldentower/shared/cache"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	"goldentower/shared/failure"
	gModel "goldentower/shared/model"
	"goldentower/shared/timezone"
)

const (
	cacheGetPayout    = "payout:get"
	cacheGetAllPayout = "payout:gets"
	cacheCountPayout  = "payout:count"
)

type Payout interface {
	Unsettled(ctx context.Context) ([]dto.UnsettledTherapistResponse, error)
	Settle(ctx context.Context, req dto.SettleRequest) (dto.PayoutResponse, error)
	Get(ctx context.Context, id string) (dto.PayoutResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPayoutsResponse, error)
	Revenue(ctx context.Context, date string) (dto.RevenueReportResponse, error)
}

type serviceImpl struct {
	repo  repository.Payout
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Payout, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payout {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Unsettled quotes the outstanding ledger per therapist. Quotes are not
// cached: the settlement guard compares against the live ledger and a stale
// quote just earns the caller a re-quote.
func (s *serviceImpl) Unsettled(ctx context.Context) (res []dto.UnsettledTherapistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unsettled")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.repo.UnsettledByTherapist(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get unsettled commissions")

		return nil, fmt.Errorf("failed to get unsettled commissions: %w", err)
	}

	res = make([]dto.UnsettledTherapistResponse, len(rows))
	for i, row := range rows {
		res[i].FromModel(row)
	}

	return res, nil
}

// Settle batches the quoted bookings into one payout. The amount is
// recomputed inside the settlement transaction; any drift from the quote is
// rejected rather than silently clamped.
func (s *serviceImpl) Settle(ctx context.Context, req dto.SettleRequest) (res dto.PayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Settle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	payout := model.CommissionPayout{
		ID:          uuid.NewString(),
		TherapistID: req.TherapistID,
		PeriodEnd:   now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	created, err := s.repo.Settle(ctx, payout, req.BookingIDs, req.Amount)
	if errors.Is(err, repository.ErrStaleTotal) {
		log.Warn().
			Str("therapistID", req.TherapistID).
			Float64("quotedAmount", req.Amount).
			Msg("settlement rejected, quote is stale")

		return res, failure.StaleTotal("the unsettled total changed since it was quoted, request a fresh quote") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to settle payout")

		return res, fmt.Errorf("failed to settle payout: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPayout)
		shared.InvalidateCaches(c, s.cache, cacheCountPayout)
	}()

	log.Info().
		Str("payoutID", created.ID).
		Str("therapistID", created.TherapistID).
		Float64("amount", created.Amount).
		Int("bookings", len(req.BookingIDs)).
		Msg("payout settled")

	res.FromModel(created)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PayoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPayout, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payout")

		return res, nil
	}

	payout, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payout")

		return res, fmt.Errorf("failed to get payout: %w", err)
	}

	if payout.ID == constant.Empty {
		return res, failure.NotFound("payout not found") // nolint:wrapcheck
	}

	res.FromModel(payout)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payout to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPayoutsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPayout, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for payouts")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payouts")

		return res, fmt.Errorf("failed to count payouts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payouts")

		return res, fmt.Errorf("failed to get payouts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save payouts to cache")
		}
	}()

	return res, nil
}

// Revenue reports one shift window. An empty date defaults to the window that
// opened most recently.
func (s *serviceImpl) Revenue(ctx context.Context, date string) (res dto.RevenueReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	day := scheduleModel.Today()

	if date != constant.Empty {
		day, err = scheduleModel.ParseCivilDate(date)
		if err != nil {
			return res, err
		}
	}

	window := day.Shift()

	row, err := s.repo.Revenue(ctx, window.Start, window.End)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue")

		return res, fmt.Errorf("failed to get revenue: %w", err)
	}

	res = dto.RevenueReportResponse{
		Date:           day.String(),
		WindowStart:    window.Start,
		WindowEnd:      window.End,
		GrossRevenue:   row.GrossRevenue,
		ManagementTips: row.ManagementTips,
		TherapistTips:  row.TherapistTips,
		CompletedCount: row.CompletedCount,
	}

	return res, nil
}
