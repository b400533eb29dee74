package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"goldentower/config"
	"goldentower/infras/otel"
	scheduleModel "goldentower/internal/domains/schedule/model"
	"goldentower/internal/domains/therapist/model"
	"goldentower/internal/domains/therapist/model/dto"
	"goldentower/internal/domains/therapist/repository"
	"goldentower/shared"
	"goldentower/shared/cache"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	"goldentower/shared/failure"
)

const (
	cacheGetTherapist    = "therapist:get"
	cacheGetAllTherapist = "therapist:gets"
	cacheCountTherapist  = "therapist:count"
)

type Therapist interface {
	Create(ctx context.Context, req dto.CreateTherapistRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTherapistsResponse, error)
	Get(ctx context.Context, id string) (dto.TherapistResponse, error)
	Update(ctx context.Context, req dto.UpdateTherapistRequest, id string) error

	AddBlockout(ctx context.Context, therapistID string, req dto.CreateBlockoutRequest) error
	GetBlockouts(ctx context.Context, therapistID string) ([]dto.BlockoutResponse, error)
	RemoveBlockout(ctx context.Context, therapistID, blockoutID string) error
	IsBlockedOn(ctx context.Context, therapistID string, date scheduleModel.CivilDate) (bool, error)
}

type serviceImpl struct {
	repo  repository.Therapist
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Therapist, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Therapist {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTherapistRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTherapist)
		shared.InvalidateCaches(c, s.cache, cacheCountTherapist)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTherapistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTherapist, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for therapists")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count therapists")

		return res, fmt.Errorf("failed to count therapists: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get therapists")

		return res, fmt.Errorf("failed to get therapists: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save therapists to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TherapistResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTherapist, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for therapist")

		return res, nil
	}

	therapist, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get therapist")

		return res, fmt.Errorf("failed to get therapist: %w", err)
	}

	if therapist.ID == constant.Empty {
		return res, failure.NotFound("therapist not found") // nolint:wrapcheck
	}

	res.FromModel(therapist)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save therapist to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTherapistRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check therapist existence")

		return fmt.Errorf("failed to check therapist existence: %w", err)
	}

	if !exist {
		log.Error().Msg("therapist not found")

		return failure.NotFound("therapist not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update therapist")

		return fmt.Errorf("failed to update therapist: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTherapist, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete therapist cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTherapist)
		shared.InvalidateCaches(c, s.cache, cacheCountTherapist)
	}()

	return nil
}

func (s *serviceImpl) AddBlockout(ctx context.Context, therapistID string, req dto.CreateBlockoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddBlockout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(therapistID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check therapist existence")

		return fmt.Errorf("failed to check therapist existence: %w", err)
	}

	if !exist {
		return failure.NotFound("therapist not found") // nolint:wrapcheck
	}

	duplicate, err := s.repo.BlockoutExist(ctx, blockoutFilter(therapistID, req.BlockoutDate))
	if err != nil {
		log.Error().Err(err).Msg("failed to check blockout existence")

		return fmt.Errorf("failed to check blockout existence: %w", err)
	}

	if duplicate {
		return failure.Conflict("blockout already exists for this date") // nolint:wrapcheck
	}

	if err = s.repo.InsertBlockout(ctx, req.ToModel(therapistID, user)); err != nil {
		log.Error().Err(err).Msg("failed to insert blockout")

		return fmt.Errorf("failed to insert blockout: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetBlockouts(ctx context.Context, therapistID string) (res []dto.BlockoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBlockouts")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(therapistID, model.BlockoutFieldTherapistID, model.BlockoutTableName)

	params := gDto.QueryParams{SortBy: model.BlockoutTableName + "." + model.BlockoutFieldDate, SortDir: "ASC"}

	blockouts, err := s.repo.GetBlockouts(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blockouts")

		return nil, fmt.Errorf("failed to get blockouts: %w", err)
	}

	res = make([]dto.BlockoutResponse, len(blockouts))
	for i, blockout := range blockouts {
		res[i].FromModel(blockout)
	}

	return res, nil
}

func (s *serviceImpl) RemoveBlockout(ctx context.Context, therapistID, blockoutID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveBlockout")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.BlockoutFieldID, Value: blockoutID, Operator: gDto.FilterOperatorEq, Table: model.BlockoutTableName},
			gDto.Filter{Field: model.BlockoutFieldTherapistID, Value: therapistID, Operator: gDto.FilterOperatorEq, Table: model.BlockoutTableName},
		},
	}

	exist, err := s.repo.BlockoutExist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check blockout existence")

		return fmt.Errorf("failed to check blockout existence: %w", err)
	}

	if !exist {
		return failure.NotFound("blockout not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteBlockout(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete blockout")

		return fmt.Errorf("failed to delete blockout: %w", err)
	}

	return nil
}

// IsBlockedOn reports whether the therapist has a blockout on the given civil
// date. Assignment must refuse blocked dates.
func (s *serviceImpl) IsBlockedOn(ctx context.Context, therapistID string, date scheduleModel.CivilDate) (blocked bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsBlockedOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	blocked, err = s.repo.BlockoutExist(ctx, blockoutFilter(therapistID, date.String()))
	if err != nil {
		log.Error().Err(err).Msg("failed to check blockout")

		return false, fmt.Errorf("failed to check blockout: %w", err)
	}

	return blocked, nil
}

func blockoutFilter(therapistID, date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.BlockoutFieldTherapistID, Value: therapistID, Operator: gDto.FilterOperatorEq, Table: model.BlockoutTableName},
			gDto.Filter{Field: model.BlockoutFieldDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.BlockoutTableName},
		},
	}
}
