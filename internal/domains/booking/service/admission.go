package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"goldentower/internal/domains/booking/model"
	"goldentower/internal/domains/booking/model/dto"
	catalogModel "goldentower/internal/domains/catalog/model"
	scheduleModel "goldentower/internal/domains/schedule/model"
	"goldentower/shared"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	"goldentower/shared/failure"
)

// Create runs the admission pipeline: honeypot, per-identity throttle, then a
// capped conditional insert. Checks run in that order so a throttled caller
// never learns whether the cap would also have rejected them.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	booking := req.ToModel(user)

	// Bots fill every field they see. Pretend the booking was accepted and
	// drop it, so the filter stays invisible to whoever tripped it.
	if req.Website != constant.Empty {
		log.Warn().Str("guestName", req.GuestName).Msg("honeypot tripped, discarding submission")

		res.FromModel(booking)

		return res, nil
	}

	// Registered users are reachable through their account; everyone else
	// must leave a phone number.
	if user == constant.Empty && req.GuestPhone == constant.Empty {
		return res, failure.BadRequestFromString("guest_phone is required for guest bookings") // nolint:wrapcheck
	}

	identityField, identityValue := booking.IdentityField()

	if identityValue != constant.Empty {
		if err = s.throttle(ctx, identityValue); err != nil {
			return res, err
		}
	}

	svc, err := s.catalogRepo.Get(ctx, shared.FilterByID(booking.ServiceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up service")

		return res, fmt.Errorf("failed to look up service: %w", err)
	}

	if svc.ID == constant.Empty || !svc.Active {
		return res, failure.BadRequestFromString("unknown or inactive service") // nolint:wrapcheck
	}

	if booking.TherapistID.Valid {
		if err = s.checkBlockout(ctx, booking.TherapistID.String, scheduleModel.BusinessDate(booking.BookingDate)); err != nil {
			return res, err
		}
	}

	if err = s.insertCapped(ctx, booking, identityField, identityValue); err != nil {
		return res, err
	}

	s.invalidate(ctx, booking.ID)

	res.FromModel(booking)
	res.ServiceName = svc.Name

	return res, nil
}

// throttle admits one attempt per identity per rolling window. Redis failures
// degrade to letting the request through; this is a speed bump, the pending
// cap is the enforced invariant.
func (s *serviceImpl) throttle(ctx context.Context, identity string) error {
	key := shared.BuildCacheKey(throttleKeyPrefix, identity)
	window := s.cfg.Booking.ThrottleWindowSeconds

	stored, err := s.cache.SaveIfAbsent(ctx, key, "1", window)
	if err != nil {
		log.Error().Err(err).Msg("throttle check unavailable, admitting request")

		return nil
	}

	if stored {
		return nil
	}

	wait := window
	if ttl, err := s.cache.TTL(ctx, key); err == nil && ttl > 0 {
		wait = int(ttl.Seconds())
	}

	return failure.RateLimited(wait) // nolint:wrapcheck
}

func (s *serviceImpl) insertCapped(ctx context.Context, booking model.Booking, identityField, identityValue string) error {
	// Without any identity there is nothing to scope a cap to; the request is
	// admitted on validation alone.
	if identityValue == constant.Empty {
		if err := s.repo.Insert(ctx, booking); err != nil {
			log.Error().Err(err).Msg("failed to insert booking")

			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return nil
	}

	pendingCap := s.cfg.Booking.PendingCapVisitor
	if identityField == model.FieldUserID {
		pendingCap = s.cfg.Booking.PendingCapUser
	}

	inserted, err := s.repo.InsertPending(ctx, booking, identityField, identityValue, pendingCap)
	if err != nil {
		log.Error().Err(err).Msg("failed to insert pending booking")

		return fmt.Errorf("failed to insert pending booking: %w", err)
	}

	if !inserted {
		current, err := s.repo.Count(ctx, pendingFilter(identityField, identityValue))
		if err != nil {
			log.Error().Err(err).Msg("failed to count pending bookings")

			current = pendingCap
		}

		return failure.CapExceeded(current, pendingCap) // nolint:wrapcheck
	}

	return nil
}

func pendingFilter(identityField, identityValue string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: identityField, Value: identityValue, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusPending), Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldDeletedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
		},
	}
}
