package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"goldentower/infras/kafka"
	"goldentower/internal/domains/booking/model"
	"goldentower/internal/domains/booking/model/dto"
	catalogModel "goldentower/internal/domains/catalog/model"
	scheduleModel "goldentower/internal/domains/schedule/model"
	therapistModel "goldentower/internal/domains/therapist/model"
	"goldentower/shared"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
	"goldentower/shared/failure"
	"goldentower/shared/timezone"
)

// UpdateStatus moves a booking to the requested state. Illegal transitions
// are rejected without touching the row.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, activeBookingFilter(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	next := model.Status(req.Status)

	if !booking.Status.CanTransitionTo(next) {
		return res, failure.IllegalTransition(fmt.Sprintf("cannot move booking from %s to %s", booking.Status, next)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        string(next),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	switch next {
	case model.StatusConfirmed:
		therapistID, err := s.resolveTherapist(ctx, booking, req.TherapistID)
		if err != nil {
			return res, err
		}

		fields[model.FieldTherapistID] = therapistID
		booking.TherapistID = sql.NullString{String: therapistID, Valid: true}

	case model.StatusCompleted:
		completedAt := timezone.Now()
		commission, err := s.commissionFor(ctx, booking.ServiceID)
		if err != nil {
			return res, err
		}

		fields[model.FieldCompletedAt] = completedAt
		fields[model.FieldCommissionAmount] = commission
		booking.CompletedAt = sql.NullTime{Time: completedAt, Valid: true}
		booking.CommissionAmount = sql.NullFloat64{Float64: commission, Valid: true}

	case model.StatusPending, model.StatusCancelled:
		// Cancellation is soft and restoration clears nothing; no financial
		// fields exist before completion.
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publishStatusChange(ctx, booking, next)
	s.invalidate(ctx, id)

	previous := booking.Status
	booking.Status = next
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user

	log.Info().
		Str("bookingID", id).
		Str("from", string(previous)).
		Str("to", string(next)).
		Msg("booking status changed")

	res.FromModel(booking)

	return res, nil
}

// resolveTherapist picks the therapist for confirmation, requiring one to be
// set either on the booking or in the request, and refusing blocked dates.
func (s *serviceImpl) resolveTherapist(ctx context.Context, booking model.Booking, requested string) (string, error) {
	therapistID := requested
	if therapistID == constant.Empty {
		therapistID = booking.TherapistID.String
	}

	if therapistID == constant.Empty {
		return "", failure.IllegalTransition("confirming a booking requires a therapist assignment") // nolint:wrapcheck
	}

	therapist, err := s.therapistRepo.Get(ctx, shared.FilterByID(therapistID, therapistModel.FieldID, therapistModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get therapist")

		return "", fmt.Errorf("failed to get therapist: %w", err)
	}

	if therapist.ID == constant.Empty || !therapist.Active {
		return "", failure.BadRequestFromString("unknown or inactive therapist") // nolint:wrapcheck
	}

	if err = s.checkBlockout(ctx, therapistID, scheduleModel.BusinessDate(booking.BookingDate)); err != nil {
		return "", err
	}

	return therapistID, nil
}

func (s *serviceImpl) checkBlockout(ctx context.Context, therapistID string, date scheduleModel.CivilDate) error {
	blocked, err := s.therapistRepo.BlockoutExist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: therapistModel.BlockoutFieldTherapistID, Value: therapistID, Operator: gDto.FilterOperatorEq, Table: therapistModel.BlockoutTableName},
			gDto.Filter{Field: therapistModel.BlockoutFieldDate, Value: date.String(), Operator: gDto.FilterOperatorEq, Table: therapistModel.BlockoutTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check therapist blockout")

		return fmt.Errorf("failed to check therapist blockout: %w", err)
	}

	if blocked {
		return failure.Conflict(fmt.Sprintf("therapist is unavailable on %s", date)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) commissionFor(ctx context.Context, serviceID string) (float64, error) {
	svc, err := s.catalogRepo.Get(ctx, shared.FilterByID(serviceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service for commission")

		return 0, fmt.Errorf("failed to get service for commission: %w", err)
	}

	if svc.ID == constant.Empty {
		return 0, failure.BadRequestFromString("booking references an unknown service") // nolint:wrapcheck
	}

	return svc.CommissionFor(), nil
}

func (s *serviceImpl) publishStatusChange(ctx context.Context, booking model.Booking, next model.Status) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.BookingStatusEvent{
		BookingID:   booking.ID,
		From:        string(booking.Status),
		To:          string(next),
		TherapistID: booking.TherapistID.String,
		OccurredAt:  time.Now().UTC(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, constant.KafkaTopicBookingStatus, kafka.Message{
			Key:   booking.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking status event")
		}
	}()
}
