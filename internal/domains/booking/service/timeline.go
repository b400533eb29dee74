package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"goldentower/internal/domains/booking/model"
	"goldentower/internal/domains/booking/model/dto"
	scheduleModel "goldentower/internal/domains/schedule/model"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
)

// rolloverClock bounds next-day entries on the timeline. Bookings dated
// tomorrow only appear when their clock time is before 04:00.
const rolloverClock = "04:00:00"

// GetTimeline buckets the day's confirmed and completed bookings into the
// 3-hour slots, spanning midnight into the next calendar day's early hours.
// An empty date defaults to today's business date.
func (s *serviceImpl) GetTimeline(ctx context.Context, date string) (res dto.TimelineResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTimeline")
	defer scope.End()
	defer scope.TraceIfError(err)

	day := scheduleModel.Today()

	if date != constant.Empty {
		day, err = scheduleModel.ParseCivilDate(date)
		if err != nil {
			return res, err
		}
	}

	views, err := s.repo.GetAllViews(ctx, timelineOrdering(), timelineFilter(day))
	if err != nil {
		log.Error().Err(err).Msg("failed to get timeline bookings")

		return res, fmt.Errorf("failed to get timeline bookings: %w", err)
	}

	entries := make([]scheduleModel.TimelineEntry, 0, len(views))

	for _, view := range views {
		entry, ok := toTimelineEntry(view, day)
		if !ok {
			log.Warn().Str("bookingID", view.ID).Str("bookingTime", view.BookingTime).Msg("skipping booking with malformed time")

			continue
		}

		entries = append(entries, entry)
	}

	res.FromTimeline(scheduleModel.BuildTimeline(day, entries, time.Now()))

	return res, nil
}

func toTimelineEntry(view model.View, day scheduleModel.CivilDate) (scheduleModel.TimelineEntry, bool) {
	clock, err := time.Parse(constant.ClockSecondFormat, view.BookingTime)
	if err != nil {
		clock, err = time.Parse(constant.ClockFormat, view.BookingTime)
		if err != nil {
			return scheduleModel.TimelineEntry{}, false
		}
	}

	bookingID, err := uuid.Parse(view.ID)
	if err != nil {
		return scheduleModel.TimelineEntry{}, false
	}

	return scheduleModel.TimelineEntry{
		BookingID:     bookingID,
		GuestName:     view.GuestName,
		ServiceName:   view.ServiceName,
		TherapistName: view.TherapistName.String,
		Status:        string(view.Status),
		Hour:          clock.Hour(),
		Minute:        clock.Minute(),
		NextDay:       !scheduleModel.BusinessDate(view.BookingDate).Equal(day),
	}, true
}

// timelineFilter selects visible bookings for the day: confirmed or completed,
// not archived, dated today or tomorrow before the rollover clock.
func timelineFilter(day scheduleModel.CivilDate) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    []string{string(model.StatusConfirmed), string(model.StatusCompleted)},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
			gDto.Filter{Field: model.FieldDeletedAt, Operator: gDto.FilterIsNull, Table: model.TableName},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "timeline_date",
						Field:    model.FieldBookingDate,
						Value:    day.String(),
						Operator: gDto.FilterOperatorEq,
						Table:    model.TableName,
					},
					gDto.FilterGroup{
						Filters: []any{
							gDto.Filter{
								ArgName:  "timeline_next_date",
								Field:    model.FieldBookingDate,
								Value:    day.Next().String(),
								Operator: gDto.FilterOperatorEq,
								Table:    model.TableName,
							},
							gDto.Filter{
								ArgName:  "timeline_rollover",
								Field:    model.FieldBookingTime,
								Value:    rolloverClock,
								Operator: gDto.FilterOperatorLess,
								Table:    model.TableName,
							},
						},
					},
				},
			},
		},
	}
}

func timelineOrdering() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s, %s.%s", model.TableName, model.FieldBookingDate, model.TableName, model.FieldBookingTime),
		SortDir: "ASC",
	}
}
