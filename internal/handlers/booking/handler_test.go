package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"goldentower/infras/otel/mocks"
	"goldentower/internal/domains/booking/model"
	"goldentower/internal/domains/booking/model/dto"
	serviceMocks "goldentower/internal/domains/booking/service/mocks"
	"goldentower/internal/handlers/booking"
	"goldentower/shared/constant"
	gDto "goldentower/shared/dto"
)

func TestHandler_GetMyBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := serviceMocks.NewMockBooking(ctrl)
	handler := booking.New(mockService, mocks.NewOtel())

	t.Run("authenticated user filters by user id", func(t *testing.T) {
		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				identityFilter, ok := filter.Filters[0].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, model.FieldUserID, identityFilter.Field)
				assert.Equal(t, "user-1", identityFilter.Value)

				return dto.GetBookingsResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/bookings/mybookings", nil)
		ctx := context.WithValue(request.Context(), constant.ContextKeyUserID, "user-1")
		recorder := httptest.NewRecorder()

		handler.GetMyBookings(recorder, request.WithContext(ctx))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("visitor falls back to visitor id", func(t *testing.T) {
		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
				identityFilter, ok := filter.Filters[0].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, model.FieldVisitorID, identityFilter.Field)
				assert.Equal(t, "visitor-abc", identityFilter.Value)

				return dto.GetBookingsResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/bookings/mybookings?visitor_id=visitor-abc", nil)
		recorder := httptest.NewRecorder()

		handler.GetMyBookings(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("no identity is rejected", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/v1/bookings/mybookings", nil)
		recorder := httptest.NewRecorder()

		handler.GetMyBookings(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
