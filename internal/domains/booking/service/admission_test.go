package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"goldentower/config"
	kafkaMocks "goldentower/infras/kafka/mocks"
	"goldentower/infras/otel/mocks"
	bookingMocks "goldentower/internal/domains/booking/mocks"
	"goldentower/internal/domains/booking/model"
	"goldentower/internal/domains/booking/model/dto"
	"goldentower/internal/domains/booking/service"
	catalogMocks "goldentower/internal/domains/catalog/mocks"
	catalogModel "goldentower/internal/domains/catalog/model"
	therapistMocks "goldentower/internal/domains/therapist/mocks"
	cacheMocks "goldentower/shared/cache/mocks"
	"goldentower/shared/constant"
	"goldentower/shared/failure"
)

const (
	testServiceID   = "0d44b0e5-9f1e-4f44-8e0a-6c1f6f6f2a01"
	testTherapistID = "1e55c1f6-0a2f-4a55-9f1b-7d2a7a7a3b02"
	testBookingID   = "2f66d2a7-1b3a-4b66-8a2c-8e3b8b8b4c03"
)

func newBookingService(ctrl *gomock.Controller) (
	service.Booking,
	*bookingMocks.MockBooking,
	*catalogMocks.MockCatalog,
	*therapistMocks.MockTherapist,
	*cacheMocks.MockRedisCache,
) {
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := catalogMocks.NewMockCatalog(ctrl)
	mockTherapist := therapistMocks.NewMockTherapist(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.PendingCapUser = 2
	cfg.Booking.PendingCapVisitor = 1
	cfg.Booking.ThrottleWindowSeconds = 60

	svc := service.New(mockRepo, mockCatalog, mockTherapist, cfg, mockCache, mockKafka, mockOtel)

	return svc, mockRepo, mockCatalog, mockTherapist, mockCache
}

func activeService() catalogModel.Service {
	return catalogModel.Service{
		ID:             testServiceID,
		Name:           "Hot Stone Massage",
		Price:          400,
		CommissionRate: 40,
		Active:         true,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		VisitorID:   "visitor-abc",
		GuestName:   "Dewi",
		GuestPhone:  "081234567890",
		ServiceID:   testServiceID,
		BookingDate: "2026-09-01",
		BookingTime: "20:00",
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCatalog, _, mockCache := newBookingService(ctrl)

	// invalidation fans out in the background after a successful insert
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func()
		wantErr    bool
		wantReason string
	}{
		{
			name: "successful admission",
			req:  createRequest(),
			setupMock: func() {
				mockCache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
					Return(true, nil)
				mockCatalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)
				mockRepo.EXPECT().
					InsertPending(gomock.Any(), gomock.Any(), model.FieldVisitorID, "visitor-abc", 1).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "throttled before anything else",
			req:  createRequest(),
			setupMock: func() {
				mockCache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
					Return(false, nil)
				mockCache.EXPECT().
					TTL(gomock.Any(), gomock.Any()).
					Return(42*time.Second, nil)
			},
			wantErr:    true,
			wantReason: failure.ReasonRateLimited,
		},
		{
			name: "redis outage admits the request",
			req:  createRequest(),
			setupMock: func() {
				mockCache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
					Return(false, errors.New("connection refused"))
				mockCatalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)
				mockRepo.EXPECT().
					InsertPending(gomock.Any(), gomock.Any(), model.FieldVisitorID, "visitor-abc", 1).
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "pending cap reached",
			req:  createRequest(),
			setupMock: func() {
				mockCache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
					Return(true, nil)
				mockCatalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)
				mockRepo.EXPECT().
					InsertPending(gomock.Any(), gomock.Any(), model.FieldVisitorID, "visitor-abc", 1).
					Return(false, nil)
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr:    true,
			wantReason: failure.ReasonCapExceeded,
		},
		{
			name: "unknown service",
			req:  createRequest(),
			setupMock: func() {
				mockCache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
					Return(true, nil)
				mockCatalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(catalogModel.Service{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive service",
			req:  createRequest(),
			setupMock: func() {
				mockCache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
					Return(true, nil)
				mockCatalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(catalogModel.Service{ID: testServiceID, Active: false}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  createRequest(),
			setupMock: func() {
				mockCache.EXPECT().
					SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
					Return(true, nil)
				mockCatalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)
				mockRepo.EXPECT().
					InsertPending(gomock.Any(), gomock.Any(), model.FieldVisitorID, "visitor-abc", 1).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantReason != "" {
					assert.Equal(t, tt.wantReason, failure.GetReason(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, string(model.StatusPending), res.Status)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestBookingService_Create_Honeypot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repo, catalog, or cache expectations: tripping the honeypot must not
	// touch anything
	svc, _, _, _, _ := newBookingService(ctrl)

	req := createRequest()
	req.Website = "https://spam.example.com"

	res, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, string(model.StatusPending), res.Status)
	assert.NotEmpty(t, res.ID)
}

func TestBookingService_Create_GuestWithoutPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// rejected before the throttle or catalog are consulted
	svc, _, _, _, _ := newBookingService(ctrl)

	req := createRequest()
	req.GuestPhone = ""

	_, err := svc.Create(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_Create_RegisteredUserWithoutPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCatalog, _, mockCache := newBookingService(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// a registered user is reachable without a phone number
	mockCache.EXPECT().
		SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
		Return(true, nil)
	mockCatalog.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeService(), nil)
	mockRepo.EXPECT().
		InsertPending(gomock.Any(), gomock.Any(), model.FieldUserID, "test-user-id", 2).
		Return(true, nil)

	req := createRequest()
	req.VisitorID = ""
	req.GuestPhone = ""

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	_, err := svc.Create(ctx, req)

	assert.NoError(t, err)
}

func TestBookingService_Create_UserCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCatalog, _, mockCache := newBookingService(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// an authenticated user identifies by user_id and gets the higher cap
	mockCache.EXPECT().
		SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
		Return(true, nil)
	mockCatalog.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeService(), nil)
	mockRepo.EXPECT().
		InsertPending(gomock.Any(), gomock.Any(), model.FieldUserID, "test-user-id", 2).
		Return(true, nil)

	req := createRequest()
	req.VisitorID = ""

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	_, err := svc.Create(ctx, req)

	assert.NoError(t, err)
}

func TestBookingService_Create_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCatalog, _, mockCache := newBookingService(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// no user and no visitor id: there is nothing to throttle or cap against
	mockCatalog.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeService(), nil)
	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	req := createRequest()
	req.VisitorID = ""

	_, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
}

func TestBookingService_Create_BlockedTherapist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockCatalog, mockTherapist, mockCache := newBookingService(ctrl)

	mockCache.EXPECT().
		SaveIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), 60).
		Return(true, nil)
	mockCatalog.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeService(), nil)
	mockTherapist.EXPECT().
		BlockoutExist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	req := createRequest()
	req.TherapistID = testTherapistID

	_, err := svc.Create(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}
