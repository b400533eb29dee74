package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"goldentower/config"
	"goldentower/infras/otel/mocks"
	payoutMocks "goldentower/internal/domains/payout/mocks"
	"goldentower/internal/domains/payout/model"
	"goldentower/internal/domains/payout/model/dto"
	"goldentower/internal/domains/payout/repository"
	"goldentower/internal/domains/payout/service"
	scheduleModel "goldentower/internal/domains/schedule/model"
	cacheMocks "goldentower/shared/cache/mocks"
	"goldentower/shared/constant"
	"goldentower/shared/failure"
)

const testTherapistID = "1e55c1f6-0a2f-4a55-9f1b-7d2a7a7a3b02"

func newPayoutService(ctrl *gomock.Controller) (service.Payout, *payoutMocks.MockPayout, *cacheMocks.MockRedisCache) {
	mockRepo := payoutMocks.NewMockPayout(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func settleRequest() dto.SettleRequest {
	return dto.SettleRequest{
		TherapistID: testTherapistID,
		Amount:      480,
		BookingIDs: []string{
			"2f66d2a7-1b3a-4b66-8a2c-8e3b8b8b4c03",
			"3a77e3b8-2c4b-4c77-9b3d-9f4c9c9c5d04",
		},
	}
}

func TestPayoutService_Settle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newPayoutService(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name       string
		req        dto.SettleRequest
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantReason string
	}{
		{
			name: "successful settlement",
			req:  settleRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Settle(gomock.Any(), gomock.Any(), settleRequest().BookingIDs, 480.0).
					DoAndReturn(func(_ context.Context, payout model.CommissionPayout, _ []string, quoted float64) (model.CommissionPayout, error) {
						payout.Amount = quoted
						payout.Status = model.StatusProcessed

						return payout, nil
					})
			},
			wantErr: false,
		},
		{
			name: "stale quote",
			req:  settleRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Settle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.CommissionPayout{}, repository.ErrStaleTotal)
			},
			wantErr:    true,
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonStaleTotal,
		},
		{
			name: "repository error",
			req:  settleRequest(),
			setupMock: func() {
				mockRepo.EXPECT().
					Settle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.CommissionPayout{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Settle(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
				if tt.wantReason != "" {
					assert.Equal(t, tt.wantReason, failure.GetReason(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, testTherapistID, res.TherapistID)
			assert.Equal(t, 480.0, res.Amount)
			assert.Equal(t, model.StatusProcessed, res.Status)
		})
	}
}

func TestPayoutService_Unsettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newPayoutService(ctrl)

	rows := []model.UnsettledRow{
		{
			TherapistID:   testTherapistID,
			TherapistName: "Sari",
			Amount:        480,
			BookingIDs:    pq.StringArray{"2f66d2a7-1b3a-4b66-8a2c-8e3b8b8b4c03"},
			EarliestDate:  time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			LatestDate:    time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
	}

	mockRepo.EXPECT().
		UnsettledByTherapist(gomock.Any()).
		Return(rows, nil)

	res, err := svc.Unsettled(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, res, 1) {
		assert.Equal(t, testTherapistID, res[0].TherapistID)
		assert.Equal(t, 480.0, res[0].Amount)
		assert.Len(t, res[0].BookingIDs, 1)
	}
}

func TestPayoutService_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newPayoutService(ctrl)

	var gotStart, gotEnd time.Time

	mockRepo.EXPECT().
		Revenue(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, start, end time.Time) (model.RevenueRow, error) {
			gotStart, gotEnd = start, end

			return model.RevenueRow{
				GrossRevenue:   1200,
				ManagementTips: 50,
				TherapistTips:  80,
				CompletedCount: 3,
			}, nil
		})

	res, err := svc.Revenue(context.Background(), "2026-08-30")

	assert.NoError(t, err)
	assert.Equal(t, "2026-08-30", res.Date)
	assert.Equal(t, 1200.0, res.GrossRevenue)
	assert.Equal(t, 50.0, res.ManagementTips)
	assert.Equal(t, 80.0, res.TherapistTips)
	assert.Equal(t, 3, res.CompletedCount)

	// the shift window opens at 16:00 and closes a second before the next one
	assert.Equal(t, 16, gotStart.In(scheduleModel.BusinessLocation).Hour())
	assert.Equal(t, 30, gotStart.In(scheduleModel.BusinessLocation).Day())
	assert.Equal(t, 15, gotEnd.In(scheduleModel.BusinessLocation).Hour())
	assert.Equal(t, 31, gotEnd.In(scheduleModel.BusinessLocation).Day())
}

func TestPayoutService_Revenue_BadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newPayoutService(ctrl)

	_, err := svc.Revenue(context.Background(), "30/08/2026")

	assert.Error(t, err)
}

func TestPayoutService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newPayoutService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache miss then repository hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CommissionPayout{ID: "payout-1", TherapistID: testTherapistID}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.CommissionPayout{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "payout-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
