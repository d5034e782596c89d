package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/SLN-BookingService/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	cfg    *domain.ScheduleConfig
	getErr error
	saved  *domain.ScheduleConfig
}

func (f *fakeRepo) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cfg, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	f.saved = cfg
	return cfg, nil
}

func validUpdate() *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		OpenTime:                "10:00",
		CloseTime:               "20:00",
		SlotGranularityMinutes:  30,
		MinBookingNoticeMinutes: 60,
		AdvanceBookingDays:      14,
	}
}

func TestGet_ReturnsStoredConfig(t *testing.T) {
	repo := &fakeRepo{cfg: &domain.ScheduleConfig{
		OpenTime:               "10:00",
		CloseTime:              "20:00",
		SlotGranularityMinutes: 30,
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.OpenTime)
	assert.Equal(t, 30, resp.SlotGranularityMinutes)
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	repo := &fakeRepo{getErr: scheduleRepo.ErrConfigNotFound}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOpenTime.String(), resp.OpenTime)
	assert.Equal(t, domain.DefaultCloseTime.String(), resp.CloseTime)
	assert.Equal(t, domain.DefaultSlotGranularityMinutes, resp.SlotGranularityMinutes)
}

func TestUpdate_SavesValidConfig(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), validUpdate())
	require.NoError(t, err)
	require.NotNil(t, repo.saved)
	assert.Equal(t, "10:00", resp.OpenTime)
	assert.Equal(t, 14, resp.AdvanceBookingDays)
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpdateScheduleRequest)
	}{
		{name: "open after close", mutate: func(r *models.UpdateScheduleRequest) {
			r.OpenTime = "21:00"
			r.CloseTime = "09:00"
		}},
		{name: "open equals close", mutate: func(r *models.UpdateScheduleRequest) {
			r.OpenTime = "10:00"
			r.CloseTime = "10:00"
		}},
		{name: "malformed open time", mutate: func(r *models.UpdateScheduleRequest) {
			r.OpenTime = "9:00"
		}},
		{name: "granularity too small", mutate: func(r *models.UpdateScheduleRequest) {
			r.SlotGranularityMinutes = 1
		}},
		{name: "granularity too large", mutate: func(r *models.UpdateScheduleRequest) {
			r.SlotGranularityMinutes = 600
		}},
		{name: "negative notice", mutate: func(r *models.UpdateScheduleRequest) {
			r.MinBookingNoticeMinutes = -1
		}},
		{name: "advance days over limit", mutate: func(r *models.UpdateScheduleRequest) {
			r.AdvanceBookingDays = 400
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, nopLogger{})

			req := validUpdate()
			tt.mutate(req)

			_, err := svc.Update(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.saved)
		})
	}
}
