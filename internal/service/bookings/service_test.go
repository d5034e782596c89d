package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/SLN-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/SLN-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SLN-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	booking       *domain.Booking
	byPhone       []*domain.Booking
	byChair       []*domain.Booking
	getErr        error
	updatedStatus *domain.BookingStatus
	cancelled     bool
	cancelReason  string
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeRepo) GetByClientPhone(ctx context.Context, phone string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.byPhone, nil
}

func (f *fakeRepo) GetByChairWithFilter(ctx context.Context, filter domain.ChairBookingsFilter) ([]*domain.Booking, error) {
	return f.byChair, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	f.updatedStatus = &status
	f.booking.Status = status
	return nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, reason string) error {
	f.cancelled = true
	f.cancelReason = reason
	f.booking.Status = domain.StatusCancelled
	return nil
}

type countingMetrics struct{ cancelled int }

func (m *countingMetrics) IncBookingCancelled() { m.cancelled++ }

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              7,
		ClientName:      "Анна",
		ClientPhone:     "+79001234567",
		ChairID:         1,
		ServiceIDs:      []int64{1},
		BookingDate:     time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 45,
		Status:          status,
		ServiceNames:    []string{"Стрижка"},
		TotalPrice:      1500,
		CreatedAt:       time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 9, 15, 8, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	// Конец интервала - производное поле
	assert.Equal(t, "10:45", resp.EndTime)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
	metrics := &countingMetrics{}
	svc := NewService(repo, metrics, nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{CancellationReason: "клиент заболел"})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "клиент заболел", repo.cancelReason)
	assert.Equal(t, 1, metrics.cancelled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusCancelled)}
	svc := NewService(repo, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 7, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.False(t, repo.cancelled)
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusPending)}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   string
	}{
		{name: "completed back to pending", from: domain.StatusCompleted, to: "pending"},
		{name: "pending straight to completed", from: domain.StatusPending, to: "completed"},
		{name: "cancelled is terminal", from: domain.StatusCancelled, to: "confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{booking: testBooking(tt.from)}
			svc := NewService(repo, nil, nopLogger{})

			_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, ErrIllegalTransition)
			assert.Nil(t, repo.updatedStatus)
		})
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusPending)}
	svc := NewService(repo, nil, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_CancelViaStatusSetsCancelledAt(t *testing.T) {
	repo := &fakeRepo{booking: testBooking(domain.StatusConfirmed)}
	metrics := &countingMetrics{}
	svc := NewService(repo, metrics, nopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.True(t, repo.cancelled)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, 1, metrics.cancelled)
}

func TestGetClientBookings(t *testing.T) {
	repo := &fakeRepo{byPhone: []*domain.Booking{
		testBooking(domain.StatusConfirmed),
		testBooking(domain.StatusCancelled),
	}}
	svc := NewService(repo, nil, nopLogger{})

	resp, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
		ClientPhone: "+79001234567",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestGetClientBookings_MissingPhone(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, nopLogger{})

	_, err := svc.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetChairBookings_InvalidFilter(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, nopLogger{})

	_, err := svc.GetChairBookings(context.Background(), &models.GetChairBookingsRequest{
		ChairID:   1,
		StartDate: ptr.Ptr("16-09-2026"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
