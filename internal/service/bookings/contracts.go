package bookings

import (
	"context"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientPhone(ctx context.Context, phone string, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByChairWithFilter(ctx context.Context, filter domain.ChairBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// Metrics интерфейс бизнес-метрик (опционален, может быть nil)
type Metrics interface {
	IncBookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
