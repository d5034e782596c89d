package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByChairWithFilter(ctx context.Context, filter domain.ChairBookingsFilter) ([]*domain.Booking, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// ChairRepository интерфейс каталога кресел
type ChairRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Chair, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.ScheduleConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений клиенту (best-effort)
type Notifier interface {
	Send(ctx context.Context, phone, message string) error
}

// Metrics интерфейс бизнес-метрик (опционален, может быть nil)
type Metrics interface {
	IncBookingCreated()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
