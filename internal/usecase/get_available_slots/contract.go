package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByChairWithFilter получает бронирования кресла (занятые интервалы дня)
	GetByChairWithFilter(ctx context.Context, filter domain.ChairBookingsFilter) ([]*domain.Booking, error)
}

// ChairRepository интерфейс репозитория кресел
type ChairRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Chair, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.ScheduleConfig, error)
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
