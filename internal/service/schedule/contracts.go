package schedule

import (
	"context"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	Get(ctx context.Context) (*domain.ScheduleConfig, error)
	Upsert(ctx context.Context, cfg *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
