package get_schedule

import (
	"context"

	"github.com/m04kA/SLN-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
