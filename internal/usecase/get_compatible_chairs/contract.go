package get_compatible_chairs

import (
	"context"

	"github.com/m04kA/SLN-BookingService/internal/domain"
)

// ChairRepository интерфейс каталога кресел
type ChairRepository interface {
	List(ctx context.Context, onlyActive bool) ([]*domain.Chair, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
