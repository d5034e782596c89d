package get_compatible_chairs

import (
	"context"

	getCompatibleChairs "github.com/m04kA/SLN-BookingService/internal/usecase/get_compatible_chairs"
)

type GetCompatibleChairsUseCase interface {
	Execute(ctx context.Context, req *getCompatibleChairs.Request) (*getCompatibleChairs.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
