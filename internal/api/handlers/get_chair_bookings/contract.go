package get_chair_bookings

import (
	"context"

	"github.com/m04kA/SLN-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetChairBookings(ctx context.Context, req *models.GetChairBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
