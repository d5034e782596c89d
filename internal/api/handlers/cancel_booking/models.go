package cancel_booking

import "github.com/m04kA/SLN-BookingService/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CancellationReason: r.CancellationReason,
	}
}
