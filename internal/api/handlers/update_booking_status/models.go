package update_booking_status

import "github.com/m04kA/SLN-BookingService/internal/service/bookings/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status: r.Status,
	}
}
