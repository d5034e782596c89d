package get_chair_bookings

import (
	"net/url"

	"github.com/m04kA/SLN-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SLN-BookingService/pkg/ptr"
)

// ToServiceRequest собирает модель сервиса из URL и query параметров.
// Параметр date - сокращение для startDate=endDate=date (лист дня).
func ToServiceRequest(chairID int64, query url.Values) *models.GetChairBookingsRequest {
	req := &models.GetChairBookingsRequest{
		ChairID: chairID,
	}

	if date := query.Get("date"); date != "" {
		req.StartDate = ptr.Ptr(date)
		req.EndDate = ptr.Ptr(date)
	} else {
		if startDate := query.Get("startDate"); startDate != "" {
			req.StartDate = ptr.Ptr(startDate)
		}
		if endDate := query.Get("endDate"); endDate != "" {
			req.EndDate = ptr.Ptr(endDate)
		}
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}
	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	return req
}
