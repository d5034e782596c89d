package create_booking

import (
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	createBooking "github.com/m04kA/SLN-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ChairID     int64   `json:"chairId"`
	ServiceIDs  []int64 `json:"serviceIds"`
	BookingDate string  `json:"bookingDate"` // "2026-09-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	ClientName      string   `json:"clientName"`
	ClientPhone     string   `json:"clientPhone"`
	ChairID         int64    `json:"chairId"`
	ServiceIDs      []int64  `json:"serviceIds"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	ServiceNames    []string `json:"serviceNames"`
	TotalPrice      float64  `json:"totalPrice"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ChairID:     r.ChairID,
		ServiceIDs:  r.ServiceIDs,
		Date:        bookingDate,
		StartTime:   startTime,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		ChairID:         resp.ChairID,
		ServiceIDs:      resp.ServiceIDs,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		ServiceNames:    resp.ServiceNames,
		TotalPrice:      resp.TotalPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
