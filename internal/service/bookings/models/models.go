package models

import (
	"errors"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidDate возвращается при некорректной дате фильтра
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetClientBookingsRequest запрос на получение истории бронирований клиента
type GetClientBookingsRequest struct {
	ClientPhone string  `json:"clientPhone"`
	Status      *string `json:"status,omitempty"`
}

// GetChairBookingsRequest запрос на получение бронирований кресла
type GetChairBookingsRequest struct {
	ChairID         int64   `json:"chairId"`
	StartDate       *string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate         *string `json:"endDate,omitempty"`   // YYYY-MM-DD
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive"`
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *GetChairBookingsRequest) ToDomainFilter() (domain.ChairBookingsFilter, error) {
	filter := domain.ChairBookingsFilter{
		ChairID:         r.ChairID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.StartDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.StartDate = &date
	}

	if r.EndDate != nil {
		date, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.EndDate = &date
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse модель бронирования для ответа
type BookingResponse struct {
	ID              int64    `json:"id"`
	ClientName      string   `json:"clientName"`
	ClientPhone     string   `json:"clientPhone"`
	ChairID         int64    `json:"chairId"`
	ServiceIDs      []int64  `json:"serviceIds"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"` // производное поле: start + duration
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	ServiceNames    []string `json:"serviceNames"`
	TotalPrice      float64  `json:"totalPrice"`
	Notes           *string  `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain-бронирование в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:              b.ID,
		ClientName:      b.ClientName,
		ClientPhone:     b.ClientPhone,
		ChairID:         b.ChairID,
		ServiceIDs:      b.ServiceIDs,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		ServiceNames:    b.ServiceNames,
		TotalPrice:      b.TotalPrice,
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}

	if end, err := b.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	resp.CancellationReason = b.CancellationReason
	if b.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(b.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingList конвертирует список domain-бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return domain.BookingStatus(s), nil
}
