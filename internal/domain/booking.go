package domain

import (
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions явная таблица переходов статусов.
// Отмена разрешена из любого неотменённого статуса, cancelled - терминальный.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {StatusCancelled},
	StatusCancelled: {},
}

// IsValidStatus reports whether the string is a known booking status.
func IsValidStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Booking represents a client booking for one chair and one time interval.
// Service durations, names and prices are snapshotted at creation time:
// later catalog edits never change the recorded interval or total.
type Booking struct {
	ID          int64
	ClientName  string
	ClientPhone string
	ChairID     int64
	ServiceIDs  []int64 // заказанные услуги (одна или несколько)
	BookingDate time.Time
	StartTime   types.TimeString
	// DurationMinutes - снапшот суммы длительностей услуг на момент создания
	DurationMinutes int
	Status          BookingStatus

	// Denormalized snapshot data for history
	ServiceNames []string
	TotalPrice   float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime derives the end of the booking interval (start + duration).
// The end is never stored or edited independently.
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// IsActive returns true if the booking occupies its interval.
// Cancelled bookings free the chair for their window.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return CanTransition(b.Status, StatusCancelled)
}

// ChairBookingsFilter фильтр для получения бронирований кресла
type ChairBookingsFilter struct {
	ChairID         int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
