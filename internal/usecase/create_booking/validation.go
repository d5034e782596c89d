package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	if len(req.ClientPhone) > domain.MaxClientPhoneLength {
		return fmt.Errorf("%w: clientPhone is too long", ErrInvalidInput)
	}

	// Режим бронирования без услуг (свободный текст) намеренно не поддерживается:
	// он обходит проверку пересечений
	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one serviceID is required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate serviceID %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.ChairID <= 0 {
		return fmt.Errorf("%w: chairID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateBusinessHours проверяет, что интервал [start, end) целиком
// помещается в рабочие часы салона
func validateBusinessHours(start, end types.TimeString, cfg *domain.ScheduleConfig) error {
	if start.IsBefore(cfg.OpenTime) {
		return fmt.Errorf("%w: starts before opening at %s", ErrOutsideBusinessHours, cfg.OpenTime)
	}
	if end.IsAfter(cfg.CloseTime) {
		return fmt.Errorf("%w: ends after closing at %s", ErrOutsideBusinessHours, cfg.CloseTime)
	}
	return nil
}

// validateBookingTime проверяет, что бронирование не нарушает minBookingNoticeMinutes
func validateBookingTime(
	bookingDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minBookingNoticeMinutes int,
) error {
	// Если дата бронирования не сегодня, проверка не нужна
	if !isSameDay(bookingDate, now) {
		return nil
	}

	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: no bookable time left today", ErrTooLateToBook)
	}

	// Проверяем, что время начала не раньше минимального
	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
