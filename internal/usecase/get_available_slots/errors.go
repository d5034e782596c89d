package get_available_slots

import "errors"

var (
	// ErrChairNotFound возвращается, когда кресло не найдено
	ErrChairNotFound = errors.New("get_available_slots: chair not found")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
