package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrIllegalTransition возвращается при запрещённом переходе статуса
	// (например, completed -> pending)
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrCannotCancel возвращается, когда бронирование уже отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
