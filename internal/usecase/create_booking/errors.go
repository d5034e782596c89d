package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда хотя бы одна из услуг не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrChairNotFound возвращается, когда кресло не найдено
	ErrChairNotFound = errors.New("create_booking: chair not found")

	// ErrChairInactive возвращается, когда кресло выведено из эксплуатации
	ErrChairInactive = errors.New("create_booking: chair is inactive")

	// ErrCapabilityMismatch возвращается, когда кресло не поддерживает
	// хотя бы одну из запрошенных услуг
	ErrCapabilityMismatch = errors.New("create_booking: chair does not support requested services")

	// ErrSlotTaken возвращается, когда интервал пересекается с существующим
	// бронированием. Это ожидаемый пользовательский исход, а не ошибка сервера.
	ErrSlotTaken = errors.New("create_booking: slot is taken")

	// ErrInvalidDate возвращается при некорректной дате бронирования (в прошлом)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrOutsideBusinessHours возвращается, когда интервал не помещается в рабочие часы
	ErrOutsideBusinessHours = errors.New("create_booking: interval is outside business hours")

	// ErrTooLateToBook возвращается, когда время начала нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
