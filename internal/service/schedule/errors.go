package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах расписания
	ErrInvalidInput = errors.New("invalid schedule configuration")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
