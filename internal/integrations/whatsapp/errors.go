package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrGatewayUnavailable возвращается, когда шлюз недоступен.
	// Уведомления - best-effort: вызывающий код логирует ошибку и не
	// пробрасывает её дальше, бронирование остаётся успешным.
	ErrGatewayUnavailable = errors.New("whatsapp client: gateway unavailable")
)
