package whatsapp

// sendMessageRequest тело запроса к шлюзу
type sendMessageRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// sendMessageResponse ответ шлюза
type sendMessageResponse struct {
	MessageID string `json:"messageId"`
	Status    string `json:"status"`
}

// ErrorResponse модель ошибки от шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
