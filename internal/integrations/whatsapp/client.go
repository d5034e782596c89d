package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент WhatsApp-шлюза для отправки уведомлений клиентам
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента WhatsApp-шлюза
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет сообщение на указанный номер телефона.
// Ошибка отправки никогда не должна откатывать или ронять бронирование -
// вызывающий код обязан только залогировать её.
func (c *Client) Send(ctx context.Context, phone, message string) error {
	url := fmt.Sprintf("%s/v1/messages", c.baseURL)

	payload, err := json.Marshal(sendMessageRequest{
		Phone:   phone,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Шлюз принял сообщение, но вернул нечитаемое тело - считаем успехом
		c.log.Warn("WhatsApp gateway returned unreadable body for phone=%s: %v", phone, err)
		return nil
	}

	c.log.Info("WhatsApp message accepted: phone=%s, message_id=%s, status=%s", phone, result.MessageID, result.Status)
	return nil
}

// NopClient заглушка, используется при выключенных уведомлениях
type NopClient struct{}

// Send ничего не отправляет.
func (NopClient) Send(ctx context.Context, phone, message string) error {
	return nil
}
