package get_available_slots

import (
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SLN-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ChairID         int64    `json:"chairId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP параметры в модель use case
func ToUseCaseRequest(chairID int64, durationMinutes int, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ChairID:         chairID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		ChairID:         resp.ChairID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
