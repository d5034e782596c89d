package get_available_slots

import (
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ChairID         int64     // ID кресла
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Требуемая суммарная длительность
}

// Response модель ответа со списком доступных времён начала
type Response struct {
	Date            time.Time          // Дата, на которую запрашивались слоты
	ChairID         int64              // ID кресла
	DurationMinutes int                // Запрошенная длительность
	Slots           []types.TimeString // Времена начала в хронологическом порядке
}
