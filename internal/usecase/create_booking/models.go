package create_booking

import (
	"time"

	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента (для подтверждения в WhatsApp)
	ServiceIDs  []int64          // Запрошенные услуги (одна или несколько)
	ChairID     int64            // ID кресла
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала (например, "10:00")
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента
	ChairID     int64            // ID кресла
	ServiceIDs  []int64          // Услуги
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания (производное)
	// DurationMinutes - снапшот суммы длительностей услуг
	DurationMinutes int
	Status          string // Статус бронирования

	// Денормализованные данные
	ServiceNames []string // Названия услуг
	TotalPrice   float64  // Суммарная стоимость
	Notes        *string  // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
