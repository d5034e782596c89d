package get_compatible_chairs

import "github.com/m04kA/SLN-BookingService/internal/domain"

// Request модель запроса на подбор совместимых кресел
type Request struct {
	ServiceIDs []int64 // Запрошенные услуги; пустой список = без ограничения
}

// Response модель ответа со списком совместимых кресел
type Response struct {
	Chairs []*domain.Chair
}
