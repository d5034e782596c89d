package get_available_slots

import (
	"time"

	"github.com/m04kA/SLN-BookingService/internal/domain"
	"github.com/m04kA/SLN-BookingService/pkg/types"
)

// generateCandidateSlots генерирует времена начала с фиксированным шагом
// от открытия салона до последнего слота, чей конец не выходит за закрытие.
// Для сегодняшней даты отбрасываются слоты, начинающиеся раньше
// now + minBookingNoticeMinutes; для прошедших дат результат пуст.
func generateCandidateSlots(
	cfg *domain.ScheduleConfig,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Прошедшая дата - слотов нет, это не ошибка
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	// Шаг 1: генерируем ВСЕ кандидаты от открытия до закрытия с шагом granularity
	allSlots := make([]types.TimeString, 0)
	currentSlot := cfg.OpenTime

	for currentSlot.IsBefore(cfg.CloseTime) {
		// Слот валиден, только если услуга целиком помещается до закрытия
		slotEnd, err := currentSlot.AddMinutes(durationMinutes)
		if err != nil {
			// Конец слота перевалил за полночь - дальше будет только хуже
			break
		}
		if slotEnd.IsAfter(cfg.CloseTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)

		next, err := currentSlot.AddMinutes(cfg.SlotGranularityMinutes)
		if err != nil {
			break
		}
		currentSlot = next
	}

	// Шаг 2: если дата бронирования НЕ сегодня - возвращаем все кандидаты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: для сегодняшней даты отбрасываем прошедшие слоты
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(cfg.MinBookingNoticeMinutes)
	if err != nil {
		// now + notice за пределами суток - сегодня забронировать уже нечего
		return []types.TimeString{}, nil
	}

	futureSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.IsBefore(minAllowedTime) {
			futureSlots = append(futureSlots, slot)
		}
	}

	return futureSlots, nil
}

// filterFreeSlots оставляет кандидаты, чьи интервалы [start, start+duration)
// не пересекаются ни с одним активным бронированием дня.
// Пересечение проверяется по строгому правилу полуоткрытых интервалов:
// слот, начинающийся ровно в момент окончания бронирования, свободен.
func filterFreeSlots(
	candidates []types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) []types.TimeString {
	free := make([]types.TimeString, 0, len(candidates))

	for _, slotStart := range candidates {
		slotEnd, err := slotStart.AddMinutes(durationMinutes)
		if err != nil {
			continue
		}

		if !domain.OverlapsActiveBooking(bookings, slotStart, slotEnd) {
			free = append(free, slotStart)
		}
	}

	return free
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
