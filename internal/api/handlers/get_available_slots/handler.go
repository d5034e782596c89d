package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SLN-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidChairID  = "некорректный ID кресла"
	msgInvalidDuration = "некорректная длительность"
	msgMissingDuration = "длительность обязательна"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgChairNotFound   = "кресло не найдено"
	msgDateTooFar      = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/chairs/{chairId}/available-slots
// Query params: date (required, YYYY-MM-DD), durationMinutes (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем chairId из URL
	chairIDStr := vars["chairId"]
	chairID, err := strconv.ParseInt(chairIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /chairs/{id}/available-slots - Invalid chair ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChairID)
		return
	}

	// Извлекаем durationMinutes из query параметров
	durationStr := r.URL.Query().Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET /chairs/{id}/available-slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /chairs/{id}/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /chairs/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(chairID, durationMinutes, dateStr)
	if err != nil {
		h.logger.Warn("GET /chairs/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrChairNotFound):
			h.logger.Warn("GET /chairs/{id}/available-slots - Chair not found: chair_id=%d", chairID)
			handlers.RespondNotFound(w, msgChairNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /chairs/{id}/available-slots - Date too far in future: chair_id=%d, date=%s",
				chairID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /chairs/{id}/available-slots - Invalid input: chair_id=%d, error=%v", chairID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /chairs/{id}/available-slots - Failed to get slots: chair_id=%d, date=%s, error=%v",
				chairID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /chairs/{id}/available-slots - Slots retrieved successfully: chair_id=%d, date=%s, slots_count=%d",
		chairID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
