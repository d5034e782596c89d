package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SLN-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgSlotTaken             = "выбранный временной слот занят"
	msgChairNotFound         = "кресло не найдено"
	msgChairInactive         = "кресло выведено из эксплуатации"
	msgServiceNotFound       = "услуга не найдена"
	msgCapabilityMismatch    = "кресло не поддерживает выбранные услуги"
	msgInvalidBookingDate    = "некорректная дата бронирования"
	msgDateTooFar            = "дата бронирования слишком далеко в будущем"
	msgOutsideBusinessHours  = "интервал выходит за рабочие часы салона"
	msgTooLateToBook         = "слишком поздно для записи на этот слот"
	msgInvalidBookingRequest = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: chair_id=%d, date=%s, start=%s",
				req.ChairID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrChairNotFound):
			h.logger.Warn("POST /bookings - Chair not found: chair_id=%d", req.ChairID)
			handlers.RespondNotFound(w, msgChairNotFound)

		case errors.Is(err, createBooking.ErrChairInactive):
			h.logger.Warn("POST /bookings - Chair inactive: chair_id=%d", req.ChairID)
			handlers.RespondBadRequest(w, msgChairInactive)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_ids=%v", req.ServiceIDs)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrCapabilityMismatch):
			h.logger.Warn("POST /bookings - Capability mismatch: chair_id=%d, service_ids=%v",
				req.ChairID, req.ServiceIDs)
			handlers.RespondBadRequest(w, msgCapabilityMismatch)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: chair_id=%d, date=%s",
				req.ChairID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: chair_id=%d, date=%s",
				req.ChairID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: chair_id=%d, start=%s",
				req.ChairID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: chair_id=%d, date=%s, start=%s",
				req.ChairID, req.BookingDate, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingRequest)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: chair_id=%d, error=%v",
				req.ChairID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, chair_id=%d, date=%s, start=%s",
		result.ID, req.ChairID, req.BookingDate, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
