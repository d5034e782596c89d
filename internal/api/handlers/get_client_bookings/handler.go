package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	"github.com/m04kA/SLN-BookingService/internal/service/bookings"
	"github.com/m04kA/SLN-BookingService/internal/service/bookings/models"
	"github.com/m04kA/SLN-BookingService/pkg/ptr"
)

const (
	msgMissingPhone  = "телефон клиента обязателен"
	msgInvalidStatus = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{phone}/bookings
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	phone := vars["phone"]
	if phone == "" {
		h.logger.Warn("GET /clients/{phone}/bookings - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	req := &models.GetClientBookingsRequest{
		ClientPhone: phone,
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = ptr.Ptr(statusStr)
	}

	result, err := h.service.GetClientBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{phone}/bookings - Invalid input: phone=%s, error=%v", phone, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{phone}/bookings - Failed to get bookings: phone=%s, error=%v",
				phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{phone}/bookings - Bookings retrieved successfully: phone=%s, count=%d",
		phone, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
