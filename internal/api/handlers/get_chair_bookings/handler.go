package get_chair_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	"github.com/m04kA/SLN-BookingService/internal/service/bookings"
)

const (
	msgInvalidChairID = "некорректный ID кресла"
	msgInvalidFilter  = "некорректные параметры фильтра"
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

// Handle GET /api/v1/chairs/{chairId}/bookings
// Query params: date | startDate + endDate, status, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chairIDStr := vars["chairId"]

	chairID, err := strconv.ParseInt(chairIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /chairs/{id}/bookings - Invalid chair ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidChairID)
		return
	}

	req := ToServiceRequest(chairID, r.URL.Query())

	result, err := h.service.GetChairBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /chairs/{id}/bookings - Invalid filter: chair_id=%d, error=%v", chairID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /chairs/{id}/bookings - Failed to get bookings: chair_id=%d, error=%v",
				chairID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /chairs/{id}/bookings - Bookings retrieved successfully: chair_id=%d, count=%d",
		chairID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
