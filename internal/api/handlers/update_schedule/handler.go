package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	"github.com/m04kA/SLN-BookingService/internal/service/schedule"
	"github.com/m04kA/SLN-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidConfig      = "некорректные параметры расписания"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	config, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule - Invalid config: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /schedule - Failed to update schedule config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule - Schedule config updated successfully: open=%s, close=%s",
		config.OpenTime, config.CloseTime)
	handlers.RespondJSON(w, http.StatusOK, config)
}
