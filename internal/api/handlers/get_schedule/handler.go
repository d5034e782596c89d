package get_schedule

import (
	"net/http"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	config, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule - Failed to get schedule config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule - Schedule config retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, config)
}
