package get_compatible_chairs

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SLN-BookingService/internal/api/handlers"
	getCompatibleChairs "github.com/m04kA/SLN-BookingService/internal/usecase/get_compatible_chairs"
)

const (
	msgInvalidServiceIDs = "некорректный список ID услуг"
)

type Handler struct {
	useCase GetCompatibleChairsUseCase
	logger  Logger
}

func NewHandler(useCase GetCompatibleChairsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/chairs/compatible
// Query params: serviceIds (optional, comma-separated; пусто = все активные кресла)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var serviceIDs []int64
	if raw := r.URL.Query().Get("serviceIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				h.logger.Warn("GET /chairs/compatible - Invalid service ID: %q", part)
				handlers.RespondBadRequest(w, msgInvalidServiceIDs)
				return
			}
			serviceIDs = append(serviceIDs, id)
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getCompatibleChairs.Request{ServiceIDs: serviceIDs})
	if err != nil {
		switch {
		case errors.Is(err, getCompatibleChairs.ErrInvalidInput):
			h.logger.Warn("GET /chairs/compatible - Invalid input: service_ids=%v", serviceIDs)
			handlers.RespondBadRequest(w, msgInvalidServiceIDs)

		default:
			h.logger.Error("GET /chairs/compatible - Failed to get chairs: service_ids=%v, error=%v",
				serviceIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /chairs/compatible - Chairs retrieved successfully: service_ids=%v, count=%d",
		serviceIDs, response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
