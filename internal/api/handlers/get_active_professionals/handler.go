package get_active_professionals

import (
	"net/http"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
)

const msgInternal = "Error fetching active professionals"

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /professionals/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /professionals/active - Failed to list active professionals: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	h.logger.Info("GET /professionals/active - Retrieved %d professionals", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
