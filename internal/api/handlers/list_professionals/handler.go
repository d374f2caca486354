package list_professionals

import (
	"net/http"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
)

const msgInternal = "Error fetching professionals"

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

// Handle GET /professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list professionals: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	h.logger.Info("GET /professionals - Retrieved %d professionals", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
