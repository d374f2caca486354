package list_services

import (
	"net/http"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
)

const msgInternal = "Error fetching services"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	h.logger.Info("GET /services - Retrieved %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, services)
}
