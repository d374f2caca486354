package create_service

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/service/catalog"
	"github.com/barberhq/scheduling-service/internal/service/catalog/models"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgMissingFields = "Please provide all required fields"
	msgInternal      = "Error creating service"
)

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

// Handle POST /services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body models.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	created, err := h.service.Create(r.Context(), &body)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /services - Failed to create service: %v", err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("POST /services - Service created successfully: service_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
