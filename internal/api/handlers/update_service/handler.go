package update_service

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/service/catalog"
	"github.com/barberhq/scheduling-service/internal/service/catalog/models"
)

const (
	msgInvalidID   = "Invalid service ID"
	msgInvalidBody = "Invalid request body"
	msgNoFields    = "Please provide at least one field to update"
	msgNotFound    = "Service not found"
	msgInternal    = "Error updating service"
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

// Handle PUT /services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body models.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &body)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /services/{id} - Validation failed: service_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgNoFields)

		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /services/{id} - Service not found: service_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /services/{id} - Failed to update service: service_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated successfully: service_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
