package update_professional

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/service/professionals"
	"github.com/barberhq/scheduling-service/internal/service/professionals/models"
)

const (
	msgInvalidID   = "Invalid professional ID"
	msgInvalidBody = "Invalid request body"
	msgNoFields    = "Please provide at least one field to update"
	msgNotFound    = "Professional not found"
	msgEmailTaken  = "Email is already in use by another professional"
	msgInternal    = "Error updating professional"
)

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

// Handle PUT /professionals/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body models.UpdateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("PUT /professionals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), id, &body)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id} - Validation failed: professional_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgNoFields)

		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id} - Professional not found: professional_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, professionals.ErrEmailTaken):
			h.logger.Warn("PUT /professionals/{id} - Email already in use: professional_id=%d", id)
			handlers.RespondBadRequest(w, msgEmailTaken)

		default:
			h.logger.Error("PUT /professionals/{id} - Failed to update professional: professional_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id} - Professional updated successfully: professional_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
