package create_professional

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/service/professionals"
	"github.com/barberhq/scheduling-service/internal/service/professionals/models"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgMissingFields = "Name, email and phone are required"
	msgEmailTaken    = "Email is already in use"
	msgInternal      = "Error creating professional"
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

// Handle POST /professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body models.CreateProfessionalRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	created, err := h.service.Create(r.Context(), &body)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("POST /professionals - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, professionals.ErrEmailTaken):
			h.logger.Warn("POST /professionals - Email already in use: email=%q", body.Email)
			handlers.RespondBadRequest(w, msgEmailTaken)

		default:
			h.logger.Error("POST /professionals - Failed to create professional: %v", err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("POST /professionals - Professional created successfully: professional_id=%d", created.ID)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
