package delete_professional

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/service/professionals"
)

const (
	msgInvalidID   = "Invalid professional ID"
	msgNotFound    = "Professional not found"
	msgDeactivated = "Professional deactivated successfully"
	msgInternal    = "Error deleting professional"
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

// Handle DELETE /professionals/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("DELETE /professionals/{id} - Professional not found: professional_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /professionals/{id} - Failed to delete professional: professional_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id} - Professional deactivated successfully: professional_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgDeactivated})
}
