package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/service/catalog"
)

const (
	msgInvalidID = "Invalid service ID"
	msgNotFound  = "Service not found"
	msgInUse     = "Service has appointments and cannot be deleted"
	msgDeleted   = "Service deleted successfully"
	msgInternal  = "Error deleting service"
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

// Handle DELETE /services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Service not found: service_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrServiceInUse):
			h.logger.Warn("DELETE /services/{id} - Service is in use: service_id=%d", id)
			handlers.RespondBadRequest(w, msgInUse)

		default:
			h.logger.Error("DELETE /services/{id} - Failed to delete service: service_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted successfully: service_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgDeleted})
}
