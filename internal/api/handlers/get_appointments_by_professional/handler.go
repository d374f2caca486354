package get_appointments_by_professional

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/appointments/models"
)

const (
	msgInvalidID   = "Invalid professional ID"
	msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"
	msgInternal    = "Error fetching appointments"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /appointments/by-professional/{id}?date=2025-10-15
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	profID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/by-professional/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	req := &models.ListAppointmentsRequest{ProfessionalID: &profID}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments/by-professional/{id} - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments/by-professional/{id} - Failed to list appointments: professional_id=%d, error=%v", profID, err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	h.logger.Info("GET /appointments/by-professional/{id} - Retrieved %d appointments for professional_id=%d", len(list), profID)
	handlers.RespondJSON(w, http.StatusOK, list)
}
