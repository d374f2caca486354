package get_appointments_by_date

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/appointments/models"
)

const (
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

// Handle GET /appointments/by-date/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /appointments/by-date/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.List(r.Context(), &models.ListAppointmentsRequest{Date: &date})
	if err != nil {
		h.logger.Error("GET /appointments/by-date/{date} - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	h.logger.Info("GET /appointments/by-date/{date} - Retrieved %d appointments for %s",
		len(list), date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, list)
}
