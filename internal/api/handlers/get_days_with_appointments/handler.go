package get_days_with_appointments

import (
	"net/http"
	"time"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/appointments/models"
)

const (
	msgMissingRange = "Start and end dates are required"
	msgInvalidDate  = "Invalid date format, expected YYYY-MM-DD"
	msgInternal     = "Error fetching days with appointments"
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

// Handle GET /appointments/days-with-appointments?start=2025-10-01&end=2025-10-31
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /appointments/days-with-appointments - Missing start or end date")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /appointments/days-with-appointments - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /appointments/days-with-appointments - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	days, err := h.service.DaysWithAppointments(r.Context(), &models.DaysWithAppointmentsRequest{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.logger.Error("GET /appointments/days-with-appointments - Failed to fetch days: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	h.logger.Info("GET /appointments/days-with-appointments - Retrieved %d days", len(days))
	handlers.RespondJSON(w, http.StatusOK, days)
}
