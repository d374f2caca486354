package list_appointments

import (
	"net/http"
	"strconv"
	"time"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/appointments/models"
)

const (
	msgInvalidDate = "Invalid date format, expected YYYY-MM-DD"
	msgInvalidProf = "Invalid professional ID"
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

// Handle GET /appointments?date=2025-10-15&professional_id=3
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if profStr := r.URL.Query().Get("professional_id"); profStr != "" {
		profID, err := strconv.ParseInt(profStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid professional filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidProf)
			return
		}
		req.ProfessionalID = &profID
	}

	list, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w, msgInternal)
		return
	}

	h.logger.Info("GET /appointments - Retrieved %d appointments", len(list))
	handlers.RespondJSON(w, http.StatusOK, list)
}
