package get_appointment_stats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/domain"
	"github.com/barberhq/scheduling-service/internal/service/reports"
)

const (
	msgInvalidPeriod = "Year and month are required"
	msgInternal      = "Error fetching appointment stats"
)

type Handler struct {
	service ReportsService
	logger  Logger
}

func NewHandler(service ReportsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /appointments/stats?year=2025&month=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	stats, err := h.service.Stats(r.Context(), domain.ReportPeriod{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /appointments/stats - Invalid period: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /appointments/stats - Failed to fetch stats: %v", err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("GET /appointments/stats - Stats retrieved for %d-%02d", year, month)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
