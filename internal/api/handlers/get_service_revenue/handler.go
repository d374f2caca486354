package get_service_revenue

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
	msgInternal      = "Error fetching service revenue"
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

// Handle GET /appointments/revenue/services?year=2025&month=10
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	revenue, err := h.service.ServiceRevenue(r.Context(), domain.ReportPeriod{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			h.logger.Warn("GET /appointments/revenue/services - Invalid period: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /appointments/revenue/services - Failed to fetch revenue: %v", err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("GET /appointments/revenue/services - Revenue retrieved for %d-%02d, %d services", year, month, len(revenue))
	handlers.RespondJSON(w, http.StatusOK, revenue)
}
