package create_appointment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/usecase/create_appointment"
)

const (
	msgInvalidBody     = "Invalid request body"
	msgMissingFields   = "Please provide all required fields"
	msgServiceNotFound = "Service not found"
	msgProfNotFound    = "Professional not found"
	msgSlotTaken       = "This time slot is not available"
	msgInternal        = "Error creating appointment"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req, err := body.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid appointment date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, create_appointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, create_appointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", body.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, create_appointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%v", body.ProfessionalID)
			handlers.RespondNotFound(w, msgProfNotFound)

		case errors.Is(err, create_appointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s", body.AppointmentDate)
			handlers.RespondBadRequest(w, msgSlotTaken)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d", resp.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
