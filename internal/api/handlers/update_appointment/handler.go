package update_appointment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/barberhq/scheduling-service/internal/api/handlers"
	"github.com/barberhq/scheduling-service/internal/usecase/update_appointment"
)

const (
	msgInvalidID       = "Invalid appointment ID"
	msgInvalidBody     = "Invalid request body"
	msgNoFields        = "Please provide at least one field to update"
	msgNotFound        = "Appointment not found"
	msgServiceNotFound = "Service not found"
	msgProfNotFound    = "Professional not found"
	msgSlotTaken       = "This time slot is not available"
	msgInternal        = "Error updating appointment"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var body UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req, err := body.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id} - Invalid appointment date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, update_appointment.ErrNoFields):
			h.logger.Warn("PUT /appointments/{id} - No fields provided: appointment_id=%d", id)
			handlers.RespondBadRequest(w, msgNoFields)

		case errors.Is(err, update_appointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		case errors.Is(err, update_appointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id} - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, update_appointment.ErrServiceNotFound):
			h.logger.Warn("PUT /appointments/{id} - Service not found: service_id=%v", body.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, update_appointment.ErrProfessionalNotFound):
			h.logger.Warn("PUT /appointments/{id} - Professional not found: professional_id=%v", body.ProfessionalID)
			handlers.RespondNotFound(w, msgProfNotFound)

		case errors.Is(err, update_appointment.ErrSlotNotAvailable):
			h.logger.Warn("PUT /appointments/{id} - Slot not available: appointment_id=%d", id)
			handlers.RespondBadRequest(w, msgSlotTaken)

		default:
			h.logger.Error("PUT /appointments/{id} - Failed to update appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w, msgInternal)
		}
		return
	}

	h.logger.Info("PUT /appointments/{id} - Appointment updated successfully: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
