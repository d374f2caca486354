package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/barberhq/scheduling-service/internal/usecase/create_appointment"
)

type mockUseCase struct {
	resp    *createAppointment.Response
	err     error
	lastReq *createAppointment.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"client_name": "João Silva",
	"client_phone": "+55 11 98765-4321",
	"service_id": 1,
	"appointment_date": "2025-10-15T14:30:00"
}`

func doRequest(t *testing.T, uc *mockUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{resp: &createAppointment.Response{
		ID:              1,
		ClientName:      "João Silva",
		ClientPhone:     "+55 11 98765-4321",
		ServiceID:       1,
		AppointmentDate: time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC),
		Status:          "scheduled",
		TotalValue:      50,
		ServiceName:     "Corte de cabelo",
	}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-10-15T14:30:00", resp.AppointmentDate)
	assert.Equal(t, "scheduled", resp.Status)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "João Silva", uc.lastReq.ClientName)
}

func TestHandle_InvalidJSON(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid request body"}`, rec.Body.String())
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(t, &mockUseCase{}, `{"client_name": "João", "service_id": 1, "appointment_date": "15/10/2025"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "Invalid request body"}`, rec.Body.String())
}

func TestHandle_MissingFields(t *testing.T) {
	uc := &mockUseCase{err: createAppointment.ErrInvalidInput}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "Please provide all required fields"}`, rec.Body.String())
}

func TestHandle_ServiceNotFound(t *testing.T) {
	uc := &mockUseCase{err: createAppointment.ErrServiceNotFound}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message": "Service not found"}`, rec.Body.String())
}

func TestHandle_SlotTaken(t *testing.T) {
	uc := &mockUseCase{err: createAppointment.ErrSlotNotAvailable}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message": "This time slot is not available"}`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	uc := &mockUseCase{err: createAppointment.ErrInternal}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message": "Error creating appointment"}`, rec.Body.String())
}
