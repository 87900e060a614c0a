package check_in

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	"github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
	"github.com/m04kA/SMC-ParkingGateway/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingGateway/internal/state"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMirror struct{}

func (nopMirror) Upsert(context.Context, *domain.Booking) error { return nil }
func (nopMirror) GetByID(context.Context, string) (*domain.Booking, error) {
	return nil, nil
}
func (nopMirror) ListByUser(context.Context, string, *domain.BookingStatus) ([]*domain.Booking, error) {
	return nil, nil
}

func newBackendHandler(t *testing.T, backend http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := parkingcore.NewClient(srv.URL, 5*time.Second, nil, nopLogger{})
	svc := bookings.NewService(client, state.NewStore(), nopMirror{}, nopLogger{})
	return NewHandler(svc, nopLogger{})
}

func doRequest(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/bk-1/check-in", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": "bk-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandler_RejectionDetailPassedThrough(t *testing.T) {
	h := newBackendHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Booking must be confirmed before check-in"})
	})

	rec := doRequest(t, h)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Booking must be confirmed before check-in", decodeError(t, rec).Message)
}

func TestHandler_ForbiddenPassedThrough(t *testing.T) {
	h := newBackendHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not authorized to access this booking"})
	})

	rec := doRequest(t, h)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not authorized to access this booking", decodeError(t, rec).Message)
}
