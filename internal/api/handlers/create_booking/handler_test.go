package create_booking

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

	"github.com/m04kA/SMC-ParkingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	"github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
	"github.com/m04kA/SMC-ParkingGateway/internal/state"
	createBooking "github.com/m04kA/SMC-ParkingGateway/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMirror struct{}

func (nopMirror) Upsert(context.Context, *domain.Booking) error { return nil }

// newBackendHandler собирает обработчик поверх реального клиента ParkingCore,
// чтобы проверять путь от ответа бэкенда до HTTP ответа гейтвея
func newBackendHandler(t *testing.T, backend http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	client := parkingcore.NewClient(srv.URL, 5*time.Second, nil, nopLogger{})
	uc := createBooking.NewUseCase(client, state.NewStore(), nopMirror{}, nopLogger{})
	return NewHandler(uc, nopLogger{})
}

func doRequest(t *testing.T, h *Handler) *httptest.ResponseRecorder {
	t.Helper()
	body := `{
		"parkingSpotId": "spot-1",
		"startTime": "2030-03-10T10:00:00Z",
		"endTime": "2030-03-10T12:00:00Z",
		"vehiclePlate": "А123ВС77"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandler_BackendDetailPassedThrough(t *testing.T) {
	t.Run("400 detail returned verbatim", func(t *testing.T) {
		h := newBackendHandler(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Parking spot is not available"})
		})

		rec := doRequest(t, h)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Parking spot is not available", decodeError(t, rec).Message)
	})

	t.Run("409 detail returned verbatim", func(t *testing.T) {
		h := newBackendHandler(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Time slot is already booked"})
		})

		rec := doRequest(t, h)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Time slot is already booked", decodeError(t, rec).Message)
	})

	t.Run("500 detail returned verbatim", func(t *testing.T) {
		h := newBackendHandler(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Payment provider is down"})
		})

		rec := doRequest(t, h)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Payment provider is down", decodeError(t, rec).Message)
	})

	t.Run("fallback message when backend body is unreadable", func(t *testing.T) {
		h := newBackendHandler(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		rec := doRequest(t, h)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "внутренняя ошибка сервера", decodeError(t, rec).Message)
	})
}

func TestHandler_BackendForbidden(t *testing.T) {
	h := newBackendHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Account is blocked"})
	})

	rec := doRequest(t, h)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Account is blocked", decodeError(t, rec).Message)
}
