package parkingcore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	"github.com/m04kA/SMC-ParkingGateway/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil, nopLogger{})
}

func TestClient_CalculatePrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/calculate-price", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "spot-1", req["parking_spot_id"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"subtotal": 1000, "service_fee": 150, "total": 1150,
			"owner_payout": 900, "duration_hours": 2.0,
		})
	})

	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	quote, err := client.CalculatePrice(context.Background(), "spot-1", domain.TimeWindow{
		Start: start, End: start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1150), quote.Total)
	assert.Equal(t, int64(900), quote.OwnerPayout)
	assert.False(t, quote.Estimated)
}

func TestClient_CreateBooking(t *testing.T) {
	t.Run("success sends idempotency key and bearer token", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
			assert.Equal(t, "key-abc", r.Header.Get("Idempotency-Key"))

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"id": "b1", "user_id": "u1", "parking_spot_id": "spot-1",
				"start_time": "2026-03-10T10:00:00Z", "end_time": "2026-03-10T12:00:00Z",
				"status": "pending", "total_amount": 1150, "service_fee": 150,
				"owner_payout": 900, "payment_status": "pending",
				"vehicle_plate": "ABC-1234",
				"created_at":    "2026-03-09T09:00:00Z", "updated_at": "2026-03-09T09:00:00Z",
			})
		})

		booking, err := client.CreateBooking(context.Background(), "tok-123", CreateBookingRequest{
			ParkingSpotID:  "spot-1",
			StartTime:      time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
			VehiclePlate:   "ABC-1234",
			IdempotencyKey: "key-abc",
		})
		require.NoError(t, err)
		assert.Equal(t, "b1", booking.ID)
		assert.Equal(t, domain.StatusPending, booking.Status)
		assert.Equal(t, int64(1150), booking.TotalAmount)
	})

	t.Run("conflict carries backend detail verbatim", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Time slot is already booked"})
		})

		_, err := client.CreateBooking(context.Background(), "tok", CreateBookingRequest{})
		require.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, "Time slot is already booked", MessageFromError(err))
	})

	t.Run("validation error maps to bad request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Cannot book in the past"})
		})

		_, err := client.CreateBooking(context.Background(), "tok", CreateBookingRequest{})
		require.ErrorIs(t, err, ErrBadRequest)
		assert.Equal(t, "Cannot book in the past", MessageFromError(err))
	})

	t.Run("missing token maps to unauthorized", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Not authenticated"})
		})

		_, err := client.CreateBooking(context.Background(), "", CreateBookingRequest{})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestClient_GetBookingForbidden(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Not authorized to view this booking"})
	})

	_, err := client.GetBooking(context.Background(), "tok", "b1")
	require.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Not authorized to view this booking", MessageFromError(err))
}

func TestClient_OutboundMetrics(t *testing.T) {
	m := metrics.NewWith(prometheus.NewRegistry(), "test")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "b1", "status": "pending",
			"start_time": "2026-03-10T10:00:00Z", "end_time": "2026-03-10T12:00:00Z",
			"created_at": "2026-03-09T09:00:00Z", "updated_at": "2026-03-09T09:00:00Z",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, m, nopLogger{})

	_, err := client.GetBooking(context.Background(), "tok", "b1")
	require.NoError(t, err)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.OutboundRequestsTotal.WithLabelValues("get_booking", "2xx")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OutboundRequestDuration))

	// Транспортная ошибка учитывается со статусом "error"
	srv.Close()
	_, err = client.GetBooking(context.Background(), "tok", "b1")
	require.Error(t, err)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(m.OutboundRequestsTotal.WithLabelValues("get_booking", "error")))
}

func TestClient_ListMyBookings(t *testing.T) {
	status := domain.StatusConfirmed
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings", r.URL.Path)
		assert.Equal(t, "confirmed", r.URL.Query().Get("status_filter"))
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": "b1", "status": "confirmed", "start_time": "2026-03-10T10:00:00Z",
				"end_time": "2026-03-10T12:00:00Z", "created_at": "2026-03-09T09:00:00Z",
				"updated_at": "2026-03-09T09:00:00Z"},
		})
	})

	bookings, err := client.ListMyBookings(context.Background(), "tok", &status)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
}

func TestClient_CheckInRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/b1/check-in", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Booking must be confirmed before check-in"})
	})

	_, err := client.CheckIn(context.Background(), "tok", "b1")
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Booking must be confirmed before check-in", MessageFromError(err))
}

func TestClient_UpdateStatus(t *testing.T) {
	reason := "plans changed"
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/bookings/b1/status", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "cancelled", req["status"])
		assert.Equal(t, "plans changed", req["cancellation_reason"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "b1", "status": "cancelled", "cancellation_reason": "plans changed",
			"start_time": "2026-03-10T10:00:00Z", "end_time": "2026-03-10T12:00:00Z",
			"created_at": "2026-03-09T09:00:00Z", "updated_at": "2026-03-09T09:30:00Z",
		})
	})

	booking, err := client.UpdateStatus(context.Background(), "tok", "b1", domain.StatusCancelled, &reason)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, booking.Status)
	require.NotNil(t, booking.CancellationReason)
	assert.Equal(t, "plans changed", *booking.CancellationReason)
}
