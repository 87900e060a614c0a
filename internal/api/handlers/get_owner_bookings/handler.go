package get_owner_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingGateway/internal/service/bookings"
	"github.com/m04kA/SMC-ParkingGateway/internal/service/bookings/models"
)

const (
	msgInvalidStatus   = "некорректный фильтр статуса"
	msgUnauthenticated = "требуется авторизация"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/owner?status_filter=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetBookingsRequest{
		Token: middleware.TokenFromContext(r.Context()),
	}
	if status := r.URL.Query().Get("status_filter"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetOwnerBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings/owner - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrUnauthenticated):
			h.logger.Warn("GET /bookings/owner - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		default:
			h.logger.Error("GET /bookings/owner - Failed to fetch bookings: %v", err)
			handlers.RespondBackendError(w, err)
		}
		return
	}

	h.logger.Info("GET /bookings/owner - Fetched %d bookings", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
