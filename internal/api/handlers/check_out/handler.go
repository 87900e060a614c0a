package check_out

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingGateway/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingGateway/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgNotFound           = "бронирование не найдено"
	msgTransitionRejected = "выезд возможен только по начатому бронированию"
	msgUnauthenticated    = "требуется авторизация"
	msgForbidden          = "доступ к бронированию запрещён"
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

// Handle POST /api/v1/bookings/{bookingId}/check-out
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/check-out - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	token := middleware.TokenFromContext(r.Context())

	result, err := h.service.CheckOut(r.Context(), token, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/check-out - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrTransitionRejected):
			h.logger.Warn("POST /bookings/{id}/check-out - Transition rejected: booking_id=%s", bookingID)
			handlers.RespondConflict(w, handlers.BackendMessage(err, msgTransitionRejected))

		case errors.Is(err, bookings.ErrUnauthenticated):
			h.logger.Warn("POST /bookings/{id}/check-out - Unauthenticated request: booking_id=%s", bookingID)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/check-out - Access denied: booking_id=%s", bookingID)
			handlers.RespondForbidden(w, handlers.BackendMessage(err, msgForbidden))

		default:
			h.logger.Error("POST /bookings/{id}/check-out - Failed to check out: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondBackendError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/check-out - Checked out: booking_id=%s, status=%s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
