package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingGateway/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-ParkingGateway/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyPlate         = "номер автомобиля обязателен"
	msgInvalidWindow      = "конец окна должен быть позже начала"
	msgStartInPast        = "время начала уже прошло"
	msgSpotNotFound       = "парковочное место не найдено"
	msgSpotUnavailable    = "парковочное место занято на выбранное время"
	msgUnauthenticated    = "требуется авторизация"
	msgForbidden          = "доступ запрещён"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token := middleware.TokenFromContext(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(token))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrEmptyPlate):
			h.logger.Warn("POST /bookings - Empty vehicle plate: spot_id=%s", req.ParkingSpotID)
			handlers.RespondBadRequest(w, msgEmptyPlate)

		case errors.Is(err, createBooking.ErrInvalidWindow):
			h.logger.Warn("POST /bookings - Invalid window: spot_id=%s", req.ParkingSpotID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, createBooking.ErrStartInPast):
			h.logger.Warn("POST /bookings - Start in past: spot_id=%s", req.ParkingSpotID)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: spot_id=%s, error=%v", req.ParkingSpotID, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgInvalidRequestBody))

		case errors.Is(err, createBooking.ErrSpotUnavailable):
			h.logger.Warn("POST /bookings - Spot unavailable: spot_id=%s", req.ParkingSpotID)
			handlers.RespondConflict(w, handlers.BackendMessage(err, msgSpotUnavailable))

		case errors.Is(err, createBooking.ErrSpotNotFound):
			h.logger.Warn("POST /bookings - Spot not found: spot_id=%s", req.ParkingSpotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, createBooking.ErrUnauthenticated):
			h.logger.Warn("POST /bookings - Unauthenticated request")
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: spot_id=%s", req.ParkingSpotID)
			handlers.RespondForbidden(w, handlers.BackendMessage(err, msgForbidden))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: spot_id=%s, error=%v", req.ParkingSpotID, err)
			handlers.RespondBackendError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, spot_id=%s",
		result.Booking.ID, req.ParkingSpotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
