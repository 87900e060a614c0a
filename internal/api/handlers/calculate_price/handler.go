package calculate_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingGateway/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-ParkingGateway/internal/usecase/calculate_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "конец окна должен быть позже начала"
	msgSpotNotFound       = "парковочное место не найдено"
	msgQuoteUnavailable   = "расчёт цены временно недоступен"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInput), errors.Is(err, calculatePrice.ErrInvalidWindow):
			h.logger.Warn("POST /bookings/calculate-price - Invalid input: spot_id=%s, error=%v", req.ParkingSpotID, err)
			handlers.RespondBadRequest(w, handlers.BackendMessage(err, msgInvalidWindow))

		case errors.Is(err, calculatePrice.ErrSpotNotFound):
			h.logger.Warn("POST /bookings/calculate-price - Spot not found: spot_id=%s", req.ParkingSpotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, calculatePrice.ErrQuoteUnavailable):
			h.logger.Warn("POST /bookings/calculate-price - Quote unavailable: spot_id=%s", req.ParkingSpotID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgQuoteUnavailable)

		default:
			h.logger.Error("POST /bookings/calculate-price - Failed to calculate price: spot_id=%s, error=%v",
				req.ParkingSpotID, err)
			handlers.RespondBackendError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/calculate-price - Quote calculated: spot_id=%s, total=%d, estimated=%t",
		req.ParkingSpotID, result.Quote.Total, result.Quote.Estimated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
