package cancel_booking

import (
	"github.com/m04kA/SMC-ParkingGateway/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(token, bookingID string) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		Token:              token,
		BookingID:          bookingID,
		CancellationReason: r.CancellationReason,
	}
}
