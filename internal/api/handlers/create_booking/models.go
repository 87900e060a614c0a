package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	"github.com/m04kA/SMC-ParkingGateway/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-ParkingGateway/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ParkingSpotID   string    `json:"parkingSpotId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	VehiclePlate    string    `json:"vehiclePlate"`
	VehicleMake     *string   `json:"vehicleMake,omitempty"`
	VehicleModel    *string   `json:"vehicleModel,omitempty"`
	VehicleColor    *string   `json:"vehicleColor,omitempty"`
	SpecialRequests *string   `json:"specialRequests,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(token string) *createBooking.Request {
	return &createBooking.Request{
		Token:           token,
		ParkingSpotID:   r.ParkingSpotID,
		Window:          domain.TimeWindow{Start: r.StartTime, End: r.EndTime},
		VehiclePlate:    r.VehiclePlate,
		VehicleMake:     r.VehicleMake,
		VehicleModel:    r.VehicleModel,
		VehicleColor:    r.VehicleColor,
		SpecialRequests: r.SpecialRequests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(&resp.Booking)
}
