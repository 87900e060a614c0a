package create_booking

import (
	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
)

// Request запрос на создание бронирования
type Request struct {
	Token         string
	ParkingSpotID string
	Window        domain.TimeWindow

	VehiclePlate    string
	VehicleMake     *string
	VehicleModel    *string
	VehicleColor    *string
	SpecialRequests *string
}

// Response ответ с созданным бронированием
type Response struct {
	Booking domain.Booking

	// IdempotencyKey ключ, под которым запрос ушёл в ParkingCore.
	// Повтор с тем же ключом вернёт то же бронирование
	IdempotencyKey string
}
