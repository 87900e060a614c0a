package parkingcore

import (
	"time"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
)

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	ParkingSpotID   string    `json:"parking_spot_id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	VehiclePlate    string    `json:"vehicle_plate"`
	VehicleMake     *string   `json:"vehicle_make,omitempty"`
	VehicleModel    *string   `json:"vehicle_model,omitempty"`
	VehicleColor    *string   `json:"vehicle_color,omitempty"`
	SpecialRequests *string   `json:"special_requests,omitempty"`

	// IdempotencyKey передаётся заголовком, не телом
	IdempotencyKey string `json:"-"`
}

type calculatePriceRequest struct {
	ParkingSpotID string    `json:"parking_spot_id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
}

type updateStatusRequest struct {
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellation_reason,omitempty"`
}

// priceResponse модель ответа /bookings/calculate-price
type priceResponse struct {
	Subtotal      int64   `json:"subtotal"`
	ServiceFee    int64   `json:"service_fee"`
	Total         int64   `json:"total"`
	OwnerPayout   int64   `json:"owner_payout"`
	DurationHours float64 `json:"duration_hours"`
}

func (p *priceResponse) toDomain() *domain.PriceQuote {
	return &domain.PriceQuote{
		DurationHours: p.DurationHours,
		Subtotal:      p.Subtotal,
		ServiceFee:    p.ServiceFee,
		Total:         p.Total,
		OwnerPayout:   p.OwnerPayout,
	}
}

// bookingResponse модель бронирования из ParkingCore
type bookingResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	ParkingSpotID      string     `json:"parking_spot_id"`
	StartTime          time.Time  `json:"start_time"`
	EndTime            time.Time  `json:"end_time"`
	Status             string     `json:"status"`
	TotalAmount        int64      `json:"total_amount"`
	ServiceFee         int64      `json:"service_fee"`
	OwnerPayout        int64      `json:"owner_payout"`
	PaymentStatus      string     `json:"payment_status"`
	VehiclePlate       string     `json:"vehicle_plate"`
	VehicleMake        *string    `json:"vehicle_make"`
	VehicleModel       *string    `json:"vehicle_model"`
	VehicleColor       *string    `json:"vehicle_color"`
	SpecialRequests    *string    `json:"special_requests"`
	CancellationReason *string    `json:"cancellation_reason"`
	CheckedInAt        *time.Time `json:"checked_in_at"`
	CheckedOutAt       *time.Time `json:"checked_out_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (b *bookingResponse) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:                 b.ID,
		UserID:             b.UserID,
		ParkingSpotID:      b.ParkingSpotID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             domain.BookingStatus(b.Status),
		TotalAmount:        b.TotalAmount,
		ServiceFee:         b.ServiceFee,
		OwnerPayout:        b.OwnerPayout,
		PaymentStatus:      b.PaymentStatus,
		VehiclePlate:       b.VehiclePlate,
		VehicleMake:        b.VehicleMake,
		VehicleModel:       b.VehicleModel,
		VehicleColor:       b.VehicleColor,
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
		CheckedInAt:        b.CheckedInAt,
		CheckedOutAt:       b.CheckedOutAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func bookingsToDomain(payload []bookingResponse) []domain.Booking {
	bookings := make([]domain.Booking, 0, len(payload))
	for i := range payload {
		bookings = append(bookings, *payload[i].toDomain())
	}
	return bookings
}

// errorResponse модель ошибки ParkingCore
type errorResponse struct {
	Detail string `json:"detail"`
}
