package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetBookingsRequest запрос списка бронирований с опциональным фильтром
type GetBookingsRequest struct {
	Token  string
	Status *string
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Token              string
	BookingID          string
	CancellationReason string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	ParkingSpotID string    `json:"parkingSpotId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Status        string    `json:"status"`

	TotalAmount   int64  `json:"totalAmount"`
	ServiceFee    int64  `json:"serviceFee"`
	OwnerPayout   int64  `json:"ownerPayout"`
	PaymentStatus string `json:"paymentStatus"`

	VehiclePlate    string  `json:"vehiclePlate"`
	VehicleMake     *string `json:"vehicleMake,omitempty"`
	VehicleModel    *string `json:"vehicleModel,omitempty"`
	VehicleColor    *string `json:"vehicleColor,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CheckedInAt        *time.Time `json:"checkedInAt,omitempty"`
	CheckedOutAt       *time.Time `json:"checkedOutAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		ParkingSpotID:      b.ParkingSpotID,
		StartTime:          b.StartTime,
		EndTime:            b.EndTime,
		Status:             string(b.Status),
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

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, *FromDomainBooking(&bookings[i]))
	}
	return &BookingListResponse{Bookings: items, Total: len(items)}
}

// FromDomainBookingPtrs конвертирует список указателей на domain модели
func FromDomainBookingPtrs(bookings []*domain.Booking) *BookingListResponse {
	items := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: items, Total: len(items)}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
