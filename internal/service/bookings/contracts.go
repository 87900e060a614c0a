package bookings

import (
	"context"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
)

// ParkingCoreClient интерфейс клиента ParkingCore
type ParkingCoreClient interface {
	GetBooking(ctx context.Context, token, bookingID string) (*domain.Booking, error)
	ListMyBookings(ctx context.Context, token string, status *domain.BookingStatus) ([]domain.Booking, error)
	ListOwnerBookings(ctx context.Context, token string, status *domain.BookingStatus) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, token, bookingID string, status domain.BookingStatus, reason *string) (*domain.Booking, error)
	CheckIn(ctx context.Context, token, bookingID string) (*domain.Booking, error)
	CheckOut(ctx context.Context, token, bookingID string) (*domain.Booking, error)
}

// BookingStore интерфейс контейнера состояния бронирований
type BookingStore interface {
	SetMyBookings(bookings []domain.Booking)
	SetOwnerBookings(bookings []domain.Booking)
	MyBookings() []domain.Booking
	ReplaceBooking(b domain.Booking) bool
	BookingByID(id string) (domain.Booking, bool)
}

// BookingMirror интерфейс локального зеркала истории бронирований
type BookingMirror interface {
	Upsert(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
