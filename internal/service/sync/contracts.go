package sync

import (
	"context"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
)

// ParkingCoreClient интерфейс клиента ParkingCore
type ParkingCoreClient interface {
	GetBooking(ctx context.Context, token, bookingID string) (*domain.Booking, error)
}

// BookingMirror интерфейс локального зеркала истории бронирований
type BookingMirror interface {
	ListActive(ctx context.Context) ([]*domain.Booking, error)
	Upsert(ctx context.Context, booking *domain.Booking) error
}

// BookingStore интерфейс контейнера состояния бронирований
type BookingStore interface {
	ReplaceBooking(b domain.Booking) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
