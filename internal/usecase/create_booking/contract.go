package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	"github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
)

// ParkingCoreClient интерфейс клиента ParkingCore
type ParkingCoreClient interface {
	CreateBooking(ctx context.Context, token string, req parkingcore.CreateBookingRequest) (*domain.Booking, error)
}

// BookingStore интерфейс контейнера состояния бронирований
type BookingStore interface {
	PrependMyBooking(b domain.Booking)
}

// BookingMirror интерфейс локального зеркала истории бронирований
type BookingMirror interface {
	Upsert(ctx context.Context, booking *domain.Booking) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
