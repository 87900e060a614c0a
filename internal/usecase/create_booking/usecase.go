package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	coreClient "github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
)

// UseCase use case создания бронирования.
// Каждая отправка получает свой ключ идемпотентности, поэтому
// повтор после сетевого сбоя не создаёт дубликат.
type UseCase struct {
	client       ParkingCoreClient
	store        BookingStore
	mirror       BookingMirror
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ParkingCoreClient, store BookingStore, mirror BookingMirror, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		store:        store,
		mirror:       mirror,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: spot=%s, start=%s, end=%s",
		req.ParkingSpotID, req.Window.Start.Format("2006-01-02 15:04"), req.Window.End.Format("2006-01-02 15:04"))

	// 1. Валидация входных данных, до любых сетевых вызовов
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Ключ идемпотентности выдаётся на каждую отправку
	idempotencyKey := uuid.NewString()

	// 3. Отправляем бронирование в ParkingCore
	booking, err := uc.client.CreateBooking(ctx, req.Token, coreClient.CreateBookingRequest{
		ParkingSpotID:   req.ParkingSpotID,
		StartTime:       req.Window.Start,
		EndTime:         req.Window.End,
		VehiclePlate:    strings.TrimSpace(req.VehiclePlate),
		VehicleMake:     req.VehicleMake,
		VehicleModel:    req.VehicleModel,
		VehicleColor:    req.VehicleColor,
		SpecialRequests: req.SpecialRequests,
		IdempotencyKey:  idempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, coreClient.ErrConflict):
			uc.logger.Warn("CreateBooking: spot=%s unavailable for requested window", req.ParkingSpotID)
			return nil, fmt.Errorf("%w: %w", ErrSpotUnavailable, err)

		case errors.Is(err, coreClient.ErrNotFound):
			uc.logger.Warn("CreateBooking: spot=%s not found", req.ParkingSpotID)
			return nil, ErrSpotNotFound

		case errors.Is(err, coreClient.ErrUnauthorized):
			uc.logger.Warn("CreateBooking: token rejected by ParkingCore")
			return nil, ErrUnauthenticated

		case errors.Is(err, coreClient.ErrForbidden):
			uc.logger.Warn("CreateBooking: access denied for spot=%s: %v", req.ParkingSpotID, err)
			return nil, fmt.Errorf("%w: %w", ErrAccessDenied, err)

		case errors.Is(err, coreClient.ErrBadRequest):
			uc.logger.Warn("CreateBooking: backend rejected request: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)

		default:
			uc.logger.Error("CreateBooking: failed to create booking for spot=%s: %v", req.ParkingSpotID, err)
			return nil, fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
	}

	// 4. Серверная копия сразу попадает в локальное состояние
	uc.store.PrependMyBooking(*booking)

	// 5. Зеркалим в локальную историю; её сбой не отменяет бронирование
	if err := uc.mirror.Upsert(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to mirror booking id=%s: %v", booking.ID, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%s, status=%s, total=%d",
		booking.ID, booking.Status, booking.TotalAmount)

	return &Response{Booking: *booking, IdempotencyKey: idempotencyKey}, nil
}
