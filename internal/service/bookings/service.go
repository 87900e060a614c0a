package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	coreClient "github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
	"github.com/m04kA/SMC-ParkingGateway/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований.
// ParkingCore авторитетен: каждый успешный переход возвращает полную
// серверную копию, которой локальное состояние замещается целиком.
// Отклонённый переход оставляет локальную копию нетронутой.
type Service struct {
	client ParkingCoreClient
	store  BookingStore
	mirror BookingMirror
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client ParkingCoreClient, store BookingStore, mirror BookingMirror, logger Logger) *Service {
	return &Service{
		client: client,
		store:  store,
		mirror: mirror,
		logger: logger,
	}
}

// GetByID получает бронирование по ID из ParkingCore
func (s *Service) GetByID(ctx context.Context, token, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.client.GetBooking(ctx, token, id)
	if err != nil {
		// При недоступном бэкенде отдаём локальную историю, если она есть
		if errors.Is(err, coreClient.ErrInternal) {
			if cached, mirrorErr := s.mirror.GetByID(ctx, id); mirrorErr == nil {
				s.logger.Warn("GetByID: ParkingCore unavailable, serving mirrored copy of booking id=%s", id)
				return models.FromDomainBooking(cached), nil
			}
		}
		return nil, s.mapClientError("GetByID", id, err)
	}

	s.applyServerCopy(ctx, booking)
	return models.FromDomainBooking(booking), nil
}

// GetMyBookings получает бронирования текущего пользователя как арендатора.
// Опционально фильтрует по статусу
func (s *Service) GetMyBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	status, err := s.parseStatusFilter(req.Status)
	if err != nil {
		return nil, err
	}

	bookings, err := s.client.ListMyBookings(ctx, req.Token, status)
	if err != nil {
		// При недоступном бэкенде отдаём локальную историю. ID пользователя
		// берём из ранее закэшированных бронирований, токен непрозрачен
		if errors.Is(err, coreClient.ErrInternal) {
			if cached := s.store.MyBookings(); len(cached) > 0 {
				history, mirrorErr := s.mirror.ListByUser(ctx, cached[0].UserID, status)
				if mirrorErr == nil {
					s.logger.Warn("GetMyBookings: ParkingCore unavailable, serving %d mirrored bookings", len(history))
					return models.FromDomainBookingPtrs(history), nil
				}
			}
		}
		return nil, s.mapClientError("GetMyBookings", "", err)
	}

	// Без фильтра пришёл полный список, им можно заместить состояние
	if status == nil {
		s.store.SetMyBookings(bookings)
	}
	s.mirrorAll(ctx, bookings)

	s.logger.Info("GetMyBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetOwnerBookings получает бронирования площадок текущего пользователя
// как владельца. Опционально фильтрует по статусу
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error) {
	status, err := s.parseStatusFilter(req.Status)
	if err != nil {
		return nil, err
	}

	bookings, err := s.client.ListOwnerBookings(ctx, req.Token, status)
	if err != nil {
		return nil, s.mapClientError("GetOwnerBookings", "", err)
	}

	if status == nil {
		s.store.SetOwnerBookings(bookings)
	}
	s.mirrorAll(ctx, bookings)

	s.logger.Info("GetOwnerBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Отмена допустима только из pending или confirmed; заведомо
// недопустимую отмену отклоняем по локальной копии без сетевого вызова
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", req.BookingID)

	if cached, ok := s.store.BookingByID(req.BookingID); ok && !cached.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s in status=%s cannot be cancelled", req.BookingID, cached.Status)
		return nil, fmt.Errorf("%w: status %s", ErrCannotCancel, cached.Status)
	}

	var reason *string
	if req.CancellationReason != "" {
		reason = &req.CancellationReason
	}

	booking, err := s.client.UpdateStatus(ctx, req.Token, req.BookingID, domain.StatusCancelled, reason)
	if err != nil {
		if errors.Is(err, coreClient.ErrConflict) {
			s.logger.Warn("Cancel: ParkingCore rejected cancellation of booking id=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: %w", ErrCannotCancel, err)
		}
		return nil, s.mapClientError("Cancel", req.BookingID, err)
	}

	s.applyServerCopy(ctx, booking)
	s.logger.Info("Cancel: booking id=%s cancelled", req.BookingID)
	return models.FromDomainBooking(booking), nil
}

// Confirm подтверждает бронирование владельцем площадки
func (s *Service) Confirm(ctx context.Context, token, id string) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s", id)

	booking, err := s.client.UpdateStatus(ctx, token, id, domain.StatusConfirmed, nil)
	if err != nil {
		return nil, s.mapTransitionError("Confirm", id, err)
	}

	s.applyServerCopy(ctx, booking)
	s.logger.Info("Confirm: booking id=%s confirmed", id)
	return models.FromDomainBooking(booking), nil
}

// CheckIn регистрирует заезд арендатора.
// Заезд допустим только из confirmed; заведомо недопустимый заезд
// отклоняем по локальной копии без сетевого вызова
func (s *Service) CheckIn(ctx context.Context, token, id string) (*models.BookingResponse, error) {
	s.logger.Info("CheckIn: checking in booking id=%s", id)

	if cached, ok := s.store.BookingByID(id); ok && !cached.CanCheckIn() {
		s.logger.Warn("CheckIn: booking id=%s in status=%s cannot check in", id, cached.Status)
		return nil, fmt.Errorf("%w: check-in requires confirmed booking, got %s", ErrTransitionRejected, cached.Status)
	}

	booking, err := s.client.CheckIn(ctx, token, id)
	if err != nil {
		return nil, s.mapTransitionError("CheckIn", id, err)
	}

	s.applyServerCopy(ctx, booking)
	s.logger.Info("CheckIn: booking id=%s is now %s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// CheckOut регистрирует выезд арендатора
func (s *Service) CheckOut(ctx context.Context, token, id string) (*models.BookingResponse, error) {
	s.logger.Info("CheckOut: checking out booking id=%s", id)

	if cached, ok := s.store.BookingByID(id); ok && !cached.CanCheckOut() {
		s.logger.Warn("CheckOut: booking id=%s in status=%s cannot check out", id, cached.Status)
		return nil, fmt.Errorf("%w: check-out requires in_progress booking, got %s", ErrTransitionRejected, cached.Status)
	}

	booking, err := s.client.CheckOut(ctx, token, id)
	if err != nil {
		return nil, s.mapTransitionError("CheckOut", id, err)
	}

	s.applyServerCopy(ctx, booking)
	s.logger.Info("CheckOut: booking id=%s is now %s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// applyServerCopy замещает локальную копию серверной и зеркалит её
// в локальную историю. Сбой зеркала не отменяет операцию
func (s *Service) applyServerCopy(ctx context.Context, booking *domain.Booking) {
	s.store.ReplaceBooking(*booking)

	if err := s.mirror.Upsert(ctx, booking); err != nil {
		s.logger.Error("failed to mirror booking id=%s: %v", booking.ID, err)
	}
}

func (s *Service) mirrorAll(ctx context.Context, bookings []domain.Booking) {
	for i := range bookings {
		if err := s.mirror.Upsert(ctx, &bookings[i]); err != nil {
			s.logger.Error("failed to mirror booking id=%s: %v", bookings[i].ID, err)
		}
	}
}

func (s *Service) parseStatusFilter(status *string) (*domain.BookingStatus, error) {
	if status == nil {
		return nil, nil
	}
	parsed, err := models.ToDomainBookingStatus(*status)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *status)
	}
	return &parsed, nil
}

func (s *Service) mapClientError(method, id string, err error) error {
	switch {
	case errors.Is(err, coreClient.ErrNotFound):
		s.logger.Warn("%s: booking id=%s not found", method, id)
		return ErrBookingNotFound

	case errors.Is(err, coreClient.ErrUnauthorized):
		s.logger.Warn("%s: token rejected by ParkingCore", method)
		return ErrUnauthenticated

	case errors.Is(err, coreClient.ErrForbidden):
		s.logger.Warn("%s: access to booking id=%s denied", method, id)
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)

	default:
		s.logger.Error("%s: ParkingCore error: %v", method, err)
		return fmt.Errorf("%w: %s - %w", ErrInternal, method, err)
	}
}

// mapTransitionError как mapClientError, но 409 и 400 от ParkingCore
// означают отклонённый переход статуса
func (s *Service) mapTransitionError(method, id string, err error) error {
	if errors.Is(err, coreClient.ErrConflict) || errors.Is(err, coreClient.ErrBadRequest) {
		s.logger.Warn("%s: ParkingCore rejected transition for booking id=%s: %v", method, id, err)
		return fmt.Errorf("%w: %w", ErrTransitionRejected, err)
	}
	return s.mapClientError(method, id, err)
}
