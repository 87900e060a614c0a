package sync

import (
	"context"
	"errors"
	"fmt"

	coreClient "github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
	"github.com/m04kA/SMC-ParkingGateway/pkg/metrics"
)

// Service фоновое обновление активных бронирований.
// Запускается по расписанию cron и переспрашивает ParkingCore о каждом
// бронировании, которое локально ещё не в терминальном статусе.
// Ходит под сервисным токеном, а не под токеном пользователя
type Service struct {
	client       ParkingCoreClient
	mirror       BookingMirror
	store        BookingStore
	serviceToken string
	metrics      *metrics.Metrics
	logger       Logger
}

// NewService создает новый экземпляр сервиса фонового обновления.
// metrics может быть nil, если метрики выключены
func NewService(
	client ParkingCoreClient,
	mirror BookingMirror,
	store BookingStore,
	serviceToken string,
	m *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		client:       client,
		mirror:       mirror,
		store:        store,
		serviceToken: serviceToken,
		metrics:      m,
		logger:       logger,
	}
}

// RefreshActiveBookings обновляет все активные бронирования серверными
// копиями. Ошибка по одному бронированию не прерывает обход остальных
func (s *Service) RefreshActiveBookings(ctx context.Context) error {
	if s.metrics != nil {
		s.metrics.SyncRunsTotal.Inc()
	}

	active, err := s.mirror.ListActive(ctx)
	if err != nil {
		s.logger.Error("RefreshActiveBookings: %v", err)
		return fmt.Errorf("%w: %v", ErrListActive, err)
	}

	if len(active) == 0 {
		s.logger.Info("RefreshActiveBookings: no active bookings")
		return nil
	}

	updated := 0
	for _, cached := range active {
		fresh, err := s.client.GetBooking(ctx, s.serviceToken, cached.ID)
		if err != nil {
			if errors.Is(err, coreClient.ErrNotFound) {
				s.logger.Warn("RefreshActiveBookings: booking id=%s no longer exists in ParkingCore", cached.ID)
				continue
			}
			s.logger.Error("RefreshActiveBookings: failed to fetch booking id=%s: %v", cached.ID, err)
			continue
		}

		if fresh.Status == cached.Status && fresh.UpdatedAt.Equal(cached.UpdatedAt) {
			continue
		}

		if err := s.mirror.Upsert(ctx, fresh); err != nil {
			s.logger.Error("RefreshActiveBookings: failed to mirror booking id=%s: %v", fresh.ID, err)
			continue
		}
		s.store.ReplaceBooking(*fresh)
		updated++

		s.logger.Info("RefreshActiveBookings: booking id=%s moved %s -> %s", fresh.ID, cached.Status, fresh.Status)
	}

	if s.metrics != nil && updated > 0 {
		s.metrics.SyncBookingsUpdated.Add(float64(updated))
	}

	s.logger.Info("RefreshActiveBookings: checked %d bookings, updated %d", len(active), updated)
	return nil
}
