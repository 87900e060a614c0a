package calculate_price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	coreClient "github.com/m04kA/SMC-ParkingGateway/internal/integrations/parkingcore"
)

// UseCase use case расчёта цены бронирования.
// Авторитетную цену считает ParkingCore; локальная формула дает только
// офлайн-оценку и никогда не является суммой к оплате.
type UseCase struct {
	client ParkingCoreClient
	store  QuoteStore
	cache  QuoteCache
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ParkingCoreClient, store QuoteStore, cache QuoteCache, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		store:  store,
		cache:  cache,
		logger: logger,
	}
}

// Execute выполняет расчёт цены для площадки и окна.
// Невалидное окно (end <= start) даёт ErrInvalidWindow - "нет котировки".
// Каждому запросу выдаётся монотонный номер; в слот котировки попадает
// только ответ с наибольшим выданным номером, опоздавшие отбрасываются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ParkingSpotID == "" {
		return nil, fmt.Errorf("%w: parkingSpotID is required", ErrInvalidInput)
	}
	if !req.Window.IsValid() {
		uc.logger.Info("CalculatePrice: invalid window for spot=%s, no quote", req.ParkingSpotID)
		return nil, ErrInvalidWindow
	}

	seq := uc.store.BeginQuote()
	key := cacheKey(req.ParkingSpotID, req.Window)

	if cached, found := uc.cache.Get(key); found {
		if quote, ok := cached.(domain.PriceQuote); ok {
			applied := uc.store.ApplyQuote(seq, &quote)
			uc.logger.Info("CalculatePrice: cache hit for spot=%s, total=%d", req.ParkingSpotID, quote.Total)
			return &Response{Quote: quote, Applied: applied}, nil
		}
	}

	quote, err := uc.client.CalculatePrice(ctx, req.ParkingSpotID, req.Window)
	if err != nil {
		switch {
		case errors.Is(err, coreClient.ErrNotFound):
			uc.logger.Warn("CalculatePrice: spot=%s not found", req.ParkingSpotID)
			return nil, ErrSpotNotFound

		case errors.Is(err, coreClient.ErrBadRequest):
			uc.logger.Warn("CalculatePrice: backend rejected window for spot=%s: %v", req.ParkingSpotID, err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidWindow, err)

		default:
			return uc.estimateFallback(req, seq, err)
		}
	}

	uc.cache.SetDefault(key, *quote)

	applied := uc.store.ApplyQuote(seq, quote)
	if !applied {
		uc.logger.Info("CalculatePrice: stale response for spot=%s discarded (seq=%d)", req.ParkingSpotID, seq)
	}

	uc.logger.Info("CalculatePrice: spot=%s, hours=%.2f, total=%d", req.ParkingSpotID, quote.DurationHours, quote.Total)
	return &Response{Quote: *quote, Applied: applied}, nil
}

// estimateFallback выполняет graceful degradation: при недоступности
// ParkingCore показывает локальную оценку, явно помеченную Estimated
func (uc *UseCase) estimateFallback(req *Request, seq uint64, cause error) (*Response, error) {
	if req.HourlyRate == nil {
		uc.logger.Error("CalculatePrice: ParkingCore unavailable and no rate for local estimate, spot=%s: %v",
			req.ParkingSpotID, cause)
		return nil, fmt.Errorf("%w: %w", ErrQuoteUnavailable, cause)
	}

	uc.logger.Error("CalculatePrice: ParkingCore unavailable, using local estimate for spot=%s: %v",
		req.ParkingSpotID, cause)

	quote, err := domain.EstimateQuote(domain.RateSchedule{HourlyRate: *req.HourlyRate}, req.Window)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWindow) {
			return nil, ErrInvalidWindow
		}
		return nil, fmt.Errorf("%w: local estimate failed: %v", ErrInternal, err)
	}

	// Оценки не кэшируем: авторитетный ответ должен вытеснить их
	// при первой же возможности
	applied := uc.store.ApplyQuote(seq, quote)
	return &Response{Quote: *quote, Applied: applied}, nil
}

func cacheKey(spotID string, w domain.TimeWindow) string {
	return spotID + "|" + w.Start.UTC().Format(time.RFC3339) + "|" + w.End.UTC().Format(time.RFC3339)
}
