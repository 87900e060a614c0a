package calculate_price

import (
	"context"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
)

// ParkingCoreClient интерфейс клиента ParkingCore
type ParkingCoreClient interface {
	CalculatePrice(ctx context.Context, spotID string, window domain.TimeWindow) (*domain.PriceQuote, error)
}

// QuoteStore интерфейс слота котировки в контейнере состояния
type QuoteStore interface {
	BeginQuote() uint64
	ApplyQuote(seq uint64, quote *domain.PriceQuote) bool
}

// QuoteCache интерфейс кэша котировок (go-cache).
// Котировка не имеет побочных эффектов, поэтому её можно кэшировать
// и молча переспрашивать.
type QuoteCache interface {
	Get(key string) (interface{}, bool)
	SetDefault(key string, value interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
