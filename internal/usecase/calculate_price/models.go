package calculate_price

import "github.com/m04kA/SMC-ParkingGateway/internal/domain"

// Request запрос котировки
type Request struct {
	ParkingSpotID string
	Window        domain.TimeWindow

	// HourlyRate ставка площадки, уже известная клиенту из выдачи.
	// Нужна только для локальной оценки при недоступности ParkingCore.
	HourlyRate *int64
}

// Response ответ с котировкой
type Response struct {
	Quote domain.PriceQuote

	// Applied false, когда ответ пришёл позже более свежего запроса
	// и слот котировки уже занят этим более свежим ответом
	Applied bool
}
