package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
	calculatePrice "github.com/m04kA/SMC-ParkingGateway/internal/usecase/calculate_price"
)

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	ParkingSpotID string    `json:"parkingSpotId"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`

	// HourlyRate ставка площадки из выдачи, используется только для
	// локальной оценки при недоступности бэкенда
	HourlyRate *int64 `json:"hourlyRate,omitempty"`
}

// PriceQuoteResponse HTTP response model
type PriceQuoteResponse struct {
	DurationHours float64 `json:"durationHours"`
	Subtotal      int64   `json:"subtotal"`
	ServiceFee    int64   `json:"serviceFee"`
	Total         int64   `json:"total"`
	OwnerPayout   int64   `json:"ownerPayout"`
	Estimated     bool    `json:"estimated"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest() *calculatePrice.Request {
	return &calculatePrice.Request{
		ParkingSpotID: r.ParkingSpotID,
		Window:        domain.TimeWindow{Start: r.StartTime, End: r.EndTime},
		HourlyRate:    r.HourlyRate,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		DurationHours: resp.Quote.DurationHours,
		Subtotal:      resp.Quote.Subtotal,
		ServiceFee:    resp.Quote.ServiceFee,
		Total:         resp.Quote.Total,
		OwnerPayout:   resp.Quote.OwnerPayout,
		Estimated:     resp.Quote.Estimated,
	}
}
