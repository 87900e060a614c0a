package domain

import (
	"errors"
	"math"
)

// ErrNegativeRate is returned when the hourly rate is negative
var ErrNegativeRate = errors.New("domain: hourly rate must be non-negative")

// RateSchedule is the rate card attached to a parking spot.
// Owned by ParkingCore, read-only here.
type RateSchedule struct {
	HourlyRate  int64 // minor currency units per hour
	DailyRate   *int64
	MonthlyRate *int64
}

// PriceQuote is a derived cost breakdown for a spot and a time window.
// Not persisted; recomputed whenever the window or the spot changes.
type PriceQuote struct {
	DurationHours float64
	Subtotal      int64
	ServiceFee    int64
	Total         int64
	OwnerPayout   int64

	// Estimated marks a locally computed fallback. An estimated quote is
	// a placeholder only and must never be the amount actually charged;
	// the ParkingCore quote is authoritative whenever both exist.
	Estimated bool
}

// EstimateQuote computes the local reference quote for a window:
// hours rounded up to the next whole hour, subtotal = hourlyRate * hours,
// serviceFee = ceil(subtotal * 10%) + flat fee, total = subtotal + fee.
// OwnerPayout mirrors the subtotal; the real commission policy is owned
// by ParkingCore and only its value is meaningful.
func EstimateQuote(rate RateSchedule, w TimeWindow) (*PriceQuote, error) {
	if !w.IsValid() {
		return nil, ErrInvalidWindow
	}
	if rate.HourlyRate < 0 {
		return nil, ErrNegativeRate
	}

	hours := w.BillableHours()
	subtotal := rate.HourlyRate * hours
	serviceFee := int64(math.Ceil(float64(subtotal)*ServiceFeePercent)) + ServiceFeeFlat

	return &PriceQuote{
		DurationHours: float64(hours),
		Subtotal:      subtotal,
		ServiceFee:    serviceFee,
		Total:         subtotal + serviceFee,
		OwnerPayout:   subtotal,
		Estimated:     true,
	}, nil
}
