package create_booking

import (
	"fmt"
	"strings"
	"time"
)

// validateRequest валидирует входные данные запроса.
// Любое нарушение возвращает ошибку до единого сетевого вызова.
func validateRequest(req *Request, now time.Time) error {
	if req.Token == "" {
		return ErrUnauthenticated
	}

	if req.ParkingSpotID == "" {
		return fmt.Errorf("%w: parkingSpotID is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.VehiclePlate) == "" {
		return ErrEmptyPlate
	}

	if req.Window.Start.IsZero() || req.Window.End.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.Window.IsValid() {
		return ErrInvalidWindow
	}

	if req.Window.Start.Before(now) {
		return ErrStartInPast
	}

	return nil
}
