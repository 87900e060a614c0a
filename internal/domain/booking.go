package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusRefunded   BookingStatus = "refunded"
)

// IsTerminal returns true if no further transitions are accepted from this status
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRefunded
}

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress,
		StatusCompleted, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// PaymentStatus values reported by ParkingCore
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentRefunded  = "refunded"
)

// Booking represents a parking spot booking.
// ParkingCore owns the record; this is the cached client-side copy and is
// always replaced wholesale with the server representation.
type Booking struct {
	ID            string
	UserID        string
	ParkingSpotID string
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus

	// Authoritative pricing, minor currency units
	TotalAmount   int64
	ServiceFee    int64
	OwnerPayout   int64
	PaymentStatus string

	// Vehicle data supplied at submission
	VehiclePlate    string
	VehicleMake     *string
	VehicleModel    *string
	VehicleColor    *string
	SpecialRequests *string

	CancellationReason *string
	CheckedInAt        *time.Time
	CheckedOutAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the booked time window
func (b *Booking) Window() TimeWindow {
	return TimeWindow{Start: b.StartTime, End: b.EndTime}
}

// IsActive returns true if the booking still occupies its spot
func (b *Booking) IsActive() bool {
	return !b.Status.IsTerminal()
}

// CanBeCancelled returns true if the booking can be cancelled by the client
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanCheckIn returns true if the renter may check in
func (b *Booking) CanCheckIn() bool {
	return b.Status == StatusConfirmed
}

// CanCheckOut returns true if the renter may check out
func (b *Booking) CanCheckOut() bool {
	return b.Status == StatusInProgress
}
