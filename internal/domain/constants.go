package domain

// Pricing constants for the local reference estimate.
// ParkingCore owns the real commission policy; these only back the
// offline estimate shown while the authoritative quote is unavailable.
const (
	ServiceFeePercent = 0.10 // 10% commission
	ServiceFeeFlat    = 50   // flat fee, minor currency units
)

// DefaultWindowExtension is how far the end of a window is pushed forward
// when a start edit would otherwise invert the window
const DefaultWindowExtension = 1 // hours

// ActiveStatuses lists the statuses in which a booking still occupies its
// spot. Used by the background refresh to select unfinished bookings.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// TerminalStatuses lists the final booking statuses
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusRefunded,
}
