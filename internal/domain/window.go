package domain

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrInvalidWindow is returned when the window end is not after the start
	ErrInvalidWindow = errors.New("domain: window end must be after start")

	// ErrStartInPast is returned when a window starting in the past is confirmed
	ErrStartInPast = errors.New("domain: window start is in the past")
)

// TimeWindow is a proposed (start, end) pair for a booking
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the window satisfies start < end
func (w TimeWindow) IsValid() bool {
	return w.End.After(w.Start)
}

// Duration returns the raw window length
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Hours returns the window length in fractional hours
func (w TimeWindow) Hours() float64 {
	return w.Duration().Hours()
}

// BillableHours returns the window length rounded up to whole hours.
// Partial hours are billed as a full hour.
func (w TimeWindow) BillableHours() int64 {
	if !w.IsValid() {
		return 0
	}
	return int64(math.Ceil(w.Hours()))
}

// WindowSelector accumulates edits to a booking window while keeping the
// start < end invariant. A start edit that would break it pushes the end
// forward; an end edit that would break it is rejected without mutation.
type WindowSelector struct {
	window TimeWindow
}

// NewWindowSelector creates a selector with the initial window.
// An inverted window gets its end pushed to one hour after the start.
func NewWindowSelector(start, end time.Time) *WindowSelector {
	s := &WindowSelector{window: TimeWindow{Start: start, End: end}}
	if !s.window.IsValid() {
		s.window.End = start.Add(DefaultWindowExtension * time.Hour)
	}
	return s
}

// SetStart applies a start edit.
// A new start at or past the current end pushes the end one hour forward.
func (s *WindowSelector) SetStart(start time.Time) {
	s.window.Start = start
	if !s.window.IsValid() {
		s.window.End = start.Add(DefaultWindowExtension * time.Hour)
	}
}

// SetEnd applies an end edit.
// An edit that would invert the window is rejected; the start never moves.
func (s *WindowSelector) SetEnd(end time.Time) error {
	if !end.After(s.window.Start) {
		return ErrInvalidWindow
	}
	s.window.End = end
	return nil
}

// Window returns the current window
func (s *WindowSelector) Window() TimeWindow {
	return s.window
}

// Confirm finalizes the window at submission time.
// While editing, the window may start in the past (grace period), but on
// confirmation the start must not be before now.
func (s *WindowSelector) Confirm(now time.Time) (TimeWindow, error) {
	if !s.window.IsValid() {
		return TimeWindow{}, ErrInvalidWindow
	}
	if s.window.Start.Before(now) {
		return TimeWindow{}, ErrStartInPast
	}
	return s.window, nil
}
