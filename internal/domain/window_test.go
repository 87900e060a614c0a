package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSelector_SetStartPushesEndForward(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	s := NewWindowSelector(start, end)

	// Moving start past the current end pushes end to start + 1h
	newStart := end.Add(30 * time.Minute)
	s.SetStart(newStart)

	w := s.Window()
	assert.Equal(t, newStart, w.Start)
	assert.Equal(t, newStart.Add(time.Hour), w.End)
}

func TestWindowSelector_SetStartKeepsValidEnd(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	s := NewWindowSelector(start, end)

	s.SetStart(start.Add(time.Hour))

	w := s.Window()
	assert.Equal(t, start.Add(time.Hour), w.Start)
	assert.Equal(t, end, w.End, "valid start edit must not move the end")
}

func TestWindowSelector_SetEndNeverMovesStart(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	s := NewWindowSelector(start, start.Add(2*time.Hour))

	err := s.SetEnd(start.Add(-time.Hour))
	require.ErrorIs(t, err, ErrInvalidWindow)

	// Rejected edit must not mutate the window
	w := s.Window()
	assert.Equal(t, start, w.Start)
	assert.Equal(t, start.Add(2*time.Hour), w.End)

	require.NoError(t, s.SetEnd(start.Add(4*time.Hour)))
	assert.Equal(t, start, s.Window().Start)
	assert.Equal(t, start.Add(4*time.Hour), s.Window().End)
}

func TestWindowSelector_Confirm(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("start in past rejected", func(t *testing.T) {
		s := NewWindowSelector(now.Add(-time.Minute), now.Add(time.Hour))
		_, err := s.Confirm(now)
		assert.ErrorIs(t, err, ErrStartInPast)
	})

	t.Run("future window accepted", func(t *testing.T) {
		s := NewWindowSelector(now.Add(15*time.Minute), now.Add(2*time.Hour))
		w, err := s.Confirm(now)
		require.NoError(t, err)
		assert.True(t, w.IsValid())
	})
}

func TestTimeWindow_BillableHours(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		end      time.Time
		expected int64
	}{
		{"exact two hours", start.Add(2 * time.Hour), 2},
		{"partial hour billed as full", start.Add(90 * time.Minute), 2},
		{"one minute billed as one hour", start.Add(time.Minute), 1},
		{"inverted window", start.Add(-time.Hour), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := TimeWindow{Start: start, End: tc.end}
			assert.Equal(t, tc.expected, w.BillableHours())
		})
	}
}
