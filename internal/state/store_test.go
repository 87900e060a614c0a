package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingGateway/internal/domain"
)

func TestStore_QuoteSequenceLastWriterWins(t *testing.T) {
	s := NewStore()

	first := s.BeginQuote()
	second := s.BeginQuote()
	require.Greater(t, second, first)

	// Later-issued response arrives first and is applied
	applied := s.ApplyQuote(second, &domain.PriceQuote{Total: 1150})
	assert.True(t, applied)

	// Earlier-issued response arrives late and must be discarded
	applied = s.ApplyQuote(first, &domain.PriceQuote{Total: 999})
	assert.False(t, applied)

	q := s.Quote()
	require.NotNil(t, q)
	assert.Equal(t, int64(1150), q.Total)
}

func TestStore_ApplyQuoteClearsSlot(t *testing.T) {
	s := NewStore()
	seq := s.BeginQuote()
	require.True(t, s.ApplyQuote(seq, &domain.PriceQuote{Total: 100}))

	seq = s.BeginQuote()
	require.True(t, s.ApplyQuote(seq, nil))
	assert.Nil(t, s.Quote())
}

func TestStore_ReplaceBookingTouchesOnlyMatch(t *testing.T) {
	s := NewStore()
	s.SetMyBookings([]domain.Booking{
		{ID: "b1", Status: domain.StatusPending},
		{ID: "b2", Status: domain.StatusConfirmed},
	})
	s.SetOwnerBookings([]domain.Booking{
		{ID: "b2", Status: domain.StatusConfirmed},
		{ID: "b3", Status: domain.StatusPending},
	})

	reason := "plans changed"
	replaced := s.ReplaceBooking(domain.Booking{
		ID:                 "b2",
		Status:             domain.StatusCancelled,
		CancellationReason: &reason,
	})
	require.True(t, replaced)

	my := s.MyBookings()
	assert.Equal(t, domain.StatusPending, my[0].Status, "unrelated booking must be unchanged")
	assert.Equal(t, domain.StatusCancelled, my[1].Status)
	require.NotNil(t, my[1].CancellationReason)
	assert.Equal(t, "plans changed", *my[1].CancellationReason)

	owner := s.OwnerBookings()
	assert.Equal(t, domain.StatusCancelled, owner[0].Status)
	assert.Equal(t, domain.StatusPending, owner[1].Status)
}

func TestStore_ReplaceBookingUnknownID(t *testing.T) {
	s := NewStore()
	s.SetMyBookings([]domain.Booking{{ID: "b1"}})

	assert.False(t, s.ReplaceBooking(domain.Booking{ID: "missing"}))

	_, ok := s.BookingByID("missing")
	assert.False(t, ok)
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	s := NewStore()
	s.SetMyBookings([]domain.Booking{{ID: "b1", Status: domain.StatusPending}})

	snap := s.MyBookings()
	snap[0].Status = domain.StatusCancelled

	fresh := s.MyBookings()
	assert.Equal(t, domain.StatusPending, fresh[0].Status, "mutating a snapshot must not leak into the store")
}

func TestStore_PrependMyBooking(t *testing.T) {
	s := NewStore()
	s.SetMyBookings([]domain.Booking{{ID: "old"}})
	s.PrependMyBooking(domain.Booking{ID: "new"})

	my := s.MyBookings()
	require.Len(t, my, 2)
	assert.Equal(t, "new", my[0].ID)
}
